package gitfetch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/tenheadedlion/contemplate/internal/progress"
)

// checkoutHead writes the files of the HEAD commit into the repository's
// working tree, reporting one CheckoutEvent per file. The clone is made with
// --no-checkout so this is the only checkout that happens; walking the tree
// ourselves is what lets us name the current file in progress events.
func checkoutHead(repoPath string, sink progress.Sink) error {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return fmt.Errorf("open staged repository: %w", err)
	}
	ref, err := repo.Head()
	if err != nil {
		return fmt.Errorf("resolve HEAD: %w", err)
	}
	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return fmt.Errorf("read commit %s: %w", ref.Hash(), err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return fmt.Errorf("read tree: %w", err)
	}

	var files []*object.File
	err = tree.Files().ForEach(func(f *object.File) error {
		files = append(files, f)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk tree: %w", err)
	}

	total := uint64(len(files))
	for i, f := range files {
		if err := writeTreeFile(repoPath, f); err != nil {
			return err
		}
		sink.OnCheckout(progress.CheckoutEvent{
			Path:      f.Name,
			Completed: uint64(i + 1),
			Total:     total,
		})
	}
	return nil
}

func writeTreeFile(root string, f *object.File) error {
	target := filepath.Join(root, filepath.FromSlash(f.Name))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", f.Name, err)
	}

	if f.Mode == filemode.Symlink {
		link, err := f.Contents()
		if err != nil {
			return fmt.Errorf("read symlink %s: %w", f.Name, err)
		}
		if err := os.Symlink(link, target); err != nil {
			return fmt.Errorf("write symlink %s: %w", f.Name, err)
		}
		return nil
	}

	mode := os.FileMode(0o644)
	if f.Mode == filemode.Executable {
		mode = 0o755
	}
	reader, err := f.Reader()
	if err != nil {
		return fmt.Errorf("read blob %s: %w", f.Name, err)
	}
	defer func() { _ = reader.Close() }()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("create %s: %w", f.Name, err)
	}
	if _, err := io.Copy(out, reader); err != nil {
		_ = out.Close()
		return fmt.Errorf("write %s: %w", f.Name, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", f.Name, err)
	}
	return nil
}
