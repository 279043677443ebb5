// Package materialize relocates a staged repository tree into the caller's
// working directory as the final scaffolded project.
package materialize

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Failure kinds for the three materialization steps. A failed step aborts
// without rolling back earlier steps; the working directory may be left with
// a partially copied or renamed artifact for manual inspection.
var (
	ErrCopy            = errors.New("copy failed")
	ErrRename          = errors.New("rename failed")
	ErrMetadataRemoval = errors.New("metadata removal failed")
)

// metadataDir is the version-control directory stripped from whole-tree copies.
const metadataDir = ".git"

// Materialize copies the payload out of stagingPath into workDir under
// destName. With an empty subdir the whole staged tree is copied and its
// .git directory removed afterwards; with a subdir only that subtree is
// copied, and no metadata stripping happens because the subtree carries no
// metadata directory at its root. Materialize refuses to overwrite an
// existing destName and leaves the existing entry untouched.
func Materialize(stagingPath, subdir, destName, workDir string) error {
	src := stagingPath
	if subdir != "" {
		src = filepath.Join(stagingPath, filepath.FromSlash(subdir))
	}

	dest := filepath.Join(workDir, destName)
	if _, err := os.Lstat(dest); err == nil {
		return fmt.Errorf("%w: %s already exists", ErrRename, dest)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrRename, err)
	}

	copied := filepath.Join(workDir, filepath.Base(src))
	if err := copyTree(src, copied); err != nil {
		return fmt.Errorf("%w: %w", ErrCopy, err)
	}
	if err := os.Rename(copied, dest); err != nil {
		return fmt.Errorf("%w: %w", ErrRename, err)
	}
	if subdir == "" {
		if err := os.RemoveAll(filepath.Join(dest, metadataDir)); err != nil {
			return fmt.Errorf("%w: %w", ErrMetadataRemoval, err)
		}
	}
	return nil
}

// copyTree copies the directory src to dst, preserving file modes and
// symlinks. dst must not already exist.
func copyTree(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", src)
	}
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("%s already exists", dst)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			info, err := d.Info()
			if err != nil {
				return err
			}
			return os.MkdirAll(target, info.Mode().Perm())
		case d.Type()&fs.ModeSymlink != 0:
			link, err := os.Readlink(path)
			if err != nil {
				return err
			}
			return os.Symlink(link, target)
		default:
			info, err := d.Info()
			if err != nil {
				return err
			}
			return copyFile(path, target, info.Mode().Perm())
		}
	})
}

func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
