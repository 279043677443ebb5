// Package gitfetch clones a remote repository into a staging path while
// streaming transfer and checkout progress.
package gitfetch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/tenheadedlion/contemplate/internal/progress"
)

// ErrFetch is a sentinel wrapped by every fetch failure: network, protocol,
// missing branch, or checkout faults. The operation fails atomically; the
// staging directory may hold partial data the caller must not reuse.
var ErrFetch = errors.New("fetch failed")

// diagLimit caps how many non-progress stderr lines are kept for the error
// message when git exits non-zero.
const diagLimit = 4

// Engine fetches repositories with the git binary for the transfer and
// go-git for the checkout. The zero value is not usable; call New.
type Engine struct {
	gitPath string
}

// New returns an Engine that invokes "git" from PATH.
func New() *Engine {
	return &Engine{gitPath: "git"}
}

// Fetch clones location into staging and checks out its working tree. When
// branch is non-empty the clone targets that branch and fails if the remote
// does not have it; otherwise the remote's default branch is used. Progress
// is delivered synchronously to sink; Fetch blocks until the whole operation
// completes or fails. git creates the staging directory itself.
func (e *Engine) Fetch(ctx context.Context, location, branch, staging string, sink progress.Sink) error {
	cmd := exec.CommandContext(ctx, e.gitPath, cloneArgs(location, branch, staging)...)
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFetch, err)
	}
	cmd.Stdout = io.Discard
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: start git: %w", ErrFetch, err)
	}

	parser := newStderrParser(sink)
	var diag []string
	scanner := bufio.NewScanner(stderr)
	scanner.Split(scanProgressLines)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || parser.feed(line) {
			continue
		}
		diag = append(diag, line)
		if len(diag) > diagLimit {
			diag = diag[1:]
		}
	}

	if err := cmd.Wait(); err != nil {
		if detail := strings.Join(diag, "; "); detail != "" {
			return fmt.Errorf("%w: git clone: %w: %s", ErrFetch, err, detail)
		}
		return fmt.Errorf("%w: git clone: %w", ErrFetch, err)
	}

	if err := checkoutHead(staging, sink); err != nil {
		return fmt.Errorf("%w: %w", ErrFetch, err)
	}
	return nil
}

// cloneArgs builds the git invocation. --no-checkout defers the working
// tree to checkoutHead; --progress forces progress lines even though stderr
// is a pipe.
func cloneArgs(location, branch, staging string) []string {
	args := []string{"clone", "--no-checkout", "--progress"}
	if branch != "" {
		args = append(args, "--branch", branch, "--single-branch")
	}
	return append(args, "--", location, staging)
}
