// Package pipeline sequences one scaffolding run: resolve the template,
// allocate a staging path, fetch the repository, materialize the payload.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-git/go-git/v5/plumbing/transport"

	"github.com/tenheadedlion/contemplate/internal/materialize"
	"github.com/tenheadedlion/contemplate/internal/messages"
	"github.com/tenheadedlion/contemplate/internal/progress"
	"github.com/tenheadedlion/contemplate/internal/registry"
	"github.com/tenheadedlion/contemplate/internal/workspace"
)

var (
	// ErrMalformedLocation reports a table entry whose URL cannot be parsed
	// as a transport endpoint.
	ErrMalformedLocation = errors.New("malformed template location")
	// ErrWorkingDirectory reports that the working directory could not be
	// determined.
	ErrWorkingDirectory = errors.New("working directory unavailable")
)

// Fetcher clones a repository into a staging path, streaming progress to
// the sink. Implemented by gitfetch.Engine.
type Fetcher interface {
	Fetch(ctx context.Context, location, branch, staging string, sink progress.Sink) error
}

// Deps carries the pipeline's collaborators. Registry and Fetcher are
// required; the rest default to the real implementations, and tests swap in
// doubles.
type Deps struct {
	Registry *registry.Registry
	Fetcher  Fetcher

	// Sink receives progress events; defaults to progress.Discard.
	Sink progress.Sink
	// Info receives the url -> staging and staging -> name status lines;
	// defaults to io.Discard.
	Info io.Writer

	Getwd       func() (string, error)
	Allocate    func() string
	Materialize func(stagingPath, subdir, destName, workDir string) error
}

// RunContext is the per-run value object: built once after resolution,
// immutable for the rest of the run.
type RunContext struct {
	URL         string
	Branch      string
	Subdir      string
	StagingPath string
	DestName    string
	WorkDir     string
}

// Run executes the pipeline for one template identifier and destination
// name. The pipeline is strictly linear and single-attempt: the first
// failure is returned as a typed error with no retry and no cleanup of
// partial state — a failed run may leave the staging directory and a
// partially materialized destination in place for inspection.
func Run(ctx context.Context, id, destName string, deps Deps) error {
	sink := deps.Sink
	if sink == nil {
		sink = progress.Discard{}
	}
	info := deps.Info
	if info == nil {
		info = io.Discard
	}
	getwd := deps.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	allocate := deps.Allocate
	if allocate == nil {
		allocate = workspace.Allocate
	}
	materializeFn := deps.Materialize
	if materializeFn == nil {
		materializeFn = materialize.Materialize
	}

	workDir, err := getwd()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWorkingDirectory, err)
	}
	entry, err := deps.Registry.Resolve(id)
	if err != nil {
		return err
	}
	if _, err := transport.NewEndpoint(entry.URL); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrMalformedLocation, entry.URL, err)
	}

	run := RunContext{
		URL:         entry.URL,
		Branch:      entry.Branch,
		Subdir:      entry.Subdir,
		StagingPath: allocate(),
		DestName:    destName,
		WorkDir:     workDir,
	}

	_, _ = fmt.Fprintf(info, messages.PipelineFetchFmt, run.URL, run.StagingPath)
	if err := deps.Fetcher.Fetch(ctx, run.URL, run.Branch, run.StagingPath, sink); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(info, messages.PipelineMaterializeFmt, run.StagingPath, run.DestName)
	return materializeFn(run.StagingPath, run.Subdir, run.DestName, run.WorkDir)
}
