package main

// NOTE: Tests in this file mutate package-level seams (defaultRegistry,
// runPipeline, isInteractive, stderrIsTerminal, runPicker). Do not use
// t.Parallel(); each test restores the seams via t.Cleanup.

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenheadedlion/contemplate/internal/messages"
	"github.com/tenheadedlion/contemplate/internal/pipeline"
	"github.com/tenheadedlion/contemplate/internal/registry"
)

type pipelineCall struct {
	called bool
	id     string
	dest   string
	deps   pipeline.Deps
	err    error
}

func stubSeams(t *testing.T, call *pipelineCall) {
	t.Helper()

	origRegistry := defaultRegistry
	origPipeline := runPipeline
	origInteractive := isInteractive
	origStderr := stderrIsTerminal
	origPicker := runPicker
	t.Cleanup(func() {
		defaultRegistry = origRegistry
		runPipeline = origPipeline
		isInteractive = origInteractive
		stderrIsTerminal = origStderr
		runPicker = origPicker
	})

	reg := registry.New(map[string]registry.Entry{
		"demo": {URL: "https://example.com/x.git", Branch: "main"},
	})
	defaultRegistry = func() (*registry.Registry, error) { return reg, nil }
	runPipeline = func(_ context.Context, id, dest string, deps pipeline.Deps) error {
		call.called = true
		call.id = id
		call.dest = dest
		call.deps = deps
		return call.err
	}
	isInteractive = func() bool { return false }
	stderrIsTerminal = func() bool { return false }
}

func TestNewWithArgs(t *testing.T) {
	call := &pipelineCall{}
	stubSeams(t, call)

	var out bytes.Buffer
	require.NoError(t, execute([]string{"contemplate", "new", "demo", "myproj"}, &out, &out))

	assert.True(t, call.called)
	assert.Equal(t, "demo", call.id)
	assert.Equal(t, "myproj", call.dest)
	assert.NotNil(t, call.deps.Registry)
	assert.NotNil(t, call.deps.Fetcher)
	assert.Contains(t, out.String(), "created myproj")
}

func TestNewPipelineErrorPropagates(t *testing.T) {
	wantErr := errors.New("fetch failed: network unreachable")
	call := &pipelineCall{err: wantErr}
	stubSeams(t, call)

	var out bytes.Buffer
	err := execute([]string{"contemplate", "new", "demo", "myproj"}, &out, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
	assert.NotContains(t, out.String(), "created")
}

func TestNewOneArgRejected(t *testing.T) {
	call := &pipelineCall{}
	stubSeams(t, call)

	var out bytes.Buffer
	err := execute([]string{"contemplate", "new", "demo"}, &out, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), messages.NewArgsRequired)
	assert.False(t, call.called)
}

func TestNewNoArgsWithoutTerminal(t *testing.T) {
	call := &pipelineCall{}
	stubSeams(t, call)

	var out bytes.Buffer
	err := execute([]string{"contemplate", "new"}, &out, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), messages.NewRequiresTerminal)
	assert.False(t, call.called)
}

func TestNewNoArgsRunsPicker(t *testing.T) {
	call := &pipelineCall{}
	stubSeams(t, call)
	isInteractive = func() bool { return true }
	runPicker = func(*registry.Registry) (string, string, error) {
		return "demo", "picked", nil
	}

	var out bytes.Buffer
	require.NoError(t, execute([]string{"contemplate", "new"}, &out, &out))

	assert.True(t, call.called)
	assert.Equal(t, "demo", call.id)
	assert.Equal(t, "picked", call.dest)
}

func TestNewPickerAborted(t *testing.T) {
	call := &pipelineCall{}
	stubSeams(t, call)
	isInteractive = func() bool { return true }
	runPicker = func(*registry.Registry) (string, string, error) {
		return "", "", errors.New("user aborted")
	}

	var out bytes.Buffer
	err := execute([]string{"contemplate", "new"}, &out, &out)
	require.Error(t, err)
	assert.False(t, call.called)
}

func TestNewRegistryLoadFailure(t *testing.T) {
	call := &pipelineCall{}
	stubSeams(t, call)
	defaultRegistry = func() (*registry.Registry, error) {
		return nil, errors.New("parse template table: bad toml")
	}

	var out bytes.Buffer
	err := execute([]string{"contemplate", "new", "demo", "x"}, &out, &out)
	require.Error(t, err)
	assert.False(t, call.called)
}
