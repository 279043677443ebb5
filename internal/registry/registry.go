// Package registry maps template identifiers to the repository location,
// branch, and subdirectory they scaffold from.
package registry

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownTemplate is a sentinel wrapped by Resolve when an identifier is
// not present in the table. Callers use errors.Is(err, ErrUnknownTemplate).
var ErrUnknownTemplate = errors.New("unknown template")

// Entry describes where a template lives. Branch and Subdir are optional;
// an empty Branch means the remote's default branch, an empty Subdir means
// the whole repository tree is the payload.
type Entry struct {
	URL    string `toml:"url"`
	Branch string `toml:"branch,omitempty"`
	Subdir string `toml:"subdir,omitempty"`
}

// Registry is a read-only identifier table. Construct one with New (or
// Default for the compiled-in table) and share it freely; it is never
// mutated after construction.
type Registry struct {
	entries map[string]Entry
}

// New builds a Registry from the given table. The map is copied so later
// mutation by the caller cannot affect the Registry.
func New(entries map[string]Entry) *Registry {
	copied := make(map[string]Entry, len(entries))
	for id, entry := range entries {
		copied[id] = entry
	}
	return &Registry{entries: copied}
}

// Resolve looks up an identifier by exact match. A miss fails with
// ErrUnknownTemplate; there is no fallback template.
func (r *Registry) Resolve(id string) (Entry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
	}
	return entry, nil
}

// Names returns the registered identifiers in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for id := range r.entries {
		names = append(names, id)
	}
	sort.Strings(names)
	return names
}
