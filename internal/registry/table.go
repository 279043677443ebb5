package registry

import (
	_ "embed"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

//go:embed templates.toml
var tableTOML []byte

type tableFile struct {
	Templates map[string]Entry `toml:"templates"`
}

// Default parses the embedded template table into a Registry.
func Default() (*Registry, error) {
	return Parse(tableTOML)
}

// Parse decodes a TOML template table. Every entry must carry a URL.
func Parse(data []byte) (*Registry, error) {
	var file tableFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse template table: %w", err)
	}
	for id, entry := range file.Templates {
		if entry.URL == "" {
			return nil, fmt.Errorf("template table: %q has no url", id)
		}
	}
	return New(file.Templates), nil
}
