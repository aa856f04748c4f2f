// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package grid

import (
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"
)

// LoadLayout reads a YAML layout from path. An empty path returns the
// default layout.
func LoadLayout(path string) (Layout, error) {
	if path == "" {
		return DefaultLayout(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading layout %s: %w", path, err)
	}

	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("parsing layout %s: %w", path, err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, fmt.Errorf("layout %s: %w", path, err)
	}
	return l, nil
}

// WriteLayout encodes l as YAML to w.
func WriteLayout(w io.Writer, l Layout) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("marshaling layout: %w", err)
	}
	return enc.Close()
}
