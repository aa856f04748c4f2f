//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Extract builds the CLI and scrapes exports/<name>.xml into output/<name>.csv.
func Extract(name string) error {
	mg.Deps(Init, Build)
	return extractExport(name, "csv")
}

// ExtractAll scrapes every exports/*.xml into output/ in the given format
// (csv, yaml, json, xlsx, or sqlite).
func ExtractAll(format string) error {
	mg.Deps(Init, Build)

	exports, err := filepath.Glob(filepath.Join("exports", "*.xml"))
	if err != nil {
		return err
	}
	if len(exports) == 0 {
		return fmt.Errorf("no exports found in exports/")
	}
	for _, path := range exports {
		name := strings.TrimSuffix(filepath.Base(path), ".xml")
		if err := extractExport(name, format); err != nil {
			return err
		}
	}
	fmt.Printf("Extracted %d exports.\n", len(exports))
	return nil
}

func extractExport(name, format string) error {
	input := filepath.Join("exports", name+".xml")
	if _, err := os.Stat(input); err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}
	ext := "." + format
	if format == "sqlite" {
		ext = ".db"
	}
	output := filepath.Join("output", name+ext)
	if err := sh.RunV(filepath.Join(binDir, binName), "extract", "-f", input, "-o", output, "--format", format); err != nil {
		return fmt.Errorf("extracting %s: %w", input, err)
	}
	return nil
}
