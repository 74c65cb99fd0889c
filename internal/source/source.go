// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source reads Pseudopseudocode files and writes generated Python.
package source

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// Ext is the Pseudopseudocode file extension.
	Ext = ".ppc"
	// OutExt is the generated Python file extension.
	OutExt = ".py"
)

// ReadLines reads the file at path into ordered lines. Line terminators are
// not included in the entries.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening source file: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

// WriteFile writes content verbatim to path, overwriting any existing file.
// Parent directories are created as needed.
func WriteFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// OutputPath derives the generated-file path for input: the input's base name
// with OutExt, placed under outputDir. An empty outputDir keeps the output
// next to the input.
func OutputPath(input, outputDir string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, base+OutExt)
}
