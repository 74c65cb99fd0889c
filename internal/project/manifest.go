// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package project reads and writes the pseudoc build manifest. A manifest
// lists the Pseudopseudocode sources of a project so the whole project can
// be compiled in one run.
package project

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pseudoc/internal/source"
	"github.com/pdiddy/pseudoc/internal/transpile"
)

// DefaultManifest is the manifest filename looked up when none is configured.
const DefaultManifest = "pseudoc.yaml"

// Manifest is the on-disk build description for a project.
type Manifest struct {
	// OutputDir is where derived output paths are placed. Entries with an
	// explicit Out ignore it.
	OutputDir string `yaml:"output_dir,omitempty"`

	// Sources lists the files to compile, in order.
	Sources []Entry `yaml:"sources"`
}

// Entry names one source file and, optionally, an explicit output path.
type Entry struct {
	In  string `yaml:"in"`
	Out string `yaml:"out,omitempty"`
}

// ReadManifest loads a manifest from path.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// WriteManifest saves the manifest to path.
func WriteManifest(path string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Jobs resolves the manifest entries into compile jobs. Entries without an
// explicit output get one derived from the input name under OutputDir.
func (m *Manifest) Jobs() ([]transpile.Job, error) {
	jobs := make([]transpile.Job, 0, len(m.Sources))
	for i, e := range m.Sources {
		if e.In == "" {
			return nil, fmt.Errorf("manifest entry %d has no input file", i+1)
		}
		out := e.Out
		if out == "" {
			out = source.OutputPath(e.In, m.OutputDir)
		}
		jobs = append(jobs, transpile.Job{Input: e.In, Output: out})
	}
	return jobs, nil
}
