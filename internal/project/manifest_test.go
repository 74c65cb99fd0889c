// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pseudoc/internal/transpile"
)

func TestManifestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pseudoc.yaml")
	m := &Manifest{
		OutputDir: "build",
		Sources: []Entry{
			{In: "src/hello.ppc"},
			{In: "src/fib.ppc", Out: "out/fibonacci.py"},
		},
	}

	require.NoError(t, WriteManifest(path, m))

	got, err := ReadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestReadManifest_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pseudoc.yaml")
	doc := `output_dir: build
sources:
  - in: examples/hello.ppc
  - in: examples/loop.ppc
    out: dist/loop.py
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	m, err := ReadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "build", m.OutputDir)
	require.Len(t, m.Sources, 2)
	assert.Equal(t, "examples/hello.ppc", m.Sources[0].In)
	assert.Equal(t, "dist/loop.py", m.Sources[1].Out)
}

func TestReadManifest_Missing(t *testing.T) {
	_, err := ReadManifest(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestReadManifest_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pseudoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sources: [unterminated"), 0o644))

	_, err := ReadManifest(path)
	assert.Error(t, err)
}

func TestManifestJobs(t *testing.T) {
	m := &Manifest{
		OutputDir: "build",
		Sources: []Entry{
			{In: filepath.Join("src", "hello.ppc")},
			{In: filepath.Join("src", "fib.ppc"), Out: filepath.Join("out", "fibonacci.py")},
		},
	}

	jobs, err := m.Jobs()
	require.NoError(t, err)
	assert.Equal(t, []transpile.Job{
		{Input: filepath.Join("src", "hello.ppc"), Output: filepath.Join("build", "hello.py")},
		{Input: filepath.Join("src", "fib.ppc"), Output: filepath.Join("out", "fibonacci.py")},
	}, jobs)
}

func TestManifestJobs_MissingInput(t *testing.T) {
	m := &Manifest{Sources: []Entry{{Out: "out.py"}}}

	_, err := m.Jobs()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 1")
}
