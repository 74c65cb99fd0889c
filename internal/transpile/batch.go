// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transpile

import (
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/pseudoc/internal/source"
)

// Status is the outcome of one compile job.
type Status string

const (
	StatusCompiled Status = "compiled"
	StatusSkipped  Status = "skipped"
	StatusFailed   Status = "failed"
)

// Job pairs one input file with its output path.
type Job struct {
	Input  string
	Output string
}

// BatchResult holds the outcome of a batch compile run.
type BatchResult struct {
	Compiled int
	Skipped  int
	Failed   int
}

// Total returns the total number of jobs processed.
func (r BatchResult) Total() int {
	return r.Compiled + r.Skipped + r.Failed
}

// HasFailures reports whether any job failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// CompileFile compiles a single job, writing a per-file status line to w.
// Jobs whose output is at least as new as the input are skipped.
func CompileFile(job Job, w io.Writer) Status {
	inInfo, err := os.Stat(job.Input)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", job.Input, err)
		return StatusFailed
	}
	if outInfo, err := os.Stat(job.Output); err == nil && !outInfo.ModTime().Before(inInfo.ModTime()) {
		fmt.Fprintf(w, "skipped: %s (up to date)\n", job.Input)
		return StatusSkipped
	}

	lines, err := source.ReadLines(job.Input)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", job.Input, err)
		return StatusFailed
	}

	code, err := Convert(lines)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", job.Input, err)
		return StatusFailed
	}

	if err := source.WriteFile(job.Output, code); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", job.Input, err)
		return StatusFailed
	}

	fmt.Fprintf(w, "compiled: %s -> %s\n", job.Input, job.Output)
	return StatusCompiled
}

// CompileBatch processes jobs in order, printing per-file status to w and
// returning a summary. A failing job does not stop the batch.
func CompileBatch(jobs []Job, w io.Writer) BatchResult {
	var result BatchResult
	for _, job := range jobs {
		switch CompileFile(job, w) {
		case StatusCompiled:
			result.Compiled++
		case StatusSkipped:
			result.Skipped++
		case StatusFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d compiled, %d skipped, %d failed (total: %d)\n",
		result.Compiled, result.Skipped, result.Failed, result.Total())
	return result
}
