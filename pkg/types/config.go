package types

// CompileConfig holds settings for single-file compilation.
type CompileConfig struct {
	// OutputDir is where derived output paths are placed when no explicit
	// output is given (default: alongside the input).
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`

	// WriteErrors writes the conversion error text into the output file
	// instead of reporting it, matching the classic tool behavior.
	WriteErrors bool `json:"write_errors" yaml:"write_errors"`
}

// ProjectConfig holds settings for manifest-driven builds.
type ProjectConfig struct {
	// Manifest is the path to the build manifest (default "pseudoc.yaml").
	Manifest string `json:"manifest,omitempty" yaml:"manifest,omitempty"`
}

// HistoryConfig holds settings for the compile run history.
type HistoryConfig struct {
	// Dir is the directory holding the history database. Empty disables
	// run recording.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`

	// MaxResults is the default number of runs listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Config groups all tool configuration.
type Config struct {
	Compile CompileConfig `json:"compile" yaml:"compile"`
	Project ProjectConfig `json:"project" yaml:"project"`
	History HistoryConfig `json:"history" yaml:"history"`
}
