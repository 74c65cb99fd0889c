package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pseudoc/internal/history"
	"github.com/pdiddy/pseudoc/internal/source"
	"github.com/pdiddy/pseudoc/internal/transpile"
	"github.com/pdiddy/pseudoc/pkg/types"
)

var compileCmd = &cobra.Command{
	Use:   "compile <input> [output]",
	Short: "Compile a Pseudopseudocode file to Python",
	Long: `Compile reads a Pseudopseudocode file, converts it line by line, and
writes the generated Python to the output file. When the output path is
omitted it is derived from the input name (hello.ppc -> hello.py), placed
under --output-dir if set.

Conversion failures are reported with their 1-based source line and nothing
is written. With --write-errors the error text is written into the output
file instead, the way the classic tool behaved.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().String("output-dir", "", "directory for the derived output path when [output] is omitted")
	compileCmd.Flags().Bool("write-errors", false, "write conversion errors into the output file instead of failing")

	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	input := args[0]

	outputDir, _ := cmd.Flags().GetString("output-dir")
	if outputDir == "" {
		outputDir = viper.GetString("compile.output_dir")
	}
	writeErrors, _ := cmd.Flags().GetBool("write-errors")
	if !writeErrors {
		writeErrors = viper.GetBool("compile.write_errors")
	}

	output := source.OutputPath(input, outputDir)
	if len(args) == 2 {
		output = args[1]
	}

	fmt.Printf("Input file: %s\n", input)
	fmt.Printf("Output file: %s\n", output)
	defer fmt.Println("DONE!")

	lines, err := source.ReadLines(input)
	if err != nil {
		return err
	}

	job := transpile.Job{Input: input, Output: output}
	code, convErr := transpile.Convert(lines)
	if convErr != nil {
		recordRun(job, transpile.StatusFailed, convErr)
		if writeErrors {
			return source.WriteFile(output, convErr.Error()+"\n")
		}
		return convErr
	}

	if err := source.WriteFile(output, code); err != nil {
		return err
	}
	recordRun(job, transpile.StatusCompiled, nil)
	return nil
}

// recordRun appends the run to the history store when one is configured.
// History problems are warnings only; they never fail a compile.
func recordRun(job transpile.Job, status transpile.Status, convErr error) {
	cfg := types.HistoryConfig{
		Dir:        viper.GetString("history.dir"),
		MaxResults: viper.GetInt("history.max_results"),
	}
	if cfg.Dir == "" {
		return
	}

	store, err := history.NewStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		return
	}
	defer store.Close()

	if err := store.Record(context.Background(), history.NewRun(job, status, convErr)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: recording run: %v\n", err)
	}
}
