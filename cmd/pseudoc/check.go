package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pseudoc/internal/source"
	"github.com/pdiddy/pseudoc/internal/transpile"
)

var checkCmd = &cobra.Command{
	Use:   "check <input>...",
	Short: "Validate Pseudopseudocode files without writing output",
	Long: `Check converts each file and reports the result without writing any
Python output. Unrecognized lines and unbalanced blocks are reported with
their 1-based source line.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more source files")
	}

	failed := 0
	for _, path := range args {
		lines, err := source.ReadLines(path)
		if err != nil {
			fmt.Fprintf(os.Stdout, "failed:  %s (%v)\n", path, err)
			failed++
			continue
		}
		if _, err := transpile.Convert(lines); err != nil {
			fmt.Fprintf(os.Stdout, "failed:  %s (%v)\n", path, err)
			failed++
			continue
		}
		fmt.Fprintf(os.Stdout, "ok:      %s\n", path)
	}

	if failed > 0 {
		return fmt.Errorf("%d file(s) failed validation", failed)
	}
	return nil
}
