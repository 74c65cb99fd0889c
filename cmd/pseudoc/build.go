package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pseudoc/internal/project"
	"github.com/pdiddy/pseudoc/internal/transpile"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile every source in the project manifest",
	Long: `Build reads the project manifest (pseudoc.yaml by default), compiles
each listed source, and prints a per-file status line plus a summary.
Sources whose output is already up to date are skipped.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("manifest", "", "path to the project manifest (default pseudoc.yaml)")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	manifest, _ := cmd.Flags().GetString("manifest")
	if manifest == "" {
		manifest = viper.GetString("project.manifest")
	}
	if manifest == "" {
		manifest = project.DefaultManifest
	}

	m, err := project.ReadManifest(manifest)
	if err != nil {
		return err
	}
	jobs, err := m.Jobs()
	if err != nil {
		return err
	}

	result := transpile.CompileBatch(jobs, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed compilation", result.Failed)
	}
	return nil
}
