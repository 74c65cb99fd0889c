// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pseudoc CLI, a transpiler that
// turns Pseudopseudocode source files into Python.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pseudoc CLI.
var rootCmd = &cobra.Command{
	Use:   "pseudoc",
	Short: "Transpile Pseudopseudocode into Python",
	Long: `pseudoc converts Pseudopseudocode, a small line-oriented teaching
language, into equivalent Python source. Each input line maps to one output
line; block keywords (FUNC, IF, WHILE and their END counterparts) drive the
output indentation.

Use compile for a single file, build for every source in a project manifest,
and check to validate files without writing output.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ~/.config/pseudoc/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pseudoc"))
		}
	}

	viper.SetEnvPrefix("PSEUDOC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
