// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pseudoc/internal/history"
	"github.com/pdiddy/pseudoc/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent compile runs",
	Long: `History lists compile runs recorded in the local run database,
newest first. Recording happens during compile when history.dir is
configured (config file, PSEUDOC_HISTORY_DIR, or --history-dir).`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("history-dir", "", "directory holding the run database")
	historyCmd.Flags().Int("limit", 0, "maximum number of runs to list (default 20)")
	historyCmd.Flags().Bool("json", false, "output runs as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("history-dir")
	if dir == "" {
		dir = viper.GetString("history.dir")
	}
	if dir == "" {
		return fmt.Errorf("history is not configured: set history.dir or --history-dir")
	}

	cfg := types.HistoryConfig{
		Dir:        dir,
		MaxResults: viper.GetInt("history.max_results"),
	}
	store, err := history.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatHistoryOutput(runs, jsonOutput)
}

func formatHistoryOutput(runs []history.Run, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-9s  %-30s  %s\n", "When", "Status", "Input", "Error")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 80))
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%-20s  %-9s  %-30s  %s\n",
			r.CreatedAt.Local().Format(time.DateTime), r.Status, r.Input, r.Error)
	}
	return nil
}
