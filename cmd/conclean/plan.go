package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gyeh/conclean/internal/clean"
	"github.com/gyeh/conclean/internal/exitcode"
	"github.com/gyeh/conclean/internal/logging"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and stats (no writes)",
	Args:  cobra.NoArgs,
	RunE:  runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	stat, err := os.Stat(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to stat file")
		os.Exit(exitcode.ValidationError)
	}

	summary, err := clean.Plan(context.Background(), log, &cfg)
	if err != nil {
		log.Error().Err(err).Msg("plan failed")
		os.Exit(exitcode.LoadError)
	}

	missing := joinOrNone(summary.MissingColumns)
	missingNames := joinOrNone(summary.MissingNameColumns)

	// Print report
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "=== conclean plan ===")
	fmt.Fprintf(w, "File:        %s\n", summary.FilePath)
	fmt.Fprintf(w, "SHA-256:     %s\n", summary.FileSHA256)
	fmt.Fprintf(w, "Size:        %d bytes\n", stat.Size())
	fmt.Fprintf(w, "Sheet:       %s\n", summary.Sheet)
	fmt.Fprintf(w, "Rows read:   %d (%d blank skipped)\n", summary.RowsRead, summary.RowsBlank)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Output columns:  %s\n", strings.Join(summary.Columns, ", "))
	fmt.Fprintf(w, "Missing columns: %s\n", missing)
	fmt.Fprintf(w, "Missing names:   %s\n", missingNames)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Unique rows:       %d\n", summary.RowsWritten)
	fmt.Fprintf(w, "Duplicates:        %d\n", summary.DuplicatesDropped)
	fmt.Fprintf(w, "Empty names:       %d\n", summary.EmptyNames)
	fmt.Fprintf(w, "Unparseable DOBs:  %d\n", summary.DOBParseFailures)

	return nil
}

func joinOrNone(cols []string) string {
	if len(cols) == 0 {
		return "none"
	}
	return strings.Join(cols, ", ")
}
