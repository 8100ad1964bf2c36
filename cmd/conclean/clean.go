package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/conclean/internal/clean"
	"github.com/gyeh/conclean/internal/exitcode"
	"github.com/gyeh/conclean/internal/logging"
	"github.com/gyeh/conclean/internal/selfcheck"
)

func runClean(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := context.Background()

	if !cfg.SkipChecks {
		if err := selfcheck.Run(); err != nil {
			log.Error().Err(err).Msg("self-checks failed")
			os.Exit(exitcode.SelfCheckError)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All tests passed.")
	}

	if err := cfg.ValidateWithOutput(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.ValidationError)
	}

	summary, err := clean.Run(ctx, log, &cfg)
	if err != nil {
		var pe *clean.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("clean failed")
			switch pe.Phase {
			case clean.PhaseLoad:
				os.Exit(exitcode.LoadError)
			case clean.PhaseWrite:
				os.Exit(exitcode.WriteError)
			default:
				os.Exit(exitcode.TransformError)
			}
		}
		log.Error().Err(err).Msg("clean failed")
		os.Exit(exitcode.TransformError)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Sanctions list cleaned and saved as:", summary.OutputPath)
	return nil
}
