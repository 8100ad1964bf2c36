package main

import (
	"github.com/spf13/cobra"

	"github.com/gyeh/conclean/internal/config"
)

var (
	cfg        = config.Default()
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "conclean",
	Short: "UK consolidated sanctions list → cleaned CSV",
	Long: "Reads the consolidated sanctions list workbook (ConList.xlsx), assembles full names, " +
		"normalizes nationality and date of birth, drops duplicate rows and writes a sorted CSV.",
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfigFile,
	RunE:              runClean,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.FilePath, "file", cfg.FilePath, "Path to the consolidated list workbook")
	pf.StringVar(&cfg.Sheet, "sheet", "", "Worksheet to read (default: first sheet)")
	pf.IntVar(&cfg.HeaderRow, "header-row", cfg.HeaderRow, "Zero-based row holding column names")
	pf.StringVar(&configPath, "config", "", "Optional YAML config file")
	pf.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")

	f := rootCmd.Flags()
	f.StringVar(&cfg.OutputPath, "out", cfg.OutputPath, "Output file path")
	f.StringVar(&cfg.Format, "format", cfg.Format, "Output format: csv or parquet")
	f.BoolVar(&cfg.SkipChecks, "skip-checks", false, "Skip the built-in field-cleaning checks")
}

// loadConfigFile merges --config into cfg. Flags given on the command line
// take precedence over the file.
func loadConfigFile(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		return nil
	}
	flagged := cfg
	if err := cfg.LoadFromFile(configPath); err != nil {
		return err
	}

	fs := cmd.Flags()
	if fs.Changed("file") {
		cfg.FilePath = flagged.FilePath
	}
	if fs.Changed("sheet") {
		cfg.Sheet = flagged.Sheet
	}
	if fs.Changed("header-row") {
		cfg.HeaderRow = flagged.HeaderRow
	}
	if fs.Changed("out") {
		cfg.OutputPath = flagged.OutputPath
	}
	if fs.Changed("format") {
		cfg.Format = flagged.Format
	}
	return nil
}
