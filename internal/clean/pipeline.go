package clean

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/conclean/internal/config"
	"github.com/gyeh/conclean/internal/export"
	"github.com/gyeh/conclean/internal/model"
)

// Pipeline phases, reported in PipelineError.
const (
	PhaseLoad      = "load"
	PhaseTransform = "transform"
	PhaseWrite     = "write"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full pipeline: load → transform → project/dedupe/sort →
// write. The output file is only replaced when every phase succeeds.
func Run(ctx context.Context, log zerolog.Logger, cfg *config.Config) (*model.RunSummary, error) {
	return run(ctx, log, cfg, true)
}

// Plan runs every phase except write and reports what Run would produce.
func Plan(ctx context.Context, log zerolog.Logger, cfg *config.Config) (*model.RunSummary, error) {
	return run(ctx, log, cfg, false)
}

func run(ctx context.Context, log zerolog.Logger, cfg *config.Config, write bool) (*model.RunSummary, error) {
	totalStart := time.Now()
	runID := uuid.New()
	log = log.With().Str("run_id", runID.String()).Logger()

	// Phase 1: Load
	log.Info().Str("file", cfg.FilePath).Int("header_row", cfg.HeaderRow).Msg("loading workbook")
	ld, err := Load(ctx, log, cfg.FilePath, cfg.Sheet, cfg.HeaderRow)
	if err != nil {
		return nil, &PipelineError{Phase: PhaseLoad, Err: err}
	}

	// Phase 2: Transform, project, dedupe, sort
	if err := ctx.Err(); err != nil {
		return nil, &PipelineError{Phase: PhaseTransform, Err: err}
	}
	transformStart := time.Now()
	cleaned, stats := Transform(ld.Records)
	columns := model.ProjectColumns(ld.Header)
	table, dropped := Project(cleaned, columns)
	transformDur := time.Since(transformStart)

	log.Info().
		Int("rows_in", len(cleaned)).
		Int("rows_out", len(table.Rows)).
		Int64("duplicates", dropped).
		Int64("dob_failures", stats.DOBParseFailures).
		Int64("empty_names", stats.EmptyNames).
		Strs("columns", columns).
		Dur("duration", transformDur).
		Msg("transform complete")

	summary := &model.RunSummary{
		RunID:              runID.String(),
		FilePath:           ld.FilePath,
		FileSHA256:         ld.FileSHA256,
		Sheet:              ld.Sheet,
		Columns:            columns,
		MissingColumns:     ld.Report.Missing,
		MissingNameColumns: ld.Report.MissingFragments,
		RowsRead:           int64(len(ld.Records)),
		RowsBlank:          ld.BlankRows,
		RowsWritten:        int64(len(table.Rows)),
		DuplicatesDropped:  dropped,
		EmptyNames:         stats.EmptyNames,
		DOBParseFailures:   stats.DOBParseFailures,
		DurationLoad:       ld.Duration,
		DurationTransform:  transformDur,
	}

	if !write {
		summary.DurationTotal = time.Since(totalStart)
		return summary, nil
	}

	// Phase 3: Write
	if err := ctx.Err(); err != nil {
		return nil, &PipelineError{Phase: PhaseWrite, Err: err}
	}
	writeStart := time.Now()
	if err := export.WriteFile(cfg.OutputPath, cfg.Format, table); err != nil {
		return nil, &PipelineError{Phase: PhaseWrite, Err: err}
	}
	summary.OutputPath = cfg.OutputPath
	summary.DurationWrite = time.Since(writeStart)
	summary.DurationTotal = time.Since(totalStart)

	log.Info().
		Str("output", cfg.OutputPath).
		Str("format", cfg.Format).
		Int64("rows_written", summary.RowsWritten).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("clean pipeline complete")

	return summary, nil
}
