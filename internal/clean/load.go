package clean

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/conclean/internal/model"
	"github.com/gyeh/conclean/internal/normalize"
	"github.com/gyeh/conclean/internal/xlsxread"
)

// LoadResult holds everything read from the source workbook.
type LoadResult struct {
	// FilePath is the workbook path as given.
	FilePath string
	// FileSHA256 is the hex-encoded digest of the workbook bytes.
	FileSHA256 string
	// Sheet is the worksheet that was read.
	Sheet string
	// Header lists the non-blank column names in sheet order.
	Header []string
	// Report tells which allow-list and name columns the header provides.
	Report xlsxread.HeaderReport
	// Records are the non-blank rows below the header.
	Records []model.RawRecord
	// BlankRows counts skipped empty rows.
	BlankRows int64
	Duration  time.Duration
}

// Load hashes and reads the workbook at path. A missing or unreadable
// workbook is an error; missing columns are only logged.
func Load(ctx context.Context, log zerolog.Logger, path, sheet string, headerRow int) (*LoadResult, error) {
	start := time.Now()

	sha, err := normalize.FileHash(path)
	if err != nil {
		return nil, fmt.Errorf("load hash: %w", err)
	}

	r, err := xlsxread.Open(path, sheet, headerRow)
	if err != nil {
		return nil, fmt.Errorf("load workbook: %w", err)
	}
	defer r.Close()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	header := r.Header()
	rep := xlsxread.ValidateHeader(header)
	if len(rep.Missing) > 0 {
		log.Info().Strs("columns", rep.Missing).Msg("allow-list columns absent from source, skipping")
	}
	if !rep.HasNames() {
		log.Warn().Msg("no name columns in source; Full Name will be empty")
	}

	res := &LoadResult{
		FilePath:   path,
		FileSHA256: sha,
		Sheet:      r.Sheet(),
		Header:     header,
		Report:     rep,
		Records:    r.Records(),
		BlankRows:  r.BlankRows(),
		Duration:   time.Since(start),
	}

	log.Info().
		Str("sha256", sha).
		Str("sheet", res.Sheet).
		Int("columns", len(header)).
		Int("rows", len(res.Records)).
		Int64("blank_rows", res.BlankRows).
		Dur("duration", res.Duration).
		Msg("workbook loaded")

	return res, nil
}
