package model

import "time"

// RunSummary captures metrics from a single cleaning run.
type RunSummary struct {
	RunID              string
	FilePath           string
	FileSHA256         string
	OutputPath         string
	Sheet              string
	Columns            []string
	MissingColumns     []string
	MissingNameColumns []string
	RowsRead           int64
	RowsBlank          int64
	RowsWritten        int64
	DuplicatesDropped  int64
	EmptyNames         int64
	DOBParseFailures   int64
	DurationLoad       time.Duration
	DurationTransform  time.Duration
	DurationWrite      time.Duration
	DurationTotal      time.Duration
}
