package export

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/gyeh/conclean/internal/model"
)

// WriteFunc serializes a table to w.
type WriteFunc func(w io.Writer, t *model.Table) error

// Writer returns the serializer for format ("csv" or "parquet").
func Writer(format string) (WriteFunc, error) {
	switch format {
	case "csv", "":
		return WriteCSV, nil
	case "parquet":
		return WriteParquet, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// WriteFile serializes t in format to path. The data goes to a pending file
// in the same directory and atomically replaces path on success, so a failed
// run never leaves a truncated output behind.
func WriteFile(path, format string, t *model.Table) error {
	write, err := Writer(format)
	if err != nil {
		return err
	}
	return writeAtomic(path, write, t)
}

func writeAtomic(path string, write WriteFunc, t *model.Table) error {
	pf, err := renameio.NewPendingFile(path,
		renameio.WithTempDir(filepath.Dir(path)),
		renameio.WithPermissions(0644),
	)
	if err != nil {
		return fmt.Errorf("create pending output: %w", err)
	}
	defer pf.Cleanup()

	if err := write(pf, t); err != nil {
		return err
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace output: %w", err)
	}
	return nil
}
