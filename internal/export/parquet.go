package export

import (
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/conclean/internal/model"
)

const parquetBatchSize = 1024

// WriteParquet writes t using the fixed ParquetRecord schema. Columns that
// are not part of t are written as nulls.
func WriteParquet(w io.Writer, t *model.Table) error {
	pw := parquet.NewGenericWriter[model.ParquetRecord](w)

	buf := make([]model.ParquetRecord, 0, parquetBatchSize)
	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if _, err := pw.Write(buf); err != nil {
			return fmt.Errorf("write parquet rows: %w", err)
		}
		buf = buf[:0]
		return nil
	}

	for _, row := range t.Rows {
		buf = append(buf, model.ToParquetRecord(t.Columns, row))
		if len(buf) == parquetBatchSize {
			if err := flush(); err != nil {
				pw.Close()
				return err
			}
		}
	}
	if err := flush(); err != nil {
		pw.Close()
		return err
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return nil
}
