package main

import (
	"reflect"
	"testing"

	"github.com/gyeh/conclean/internal/testfixture"
)

func TestExpand(t *testing.T) {
	wb := testfixture.SampleConList()
	rows := expand(wb, 25, 10)
	if len(rows) != 25 {
		t.Fatalf("expected 25 rows, got %d", len(rows))
	}
	if !reflect.DeepEqual(rows[10], rows[9]) || !reflect.DeepEqual(rows[20], rows[19]) {
		t.Error("expected duplicates at every 10th row")
	}
	if !reflect.DeepEqual(rows[0], wb.Rows[0]) {
		t.Error("first pass should copy sample rows verbatim")
	}
}

func TestExpand_NoDuplicates(t *testing.T) {
	wb := testfixture.SampleConList()
	rows := expand(wb, 12, 0)
	if len(rows) != 12 {
		t.Fatalf("expected 12 rows, got %d", len(rows))
	}
	// Second pass tags Name 6 so it no longer equals the first pass.
	if reflect.DeepEqual(rows[0], rows[len(wb.Rows)]) {
		t.Error("second pass should differ from first")
	}
}
