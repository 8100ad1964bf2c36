package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "json", "info")
	log.Info().Str("file", "ConList.xlsx").Msg("loading workbook")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("not JSON: %v: %s", err, buf.String())
	}
	if entry["message"] != "loading workbook" || entry["file"] != "ConList.xlsx" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "json", "warn")
	log.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level: %s", buf.String())
	}

	buf.Reset()
	log = New(&buf, "text", "bogus")
	log.Info().Msg("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("unknown level should fall back to info: %q", buf.String())
	}
}
