package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("input: list.xlsx\noutput: out.parquet\nsheet: ConList\nheader_row: 2\nformat: parquet\n"), 0644)

	c := Default()
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.FilePath != "list.xlsx" || c.OutputPath != "out.parquet" {
		t.Errorf("unexpected paths: %q %q", c.FilePath, c.OutputPath)
	}
	if c.Sheet != "ConList" || c.HeaderRow != 2 || c.Format != FormatParquet {
		t.Errorf("unexpected options: %+v", c)
	}
}

func TestLoadFromFile_PartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("sheet: Other\n"), 0644)

	c := Default()
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.FilePath != DefaultInput || c.OutputPath != DefaultOutput || c.HeaderRow != DefaultHeaderRow {
		t.Errorf("defaults overwritten: %+v", c)
	}
	if c.Sheet != "Other" {
		t.Errorf("Sheet = %q", c.Sheet)
	}
}

func TestLoadFromFile_HeaderRowZero(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("header_row: 0\n"), 0644)

	c := Default()
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.HeaderRow != 0 {
		t.Errorf("HeaderRow = %d, want 0", c.HeaderRow)
	}
}

func TestLoadFromFile_UnknownFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("format: xml\n"), 0644)

	c := Default()
	if err := c.LoadFromFile(path); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	c := Default()
	err := c.LoadFromFile("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "ConList.xlsx")
	os.WriteFile(in, []byte("x"), 0644)

	c := Default()
	c.FilePath = in
	if err := c.ValidateWithOutput(); err != nil {
		t.Fatalf("ValidateWithOutput: %v", err)
	}

	c.OutputPath = ""
	if err := c.ValidateWithOutput(); err == nil {
		t.Error("expected error for empty output")
	}

	c.FilePath = filepath.Join(dir, "missing.xlsx")
	if err := c.Validate(); err == nil {
		t.Error("expected error for missing input")
	}

	c.FilePath = ""
	if err := c.Validate(); err == nil {
		t.Error("expected error for empty input")
	}
}
