package utils

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := WriteCSV(&buf,
		[]string{"id", "name", "email"},
		[][]string{
			{"1", "Ana Clara", "ana.clara@email.com"},
			{"2", "Costa, Beatriz", "beatriz.costa@email.com"},
		},
	)
	if err != nil {
		t.Fatalf("write csv: %v", err)
	}

	got := buf.String()
	lines := strings.Split(strings.TrimSuffix(got, "\r\n"), "\r\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 CRLF rows, got %q", got)
	}
	if lines[0] != "id,name,email" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[2], `"Costa, Beatriz"`) {
		t.Fatalf("field with comma should be quoted: %q", lines[2])
	}
}

func TestWriteCSVEmptyInput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := WriteCSV(&buf, []string{"id"}, nil)
	if !errors.Is(err, ErrNoExportData) {
		t.Fatalf("expected ErrNoExportData, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("no output expected for empty export, got %q", buf.String())
	}
}

func TestExportFilename(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 7, 28, 15, 0, 0, 0, time.UTC)
	if got := ExportFilename("clients", now); got != "clients-2024-07-28.csv" {
		t.Fatalf("unexpected filename: %q", got)
	}
}
