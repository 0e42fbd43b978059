package utils

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"
)

// ErrNoExportData signals that an export was requested over an empty
// collection; callers surface it instead of producing an empty file.
var ErrNoExportData = errors.New("no data to export")

// WriteCSV renders one header row plus one row per record, CRLF-joined,
// with RFC 4180 quoting.
func WriteCSV(w io.Writer, header []string, rows [][]string) error {
	if len(rows) == 0 {
		return ErrNoExportData
	}

	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ExportFilename names a download like "clients-2024-07-28.csv".
func ExportFilename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%s.csv", prefix, now.Format("2006-01-02"))
}
