package listview

import (
	"context"
	"io"
	"strings"
)

// WriteCSV writes records under a fixed header. Every field is quoted,
// fields are comma-separated and lines end with CRLF, matching the files the
// export buttons produce.
func WriteCSV(w io.Writer, header []string, records [][]string) error {
	if err := writeCSVLine(w, header); err != nil {
		return err
	}
	for _, rec := range records {
		if err := writeCSVLine(w, rec); err != nil {
			return err
		}
	}
	return nil
}

func writeCSVLine(w io.Writer, fields []string) error {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteString("\r\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// ExportCSV fetches the full filtered set and writes it as CSV using the
// column layout configured with WithCSV. Pagination state is not disturbed.
func (l *ListView[T]) ExportCSV(ctx context.Context, w io.Writer) error {
	l.mu.Lock()
	header, record := l.csvHeader, l.csvRecord
	l.mu.Unlock()
	if len(header) == 0 || record == nil {
		return ErrExportNotConfigured
	}
	rows, err := l.ExportAll(ctx)
	if err != nil {
		return err
	}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, record(r))
	}
	return WriteCSV(w, header, records)
}
