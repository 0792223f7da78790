package listview

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	header := []string{"ID", "Name", "Status"}
	records := [][]string{
		{"1", "Apples", "PENDING"},
		{"2", `Say "cheese"`, "DELIVERED"},
		{"3", "Cereal, assorted", "PENDING"},
	}
	if err := WriteCSV(&buf, header, records); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	if !strings.HasSuffix(out, "\r\n") {
		t.Fatal("missing CRLF terminator")
	}
	lines := strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n")
	if len(lines) != 4 {
		t.Fatalf("line count = %d", len(lines))
	}
	if lines[0] != `"ID","Name","Status"` {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[2] != `"2","Say ""cheese""","DELIVERED"` {
		t.Fatalf("quoted field = %q", lines[2])
	}
	if lines[3] != `"3","Cereal, assorted","PENDING"` {
		t.Fatalf("comma field = %q", lines[3])
	}
}

func TestExportCSV(t *testing.T) {
	res := &fakeResource{fetch: func(q Query) (Page[item], error) {
		return Page[item]{Rows: threeItems(), Total: 3}, nil
	}}
	lv := New[item](res, WithCSV[item](
		[]string{"ID", "Name"},
		func(i item) []string { return []string{i.RowID(), i.Name} },
	))
	var buf bytes.Buffer
	if err := lv.ExportCSV(context.Background(), &buf); err != nil {
		t.Fatalf("export: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\r\n"), "\r\n")
	if len(lines) != 4 {
		t.Fatalf("line count = %d", len(lines))
	}
	if lines[1] != `"1","Apples"` {
		t.Fatalf("row = %q", lines[1])
	}
}

func TestExportCSVNotConfigured(t *testing.T) {
	lv := New[item](&fakeResource{})
	if err := lv.ExportCSV(context.Background(), &bytes.Buffer{}); err != ErrExportNotConfigured {
		t.Fatalf("err = %v", err)
	}
}
