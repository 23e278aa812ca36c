package cli

import (
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	table := NewTable([]string{"Colour", "Ratio"})

	if table == nil {
		t.Fatal("NewTable returned nil")
	}
	if len(table.headers) != 2 {
		t.Errorf("Expected 2 headers, got %d", len(table.headers))
	}
	if table.padding != 2 {
		t.Errorf("Expected padding of 2, got %d", table.padding)
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Colour", "Ratio"})

	// Short rows are padded, long rows truncated.
	table.AddRow([]string{"#ffffff"})
	table.AddRow([]string{"#000000", "21.00", "extra"})

	if len(table.rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(table.rows))
	}
	if len(table.rows[0]) != 2 || table.rows[0][1] != "" {
		t.Errorf("short row not padded: %v", table.rows[0])
	}
	if len(table.rows[1]) != 2 {
		t.Errorf("long row not truncated: %v", table.rows[1])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"Colour", "Ratio"})
	table.AddRow([]string{"#ffffff", "1.00"})
	table.AddRow([]string{"#000000", "21.00"})

	output := table.Render()
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")

	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines (header, separator, 2 rows), got %d:\n%s", len(lines), output)
	}
	if !strings.HasPrefix(lines[0], "Colour") {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "---") {
		t.Errorf("separator line = %q", lines[1])
	}
	if !strings.Contains(lines[3], "#000000") || !strings.Contains(lines[3], "21.00") {
		t.Errorf("data line = %q", lines[3])
	}
}

func TestTableRenderEmptyHeaders(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("Render with no headers = %q, want empty", got)
	}
}

func TestTableRenderAlignsColumns(t *testing.T) {
	table := NewTable([]string{"A", "B"})
	table.AddRow([]string{"short", "x"})
	table.AddRow([]string{"a-much-longer-cell", "y"})

	lines := strings.Split(strings.TrimRight(table.Render(), "\n"), "\n")
	xCol := strings.Index(lines[2], "x")
	yCol := strings.Index(lines[3], "y")
	if xCol != yCol {
		t.Errorf("second column misaligned: %d vs %d\n%s", xCol, yCol, table.Render())
	}
}
