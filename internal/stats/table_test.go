package stats

import (
	"strings"
	"testing"
)

func TestFormatTable(t *testing.T) {
	headers := []string{"Letter", "Attempts"}
	rows := [][]string{
		{"a", "12"},
		{"b", "3"},
	}
	lines := formatTable(headers, rows, map[int]bool{1: true})
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if lines[0] != "Letter  Attempts" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "------  --------" {
		t.Errorf("rule = %q", lines[1])
	}
	if lines[2] != "a             12" {
		t.Errorf("row = %q", lines[2])
	}
	if lines[3] != "b              3" {
		t.Errorf("row = %q", lines[3])
	}
}

func TestFormatTableWideCell(t *testing.T) {
	headers := []string{"L", "N"}
	rows := [][]string{{"longer-than-header", "1"}}
	lines := formatTable(headers, rows, nil)
	if !strings.HasPrefix(lines[2], "longer-than-header") {
		t.Errorf("row = %q", lines[2])
	}
	if len(lines[1]) < len("longer-than-header") {
		t.Errorf("rule should stretch to widest cell: %q", lines[1])
	}
}
