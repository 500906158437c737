package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gonewx/starfall/pkg/storage"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "-"},
		{1500, "0:01.500"},
		{61001, "1:01.001"},
		{57000, "0:57.000"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.ms); got != tt.want {
			t.Errorf("formatDuration(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestRenderStats(t *testing.T) {
	var buf bytes.Buffer
	renderStats(&buf, nil)
	if !strings.Contains(buf.String(), "No runs recorded yet.") {
		t.Errorf("unexpected empty output: %q", buf.String())
	}

	buf.Reset()
	renderStats(&buf, []storage.LevelStats{
		{Level: 1, Attempts: 3, Wins: 1, Defeats: 2, BestTimeMs: 57000},
		{Level: 2, Attempts: 1, Defeats: 1},
	})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "Attempts") {
		t.Errorf("header missing: %q", lines[0])
	}
	if !strings.Contains(lines[1], "0:57.000") {
		t.Errorf("best time missing: %q", lines[1])
	}
	if !strings.Contains(lines[2], "-") {
		t.Errorf("uncleared level should show '-': %q", lines[2])
	}
}
