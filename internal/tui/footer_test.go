package tui

import (
	"strings"
	"testing"

	"github.com/benjaminbelloeil/CursiveWorld/internal/engine"
)

func TestRenderFooterFormats(t *testing.T) {
	m := &Model{
		pool:        []rune("abc"),
		session:     engine.NewSession('a', 320, 320),
		violations:  2,
		hasLast:     true,
		lastSeconds: 12.3,
		mastered:    map[string]struct{}{"a": {}},
	}
	out := m.renderFooter()
	if out == "" {
		t.Fatalf("expected footer output")
	}
	if !containsAll(out, []string{"Stroke 1/1", "Progress 0%", "Violations 2", "Last 12.3s", "Mastered 1/3"}) {
		t.Fatalf("footer missing expected segments: %s", out)
	}
}

func TestRenderFooterTruncatesToWidth(t *testing.T) {
	m := &Model{
		pool:     []rune("abc"),
		session:  engine.NewSession('a', 320, 320),
		width:    20,
		mastered: map[string]struct{}{},
	}
	out := m.renderFooter()
	if !strings.Contains(out, "…") {
		t.Fatalf("expected truncated footer, got: %s", out)
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
