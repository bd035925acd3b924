package progress

import (
	"strings"
	"testing"
)

func TestRenderEmpty(t *testing.T) {
	out := Render(0, 4)
	if strings.Contains(out, "=") {
		t.Errorf("empty bar must have no filled cells: %q", out)
	}
	if !strings.Contains(out, "0%") {
		t.Errorf("expected 0%% in %q", out)
	}
	if !strings.Contains(out, "(0/4)") {
		t.Errorf("expected counter (0/4) in %q", out)
	}
}

func TestRenderFull(t *testing.T) {
	out := Render(4, 4)
	if !strings.Contains(out, strings.Repeat("=", BarWidth)) {
		t.Errorf("full bar must have %d filled cells: %q", BarWidth, out)
	}
	if strings.Contains(out, ">") {
		t.Errorf("full bar must have no head marker: %q", out)
	}
	if !strings.Contains(out, "100%") {
		t.Errorf("expected 100%% in %q", out)
	}
	if !strings.Contains(out, "(4/4)") {
		t.Errorf("expected counter (4/4) in %q", out)
	}
}

func TestRenderHalf(t *testing.T) {
	out := Render(2, 4)
	if !strings.Contains(out, strings.Repeat("=", BarWidth/2)+">") {
		t.Errorf("half bar should fill %d cells: %q", BarWidth/2, out)
	}
	if !strings.Contains(out, "50%") {
		t.Errorf("expected 50%% in %q", out)
	}
}

func TestRenderFixedWidth(t *testing.T) {
	// The bracketed bar section must have the same width at every step.
	width := func(s string) int {
		return strings.Index(s, "]") - strings.Index(s, "[")
	}
	base := width(Render(0, 7))
	for current := 1; current <= 7; current++ {
		if w := width(Render(current, 7)); w != base {
			t.Errorf("bar width changed at step %d: %d vs %d", current, w, base)
		}
	}
}

func TestRenderClampsOutOfRange(t *testing.T) {
	if out := Render(-3, 4); !strings.Contains(out, "(0/4)") {
		t.Errorf("negative current should clamp to 0: %q", out)
	}
	if out := Render(9, 4); !strings.Contains(out, "(4/4)") {
		t.Errorf("current above total should clamp to total: %q", out)
	}
}

func TestRenderUnbounded(t *testing.T) {
	// total <= 0 means an unbounded run; no division may occur.
	if out := Render(3, 0); out != "step 3" {
		t.Errorf("expected counter-only form, got %q", out)
	}
	if out := Render(12, -1); out != "step 12" {
		t.Errorf("expected counter-only form, got %q", out)
	}
}
