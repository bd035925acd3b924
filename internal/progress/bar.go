package progress

import (
	"fmt"
	"strings"
)

// BarWidth is the number of cells in the rendered bar.
const BarWidth = 40

// Render returns a fixed-width progress bar for step current of total, with
// a percentage and a current/total counter. It is a pure function of its
// arguments. A total of zero or less renders a counter-only line for
// unbounded runs.
func Render(current, total int) string {
	if total <= 0 {
		return fmt.Sprintf("step %d", current)
	}
	if current < 0 {
		current = 0
	}
	if current > total {
		current = total
	}

	filled := BarWidth * current / total
	bar := strings.Repeat("=", filled)
	if filled < BarWidth {
		bar += ">" + strings.Repeat(" ", BarWidth-filled-1)
	}

	percent := float64(current) / float64(total) * 100
	return fmt.Sprintf("[%s] %3.0f%% (%d/%d)", bar, percent, current, total)
}
