package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderGoalBar renders a session-count bar like [██████░░░░] 2/3.
// Green once the target is met, yellow past the halfway mark, red below.
func RenderGoalBar(actual, target, width int) string {
	if target < 1 {
		target = 1
	}
	if actual < 0 {
		actual = 0
	}
	if width < 2 {
		width = 2
	}

	filled := actual * width / target
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleRed
	switch {
	case actual >= target:
		style = StyleGreen
	case actual*2 >= target:
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %d/%d", style.Render(bar), actual, target)
}
