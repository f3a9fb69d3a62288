package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tatamilog/tatami/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// ClassTypePill returns a colored label for a class type; nil means any.
func ClassTypePill(classType *string) string {
	if classType == nil {
		return StyleDim.Render("any")
	}
	label := domain.ClassTypeLabel(*classType)
	switch *classType {
	case domain.ClassTypeBJJ, "nogi", "judo", "wrestling", "open_mat":
		return StyleBlue.Render(label)
	case domain.ClassTypeSC, "conditioning":
		return StyleRed.Render(label)
	case domain.ClassTypeMobility, "yoga":
		return StyleGreen.Render(label)
	default:
		return StyleFg.Render(label)
	}
}

// ClockLabel renders a stored "H:MM[:SS]" string as H:MM for display.
func ClockLabel(clock string) string {
	if i := strings.LastIndex(clock, ":"); i > strings.Index(clock, ":") {
		return clock[:i]
	}
	return clock
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}
