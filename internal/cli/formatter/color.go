package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tatamilog/tatami/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle returns the accent style for a daily status kind.
func StatusStyle(kind domain.StatusKind) lipgloss.Style {
	switch kind {
	case domain.StatusTrainedPlanned, domain.StatusTrained:
		return StyleGreen
	case domain.StatusUpcoming:
		return StyleBlue
	case domain.StatusGoalNudge:
		return StyleYellow
	case domain.StatusMissed:
		return StyleDim
	case domain.StatusIntention:
		return StylePurple
	default:
		return StyleFg
	}
}

// StatusGlyph maps an icon kind to its terminal glyph.
func StatusGlyph(icon domain.IconKind) string {
	switch icon {
	case domain.IconCheck:
		return "✔"
	case domain.IconFlame:
		return "▲"
	case domain.IconClock:
		return "◷"
	case domain.IconTarget:
		return "◎"
	case domain.IconMoon:
		return "☾"
	case domain.IconCompass:
		return "➤"
	default:
		return "●"
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
