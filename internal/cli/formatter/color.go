package formatter

import (
	"strings"

	"github.com/alexanderramin/crewshift/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Site palette: hi-vis accent, signal colors for state, muted for chrome.
var (
	ColorAccent = lipgloss.Color("#ff8c1a")
	ColorOK     = lipgloss.Color("#7fb069")
	ColorWarn   = lipgloss.Color("#f2c14e")
	ColorStop   = lipgloss.Color("#e4572e")
	ColorInfo   = lipgloss.Color("#76b1c9")
	ColorMuted  = lipgloss.Color("#8a8a80")
	ColorText   = lipgloss.Color("#e8e4d8")
)

var (
	StyleOK     = lipgloss.NewStyle().Foreground(ColorOK)
	StyleWarn   = lipgloss.NewStyle().Foreground(ColorWarn)
	StyleStop   = lipgloss.NewStyle().Foreground(ColorStop)
	StyleInfo   = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleMuted  = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleText   = lipgloss.NewStyle().Foreground(ColorText)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	StyleBold   = StyleText.Bold(true)
)

type pill struct {
	style lipgloss.Style
	label string
}

var statusPills = map[domain.ProjectStatus]pill{
	domain.ProjectActive:    {StyleOK, "● Active"},
	domain.ProjectOnHold:    {StyleWarn, "◐ On hold"},
	domain.ProjectCompleted: {StyleMuted, "✔ Completed"},
	domain.ProjectArchived:  {StyleMuted, "▪ Archived"},
}

// StatusPill renders a project status as a colored marker and label.
func StatusPill(status domain.ProjectStatus) string {
	p, ok := statusPills[status]
	if !ok {
		return StyleMuted.Render(string(status))
	}
	return p.style.Render(p.label)
}

// Header renders an upper-cased section title over a muted rule of the
// same width.
func Header(text string) string {
	title := strings.ToUpper(text)
	return StyleHeader.Render(title) + "\n" + StyleMuted.Render(strings.Repeat("─", lipgloss.Width(title)))
}

func Dim(text string) string { return StyleMuted.Render(text) }

func Bold(text string) string { return StyleBold.Render(text) }
