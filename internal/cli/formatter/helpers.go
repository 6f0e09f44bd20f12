package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorMuted).
	Padding(1, 2)

// RenderBox frames content in a rounded border. A non-empty title is
// printed upper-cased above the content.
func RenderBox(title, content string) string {
	content = strings.TrimRight(content, "\n")
	if title == "" {
		return boxStyle.Render(content)
	}
	return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// TruncID shortens a UUID to 8 characters for tables.
func TruncID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// field renders one "LABEL  value" line of a detail card.
func field(label, value string) string {
	return StyleMuted.Render(label) + "  " + value + "\n"
}
