package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// ScreenSummary is one configured screen as listed by config status.
type ScreenSummary struct {
	Name    string
	Title   string
	Fields  []string
	Default bool
}

// RenderStatus renders the config file path and its screens.
func (r *ConfigRenderer) RenderStatus(path string, step float64, screens []ScreenSummary) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	pathStyle := r.theme.Subtle

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		"\n  %s Config %s\n  %s Config is valid\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
		iconStyle.Render(IconCheck),
	))
	sb.WriteString(fmt.Sprintf("\n  Increment step: %s\n", r.theme.Highlight.Render(strconv.FormatFloat(step, 'f', -1, 64))))
	sb.WriteString(fmt.Sprintf("\n  Screens (%d):\n", len(screens)))

	for _, s := range screens {
		name := r.theme.Highlight.Render(s.Name)
		if s.Default {
			name += r.theme.Subtle.Render(" (default)")
		}
		sb.WriteString(fmt.Sprintf(
			"    %s %s\n      %s\n",
			lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconCursor),
			name,
			r.theme.Subtle.Render(strings.Join(s.Fields, " "+IconArrow+" ")),
		))
	}
	return sb.String()
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
