package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ReplayLine is one replayed step as shown to the user.
type ReplayLine struct {
	Index   int
	Action  string
	Detail  string
	Active  string
	Buffer  string
	Visible bool
}

// ReplayRenderer renders scenario replay results.
type ReplayRenderer struct {
	theme *Theme
}

// NewReplayRenderer creates a new replay renderer with the given theme.
func NewReplayRenderer(theme *Theme) *ReplayRenderer {
	return &ReplayRenderer{theme: theme}
}

// RenderSteps renders one line per replayed step.
func (r *ReplayRenderer) RenderSteps(name string, lines []ReplayLine) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s\n\n", r.theme.Title.Render(name)))

	for _, l := range lines {
		keypad := r.theme.Subtle.Render("hidden")
		if l.Visible {
			keypad = r.theme.Highlight.Render("shown")
		}
		active := l.Active
		if active == "" {
			active = "-"
		}
		sb.WriteString(fmt.Sprintf("  %3d  %-18s %-8s %-10s %q\n",
			l.Index,
			strings.TrimSpace(l.Action+" "+l.Detail),
			keypad,
			active,
			l.Buffer,
		))
	}
	return sb.String()
}

// RenderResult renders the final field values and any problems found.
func (r *ReplayRenderer) RenderResult(keys []string, values map[string]string, problems []string) string {
	var sb strings.Builder

	sb.WriteString("\n  Fields:\n")
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("    %s %s\n", r.theme.Highlight.Render(k), r.theme.Normal.Render(values[k])))
	}

	if len(problems) == 0 {
		icon := lipgloss.NewStyle().Foreground(r.theme.Success).Render(IconCheck)
		sb.WriteString(fmt.Sprintf("\n  %s Replay passed\n", icon))
		return sb.String()
	}

	icon := lipgloss.NewStyle().Foreground(r.theme.Error).Render(IconX)
	sb.WriteString(fmt.Sprintf("\n  %s Replay failed (%d):\n", icon, len(problems)))
	for _, p := range problems {
		sb.WriteString(fmt.Sprintf("    %s %s\n", r.theme.WarningStyle.Render(IconWarning), p))
	}
	return sb.String()
}
