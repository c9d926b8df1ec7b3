package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Panel groups a titled dashboard section.
type Panel struct {
	title       string
	description string
	badge       *Badge
	emphasized  bool
}

// NewPanel creates a panel with a title.
func NewPanel(title string) *Panel {
	return &Panel{title: title}
}

// WithDescription sets the line under the title.
func (p *Panel) WithDescription(description string) *Panel {
	p.description = description
	return p
}

// WithBadge shows badge beside the title.
func (p *Panel) WithBadge(badge *Badge) *Panel {
	p.badge = badge
	return p
}

// Emphasized draws the panel with an accent border and roomier padding, for
// modal content.
func (p *Panel) Emphasized() *Panel {
	p.emphasized = true
	return p
}

// View renders the header, a blank line, then body.
func (p *Panel) View(t Theme, body ...string) string {
	header := t.Typography.Title.Render(p.title)
	if p.badge != nil {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, "  ", p.badge.View(t))
	}

	lines := []string{header}
	if p.description != "" {
		lines = append(lines, t.Typography.Muted.Render(p.description))
	}
	lines = append(lines, "")
	lines = append(lines, body...)

	return p.boxStyle(t).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (p *Panel) boxStyle(t Theme) lipgloss.Style {
	if p.emphasized {
		return AccentBorder(PalettePrimary)(lipgloss.NewStyle().Padding(1, 3), t)
	}
	return RoundedBorder(PaletteSurface)(lipgloss.NewStyle().Padding(0, 1).MarginRight(1), t)
}
