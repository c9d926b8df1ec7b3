package components

import (
	"github.com/charmbracelet/lipgloss"
)

// CardStyles are the styles a KPI card is drawn with.
type CardStyles struct {
	Box      lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Positive lipgloss.Style
	Negative lipgloss.Style
	Caption  lipgloss.Style
}

// CardStylesFor derives KPI card styles from t.
func CardStylesFor(t Theme) CardStyles {
	return CardStyles{
		Box:      RoundedBorder(PaletteSurface)(lipgloss.NewStyle().Padding(0, 1).MarginRight(1), t),
		Label:    t.Typography.Eyebrow,
		Value:    t.Typography.Title,
		Positive: Foreground(PaletteSuccess)(lipgloss.NewStyle(), t),
		Negative: Foreground(PaletteDanger)(lipgloss.NewStyle(), t),
		Caption:  t.Typography.Muted,
	}
}

// CardData is the formatted content of a KPI card.
type CardData struct {
	Label    string
	Value    string
	Arrow    string
	Change   string
	Caption  string
	Positive bool
}

// Card renders a KPI tile.
type Card struct {
	data   CardData
	styles CardStyles
}

// NewCard creates a card component.
func NewCard(data CardData, styles CardStyles) Card {
	return Card{data: data, styles: styles}
}

// View renders the card.
func (c Card) View() string {
	change := c.styles.Negative
	if c.data.Positive {
		change = c.styles.Positive
	}
	delta := change.Render(c.data.Arrow + " " + c.data.Change)

	body := lipgloss.JoinVertical(lipgloss.Left,
		c.styles.Label.Render(c.data.Label),
		c.styles.Value.Render(c.data.Value),
		lipgloss.JoinHorizontal(lipgloss.Left, delta, " ", c.styles.Caption.Render(c.data.Caption)),
	)
	return c.styles.Box.Render(body)
}
