package components

import (
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ShareBar renders one device family's share of sessions.
type ShareBar struct {
	bar        progress.Model
	labelStyle lipgloss.Style
	valueStyle lipgloss.Style
}

// NewShareBar creates a share bar of the given width drawn in color.
func NewShareBar(width int, color string) ShareBar {
	bar := progress.New(progress.WithSolidFill(color), progress.WithoutPercentage())
	bar.Width = width
	return ShareBar{
		bar:        bar,
		labelStyle: lipgloss.NewStyle().Width(10),
		valueStyle: lipgloss.NewStyle().Bold(true).Width(7).Align(lipgloss.Right),
	}
}

// View renders label, the bar filled to fraction, and the formatted share.
func (s ShareBar) View(label string, fraction float64, share string) string {
	ratio := math.Max(0, math.Min(1.0, fraction))
	return lipgloss.JoinHorizontal(lipgloss.Left,
		s.labelStyle.Render(label),
		s.bar.ViewAs(ratio),
		s.valueStyle.Render(share),
	)
}
