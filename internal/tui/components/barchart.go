package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BarSeries is one coloured series in a BarChart.
type BarSeries struct {
	Name  string
	Style lipgloss.Style
}

// BarRow is one category with a value and tick label per series.
type BarRow struct {
	Label  string
	Values []float64
	Ticks  []string
}

// BarChart renders grouped horizontal bars scaled to the largest value.
type BarChart struct {
	series     []BarSeries
	rows       []BarRow
	width      int
	labelStyle lipgloss.Style
	tickStyle  lipgloss.Style
}

const barGlyph = "█"

// NewBarChart creates a chart whose longest bar spans width cells.
func NewBarChart(series []BarSeries, rows []BarRow, width int) BarChart {
	if width < 1 {
		width = 1
	}
	return BarChart{
		series:     series,
		rows:       rows,
		width:      width,
		labelStyle: lipgloss.NewStyle().Width(labelWidth(rows)),
		tickStyle:  lipgloss.NewStyle().Faint(true),
	}
}

// Max returns the largest value across rows and series.
func (c BarChart) Max() float64 {
	var peak float64
	for _, row := range c.rows {
		for _, v := range row.Values {
			peak = math.Max(peak, v)
		}
	}
	return peak
}

// BarLength returns how many cells v occupies.
func (c BarChart) BarLength(v float64) int {
	peak := c.Max()
	if peak <= 0 || v <= 0 {
		return 0
	}
	n := int(math.Round(v / peak * float64(c.width)))
	if n < 1 {
		n = 1
	}
	return n
}

// View renders the chart with a legend line.
func (c BarChart) View() string {
	var lines []string
	for _, row := range c.rows {
		for i, s := range c.series {
			label := ""
			if i == 0 {
				label = row.Label
			}
			var v float64
			if i < len(row.Values) {
				v = row.Values[i]
			}
			tick := ""
			if i < len(row.Ticks) {
				tick = row.Ticks[i]
			}
			bar := s.Style.Render(strings.Repeat(barGlyph, c.BarLength(v)))
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Left,
				c.labelStyle.Render(label), bar, " ", c.tickStyle.Render(tick)))
		}
	}

	legend := make([]string, 0, len(c.series))
	for _, s := range c.series {
		legend = append(legend, s.Style.Render(barGlyph)+" "+s.Name)
	}
	lines = append(lines, c.tickStyle.Render(strings.Join(legend, "   ")))

	return strings.Join(lines, "\n")
}

func labelWidth(rows []BarRow) int {
	width := 0
	for _, row := range rows {
		if w := lipgloss.Width(row.Label); w > width {
			width = w
		}
	}
	return width + 1
}
