package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestShareBarView(t *testing.T) {
	t.Parallel()

	bar := NewShareBar(20, "#4f46e5")

	t.Run("shows label and share", func(t *testing.T) {
		t.Parallel()
		view := bar.View("Desktop", 0.48, "48.0%")
		require.Contains(t, view, "Desktop")
		require.Contains(t, view, "48.0%")
	})

	t.Run("clamps out of range fractions", func(t *testing.T) {
		t.Parallel()
		require.NotEmpty(t, bar.View("Tablet", 1.5, "150.0%"))
		require.NotEmpty(t, bar.View("Tablet", -1, "0.0%"))
	})
}

func TestCardView(t *testing.T) {
	t.Parallel()

	styles := CardStyles{
		Box:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
		Label:    lipgloss.NewStyle(),
		Value:    lipgloss.NewStyle().Bold(true),
		Positive: lipgloss.NewStyle(),
		Negative: lipgloss.NewStyle(),
		Caption:  lipgloss.NewStyle(),
	}
	view := NewCard(CardData{
		Label:    "Revenue",
		Value:    "$328,000",
		Arrow:    "↗",
		Change:   "+8.4%",
		Caption:  "vs previous period",
		Positive: true,
	}, styles).View()

	require.Contains(t, view, "Revenue")
	require.Contains(t, view, "$328,000")
	require.Contains(t, view, "↗ +8.4%")
	require.Contains(t, view, "vs previous period")
}

func TestBarChartScaling(t *testing.T) {
	t.Parallel()

	series := []BarSeries{{Name: "Current"}, {Name: "Previous"}}
	rows := []BarRow{
		{Label: "Organic", Values: []float64{12400, 11800}, Ticks: []string{"12k", "12k"}},
		{Label: "Paid", Values: []float64{6200, 0}, Ticks: []string{"6k", "0k"}},
	}
	chart := NewBarChart(series, rows, 20)

	require.Equal(t, 12400.0, chart.Max())
	require.Equal(t, 20, chart.BarLength(12400))
	require.Equal(t, 10, chart.BarLength(6200))
	require.Equal(t, 0, chart.BarLength(0))
	require.Equal(t, 1, chart.BarLength(1))

	view := chart.View()
	require.Contains(t, view, "Organic")
	require.Contains(t, view, "12k")
	require.Contains(t, view, "Previous")
	require.Equal(t, 5, len(strings.Split(view, "\n")))
}

func TestBarChartEmpty(t *testing.T) {
	t.Parallel()

	chart := NewBarChart(nil, nil, 0)
	require.Equal(t, 0.0, chart.Max())
	require.Equal(t, 0, chart.BarLength(10))
}
