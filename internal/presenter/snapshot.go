// Package presenter turns a dataset bundle into the display strings shown by
// the dashboard and the snapshot command.
package presenter

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/pulsemetrics/internal/dataset"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/format"
)

// Card is one formatted KPI tile.
type Card struct {
	ID        string  `yaml:"id"`
	Label     string  `yaml:"label"`
	Value     string  `yaml:"value"`
	Change    string  `yaml:"change"`
	Direction string  `yaml:"direction"`
	Arrow     string  `yaml:"-"`
	Caption   string  `yaml:"caption"`
	Raw       float64 `yaml:"-"`
}

// Positive reports whether the card's change renders as non-negative.
func (c Card) Positive() bool {
	return c.Direction == format.Up.String()
}

// TrendRow is one point of the revenue trend.
type TrendRow struct {
	Label         string  `yaml:"label"`
	Revenue       string  `yaml:"revenue"`
	Forecast      string  `yaml:"forecast"`
	RevenueTick   string  `yaml:"-"`
	ForecastTick  string  `yaml:"-"`
	RevenueValue  float64 `yaml:"-"`
	ForecastValue float64 `yaml:"-"`
}

// ChannelRow is one acquisition channel, in whole thousands.
type ChannelRow struct {
	Channel       string  `yaml:"channel"`
	Current       string  `yaml:"current"`
	Previous      string  `yaml:"previous"`
	CurrentValue  float64 `yaml:"-"`
	PreviousValue float64 `yaml:"-"`
}

// DeviceRow is a device family's share of sessions.
type DeviceRow struct {
	Name  string  `yaml:"name"`
	Share string  `yaml:"share"`
	Label string  `yaml:"label"`
	Value float64 `yaml:"-"`
	// Fraction is the share of the summed device values, in [0,1].
	Fraction float64 `yaml:"-"`
}

// Snapshot is the formatted content for one range.
type Snapshot struct {
	Range        string       `yaml:"range"`
	RangeLabel   string       `yaml:"range_label"`
	Synced       string       `yaml:"synced"`
	Comparison   string       `yaml:"comparison"`
	Cards        []Card       `yaml:"cards"`
	RevenueBadge string       `yaml:"revenue_badge"`
	Trend        []TrendRow   `yaml:"revenue_trend"`
	Acquisition  []ChannelRow `yaml:"acquisition"`
	Devices      []DeviceRow  `yaml:"devices"`
	Theme        string       `yaml:"theme,omitempty"`
}

// Build formats bundle for key.
func Build(key dataset.RangeKey, bundle dataset.Bundle, f *format.Formatter) Snapshot {
	s := Snapshot{
		Range:        key.String(),
		RangeLabel:   key.Label(),
		Synced:       "Synced " + bundle.Meta.Updated,
		Comparison:   bundle.Meta.Comparison,
		RevenueBadge: RevenueBadge(bundle, f),
	}

	for _, m := range bundle.Metrics {
		delta := f.Change(m.Change)
		s.Cards = append(s.Cards, Card{
			ID:        string(m.ID),
			Label:     m.Label,
			Value:     f.Value(m.Value, m.ValueType),
			Change:    delta.String(),
			Direction: delta.Direction.String(),
			Arrow:     delta.Direction.Arrow(),
			Caption:   "vs " + bundle.Meta.Comparison,
			Raw:       m.Value,
		})
	}

	for _, p := range bundle.RevenueTrend {
		s.Trend = append(s.Trend, TrendRow{
			Label:         p.Label,
			Revenue:       f.Currency(p.Revenue),
			Forecast:      f.Currency(p.Forecast),
			RevenueTick:   f.CompactCurrency(p.Revenue),
			ForecastTick:  f.CompactCurrency(p.Forecast),
			RevenueValue:  p.Revenue,
			ForecastValue: p.Forecast,
		})
	}

	for _, c := range bundle.Acquisition {
		s.Acquisition = append(s.Acquisition, ChannelRow{
			Channel:       c.Channel,
			Current:       f.CompactThousands(c.Current),
			Previous:      f.CompactThousands(c.Previous),
			CurrentValue:  c.Current,
			PreviousValue: c.Previous,
		})
	}

	total := bundle.DeviceTotal()
	for _, d := range bundle.Devices {
		row := DeviceRow{
			Name:  d.Name,
			Share: f.Percentage(d.Value),
			Label: fmt.Sprintf("%s %d%%", d.Name, f.Share(d.Value, total)),
			Value: d.Value,
		}
		if total > 0 {
			row.Fraction = d.Value / total
		}
		s.Devices = append(s.Devices, row)
	}

	return s
}

// RevenueBadge renders the revenue change against baseline, e.g.
// "+8.4% vs baseline". A bundle without a revenue metric reads as zero change.
func RevenueBadge(bundle dataset.Bundle, f *format.Formatter) string {
	var change float64
	if m, ok := bundle.Metric(dataset.MetricRevenue); ok {
		change = m.Change
	}
	return f.Change(change).String() + " vs baseline"
}

// Text renders the snapshot as plain aligned text.
func (s Snapshot) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "PulseMetrics · %s (%s) · %s\n", s.RangeLabel, s.Range, s.Synced)
	if s.Theme != "" {
		fmt.Fprintf(&b, "Theme: %s\n", s.Theme)
	}

	b.WriteString("\nKey metrics\n")
	for _, c := range s.Cards {
		fmt.Fprintf(&b, "  %-16s %12s  %s %s %s\n", c.Label, c.Value, c.Arrow, c.Change, c.Caption)
	}

	fmt.Fprintf(&b, "\nRevenue Trend (%s)\n", s.RevenueBadge)
	for _, r := range s.Trend {
		fmt.Fprintf(&b, "  %-6s revenue %10s  forecast %10s\n", r.Label, r.Revenue, r.Forecast)
	}

	b.WriteString("\nAcquisition Channels\n")
	for _, c := range s.Acquisition {
		fmt.Fprintf(&b, "  %-10s current %5s  previous %5s\n", c.Channel, c.Current, c.Previous)
	}

	b.WriteString("\nDevice Engagement\n")
	for _, d := range s.Devices {
		fmt.Fprintf(&b, "  %-10s %6s of sessions\n", d.Name, d.Share)
	}

	return b.String()
}
