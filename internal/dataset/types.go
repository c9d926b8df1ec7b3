package dataset

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/pulsemetrics/internal/format"
)

// RangeKey selects which time window's bundle is active. The set is closed.
type RangeKey string

const (
	Range7d  RangeKey = "7d"
	Range30d RangeKey = "30d"
	Range90d RangeKey = "90d"
)

var rangeOrder = []RangeKey{Range7d, Range30d, Range90d}

var rangeLabels = map[RangeKey]string{
	Range7d:  "Last 7 days",
	Range30d: "Last 30 days",
	Range90d: "Last 90 days",
}

// RangeOption pairs a key with its display label.
type RangeOption struct {
	Key   RangeKey
	Label string
}

// Ranges returns every range in display order.
func Ranges() []RangeOption {
	options := make([]RangeOption, 0, len(rangeOrder))
	for _, key := range rangeOrder {
		options = append(options, RangeOption{Key: key, Label: rangeLabels[key]})
	}
	return options
}

// DefaultRange is the first enumerated range.
func DefaultRange() RangeKey {
	return rangeOrder[0]
}

// ParseRange converts user input into a RangeKey. It is the only place an
// unknown key is a recoverable error.
func ParseRange(s string) (RangeKey, error) {
	key := RangeKey(strings.ToLower(strings.TrimSpace(s)))
	if !key.Valid() {
		return "", fmt.Errorf("unknown range %q (expected one of 7d, 30d, 90d)", s)
	}
	return key, nil
}

// Valid reports whether k belongs to the enumeration.
func (k RangeKey) Valid() bool {
	_, ok := rangeLabels[k]
	return ok
}

// Label returns the display label, e.g. "Last 30 days".
func (k RangeKey) Label() string {
	mustBeValid(k)
	return rangeLabels[k]
}

// Index returns the position of k in display order.
func (k RangeKey) Index() int {
	for i, key := range rangeOrder {
		if key == k {
			return i
		}
	}
	panic(fmt.Sprintf("dataset: unknown range key %q", string(k)))
}

// Next returns the following range in display order, wrapping around.
func (k RangeKey) Next() RangeKey {
	return rangeOrder[(k.Index()+1)%len(rangeOrder)]
}

func (k RangeKey) String() string {
	return string(k)
}

func mustBeValid(k RangeKey) {
	if !k.Valid() {
		panic(fmt.Sprintf("dataset: unknown range key %q", string(k)))
	}
}

// MetricID identifies one of the four KPI cards.
type MetricID string

const (
	MetricUsers      MetricID = "users"
	MetricRevenue    MetricID = "revenue"
	MetricSessions   MetricID = "sessions"
	MetricConversion MetricID = "conversion"
)

// MetricIDs lists the fixed identifiers every bundle must carry.
var MetricIDs = []MetricID{MetricUsers, MetricRevenue, MetricSessions, MetricConversion}

// Metric is a single KPI.
type Metric struct {
	ID        MetricID         `yaml:"id" validate:"required,metric_id"`
	Label     string           `yaml:"label" validate:"required"`
	Value     float64          `yaml:"value"`
	Change    float64          `yaml:"change"`
	ValueType format.ValueType `yaml:"value_type" validate:"required,value_type"`
}

// TrendPoint is one sample of the revenue line chart.
type TrendPoint struct {
	Label    string  `yaml:"label" validate:"required"`
	Revenue  float64 `yaml:"revenue" validate:"gte=0"`
	Forecast float64 `yaml:"forecast" validate:"gte=0"`
}

// ChannelPoint compares one acquisition channel across periods.
type ChannelPoint struct {
	Channel  string  `yaml:"channel" validate:"required"`
	Current  float64 `yaml:"current" validate:"gte=0"`
	Previous float64 `yaml:"previous" validate:"gte=0"`
}

// DeviceShare is a device family's share of sessions in percent.
type DeviceShare struct {
	Name  string  `yaml:"name" validate:"required"`
	Value float64 `yaml:"value" validate:"gte=0,lte=100"`
}

// Meta carries the freshness and comparison captions shown with a bundle.
type Meta struct {
	Updated    string `yaml:"updated" validate:"required"`
	Comparison string `yaml:"comparison" validate:"required"`
}

// Bundle is the immutable group of chart and KPI data for one range.
type Bundle struct {
	Metrics      []Metric       `yaml:"metrics" validate:"len=4,dive"`
	RevenueTrend []TrendPoint   `yaml:"revenue_trend" validate:"min=1,dive"`
	Acquisition  []ChannelPoint `yaml:"acquisition" validate:"min=1,dive"`
	Devices      []DeviceShare  `yaml:"devices" validate:"min=1,dive"`
	Meta         Meta           `yaml:"meta"`
}

// Metric returns the metric with the given id.
func (b Bundle) Metric(id MetricID) (Metric, bool) {
	for _, m := range b.Metrics {
		if m.ID == id {
			return m, true
		}
	}
	return Metric{}, false
}

// DeviceTotal sums the device shares. It should be 100 but the engine does
// not enforce it.
func (b Bundle) DeviceTotal() float64 {
	var total float64
	for _, d := range b.Devices {
		total += d.Value
	}
	return total
}

func (b Bundle) clone() Bundle {
	return Bundle{
		Metrics:      append([]Metric(nil), b.Metrics...),
		RevenueTrend: append([]TrendPoint(nil), b.RevenueTrend...),
		Acquisition:  append([]ChannelPoint(nil), b.Acquisition...),
		Devices:      append([]DeviceShare(nil), b.Devices...),
		Meta:         b.Meta,
	}
}
