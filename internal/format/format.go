// Package format turns metric values into the display strings used by KPI
// cards, axis ticks and chart tooltips.
//
// Each call site has its own named operation because their precision rules
// differ: cards show percentages with two decimals, tooltips and deltas with
// one, and axis ticks abbreviate large currency amounts.
package format

import (
	"fmt"
	"math"
	"strconv"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ValueType selects the formatting rule for a metric. It is declared on the
// metric, never inferred from the magnitude.
type ValueType string

const (
	TypeNumber     ValueType = "number"
	TypeCurrency   ValueType = "currency"
	TypePercentage ValueType = "percentage"
)

// Valid reports whether t is one of the known value types.
func (t ValueType) Valid() bool {
	switch t {
	case TypeNumber, TypeCurrency, TypePercentage:
		return true
	default:
		return false
	}
}

// Locale controls digit grouping, decimal separators and the currency symbol.
type Locale struct {
	Tag            language.Tag
	CurrencySymbol string
}

// DefaultLocale is en-US with a dollar sign.
func DefaultLocale() Locale {
	return Locale{Tag: language.AmericanEnglish, CurrencySymbol: "$"}
}

// ParseLocale builds a Locale from a BCP 47 tag such as "en-US" or "de-DE".
func ParseLocale(tag, currencySymbol string) (Locale, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return Locale{}, fmt.Errorf("parse locale %q: %w", tag, err)
	}
	if currencySymbol == "" {
		currencySymbol = "$"
	}
	return Locale{Tag: parsed, CurrencySymbol: currencySymbol}, nil
}

// Formatter formats values for one locale. It is safe for concurrent use.
type Formatter struct {
	locale Locale

	mu      sync.Mutex
	printer *message.Printer
}

// New returns a Formatter bound to the given locale.
func New(locale Locale) *Formatter {
	if locale.CurrencySymbol == "" {
		locale.CurrencySymbol = "$"
	}
	return &Formatter{
		locale:  locale,
		printer: message.NewPrinter(locale.Tag),
	}
}

// Default returns a Formatter for DefaultLocale.
func Default() *Formatter {
	return New(DefaultLocale())
}

// Locale returns the locale the formatter was built with.
func (f *Formatter) Locale() Locale {
	return f.locale
}

// Number renders v as a grouped integer with no decimal places.
func (f *Formatter) Number(v float64) string {
	return f.sprintf("%d", int64(round(v, 0)))
}

// Currency renders v with the locale currency symbol, rounded to the unit.
func (f *Formatter) Currency(v float64) string {
	n := int64(round(v, 0))
	if n < 0 {
		return "-" + f.locale.CurrencySymbol + f.sprintf("%d", -n)
	}
	return f.locale.CurrencySymbol + f.sprintf("%d", n)
}

// PercentValue renders v with exactly two decimals and no percent glyph.
// Cards append the glyph themselves.
func (f *Formatter) PercentValue(v float64) string {
	return f.sprintf("%.2f", round(v, 2))
}

// Percentage renders v with one decimal followed by "%". Tooltips, device
// shares and change deltas use this form.
func (f *Formatter) Percentage(v float64) string {
	return f.sprintf("%.1f", round(v, 1)) + "%"
}

// Value renders a KPI card value according to its declared type.
func (f *Formatter) Value(v float64, t ValueType) string {
	switch t {
	case TypeCurrency:
		return f.Currency(v)
	case TypePercentage:
		return f.PercentValue(v) + "%"
	default:
		return f.Number(v)
	}
}

// CompactCurrency abbreviates currency for axis ticks: one decimal millions
// from 1,000,000, whole thousands from 1,000, the plain amount below that.
func (f *Formatter) CompactCurrency(v float64) string {
	sign := ""
	magnitude := v
	if v < 0 {
		sign = "-"
		magnitude = -v
	}
	symbol := f.locale.CurrencySymbol

	switch {
	case magnitude >= 1_000_000:
		return sign + symbol + strconv.FormatFloat(round(magnitude/1_000_000, 1), 'f', 1, 64) + "M"
	case magnitude >= 1_000:
		return sign + symbol + strconv.FormatFloat(round(magnitude/1_000, 0), 'f', 0, 64) + "k"
	default:
		return sign + symbol + strconv.FormatFloat(round(magnitude, 0), 'f', 0, 64)
	}
}

// CompactThousands renders a count axis tick in whole thousands, e.g. 12400 -> "12k".
func (f *Formatter) CompactThousands(v float64) string {
	return strconv.FormatFloat(round(v/1_000, 0), 'f', 0, 64) + "k"
}

// Share returns value as a whole percentage of total, or 0 when total is not
// positive.
func (f *Formatter) Share(value, total float64) int {
	if total <= 0 {
		return 0
	}
	return int(round(value/total*100, 0))
}

func (f *Formatter) sprintf(format string, args ...interface{}) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.printer.Sprintf(format, args...)
}

// round rounds half away from zero at the given number of decimals.
func round(v float64, decimals int) float64 {
	var r float64
	if decimals == 0 {
		r = math.Round(v)
	} else {
		scale := math.Pow(10, float64(decimals))
		r = math.Round(v*scale) / scale
	}
	if r == 0 {
		// drop negative zero so it never renders as "-0"
		return 0
	}
	return r
}
