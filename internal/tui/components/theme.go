package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/pulsemetrics/internal/theme"
)

const paletteShadeCount = 10

// PaletteShade indexes a Tailwind-style scale from 50 (lightest) to 900 (darkest).
type PaletteShade int

const (
	PaletteShade50 PaletteShade = iota
	PaletteShade100
	PaletteShade200
	PaletteShade300
	PaletteShade400
	PaletteShade500
	PaletteShade600
	PaletteShade700
	PaletteShade800
	PaletteShade900
)

// PaletteShades is one colour family ordered from lightest to darkest.
type PaletteShades struct {
	colors [paletteShadeCount]lipgloss.Color
}

// NewPaletteShades creates a scale from up to ten colours, lightest first.
func NewPaletteShades(colors ...lipgloss.Color) PaletteShades {
	var shades PaletteShades
	for i := 0; i < paletteShadeCount && i < len(colors); i++ {
		shades.colors[i] = colors[i]
	}
	return shades
}

// Color returns the colour at shade, or "" when shade is out of range.
func (ps PaletteShades) Color(shade PaletteShade) lipgloss.Color {
	index := int(shade)
	if index < 0 || index >= paletteShadeCount {
		return ""
	}
	return ps.colors[index]
}

// ColorPalette holds the colour families the dashboard draws from.
type ColorPalette struct {
	Slate   PaletteShades
	Brand   PaletteShades
	Emerald PaletteShades
	Rose    PaletteShades
	Sky     PaletteShades
	Orange  PaletteShades
}

// ColourSet is a semantic colour combination:
//
//   - Base: the slot's main colour (text accent or fill)
//   - OnBase: content drawn on top of Base
//   - Muted: a quieter variant for secondary text and soft fills
//   - Contrast: borders and rules around the slot
type ColourSet struct {
	Base     lipgloss.Color
	OnBase   lipgloss.Color
	Muted    lipgloss.Color
	Contrast lipgloss.Color
}

// Palette describes the semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Success ColourSet
	Danger  ColourSet
	Neutral ColourSet

	// Chart colours device series in order.
	Chart []lipgloss.Color
}

// BorderSet groups the borders components use.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
}

// TypographyScale contains the text presets shared by components.
type TypographyScale struct {
	Body    lipgloss.Style
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Eyebrow lipgloss.Style
}

// Theme is an immutable style theme for one resolved display mode.
type Theme struct {
	Name       theme.Resolved
	Palette    Palette
	Colors     ColorPalette
	Borders    BorderSet
	Typography TypographyScale
	Variants   *VariantRegistry
}

// Dark reports whether t is the dark variant.
func (t Theme) Dark() bool {
	return t.Name == theme.ResolvedDark
}

// ThemeFor returns the theme matching the resolved display mode.
func ThemeFor(r theme.Resolved) Theme {
	if r == theme.ResolvedDark {
		return DarkTheme()
	}
	return LightTheme()
}

// LightTheme returns the light variant.
func LightTheme() Theme {
	c := defaultColors()
	return newTheme(theme.ResolvedLight, c, Palette{
		Primary: colourSet(c.Brand, PaletteShade500, PaletteShade50, PaletteShade200, PaletteShade600),
		Surface: colourSet(c.Slate, PaletteShade50, PaletteShade900, PaletteShade500, PaletteShade300),
		Success: colourSet(c.Emerald, PaletteShade500, PaletteShade50, PaletteShade100, PaletteShade700),
		Danger:  colourSet(c.Rose, PaletteShade500, PaletteShade50, PaletteShade100, PaletteShade700),
		Neutral: colourSet(c.Slate, PaletteShade900, PaletteShade50, PaletteShade500, PaletteShade300),
		Chart: []lipgloss.Color{
			c.Brand.Color(PaletteShade600),
			c.Sky.Color(PaletteShade500),
			c.Orange.Color(PaletteShade500),
		},
	})
}

// DarkTheme returns the dark variant.
func DarkTheme() Theme {
	c := defaultColors()
	return newTheme(theme.ResolvedDark, c, Palette{
		Primary: colourSet(c.Brand, PaletteShade400, PaletteShade900, PaletteShade800, PaletteShade300),
		Surface: colourSet(c.Slate, PaletteShade900, PaletteShade50, PaletteShade400, PaletteShade700),
		Success: colourSet(c.Emerald, PaletteShade400, PaletteShade900, PaletteShade900, PaletteShade300),
		Danger:  colourSet(c.Rose, PaletteShade400, PaletteShade50, PaletteShade900, PaletteShade300),
		Neutral: colourSet(c.Slate, PaletteShade50, PaletteShade900, PaletteShade400, PaletteShade700),
		Chart: []lipgloss.Color{
			c.Brand.Color(PaletteShade400),
			c.Sky.Color(PaletteShade400),
			c.Orange.Color(PaletteShade400),
		},
	})
}

func newTheme(name theme.Resolved, colors ColorPalette, palette Palette) Theme {
	variants := NewVariantRegistry()
	registerButtonVariants(variants)
	registerBadgeVariants(variants)

	return Theme{
		Name:    name,
		Palette: palette,
		Colors:  colors,
		Borders: BorderSet{
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
		},
		Typography: defaultTypography(palette),
		Variants:   variants,
	}
}

func colourSet(scale PaletteShades, base, onBase, muted, contrast PaletteShade) ColourSet {
	return ColourSet{
		Base:     scale.Color(base),
		OnBase:   scale.Color(onBase),
		Muted:    scale.Color(muted),
		Contrast: scale.Color(contrast),
	}
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)
	muted := lipgloss.NewStyle().Foreground(p.Surface.Muted)

	return TypographyScale{
		Body:    body,
		Title:   body.Bold(true),
		Muted:   muted,
		Eyebrow: muted.Bold(true),
	}
}

func defaultColors() ColorPalette {
	return ColorPalette{
		Slate: NewPaletteShades(
			"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8",
			"#64748b", "#475569", "#334155", "#1e293b", "#0f172a",
		),
		Brand: NewPaletteShades(
			"#eef2ff", "#e0e7ff", "#c7d2fe", "#a5b4fc", "#818cf8",
			"#6366f1", "#4f46e5", "#4338ca", "#3730a3", "#312e81",
		),
		Emerald: NewPaletteShades(
			"#ecfdf5", "#d1fae5", "#a7f3d0", "#6ee7b7", "#34d399",
			"#10b981", "#059669", "#047857", "#065f46", "#064e3b",
		),
		Rose: NewPaletteShades(
			"#fff1f2", "#ffe4e6", "#fecdd3", "#fda4af", "#fb7185",
			"#f43f5e", "#e11d48", "#be123c", "#9f1239", "#881337",
		),
		Sky: NewPaletteShades(
			"#f0f9ff", "#e0f2fe", "#bae6fd", "#7dd3fc", "#38bdf8",
			"#0ea5e9", "#0284c7", "#0369a1", "#075985", "#0c4a6e",
		),
		Orange: NewPaletteShades(
			"#fff7ed", "#ffedd5", "#fed7aa", "#fdba74", "#fb923c",
			"#f97316", "#ea580c", "#c2410c", "#9a3412", "#7c2d12",
		),
	}
}

// PaletteSlot selects a semantic colour set from a Palette.
type PaletteSlot func(Palette) ColourSet

// Predefined semantic slots for use with the style modifiers.
var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// StyleFunc applies a theme-aware transformation to a style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// Compose chains style functions in order.
func Compose(funcs ...StyleFunc) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		for _, fn := range funcs {
			base = fn(base, t)
		}
		return base
	}
}

// Background fills with the slot's base colour and draws content in OnBase.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		cs := slot(t.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground draws text in the slot's base colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.Foreground(slot(t.Palette).Base)
	}
}

// MutedForeground draws text in the slot's muted colour.
func MutedForeground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.Foreground(slot(t.Palette).Muted)
	}
}

// RoundedBorder outlines with the slot's contrast colour.
func RoundedBorder(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.BorderStyle(t.Borders.Rounded).BorderForeground(slot(t.Palette).Contrast)
	}
}

// AccentBorder outlines with the slot's base colour.
func AccentBorder(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.BorderStyle(t.Borders.Rounded).BorderForeground(slot(t.Palette).Base)
	}
}

// Bold sets bold text.
func Bold() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Bold(true)
	}
}

// PaddingX sets horizontal padding.
func PaddingX(n int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.PaddingLeft(n).PaddingRight(n)
	}
}

// VariantRegistry maps component variants to their styling.
type VariantRegistry struct {
	styles map[interface{}]StyleFunc
}

// NewVariantRegistry creates an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{styles: make(map[interface{}]StyleFunc)}
}

// Register maps variant to the composition of funcs.
func (vr *VariantRegistry) Register(variant interface{}, funcs ...StyleFunc) {
	vr.styles[variant] = Compose(funcs...)
}

// Get returns the styling for variant, or nil when none is registered.
func (vr *VariantRegistry) Get(variant interface{}) StyleFunc {
	if vr == nil {
		return nil
	}
	return vr.styles[variant]
}

// Style applies the registered styling for variant to a fresh style.
func (t Theme) Style(variant interface{}) lipgloss.Style {
	base := lipgloss.NewStyle()
	if fn := t.Variants.Get(variant); fn != nil {
		return fn(base, t)
	}
	return base
}

func registerButtonVariants(registry *VariantRegistry) {
	registry.Register(ButtonVariantPrimary,
		Background(PaletteNeutral), Bold(), PaddingX(2), AccentBorder(PaletteNeutral))
	registry.Register(ButtonVariantSecondary,
		MutedForeground(PaletteSurface), PaddingX(2), RoundedBorder(PaletteSurface))
	registry.Register(ButtonVariantSelected,
		Foreground(PalettePrimary), Bold(), PaddingX(2), AccentBorder(PalettePrimary))
}

func registerBadgeVariants(registry *VariantRegistry) {
	registry.Register(BadgeVariantDefault, Background(PaletteNeutral), PaddingX(1))
	registry.Register(BadgeVariantPrimary, Background(PalettePrimary), PaddingX(1))
	registry.Register(BadgeVariantSuccess, Background(PaletteSuccess), Bold(), PaddingX(1))
	registry.Register(BadgeVariantDanger, Background(PaletteDanger), Bold(), PaddingX(1))
	registry.Register(BadgeVariantMuted, MutedForeground(PaletteSurface))
}
