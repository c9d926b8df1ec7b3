package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/pulsemetrics/internal/theme"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/tui/components"
)

// styles is the dashboard's style set for one resolved theme.
type styles struct {
	theme components.Theme

	eyebrow    lipgloss.Style
	title      lipgloss.Style
	subtitle   lipgloss.Style
	pill       lipgloss.Style
	pillActive lipgloss.Style
	caption    lipgloss.Style
	card       components.CardStyles

	seriesPrimary   lipgloss.Style
	seriesSecondary lipgloss.Style

	errorBanner lipgloss.Style
	footer      lipgloss.Style
	placeholder lipgloss.Style
	spinner     lipgloss.Style

	sidebar   lipgloss.Style
	navItem   lipgloss.Style
	navActive lipgloss.Style
	navCursor lipgloss.Style
}

func newStyles(r theme.Resolved) styles {
	t := components.ThemeFor(r)
	p := t.Palette
	typo := t.Typography

	pill := lipgloss.NewStyle().Padding(0, 2).Foreground(p.Surface.Muted)

	return styles{
		theme: t,

		eyebrow:    typo.Eyebrow,
		title:      typo.Title,
		subtitle:   typo.Muted,
		pill:       pill,
		pillActive: components.Compose(components.Background(components.PaletteNeutral), components.Bold())(pill, t),
		caption:    typo.Muted,
		card:       components.CardStylesFor(t),

		seriesPrimary:   lipgloss.NewStyle().Foreground(p.Primary.Base),
		seriesSecondary: lipgloss.NewStyle().Foreground(p.Primary.Muted),

		errorBanner: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Danger.Base).
			Background(p.Danger.Muted).
			Padding(0, 2),
		footer: typo.Muted.
			BorderStyle(t.Borders.Normal).
			BorderTop(true).
			BorderForeground(p.Surface.Contrast),
		placeholder: typo.Muted.Italic(true).Padding(2, 4),
		spinner:     components.Foreground(components.PalettePrimary)(lipgloss.NewStyle(), t),

		sidebar: lipgloss.NewStyle().
			Width(sidebarWidth-2).
			BorderStyle(t.Borders.Normal).
			BorderRight(true).
			BorderForeground(p.Surface.Contrast).
			PaddingRight(1),
		navItem:   typo.Muted,
		navActive: lipgloss.NewStyle().Bold(true).Foreground(p.Primary.Base),
		navCursor: lipgloss.NewStyle().Foreground(p.Primary.Base),
	}
}
