package components

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantPrimary
	BadgeVariantSuccess
	BadgeVariantDanger
	BadgeVariantMuted
)

// Badge is a short status label next to a panel title.
type Badge struct {
	text    string
	variant BadgeVariant
}

// NewBadge creates a badge with the default variant.
func NewBadge(text string) *Badge {
	return &Badge{text: text}
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// View renders the badge with t.
func (b *Badge) View(t Theme) string {
	return t.Style(b.variant).Render(b.text)
}

// TrendBadge picks success or danger from the sign of a delta label such as
// "+8.4% vs baseline".
func TrendBadge(text string) *Badge {
	if len(text) > 0 && text[0] == '-' {
		return NewBadge(text).WithVariant(BadgeVariantDanger)
	}
	return NewBadge(text).WithVariant(BadgeVariantSuccess)
}

// StatusBadge is a quiet caption badge.
func StatusBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantMuted)
}
