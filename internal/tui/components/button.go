package components

// ButtonVariant specifies the visual style of a button.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantSelected
)

// Button is a bordered, clickable-looking label.
type Button struct {
	label   string
	variant ButtonVariant
}

// NewButton creates a primary button.
func NewButton(label string) Button {
	return Button{label: label}
}

// WithVariant returns a copy of the button with variant.
func (b Button) WithVariant(variant ButtonVariant) Button {
	b.variant = variant
	return b
}

// View renders the button with t, followed by a one-cell gap.
func (b Button) View(t Theme) string {
	return t.Style(b.variant).MarginRight(1).Render(b.label)
}
