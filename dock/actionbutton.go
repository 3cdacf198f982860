package dock

import "github.com/charmbracelet/lipgloss"

// DefaultActionSize is the action button's size in units when the
// descriptor does not set one.
const DefaultActionSize = 56

// miniActionSize is the size used when Mini is set.
const miniActionSize = 40

// ActionButton describes the floating affordance tied to a tab. At most
// one tab owns a given descriptor at a time; the bar shows the descriptor
// of the selected tab only.
type ActionButton struct {
	// Icon is the glyph centered in the button.
	Icon string
	// Label extends the button with text when Extended is set.
	Label string

	Background *lipgloss.Color
	Foreground *lipgloss.Color
	// Focus, hover and splash tints for input-device affordances.
	FocusTint  *lipgloss.Color
	HoverTint  *lipgloss.Color
	SplashTint *lipgloss.Color

	// OnTap is invoked when the button is activated.
	OnTap func()

	// Size in units. Zero means DefaultActionSize; Mini overrides it.
	Size float64
	// Mini renders a reduced button.
	Mini bool
	// Extended renders icon plus label.
	Extended bool

	// Tooltip is revealed on press-and-hold.
	Tooltip string
	// Feedback fires a pulse before OnTap.
	Feedback bool
	// Describe is the accessibility description announced for the button.
	Describe string
}

// NewActionButton returns an action button with the default size.
func NewActionButton(icon string, onTap func()) *ActionButton {
	return &ActionButton{Icon: icon, OnTap: onTap, Size: DefaultActionSize}
}

// EffectiveSize returns the size the button animates to: the configured
// size, reduced when Mini, defaulted when unset.
func (a *ActionButton) EffectiveSize() float64 {
	if a == nil {
		return 0
	}
	if a.Mini {
		return miniActionSize
	}
	if a.Size <= 0 {
		return DefaultActionSize
	}
	return a.Size
}
