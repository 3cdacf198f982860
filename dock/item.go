// Package dock implements a floating navigation bar: a row of selectable
// tabs plus an optional floating action button, with configurable shapes,
// indicator styles, animations and a glass effect. The host owns the tab
// list and the selected index; the bar only derives render state from them.
package dock

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/dockbar/anim"
	"github.com/llehouerou/dockbar/glass"
)

// DisplayMode selects which of icon and title a tab shows. It is
// configurable per selection state.
type DisplayMode int

const (
	// IconAndTitle shows both icon and title.
	IconAndTitle DisplayMode = iota
	// IconOnly hides the title.
	IconOnly
	// TitleOnly hides the icon.
	TitleOnly
)

// LabelPosition places the title relative to the icon.
type LabelPosition int

const (
	// LabelRight lays icon and title out horizontally.
	LabelRight LabelPosition = iota
	// LabelBottom stacks icon, title and indicator vertically.
	LabelBottom
)

// IndicatorStyle selects the secondary selection affordance.
type IndicatorStyle int

const (
	// IndicatorBackground fills the whole tab background on selection.
	IndicatorBackground IndicatorStyle = iota
	// IndicatorDot draws a small animated dot under the content.
	IndicatorDot
	// IndicatorUnderline draws an animated bar under the content.
	IndicatorUnderline
	// IndicatorNone draws no selection affordance.
	IndicatorNone
)

// Geometry in bar units. The terminal projection lives in render.go.
const (
	dotSize         = 6  // dot indicator side when selected
	underlineWidth  = 20 // underline indicator width when selected
	underlineHeight = 3

	padSelectedX   = 14 // horizontal padding tightens on selection
	padUnselectedX = 18
	padBottomY     = 8 // vertical padding for LabelBottom
	padRightY      = 10

	defaultIconSize         = 24
	defaultSelectedIconSize = 28
)

// Item is the immutable configuration for one navigation entry. Construct
// with NewItem; derive variants with With. The selection flag is not part
// of the item — the host supplies it through the bar's selected index.
type Item struct {
	title string
	icon  string
	onTap func()

	titleStyle *lipgloss.Style
	action     *ActionButton
	margin     float64

	selectedColor      *lipgloss.Color
	unselectedColor    *lipgloss.Color
	selectedGradient   *glass.Gradient
	unselectedGradient *glass.Gradient

	selectedMode   DisplayMode
	unselectedMode DisplayMode

	badge string

	iconSize         float64
	selectedIconSize float64

	labelPos       LabelPosition
	indicator      IndicatorStyle
	indicatorColor *lipgloss.Color

	borderColor *lipgloss.Color
	borderWidth float64

	animDuration time.Duration
	animCurve    anim.Curve

	haptics bool
	tooltip string

	glassFx *glass.Effect
}

// Option configures an Item.
type Option func(*Item)

// NewItem constructs a tab item. Title, icon and tap callback are required;
// everything else defaults and can be supplied through options.
func NewItem(title, icon string, onTap func(), opts ...Option) (Item, error) {
	switch {
	case title == "":
		return Item{}, fmt.Errorf("dock: item title is required")
	case icon == "":
		return Item{}, fmt.Errorf("dock: item icon is required")
	case onTap == nil:
		return Item{}, fmt.Errorf("dock: item tap callback is required")
	}

	it := Item{
		title:            title,
		icon:             icon,
		onTap:            onTap,
		iconSize:         defaultIconSize,
		selectedIconSize: defaultSelectedIconSize,
	}
	for _, opt := range opts {
		opt(&it)
	}
	return it, nil
}

// With returns a copy of the item with the given options applied. Fields
// not touched by an option keep the original value; the receiver is never
// modified.
func (it Item) With(opts ...Option) Item {
	for _, opt := range opts {
		opt(&it)
	}
	return it
}

// WithTitle replaces the title.
func WithTitle(title string) Option {
	return func(it *Item) { it.title = title }
}

// WithIcon replaces the icon glyph.
func WithIcon(icon string) Option {
	return func(it *Item) { it.icon = icon }
}

// WithOnTap replaces the tap callback.
func WithOnTap(fn func()) Option {
	return func(it *Item) { it.onTap = fn }
}

// WithTitleStyle sets the style applied to the title text.
func WithTitleStyle(s lipgloss.Style) Option {
	return func(it *Item) { it.titleStyle = &s }
}

// WithAction attaches the floating action button shown while this tab is
// selected. Nil detaches it.
func WithAction(a *ActionButton) Option {
	return func(it *Item) { it.action = a }
}

// WithMargin sets the margin around the tab, in units.
func WithMargin(m float64) Option {
	return func(it *Item) { it.margin = m }
}

// WithSelectedColor sets the fill used while selected.
func WithSelectedColor(c lipgloss.Color) Option {
	return func(it *Item) { it.selectedColor = &c }
}

// WithUnselectedColor sets the fill used while unselected.
func WithUnselectedColor(c lipgloss.Color) Option {
	return func(it *Item) { it.unselectedColor = &c }
}

// WithSelectedGradient sets a gradient fill used while selected. Takes
// precedence over the selected color.
func WithSelectedGradient(g glass.Gradient) Option {
	return func(it *Item) { it.selectedGradient = &g }
}

// WithUnselectedGradient sets a gradient fill used while unselected.
func WithUnselectedGradient(g glass.Gradient) Option {
	return func(it *Item) { it.unselectedGradient = &g }
}

// WithDisplayModes sets the display mode per selection state.
func WithDisplayModes(selected, unselected DisplayMode) Option {
	return func(it *Item) {
		it.selectedMode = selected
		it.unselectedMode = unselected
	}
}

// WithBadge overlays a badge glyph on the icon's top-right corner.
func WithBadge(badge string) Option {
	return func(it *Item) { it.badge = badge }
}

// WithIconSizes sets the icon size per selection state, in units.
func WithIconSizes(unselected, selected float64) Option {
	return func(it *Item) {
		it.iconSize = unselected
		it.selectedIconSize = selected
	}
}

// WithLabelPosition places the title beside or below the icon.
func WithLabelPosition(p LabelPosition) Option {
	return func(it *Item) { it.labelPos = p }
}

// WithIndicator selects the indicator style.
func WithIndicator(s IndicatorStyle) Option {
	return func(it *Item) { it.indicator = s }
}

// WithIndicatorColor overrides the indicator color.
func WithIndicatorColor(c lipgloss.Color) Option {
	return func(it *Item) { it.indicatorColor = &c }
}

// WithBorder strokes the tab background. Both color and width are needed;
// a zero width draws nothing.
func WithBorder(c lipgloss.Color, width float64) Option {
	return func(it *Item) {
		it.borderColor = &c
		it.borderWidth = width
	}
}

// WithAnimation overrides the shared transition duration and curve for
// this tab.
func WithAnimation(d time.Duration, curve anim.Curve) Option {
	return func(it *Item) {
		it.animDuration = d
		it.animCurve = curve
	}
}

// WithHaptics fires a feedback pulse before the tap callback.
func WithHaptics() Option {
	return func(it *Item) { it.haptics = true }
}

// WithTooltip sets the text revealed on press-and-hold.
func WithTooltip(text string) Option {
	return func(it *Item) { it.tooltip = text }
}

// WithGlass overrides the bar-level glass effect for this tab only.
func WithGlass(fx glass.Effect) Option {
	return func(it *Item) { it.glassFx = &fx }
}

// Title returns the tab title.
func (it Item) Title() string { return it.title }

// Icon returns the tab icon glyph.
func (it Item) Icon() string { return it.icon }

// Action returns the attached action button, or nil.
func (it Item) Action() *ActionButton { return it.action }

// Tooltip returns the press-and-hold tooltip text.
func (it Item) Tooltip() string { return it.tooltip }

// Haptics reports whether a tap fires a feedback pulse.
func (it Item) Haptics() bool { return it.haptics }
