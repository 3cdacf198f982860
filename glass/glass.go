// Package glass describes the translucent panel styling (glassmorphism)
// available to the nav bar, its tabs and its action button. An Effect is a
// plain value passed down the render tree; resolving it against a backdrop
// color is a pure function, so panels are testable without a terminal.
//
// A terminal cannot blur what is behind it. Blur is approximated by pulling
// the resolved fill back toward the backdrop, so stronger blur reads as a
// fainter, more "embedded" panel. The numeric fields keep their source
// semantics so presets and the action-button scaling stay comparable.
package glass

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/dockbar/theme"
)

// ActionRatio scales blur and shadow parameters inside the action button
// relative to the bar container. The source component halves them there
// with no stated rationale; the ratio is preserved as-is.
const ActionRatio = 0.5

// maxBlur is the blur amount at which backdrop softening saturates.
const maxBlur = 40.0

// Gradient is a two-stop horizontal color ramp used as a panel fill.
type Gradient struct {
	From lipgloss.Color
	To   lipgloss.Color
}

// Effect is an immutable glass styling bundle.
type Effect struct {
	// Blur is the backdrop blur amount. Zero disables softening.
	Blur float64
	// Opacity is the tint fill opacity in [0,1]. Ignored when Gradient is set.
	Opacity float64
	// Tint is the fill color blended over the backdrop. Nil means no tint.
	Tint *lipgloss.Color
	// Gradient overrides Tint and Opacity when set.
	Gradient *Gradient

	// BorderColor and BorderWidth stroke the panel edge. Both must be set
	// for a border to be drawn.
	BorderColor *lipgloss.Color
	BorderWidth float64

	// Shadow draws a soft drop shadow under the panel.
	Shadow       bool
	ShadowColor  lipgloss.Color
	ShadowBlur   float64
	ShadowSpread float64
}

func colorPtr(c lipgloss.Color) *lipgloss.Color { return &c }

// Default returns the standard frosted preset: a faint white tint with a
// light edge and a soft shadow.
func Default() Effect {
	return Effect{
		Blur:         10,
		Opacity:      0.2,
		Tint:         colorPtr(lipgloss.Color("#ffffff")),
		BorderColor:  colorPtr(lipgloss.Color("#9a9a9a")),
		BorderWidth:  1,
		Shadow:       true,
		ShadowColor:  lipgloss.Color("#000000"),
		ShadowBlur:   10,
		ShadowSpread: 2,
	}
}

// Dark returns the smoked-glass preset used over bright content.
func Dark() Effect {
	return Effect{
		Blur:         12,
		Opacity:      0.35,
		Tint:         colorPtr(lipgloss.Color("#000000")),
		BorderColor:  colorPtr(lipgloss.Color("#303030")),
		BorderWidth:  1,
		Shadow:       true,
		ShadowColor:  lipgloss.Color("#000000"),
		ShadowBlur:   14,
		ShadowSpread: 3,
	}
}

// Light returns the bright preset used over dark content.
func Light() Effect {
	return Effect{
		Blur:         8,
		Opacity:      0.45,
		Tint:         colorPtr(lipgloss.Color("#ffffff")),
		BorderColor:  colorPtr(lipgloss.Color("#e0e0e0")),
		BorderWidth:  1,
		Shadow:       true,
		ShadowColor:  lipgloss.Color("#202020"),
		ShadowBlur:   8,
		ShadowSpread: 1,
	}
}

// Scaled returns a copy with blur and shadow parameters multiplied by
// ratio. The action button applies ActionRatio; the bar container applies
// the inverse when it doubles its shadow relative to the button.
func (e Effect) Scaled(ratio float64) Effect {
	e.Blur *= ratio
	e.ShadowBlur *= ratio
	e.ShadowSpread *= ratio
	return e
}

// HasBorder reports whether both border fields are set. One without the
// other draws nothing.
func (e Effect) HasBorder() bool {
	return e.BorderColor != nil && e.BorderWidth > 0
}

// Panel is the resolved, drawable form of an Effect against a backdrop.
type Panel struct {
	// Fill holds one color per column; a single entry means a solid fill.
	Fill []lipgloss.Color
	// Border is nil when no border should be drawn.
	Border      *lipgloss.Color
	BorderWidth float64

	Shadow       bool
	ShadowColor  lipgloss.Color
	ShadowBlur   float64
	ShadowSpread float64
}

// Solid returns the fill for panels narrow enough to render one color.
func (p Panel) Solid() lipgloss.Color {
	if len(p.Fill) == 0 {
		return lipgloss.Color("")
	}
	return p.Fill[0]
}

// Resolve computes the drawable panel for this effect over the given
// backdrop, sampled at columns positions. Gradient wins over tint+opacity;
// blur pulls the result back toward the backdrop.
func (e Effect) Resolve(backdrop lipgloss.Color, columns int) Panel {
	if columns < 1 {
		columns = 1
	}

	softening := e.Blur / maxBlur
	if softening > 0.6 {
		softening = 0.6
	}

	var fill []lipgloss.Color
	switch {
	case e.Gradient != nil:
		fill = theme.Ramp(columns, e.Gradient.From, e.Gradient.To)
		for i, c := range fill {
			fill[i] = theme.Blend(c, backdrop, softening)
		}
	case e.Tint != nil:
		tinted := theme.Blend(backdrop, *e.Tint, e.Opacity)
		fill = []lipgloss.Color{theme.Blend(tinted, backdrop, softening)}
	default:
		fill = []lipgloss.Color{backdrop}
	}

	p := Panel{
		Fill:         fill,
		BorderWidth:  e.BorderWidth,
		Shadow:       e.Shadow,
		ShadowColor:  e.ShadowColor,
		ShadowBlur:   e.ShadowBlur,
		ShadowSpread: e.ShadowSpread,
	}
	if e.HasBorder() {
		p.Border = e.BorderColor
	}
	return p
}
