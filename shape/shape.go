// Package shape maps a bar shape selection to border geometry usable by
// container decorations. Shapes are a closed set dispatched by kind, so
// adding a variant is a compile-visible change rather than a chain of
// type assertions.
package shape

import "github.com/charmbracelet/lipgloss"

// Kind identifies a shape variant.
type Kind int

const (
	// KindCircle renders fully round ends at the bar's fixed height.
	KindCircle Kind = iota
	// KindRectangle renders a rounded rectangle.
	KindRectangle
	// KindSquircle renders a continuous (superellipse-style) corner.
	KindSquircle
)

// Shape selects the corner treatment for the nav bar, tab backgrounds and
// action button clipping. The zero value is a circle with the default radius.
type Shape struct {
	kind   Kind
	radius float64
}

// DefaultRadius matches the bar's fixed height so circle shapes appear
// fully round.
const DefaultRadius = 30

// Circle returns a circle shape. The radius is large enough relative to the
// bar height that the ends appear fully round.
func Circle(radius float64) Shape {
	return Shape{kind: KindCircle, radius: clamp(radius)}
}

// Rectangle returns a rounded-rectangle shape with the given corner radius.
func Rectangle(radius float64) Shape {
	return Shape{kind: KindRectangle, radius: clamp(radius)}
}

// Squircle returns a continuous-corner shape with the given radius.
func Squircle(radius float64) Shape {
	return Shape{kind: KindSquircle, radius: clamp(radius)}
}

// Default returns the shape used when the host configures none: a circle
// sized to the bar height.
func Default() Shape {
	return Circle(DefaultRadius)
}

// Kind returns the shape variant.
func (s Shape) Kind() Kind {
	return s.kind
}

// Radius returns the configured corner radius. Never negative.
func (s Shape) Radius() float64 {
	return s.radius
}

func clamp(r float64) float64 {
	if r < 0 {
		return 0
	}
	return r
}

// Geometry describes the border treatment derived from a shape: the glyph
// set used to draw it plus the radius and corner family, which the renderer
// also uses to pick matching stroke borders for tabs.
type Geometry struct {
	Border     lipgloss.Border
	Radius     float64
	Continuous bool
}

// squircleBorder approximates a continuous corner: the corner glyphs bleed
// into the edges instead of turning at a quarter circle.
var squircleBorder = lipgloss.Border{
	Top:          "─",
	Bottom:       "─",
	Left:         "│",
	Right:        "│",
	TopLeft:      "╔",
	TopRight:     "╗",
	BottomLeft:   "╚",
	BottomRight:  "╝",
	MiddleLeft:   "├",
	MiddleRight:  "┤",
	Middle:       "┼",
	MiddleTop:    "┬",
	MiddleBottom: "┴",
}

// BorderFor resolves a shape to its border geometry. Pure; no error
// conditions. Circle and rectangle share the rounded-rect family (a circle
// is a rounded rect whose radius covers the fixed bar height); squircle
// gets the continuous family. A zero radius degrades to square corners.
func BorderFor(s Shape) Geometry {
	switch s.kind {
	case KindCircle, KindRectangle:
		border := lipgloss.RoundedBorder()
		if s.radius == 0 {
			border = lipgloss.NormalBorder()
		}
		return Geometry{Border: border, Radius: s.radius}
	case KindSquircle:
		return Geometry{Border: squircleBorder, Radius: s.radius, Continuous: true}
	}
	// Unreachable: Kind is a closed set.
	return Geometry{Border: lipgloss.RoundedBorder(), Radius: s.radius}
}
