package dock

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/dockbar/anim"
	"github.com/llehouerou/dockbar/glass"
	"github.com/llehouerou/dockbar/theme"
)

// This file holds the resolution tables: every optional-field fallback
// chain in the bar is a pure function here, evaluated top to bottom, so
// precedence rules stay auditable separately from layout code.

// visibility is the derived content state for a display mode.
type visibility struct {
	icon         bool
	title        bool
	titleOpacity float64
}

// resolveVisibility maps the effective display mode to content visibility.
func resolveVisibility(mode DisplayMode) visibility {
	switch mode {
	case IconOnly:
		return visibility{icon: true, title: false, titleOpacity: 0}
	case TitleOnly:
		return visibility{icon: false, title: true, titleOpacity: 1}
	default:
		return visibility{icon: true, title: true, titleOpacity: 1}
	}
}

// resolveMode picks the display mode for the selection state.
func resolveMode(it Item, selected bool) DisplayMode {
	if selected {
		return it.selectedMode
	}
	return it.unselectedMode
}

// resolveGlass picks the effective glass effect: the tab override wins,
// then the bar-level default, then none.
func resolveGlass(it Item, barFx *glass.Effect) *glass.Effect {
	if it.glassFx != nil {
		return it.glassFx
	}
	return barFx
}

// decorKind tags the resolved tab background treatment.
type decorKind int

const (
	decorFlat     decorKind = iota // unselected fill only, indicator drawn separately
	decorGlass                     // handled by the glass wrapper
	decorGradient                  // gradient fill for the current state
	decorSolid                     // solid state color with theme fallback
)

// decoration is the resolved background treatment of one tab.
type decoration struct {
	kind     decorKind
	color    lipgloss.Color
	gradient *glass.Gradient
	fx       *glass.Effect
}

// resolveDecoration applies the decoration precedence, first match wins:
// non-background indicators flatten the fill, then glass, then the state
// gradient, then the state color with theme fallback.
func resolveDecoration(it Item, selected bool, fx *glass.Effect, th *theme.Theme) decoration {
	if it.indicator != IndicatorBackground {
		c := th.Surface
		if it.unselectedColor != nil {
			c = *it.unselectedColor
		}
		return decoration{kind: decorFlat, color: c}
	}

	if fx != nil {
		// The unselected fill still applies under glass; the panel only
		// covers the selected tab.
		c := th.Surface
		if it.unselectedColor != nil {
			c = *it.unselectedColor
		}
		return decoration{kind: decorGlass, fx: fx, color: c}
	}

	if selected && it.selectedGradient != nil {
		return decoration{kind: decorGradient, gradient: it.selectedGradient}
	}
	if !selected && it.unselectedGradient != nil {
		return decoration{kind: decorGradient, gradient: it.unselectedGradient}
	}

	if selected {
		c := th.Primary
		if it.selectedColor != nil {
			c = *it.selectedColor
		}
		return decoration{kind: decorSolid, color: c}
	}
	c := th.Surface
	if it.unselectedColor != nil {
		c = *it.unselectedColor
	}
	return decoration{kind: decorSolid, color: c}
}

// stroke is a resolved tab border.
type stroke struct {
	color lipgloss.Color
	width float64
}

// resolveStroke returns the tab border, or nil when either color or width
// is missing.
func resolveStroke(it Item) *stroke {
	if it.borderColor == nil || it.borderWidth <= 0 {
		return nil
	}
	return &stroke{color: *it.borderColor, width: it.borderWidth}
}

// resolveIndicatorColor falls back indicator color → selected color →
// theme primary.
func resolveIndicatorColor(it Item, th *theme.Theme) lipgloss.Color {
	if it.indicatorColor != nil {
		return *it.indicatorColor
	}
	if it.selectedColor != nil {
		return *it.selectedColor
	}
	return th.Primary
}

// indicatorGeom is the indicator's target geometry in units.
type indicatorGeom struct {
	width    float64
	height   float64
	circular bool
	// slot is true when the style reserves layout space even at zero size.
	slot bool
}

// resolveIndicator returns the indicator geometry for a style and
// selection state. Dot and underline animate between these targets;
// background and none render nothing but keep a zero-size slot so layout
// stays stable.
func resolveIndicator(style IndicatorStyle, selected bool) indicatorGeom {
	switch style {
	case IndicatorDot:
		if selected {
			return indicatorGeom{width: dotSize, height: dotSize, circular: true, slot: true}
		}
		return indicatorGeom{circular: true, slot: true}
	case IndicatorUnderline:
		if selected {
			return indicatorGeom{width: underlineWidth, height: underlineHeight, slot: true}
		}
		return indicatorGeom{height: underlineHeight, slot: true}
	default:
		return indicatorGeom{}
	}
}

// resolveIconSize returns the icon size in units for the selection state.
func resolveIconSize(it Item, selected bool) float64 {
	if selected {
		return it.selectedIconSize
	}
	return it.iconSize
}

// resolvePadX returns the horizontal padding target in units. Padding
// shrinks on selection to visually tighten the filled pill.
func resolvePadX(selected bool) float64 {
	if selected {
		return padSelectedX
	}
	return padUnselectedX
}

// resolvePadY returns the vertical padding in units for a label position.
func resolvePadY(p LabelPosition) float64 {
	if p == LabelBottom {
		return padBottomY
	}
	return padRightY
}

// resolveDuration returns the transition duration for this tab: its own
// override, else the theme's medium duration.
func resolveDuration(it Item, th *theme.Theme) time.Duration {
	if it.animDuration > 0 {
		return it.animDuration
	}
	if th.DurMedium > 0 {
		return th.DurMedium
	}
	return anim.Medium
}

// resolveCurve returns the transition curve for this tab.
func resolveCurve(it Item) anim.Curve {
	if it.animCurve != nil {
		return it.animCurve
	}
	return anim.EaseInOut
}

// titleDuration is the title fade duration: the effective duration plus
// the fixed stagger that desynchronizes title motion from icon and
// indicator motion.
func titleDuration(it Item, th *theme.Theme) time.Duration {
	return resolveDuration(it, th) + anim.TitleStagger
}
