package dock

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"github.com/llehouerou/dockbar/glass"
	"github.com/llehouerou/dockbar/internal/overlay"
	"github.com/llehouerou/dockbar/internal/render"
	"github.com/llehouerou/dockbar/shape"
	"github.com/llehouerou/dockbar/theme"
)

// Cell projection. Geometry is resolved in units and only projected to
// terminal cells here.
const (
	unitsPerCellX = 4
	// Icon glyphs cannot scale, so icon size maps to the width of the box
	// the glyph is centered in.
	iconCellDivisor = 8
)

func cellsX(units float64) int {
	return int(math.Round(units / unitsPerCellX))
}

func iconCells(units float64) int {
	return max(1, int(math.Round(units/iconCellDivisor)))
}

// tabFrame carries the animated values for one tab at render time. The
// container advances the tweens; the renderer only reads them.
type tabFrame struct {
	indicator    float64 // dot side or underline width, in units
	titleOpacity float64
	padX         float64 // horizontal padding, in units
}

// frameAt returns the settled frame for a selection state, used when no
// animation is in flight.
func frameAt(it Item, selected bool) tabFrame {
	vis := resolveVisibility(resolveMode(it, selected))
	return tabFrame{
		indicator:    resolveIndicator(it.indicator, selected).width,
		titleOpacity: vis.titleOpacity,
		padX:         resolvePadX(selected),
	}
}

// renderTab renders one tab from its descriptor, selection state, shape
// geometry, effective glass default and animated frame. Pure.
func renderTab(it Item, selected bool, geom shape.Geometry, barFx *glass.Effect, th *theme.Theme, fr tabFrame) string {
	fx := resolveGlass(it, barFx)
	vis := resolveVisibility(resolveMode(it, selected))
	decor := resolveDecoration(it, selected, fx, th)

	bg, ramp := tabFill(decor, selected, th)
	fg := contentColor(it, decor, selected, th)

	padX := cellsX(fr.padX)

	var out string
	if ramp != nil {
		// Ramped fills restyle the whole pill per column, so content is
		// laid out plain and colored in one pass.
		out = renderRampedPill(it, selected, vis, fg, th, fr, ramp, padX)
	} else {
		out = renderFlatPill(it, selected, vis, bg, fg, th, fr, padX)
	}

	if st := resolveStroke(it); st != nil {
		out = lipgloss.NewStyle().
			Border(geom.Border).
			BorderForeground(st.color).
			Render(out)
	}

	if m := cellsX(it.margin); m > 0 {
		out = lipgloss.NewStyle().Margin(0, m).Render(out)
	}
	return out
}

// renderFlatPill renders the tab with a single background color (or none).
func renderFlatPill(it Item, selected bool, vis visibility, bg, fg lipgloss.Color, th *theme.Theme, fr tabFrame, padX int) string {
	content := tabContent(it, selected, vis, bg, fg, th, fr, false)

	rows := strings.Split(content, "\n")
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r))
	}
	width += 2 * padX

	pill := make([]string, 0, len(rows))
	for _, r := range rows {
		line := render.Center(r, width)
		if bg != "" {
			line = lipgloss.NewStyle().Background(bg).Render(line)
		}
		pill = append(pill, line)
	}
	return strings.Join(pill, "\n")
}

// renderRampedPill renders the tab over a horizontal color ramp (gradient
// or glass fill). Content is laid out unstyled, then each row is colored
// per grapheme cluster.
func renderRampedPill(it Item, selected bool, vis visibility, fg lipgloss.Color, th *theme.Theme, fr tabFrame, ramp []lipgloss.Color, padX int) string {
	content := tabContent(it, selected, vis, "", fg, th, fr, true)

	rows := strings.Split(content, "\n")
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r))
	}
	width += 2 * padX

	pill := make([]string, 0, len(rows))
	for _, r := range rows {
		line := render.Center(r, width)
		pill = append(pill, rampRow(line, fg, selected, ramp))
	}
	return strings.Join(pill, "\n")
}

// tabFill resolves the pill background. Returns a color ramp for gradient
// and glass fills, a plain color otherwise. Glass is a selection
// affordance: unselected tabs skip the panel entirely and fall back to
// their configured unselected color.
func tabFill(decor decoration, selected bool, th *theme.Theme) (lipgloss.Color, []lipgloss.Color) {
	switch decor.kind {
	case decorGlass:
		if !selected {
			if decor.color == th.Surface {
				return "", nil
			}
			return decor.color, nil
		}
		p := decor.fx.Resolve(th.Surface, glassRampColumns)
		if len(p.Fill) > 1 {
			return "", p.Fill
		}
		return p.Solid(), nil
	case decorGradient:
		return "", theme.Ramp(glassRampColumns, decor.gradient.From, decor.gradient.To)
	case decorFlat, decorSolid:
		if decor.color == th.Surface {
			return "", nil // transparent over the bar's own fill
		}
		return decor.color, nil
	}
	return "", nil
}

// glassRampColumns is how many columns a ramped fill is sampled at before
// being stretched over the pill width.
const glassRampColumns = 8

// contentColor picks the foreground for icon and title.
func contentColor(it Item, decor decoration, selected bool, th *theme.Theme) lipgloss.Color {
	if !selected {
		return th.FgMuted
	}
	switch decor.kind {
	case decorFlat:
		// Flat fills mark selection through the indicator; content takes
		// the indicator color so the two read as one affordance.
		return resolveIndicatorColor(it, th)
	case decorGlass:
		return th.FgBase
	default:
		return th.OnPrimary
	}
}

// tabContent lays out icon, title and indicator rows. In plain mode the
// rows carry no ANSI styling so a ramped pill can restyle them wholesale.
func tabContent(it Item, selected bool, vis visibility, bg, fg lipgloss.Color, th *theme.Theme, fr tabFrame, plain bool) string {
	var iconRow, titleRow string

	if vis.icon {
		iconRow = renderIcon(it, selected, fg, plain)
	}
	if vis.title {
		titleRow = renderTitle(it, selected, bg, fg, th, fr.titleOpacity, plain)
	}

	indicatorRow, hasSlot := renderIndicator(it, th, fr.indicator, plain)

	if it.labelPos == LabelBottom {
		rows := make([]string, 0, 3)
		if iconRow != "" {
			rows = append(rows, iconRow)
		}
		if titleRow != "" {
			rows = append(rows, titleRow)
		}
		if hasSlot {
			rows = append(rows, indicatorRow)
		}
		return lipgloss.JoinVertical(lipgloss.Center, rows...)
	}

	var row string
	switch {
	case iconRow != "" && titleRow != "":
		row = iconRow + " " + titleRow
	case iconRow != "":
		row = iconRow
	default:
		row = titleRow
	}
	if hasSlot {
		return lipgloss.JoinVertical(lipgloss.Center, row, indicatorRow)
	}
	return row
}

// renderIcon restyles the icon to the state-appropriate size and color and
// overlays the badge at the top-right corner without widening the box.
func renderIcon(it Item, selected bool, fg lipgloss.Color, plain bool) string {
	w := iconCells(resolveIconSize(it, selected))

	icon := it.icon
	if !plain {
		style := lipgloss.NewStyle().Foreground(fg)
		if selected {
			style = style.Bold(true)
		}
		icon = style.Render(icon)
	}
	row := render.Center(icon, w)

	if it.badge != "" {
		badge := it.badge
		if !plain {
			badge = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555")).Render(badge)
		}
		row = overlay.Compose(row, overlay.AtOffset(badge, w-1, 0), w)
	}
	return row
}

// renderTitle fades the title by blending its color toward the pill fill;
// zero opacity disappears into the background. In plain mode a fully
// faded title keeps its slot as spaces.
func renderTitle(it Item, selected bool, bg, fg lipgloss.Color, th *theme.Theme, opacity float64, plain bool) string {
	text := render.Truncate(it.title, 16)

	if plain {
		if opacity <= 0 {
			return strings.Repeat(" ", lipgloss.Width(text))
		}
		return text
	}

	// Flat pills cannot paint a gradient background, so a state gradient
	// shows through the title text once the fade completes.
	if it.indicator != IndicatorBackground && it.titleStyle == nil && opacity >= 1 {
		if selected && it.selectedGradient != nil {
			return theme.ApplyBoldGradient(text, it.selectedGradient.From, it.selectedGradient.To)
		}
		if !selected && it.unselectedGradient != nil {
			return theme.ApplyGradient(text, it.unselectedGradient.From, it.unselectedGradient.To)
		}
	}

	backdrop := bg
	if backdrop == "" {
		backdrop = th.Surface
	}
	c := theme.Blend(backdrop, fg, opacity)

	style := lipgloss.NewStyle().Foreground(c)
	if it.titleStyle != nil {
		style = it.titleStyle.Foreground(c)
	} else if selected {
		style = style.Bold(true)
	}
	return style.Render(text)
}

// renderIndicator draws the dot or underline at its current animated size.
// Background and none styles have no slot; dot and underline keep a
// zero-size slot so layout does not jump.
func renderIndicator(it Item, th *theme.Theme, size float64, plain bool) (string, bool) {
	geom := resolveIndicator(it.indicator, size > 0)
	if !geom.slot {
		return "", false
	}

	style := lipgloss.NewStyle().Foreground(resolveIndicatorColor(it, th))

	if geom.circular {
		var glyph string
		switch {
		case size >= dotSize/2.0:
			glyph = "●"
		case size > 0:
			glyph = "·"
		default:
			return " ", true
		}
		if plain {
			return glyph, true
		}
		return style.Render(glyph), true
	}

	w := cellsX(size)
	if w <= 0 {
		return " ", true
	}
	bar := strings.Repeat("─", w)
	if plain {
		return bar, true
	}
	return style.Render(bar), true
}

// rampRow colors a plain row per grapheme cluster, stretching the sampled
// ramp over the row width.
func rampRow(row string, fg lipgloss.Color, bold bool, ramp []lipgloss.Color) string {
	if len(ramp) == 0 {
		return row
	}

	var clusters []string
	gr := uniseg.NewGraphemes(row)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 0 {
		return row
	}

	var b strings.Builder
	for i, cluster := range clusters {
		var c lipgloss.Color
		if len(clusters) == 1 {
			c = ramp[0]
		} else {
			c = ramp[i*(len(ramp)-1)/(len(clusters)-1)]
		}
		style := lipgloss.NewStyle().Foreground(fg).Background(c)
		if bold {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(cluster))
	}
	return b.String()
}
