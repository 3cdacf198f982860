// Package overlay composes one rendered string over another without
// disturbing layout. The nav bar uses it to hang a badge off an icon's
// top-right corner, to reveal tooltips above the bar, and to lay shadow
// rows under floating surfaces.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose overlays content on top of a base view. Non-space characters in
// overlay replace the base at the same position. ANSI-aware, so styled
// text survives the splice.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		// Strip ANSI to find visible content bounds
		plainOverlay := ansi.Strip(overlayLine)
		if strings.TrimSpace(plainOverlay) == "" {
			continue // empty line (visually)
		}

		startCol := 0
		for _, r := range plainOverlay {
			if r != ' ' {
				break
			}
			startCol++
		}

		trimmed := strings.TrimRight(plainOverlay, " ")
		endCol := startCol + ansi.StringWidth(trimmed[startCol:])

		// Extract the overlay content (with ANSI codes intact)
		overlayContent := ansi.Cut(overlayLine, startCol, endCol)

		baseLine := baseLines[i]
		baseWidth := ansi.StringWidth(ansi.Strip(baseLine))
		if baseWidth < width {
			baseLine += strings.Repeat(" ", width-baseWidth)
		}

		result := ansi.Cut(baseLine, 0, startCol) + overlayContent
		if endCol < width {
			result += ansi.Cut(baseLine, endCol, width)
		}

		baseLines[i] = result
	}

	return strings.Join(baseLines, "\n")
}

// AtOffset shifts content right by col columns and down by row rows so it
// can be composed at a fixed positive offset, the way a badge overlaps an
// icon's corner without affecting the icon's layout bounds.
func AtOffset(content string, col, row int) string {
	if col < 0 {
		col = 0
	}
	if row < 0 {
		row = 0
	}
	indent := strings.Repeat(" ", col)
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = indent + line
	}
	return strings.Repeat("\n", row) + strings.Join(lines, "\n")
}
