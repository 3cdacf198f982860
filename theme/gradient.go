package theme

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyGradient renders text with a horizontal foreground color gradient.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	return applyGradient(text, false, from, to)
}

// ApplyBoldGradient renders bold text with a horizontal color gradient.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	return applyGradient(text, true, from, to)
}

func applyGradient(text string, bold bool, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	// Split into grapheme clusters for proper unicode handling
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	if len(clusters) == 0 {
		return ""
	}

	if len(clusters) == 1 {
		style := lipgloss.NewStyle().Foreground(from)
		if bold {
			style = style.Bold(true)
		}
		return style.Render(text)
	}

	colors := Ramp(len(clusters), from, to)

	var b strings.Builder
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().Foreground(colors[i])
		if bold {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(cluster))
	}

	return b.String()
}

// Ramp returns size colors blended between from and to. Blending is done in
// HCL color space for perceptually uniform transitions. Used both for
// gradient text and for gradient panel fills sampled column by column.
func Ramp(size int, from, to lipgloss.Color) []lipgloss.Color {
	if size < 1 {
		return nil
	}
	if size == 1 {
		return []lipgloss.Color{from}
	}

	c1, _ := colorful.MakeColor(toColor(from))
	c2, _ := colorful.MakeColor(toColor(to))

	colors := make([]lipgloss.Color, size)
	for i := range size {
		t := float64(i) / float64(size-1)
		colors[i] = lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
	}

	return colors
}

// Blend mixes fg over bg at the given opacity (0 = bg, 1 = fg) in HCL
// space. The renderer uses this for glass tinting and for title fades,
// where opacity maps to how far the title color has moved off the backdrop.
func Blend(bg, fg lipgloss.Color, opacity float64) lipgloss.Color {
	if opacity <= 0 {
		return bg
	}
	if opacity >= 1 {
		return fg
	}
	c1, _ := colorful.MakeColor(toColor(bg))
	c2, _ := colorful.MakeColor(toColor(fg))
	return lipgloss.Color(c1.BlendHcl(c2, opacity).Clamped().Hex())
}

// toColor converts a lipgloss.Color to a color.Color.
func toColor(c lipgloss.Color) color.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		col, err := colorful.Hex(hex)
		if err == nil {
			return col
		}
	}
	// Fallback for ANSI colors - return a neutral gray
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}
