// Package theme defines the color palette and animation timing constants
// consumed by the dock renderer. The theme is passed explicitly into
// rendering code rather than read from ambient state, so components stay
// testable without a live terminal.
package theme

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the palette and timing surface the nav bar draws from.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // selection fills, indicator fallback
	OnPrimary lipgloss.Color // content drawn over Primary

	// Surfaces
	Surface   lipgloss.Color // bar backdrop
	OnSurface lipgloss.Color // content drawn over Surface

	// Text hierarchy
	FgBase   lipgloss.Color // primary text
	FgMuted  lipgloss.Color // unselected tab text
	FgSubtle lipgloss.Color // tooltips, hints

	// Borders
	Border lipgloss.Color // bar and tab strokes when none configured

	// Shadow
	Shadow lipgloss.Color // default shadow tint under floating surfaces

	// Animation timing
	DurFast   time.Duration // icon swap, indicator snap
	DurMedium time.Duration // size and fill transitions

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common bar patterns.
type Styles struct {
	Base     lipgloss.Style // default tab text
	Muted    lipgloss.Style // unselected tab text
	Subtle   lipgloss.Style // tooltip text
	Title    lipgloss.Style // selected tab title
	Selected lipgloss.Style // selected fill content
	Shadow   lipgloss.Style // shadow row under the bar
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	OnPrimary: lipgloss.Color("#1a1a1a"),

	Surface:   lipgloss.Color("#1a1a1a"),
	OnSurface: lipgloss.Color("#c0c0c0"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	Border: lipgloss.Color("#585858"),

	Shadow: lipgloss.Color("#101010"),

	DurFast:   150 * time.Millisecond,
	DurMedium: 300 * time.Millisecond,
}

// Default returns the built-in dark palette.
func Default() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Selected: lipgloss.NewStyle().
			Foreground(t.OnPrimary).
			Background(t.Primary).
			Bold(true),
		Shadow: lipgloss.NewStyle().Foreground(t.Shadow),
	}
}
