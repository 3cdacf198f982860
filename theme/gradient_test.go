package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRampEndpoints(t *testing.T) {
	ramp := Ramp(5, lipgloss.Color("#ff0000"), lipgloss.Color("#0000ff"))
	require.Len(t, ramp, 5)
	assert.Equal(t, lipgloss.Color("#ff0000"), ramp[0])
	assert.Equal(t, lipgloss.Color("#0000ff"), ramp[4])
}

func TestRampDegenerateSizes(t *testing.T) {
	assert.Nil(t, Ramp(0, lipgloss.Color("#ff0000"), lipgloss.Color("#0000ff")))
	one := Ramp(1, lipgloss.Color("#ff0000"), lipgloss.Color("#0000ff"))
	require.Len(t, one, 1)
	assert.Equal(t, lipgloss.Color("#ff0000"), one[0])
}

func TestBlendEndpoints(t *testing.T) {
	bg := lipgloss.Color("#000000")
	fg := lipgloss.Color("#ffffff")

	assert.Equal(t, bg, Blend(bg, fg, 0))
	assert.Equal(t, fg, Blend(bg, fg, 1))

	mid := Blend(bg, fg, 0.5)
	assert.NotEqual(t, bg, mid)
	assert.NotEqual(t, fg, mid)
}

func TestApplyGradientEmptyText(t *testing.T) {
	assert.Equal(t, "", ApplyGradient("", lipgloss.Color("#ff0000"), lipgloss.Color("#0000ff")))
}

func TestDefaultThemeStylesBuiltOnce(t *testing.T) {
	th := Default()
	assert.Same(t, th.S(), th.S())
	assert.NotZero(t, th.DurFast)
	assert.NotZero(t, th.DurMedium)
}
