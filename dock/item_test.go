package dock

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItemRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		title string
		icon  string
		onTap func()
	}{
		{"missing title", "", "⌂", func() {}},
		{"missing icon", "Home", "", func() {}},
		{"missing callback", "Home", "⌂", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewItem(tt.title, tt.icon, tt.onTap)
			assert.Error(t, err)
		})
	}

	it, err := NewItem("Home", "⌂", func() {})
	require.NoError(t, err)
	assert.Equal(t, "Home", it.Title())
	assert.Equal(t, "⌂", it.Icon())
}

func TestWithCopiesAndLeavesOriginalUntouched(t *testing.T) {
	orig := testItem(t,
		WithSelectedColor(lipgloss.Color("#ff0000")),
		WithTooltip("go home"),
		WithIndicator(IndicatorDot),
	)

	derived := orig.With(
		WithTooltip("somewhere else"),
		WithIndicator(IndicatorUnderline),
	)

	// Overridden fields take the new value.
	assert.Equal(t, "somewhere else", derived.Tooltip())
	assert.Equal(t, IndicatorUnderline, derived.indicator)

	// Untouched fields keep the original value.
	require.NotNil(t, derived.selectedColor)
	assert.Equal(t, lipgloss.Color("#ff0000"), *derived.selectedColor)
	assert.Equal(t, "Home", derived.Title())

	// The original is unmodified.
	assert.Equal(t, "go home", orig.Tooltip())
	assert.Equal(t, IndicatorDot, orig.indicator)
}

func TestItemDefaults(t *testing.T) {
	it := testItem(t)
	assert.Equal(t, float64(defaultIconSize), resolveIconSize(it, false))
	assert.Equal(t, float64(defaultSelectedIconSize), resolveIconSize(it, true))
	assert.Equal(t, IndicatorBackground, it.indicator)
	assert.Equal(t, LabelRight, it.labelPos)
	assert.False(t, it.Haptics())
	assert.Nil(t, it.Action())
}

func TestActionButtonEffectiveSize(t *testing.T) {
	assert.Equal(t, 0.0, (*ActionButton)(nil).EffectiveSize())

	a := NewActionButton("+", func() {})
	assert.Equal(t, float64(DefaultActionSize), a.EffectiveSize())

	a.Size = 48
	assert.Equal(t, 48.0, a.EffectiveSize())

	a.Mini = true
	assert.Equal(t, float64(miniActionSize), a.EffectiveSize())
}
