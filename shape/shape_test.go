package shape

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBorderFor(t *testing.T) {
	tests := []struct {
		name       string
		shape      Shape
		radius     float64
		continuous bool
		corner     string
	}{
		{
			name:       "circle uses rounded corners",
			shape:      Circle(30),
			radius:     30,
			continuous: false,
			corner:     lipgloss.RoundedBorder().TopLeft,
		},
		{
			name:       "rectangle uses rounded corners",
			shape:      Rectangle(12),
			radius:     12,
			continuous: false,
			corner:     lipgloss.RoundedBorder().TopLeft,
		},
		{
			name:       "squircle uses continuous corners",
			shape:      Squircle(12),
			radius:     12,
			continuous: true,
			corner:     squircleBorder.TopLeft,
		},
		{
			name:       "zero radius rectangle degrades to square corners",
			shape:      Rectangle(0),
			radius:     0,
			continuous: false,
			corner:     lipgloss.NormalBorder().TopLeft,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := BorderFor(tt.shape)
			assert.Equal(t, tt.radius, g.Radius)
			assert.Equal(t, tt.continuous, g.Continuous)
			assert.Equal(t, tt.corner, g.Border.TopLeft)
		})
	}
}

func TestNegativeRadiusClamped(t *testing.T) {
	for _, s := range []Shape{Circle(-1), Rectangle(-5), Squircle(-0.5)} {
		assert.Equal(t, 0.0, s.Radius())
	}
}

func TestDefaultIsCircle(t *testing.T) {
	s := Default()
	assert.Equal(t, KindCircle, s.Kind())
	assert.Equal(t, float64(DefaultRadius), s.Radius())
}
