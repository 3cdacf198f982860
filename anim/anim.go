// Package anim provides the tween abstraction driving nav bar transitions.
// A tween holds a current and a target value and is advanced by the host's
// frame clock; changing the target mid-flight retargets from the current
// interpolated value, so rapid input changes never need cancellation.
package anim

import "time"

// Standard durations shared across bar transitions.
const (
	// Fast is used for icon swaps and indicator snaps.
	Fast = 150 * time.Millisecond
	// Medium is the shared default for size and fill transitions.
	Medium = 300 * time.Millisecond
	// TitleStagger is added to the effective duration for title fades so
	// title motion trails icon/indicator motion.
	TitleStagger = 200 * time.Millisecond
)

// Curve maps normalized elapsed time [0,1] to normalized progress [0,1].
type Curve func(t float64) float64

// Linear progresses at constant speed.
func Linear(t float64) float64 { return t }

// EaseOut decelerates toward the target.
func EaseOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseInOut accelerates then decelerates. This is the shared default curve.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Tween interpolates a float value toward a target over a duration.
type Tween struct {
	from    float64
	current float64
	target  float64

	elapsed  time.Duration
	duration time.Duration
	curve    Curve
}

// New returns a settled tween holding value.
func New(value float64) Tween {
	return Tween{from: value, current: value, target: value, curve: EaseInOut}
}

// Value returns the current interpolated value.
func (t Tween) Value() float64 { return t.current }

// Target returns the value the tween is heading toward.
func (t Tween) Target() float64 { return t.target }

// Done reports whether the tween has reached its target.
func (t Tween) Done() bool { return t.current == t.target }

// Snap jumps to value with no animation.
func (t *Tween) Snap(value float64) {
	t.from = value
	t.current = value
	t.target = value
	t.elapsed = 0
}

// Retarget redirects the tween toward target over duration, starting from
// the current interpolated value. Retargeting to the current target is a
// no-op so in-flight motion is not restarted.
func (t *Tween) Retarget(target float64, duration time.Duration, curve Curve) {
	if target == t.target {
		return
	}
	if curve == nil {
		curve = EaseInOut
	}
	t.from = t.current
	t.target = target
	t.elapsed = 0
	t.duration = duration
	t.curve = curve
	if duration <= 0 {
		t.current = target
		t.from = target
	}
}

// Advance moves the tween forward by dt and returns the new value.
func (t *Tween) Advance(dt time.Duration) float64 {
	if t.Done() {
		return t.current
	}
	t.elapsed += dt
	if t.elapsed >= t.duration || t.duration <= 0 {
		t.current = t.target
		t.from = t.target
		return t.current
	}
	frac := float64(t.elapsed) / float64(t.duration)
	t.current = t.from + (t.target-t.from)*t.curve(frac)
	return t.current
}
