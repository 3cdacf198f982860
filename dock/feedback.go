package dock

import "io"

// Feedback is the haptic-pulse trigger fired before a tap callback when a
// tab or action button asks for it. Hosts inject an implementation; the
// bar never assumes a platform capability.
type Feedback interface {
	Pulse()
}

// Bell is a Feedback that rings the terminal bell.
type Bell struct {
	W io.Writer
}

// Pulse writes BEL.
func (b Bell) Pulse() {
	if b.W != nil {
		io.WriteString(b.W, "\a") //nolint:errcheck // feedback is best-effort
	}
}

// NopFeedback ignores pulses.
type NopFeedback struct{}

// Pulse does nothing.
func (NopFeedback) Pulse() {}
