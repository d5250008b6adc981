package clock

import "time"

// Clock provides time-related functions that can be mocked for testing
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using actual system time
type RealClock struct{}

// Now returns the current system time
func (RealClock) Now() time.Time {
	return time.Now()
}

// Fixed is a Clock frozen at a single instant. Conversions anchored to a
// Fixed clock are fully deterministic.
type Fixed time.Time

// Now returns the frozen instant
func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// Func adapts an ordinary function to the Clock interface
type Func func() time.Time

// Now calls f
func (f Func) Now() time.Time {
	return f()
}

var (
	_ Clock = RealClock{}
	_ Clock = Fixed{}
	_ Clock = Func(nil)
)
