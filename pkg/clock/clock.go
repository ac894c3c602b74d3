package clock

import "time"

// Clock abstracts "now" so temporal rules (attendance, the 24-hour
// cancellation window, the slot horizon) stay testable without the wall clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System returns the real wall clock.
func System() Clock {
	return systemClock{}
}

// Fixed returns a clock frozen at t. Intended for tests.
func Fixed(t time.Time) Clock {
	return fixedClock{t}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}
