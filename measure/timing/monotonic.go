package timing

import "time"

// Monotonic is the host's monotonic clock exposed as a 32-bit up-counter
// with a one microsecond tick. It wraps roughly every 71 minutes.
type Monotonic struct{}

// NewMonotonic returns the host counter.
func NewMonotonic() Monotonic {
	return Monotonic{}
}

// Read returns the current counter value.
func (Monotonic) Read() uint32 {
	return uint32(monotonicNanos() / int64(time.Microsecond))
}

// Direction reports CountUp.
func (Monotonic) Direction() Direction { return CountUp }

// Tick reports one microsecond.
func (Monotonic) Tick() time.Duration { return time.Microsecond }
