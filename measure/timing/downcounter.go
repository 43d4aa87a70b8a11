package timing

import "time"

// DownCounter emulates a reload-style CPU timer on top of another counter:
// it counts from Period down to zero, then reloads Period on the next tick.
type DownCounter struct {
	src    Counter
	period uint32
	base   uint32
}

// NewDownCounter starts a down-counter driven by src. A zero period uses the
// full 32-bit range.
func NewDownCounter(src Counter, period uint32) *DownCounter {
	if period == 0 {
		period = ^uint32(0)
	}
	return &DownCounter{
		src:    src,
		period: period,
		base:   src.Read(),
	}
}

// Read returns the current down-counter value.
func (d *DownCounter) Read() uint32 {
	ticks := ElapsedTicks(d.base, d.src.Read(), d.src.Direction())
	if d.period == ^uint32(0) {
		return d.period - ticks
	}
	return d.period - ticks%(d.period+1)
}

// Direction reports CountDown.
func (d *DownCounter) Direction() Direction { return CountDown }

// Tick returns the source tick.
func (d *DownCounter) Tick() time.Duration { return d.src.Tick() }

// Period returns the reload value.
func (d *DownCounter) Period() uint32 { return d.period }
