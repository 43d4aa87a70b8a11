package timing

import (
	"fmt"
	"time"
)

// Direction tells how a counter value evolves over time.
type Direction int

const (
	// CountUp counters increase by one every tick.
	CountUp Direction = iota
	// CountDown counters decrease by one every tick (reload-style CPU timers).
	CountDown
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case CountUp:
		return "up"
	case CountDown:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Counter is a free-running monotonic counter with a known tick.
type Counter interface {
	Read() uint32
	Direction() Direction
	Tick() time.Duration
}

// ElapsedTicks returns the ticks between two readings of a counter running
// in direction dir: start-end when counting down, end-start when counting up.
func ElapsedTicks(start, end uint32, dir Direction) uint32 {
	if dir == CountDown {
		return start - end
	}
	return end - start
}

// SequenceCounter replays a fixed list of readings, repeating the last one.
// It stands in for hardware timers in tests and simulations.
type SequenceCounter struct {
	Values []uint32
	Dir    Direction
	Period time.Duration

	next int
}

// Read returns the next scripted value.
func (s *SequenceCounter) Read() uint32 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next]
	if s.next < len(s.Values)-1 {
		s.next++
	}
	return v
}

// Direction returns the scripted counting direction.
func (s *SequenceCounter) Direction() Direction { return s.Dir }

// Tick returns Period, or one microsecond when unset.
func (s *SequenceCounter) Tick() time.Duration {
	if s.Period <= 0 {
		return time.Microsecond
	}
	return s.Period
}
