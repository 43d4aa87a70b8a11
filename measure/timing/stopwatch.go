package timing

import "time"

// Measurement is the result of one bracketed call.
type Measurement struct {
	Start uint32
	End   uint32
	Ticks uint32
	Tick  time.Duration
}

// Elapsed returns the measured duration.
func (m Measurement) Elapsed() time.Duration {
	return time.Duration(m.Ticks) * m.Tick
}

// Micros returns the measured duration in microseconds.
func (m Measurement) Micros() float64 {
	return float64(m.Elapsed()) / float64(time.Microsecond)
}

// Stopwatch brackets one operation with two counter reads.
type Stopwatch struct {
	counter Counter
	start   uint32
}

// NewStopwatch returns a stopwatch reading c.
func NewStopwatch(c Counter) *Stopwatch {
	return &Stopwatch{counter: c}
}

// Start captures the start reading. Call it immediately before the
// measured operation.
func (s *Stopwatch) Start() {
	s.start = s.counter.Read()
}

// Stop captures the end reading and returns the measurement. Call it
// immediately after the measured operation returns.
func (s *Stopwatch) Stop() Measurement {
	end := s.counter.Read()
	return Measurement{
		Start: s.start,
		End:   end,
		Ticks: ElapsedTicks(s.start, end, s.counter.Direction()),
		Tick:  s.counter.Tick(),
	}
}

// Measure brackets fn with reads of c.
func Measure(c Counter, fn func()) Measurement {
	sw := Stopwatch{counter: c}
	sw.Start()
	fn()
	return sw.Stop()
}
