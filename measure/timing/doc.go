// Package timing brackets a single operation with reads of a free-running
// counter and converts the tick difference into a duration.
//
// Counters are 32-bit, count either up or down, and have a fixed tick. A
// counter wrap between the two reads is assumed not to happen: the measured
// operation must be much shorter than the counter period. Elapsed ticks are
// computed with modular uint32 arithmetic, so a single wrap still yields the
// right value, but this is not relied upon.
//
// The start read, the measured call and the stop read form an ordered
// sequence; nothing else may run between them:
//
//	sw := timing.NewStopwatch(counter)
//	sw.Start()
//	fft.Forward(&block, tw)
//	m := sw.Stop()
package timing
