// Package analysis runs the complete dominant-tone measurement on one
// acquisition block:
//
//	ingest -> twiddle table -> counter read -> FFT -> counter read -> magnitudes -> peaks
//
// A [Run] owns every buffer the pipeline touches (sample block, twiddle table,
// magnitude spectrum, analyzer scratch), so repeated calls do not allocate and
// no state is shared between runs. Only the FFT call is timed.
//
// A Run is not safe for concurrent use; create one per goroutine.
package analysis
