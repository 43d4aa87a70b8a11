//go:build !linux

package timing

import "time"

var epoch = time.Now()

func monotonicNanos() int64 {
	return int64(time.Since(epoch))
}
