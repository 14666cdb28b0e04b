// Package clock provides the monotonic microsecond deadline helpers the
// framers and the PS/2 PHY use to detect idle timeouts, standing in for
// the firmware's micros()-based is_micros_timed_out.
package clock

import "time"

var start = time.Now()

// NowMicros returns a monotonically increasing microsecond counter,
// analogous to the firmware's micros().
func NowMicros() uint64 {
	return uint64(time.Since(start).Microseconds())
}

// TimedOut reports whether at least timeoutUs microseconds have elapsed
// since the NowMicros() reading in since, accounting for a single counter
// wraparound the way the firmware's unsigned-subtraction idiom does.
func TimedOut(since uint64, timeoutUs uint64) bool {
	return NowMicros()-since >= timeoutUs
}
