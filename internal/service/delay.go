package service

import "time"

// pause simulates collaborator latency. Mock calls always run to
// completion once triggered; there is no abort path for an in-flight
// call, so the delay is unconditional.
func pause(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
