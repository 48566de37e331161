package parse

import "time"

// ResponseTracker carries the last speaker across the scan. The zero value
// has no previous speaker.
type ResponseTracker struct {
	lastSender string
	lastTime   time.Time
	started    bool
}

// Observe returns the tracker state after sender spoke at ts, and the reply
// latency in minutes when the previous message came from someone else.
// Out-of-order timestamps give negative latencies.
func (t ResponseTracker) Observe(sender string, ts time.Time) (ResponseTracker, float64, bool) {
	next := ResponseTracker{lastSender: sender, lastTime: ts, started: true}
	if !t.started || t.lastSender == sender {
		return next, 0, false
	}
	return next, ts.Sub(t.lastTime).Minutes(), true
}
