package typetween

import (
	"fmt"
	"os"
	"time"
)

// tickStats holds per-tick metrics. Only populated when the Manager is in
// debug mode.
type tickStats struct {
	ticked   int
	reaped   int
	deferred int
	live     int
	tickTime time.Duration
}

// SetDebugMode enables or disables debug mode. When enabled, animations that
// fail validation are reported as they are added, large live counts are
// flagged, and per-tick stats are logged to stderr.
func (m *Manager) SetDebugMode(enabled bool) {
	m.debug = enabled
}

// debugLog prints per-tick stats to stderr.
func (m *Manager) debugLog(stats tickStats) {
	if !m.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[typetween] ticked: %d | reaped: %d | deferred: %d | live: %d | tick: %v\n",
		stats.ticked, stats.reaped, stats.deferred, stats.live, stats.tickTime)
}

// debugCheckAnimation warns on stderr when an animation carries
// configuration that Tick will turn into NaN or Inf.
func debugCheckAnimation(id ID, a Animation) {
	v, ok := a.(interface{ Validate() error })
	if !ok {
		return
	}
	if err := v.Validate(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[typetween] warning: animation %d: %v\n", id, err)
	}
}

// debugCheckLiveCount warns on stderr when a manager owns more animations
// than the threshold, which usually means finished-but-repeating tweens are
// never removed.
const debugMaxLive = 10000

func debugCheckLiveCount(n int) {
	if n > debugMaxLive {
		_, _ = fmt.Fprintf(os.Stderr, "[typetween] warning: %d live animations (threshold %d)\n",
			n, debugMaxLive)
	}
}
