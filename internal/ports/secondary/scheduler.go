package secondary

import "time"

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the callback was still
	// pending (false means it already fired or was stopped).
	Stop() bool
}

// Scheduler defines the interface for deferred callbacks. The simulated sync
// round trip and the toast display window are the only time-based suspensions
// in the system; both schedule through this port so tests can fire timers
// deterministically.
type Scheduler interface {
	// AfterFunc runs fn after duration d, returning a handle that can cancel
	// it. Callers replace an outstanding timer rather than stacking a second
	// one.
	AfterFunc(d time.Duration, fn func()) Timer
}
