package app

import (
	"sync"
	"time"

	"github.com/example/altigreen/internal/ports/secondary"
)

// DefaultToastDuration is the fixed display window before auto-dismiss.
const DefaultToastDuration = 3 * time.Second

// ToastEmitter presents a transient, self-dismissing confirmation once per
// completed sync. A Show while the previous toast is still visible restarts
// the display window (cancel-and-replace, no stacked hide timers).
type ToastEmitter struct {
	mu       sync.Mutex
	visible  bool
	sink     secondary.ToastSink
	sched    secondary.Scheduler
	duration time.Duration
	timer    secondary.Timer
}

// NewToastEmitter creates an emitter rendering through sink.
func NewToastEmitter(sink secondary.ToastSink, sched secondary.Scheduler) *ToastEmitter {
	return &ToastEmitter{
		sink:     sink,
		sched:    sched,
		duration: DefaultToastDuration,
	}
}

// SetDuration overrides the display window. Used by wiring and tests.
func (e *ToastEmitter) SetDuration(d time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.duration = d
}

// Visible reports whether a toast is currently displayed.
func (e *ToastEmitter) Visible() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.visible
}

// Show makes the notification visible and schedules the auto-dismiss.
func (e *ToastEmitter) Show(message string) {
	e.mu.Lock()
	if e.timer != nil {
		e.timer.Stop()
	}
	e.visible = true
	e.timer = e.sched.AfterFunc(e.duration, e.hide)
	e.mu.Unlock()

	e.sink.Render(message)
}

func (e *ToastEmitter) hide() {
	e.mu.Lock()
	if !e.visible {
		e.mu.Unlock()
		return
	}
	e.visible = false
	e.timer = nil
	e.mu.Unlock()

	e.sink.Clear()
}
