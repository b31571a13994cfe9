// Package clock provides the real-time implementation of the scheduler port.
package clock

import (
	"time"

	"github.com/example/altigreen/internal/ports/secondary"
)

// Scheduler schedules callbacks on the wall clock.
type Scheduler struct{}

// NewScheduler creates a new Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// AfterFunc runs fn after d elapses. The returned timer can cancel the call.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) secondary.Timer {
	return &timerHandle{timer: time.AfterFunc(d, fn)}
}

type timerHandle struct {
	timer *time.Timer
}

func (h *timerHandle) Stop() bool {
	return h.timer.Stop()
}

// Ensure Scheduler implements the interface
var _ secondary.Scheduler = (*Scheduler)(nil)
