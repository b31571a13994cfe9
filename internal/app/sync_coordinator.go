package app

import (
	"context"
	"sync"
	"time"

	"github.com/example/altigreen/internal/ports/primary"
	"github.com/example/altigreen/internal/ports/secondary"
)

// Default simulated latencies: one time unit for an ordinary mutation sync,
// two for the deferred sync after connectivity recovery.
const (
	DefaultSyncLatency     = 1 * time.Second
	DefaultRecoveryLatency = 2 * time.Second
)

// SyncCoordinator reflects the propagation state of local mutations to a
// remote system. Remote propagation is simulated with a fixed-duration timer
// standing in for the network round trip; the simulated sync never fails.
//
// States: synced (initial and steady) -> pending (mutation while offline) ->
// syncing (simulated push in flight) -> synced. A mutation arriving while
// already syncing cancels the outstanding timer and restarts the window, so
// overlapping timers never race (last-write-wins coalescing).
type SyncCoordinator struct {
	mu              sync.Mutex
	state           string
	monitor         *ConnectivityMonitor
	snapshots       secondary.SnapshotStore
	sched           secondary.Scheduler
	toast           *ToastEmitter
	timer           secondary.Timer
	idleCh          chan struct{}
	syncLatency     time.Duration
	recoveryLatency time.Duration
}

// NewSyncCoordinator loads the persisted sync state. A state persisted as
// "syncing" belonged to a process that died mid-flight, so it degrades to
// pending and the next mutation or online edge completes it.
func NewSyncCoordinator(ctx context.Context, monitor *ConnectivityMonitor, snapshots secondary.SnapshotStore, sched secondary.Scheduler, toast *ToastEmitter) *SyncCoordinator {
	c := &SyncCoordinator{
		state:           primary.SyncSynced,
		monitor:         monitor,
		snapshots:       snapshots,
		sched:           sched,
		toast:           toast,
		syncLatency:     DefaultSyncLatency,
		recoveryLatency: DefaultRecoveryLatency,
	}
	if data, err := snapshots.Get(ctx, secondary.SnapshotSyncState); err == nil {
		switch string(data) {
		case primary.SyncPending, primary.SyncSyncing:
			c.state = primary.SyncPending
		case primary.SyncSynced:
			c.state = primary.SyncSynced
		}
	}
	return c
}

// SetLatencies overrides the simulated latencies. Used by wiring and tests.
func (c *SyncCoordinator) SetLatencies(sync, recovery time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.syncLatency = sync
	c.recoveryLatency = recovery
}

// State returns the current sync state.
func (c *SyncCoordinator) State() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// MutationApplied implements MutationListener. An online mutation enters the
// syncing window; an offline one parks in pending until connectivity returns.
func (c *SyncCoordinator) MutationApplied() {
	if c.monitor.Online() {
		c.beginSync(c.syncLatencyLocked())
		return
	}

	c.mu.Lock()
	c.state = primary.SyncPending
	c.persistLocked()
	c.mu.Unlock()
}

// ConnectivityChanged implements ConnectivityListener. The offline->online
// edge while pending triggers the deferred sync at recovery latency.
func (c *SyncCoordinator) ConnectivityChanged(online bool) {
	if !online {
		return
	}
	c.mu.Lock()
	pending := c.state == primary.SyncPending
	d := c.recoveryLatency
	c.mu.Unlock()
	if pending {
		c.beginSync(d)
	}
}

// AwaitIdle blocks until the coordinator leaves the syncing state or the
// context is done. Pending-while-offline counts as idle: nothing further can
// happen until an event arrives.
func (c *SyncCoordinator) AwaitIdle(ctx context.Context) error {
	for {
		c.mu.Lock()
		if c.state != primary.SyncSyncing {
			c.mu.Unlock()
			return nil
		}
		ch := c.idleCh
		c.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ch:
		}
	}
}

func (c *SyncCoordinator) syncLatencyLocked() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.syncLatency
}

// beginSync enters the syncing window for duration d, replacing any
// outstanding timer.
func (c *SyncCoordinator) beginSync(d time.Duration) {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
	}
	if c.state != primary.SyncSyncing {
		c.idleCh = make(chan struct{})
	}
	c.state = primary.SyncSyncing
	c.persistLocked()
	c.timer = c.sched.AfterFunc(d, c.finishSync)
	c.mu.Unlock()
}

func (c *SyncCoordinator) finishSync() {
	c.mu.Lock()
	if c.state != primary.SyncSyncing {
		// A stopped timer that fired anyway; the state machine has moved on
		c.mu.Unlock()
		return
	}
	c.state = primary.SyncSynced
	c.timer = nil
	c.persistLocked()
	if c.idleCh != nil {
		close(c.idleCh)
		c.idleCh = nil
	}
	c.mu.Unlock()

	c.toast.Show("All changes synced to cloud")
}

// persistLocked writes the state snapshot. Best-effort: the in-process state
// machine is authoritative. Callers hold the mutex.
func (c *SyncCoordinator) persistLocked() {
	_ = c.snapshots.Put(context.Background(), secondary.SnapshotSyncState, []byte(c.state))
}
