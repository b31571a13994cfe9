package primary

import "context"

// Sync states for the local change propagation indicator.
const (
	SyncSynced  = "synced"
	SyncPending = "pending"
	SyncSyncing = "syncing"
)

// SyncStatus reports the current sync and connectivity state.
type SyncStatus struct {
	State  string
	Online bool
}

// SyncService is the primary port for the sync coordinator and connectivity
// monitor.
//
// The coordinator reflects the propagation state of local mutations to a
// remote system. Remote propagation is simulated with a fixed-duration timer;
// the simulated sync never fails.
type SyncService interface {
	// Status returns the current sync state and connectivity flag.
	Status(ctx context.Context) (*SyncStatus, error)

	// SetOnline delivers a connectivity transition. Flipping to online while
	// a sync is pending triggers the deferred sync.
	SetOnline(ctx context.Context, online bool) error

	// AwaitIdle blocks until the coordinator leaves the syncing state or the
	// context is done. Offline pending state counts as idle.
	AwaitIdle(ctx context.Context) error
}
