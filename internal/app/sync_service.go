package app

import (
	"context"

	"github.com/example/altigreen/internal/ports/primary"
)

// SyncServiceImpl implements the SyncService interface by composing the
// connectivity monitor and the sync coordinator.
type SyncServiceImpl struct {
	monitor     *ConnectivityMonitor
	coordinator *SyncCoordinator
}

// NewSyncService creates a new SyncService over the given monitor and
// coordinator.
func NewSyncService(monitor *ConnectivityMonitor, coordinator *SyncCoordinator) *SyncServiceImpl {
	return &SyncServiceImpl{
		monitor:     monitor,
		coordinator: coordinator,
	}
}

// Status returns the current sync state and connectivity flag.
func (s *SyncServiceImpl) Status(ctx context.Context) (*primary.SyncStatus, error) {
	return &primary.SyncStatus{
		State:  s.coordinator.State(),
		Online: s.monitor.Online(),
	}, nil
}

// SetOnline delivers a connectivity transition to the monitor.
func (s *SyncServiceImpl) SetOnline(ctx context.Context, online bool) error {
	return s.monitor.SetOnline(ctx, online)
}

// AwaitIdle blocks until the coordinator leaves the syncing state.
func (s *SyncServiceImpl) AwaitIdle(ctx context.Context) error {
	return s.coordinator.AwaitIdle(ctx)
}

// Ensure SyncServiceImpl implements the interface
var _ primary.SyncService = (*SyncServiceImpl)(nil)
