package app

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/example/altigreen/internal/ports/secondary"
)

// ConnectivityListener is notified on every connectivity transition.
type ConnectivityListener interface {
	ConnectivityChanged(online bool)
}

// ConnectivityMonitor tracks whether the runtime currently has network
// connectivity. It transitions only in response to delivered events (the
// `alti net` commands stand in for the host environment's online/offline
// notifications) and never polls. The flag persists so it survives across
// command invocations.
type ConnectivityMonitor struct {
	mu        sync.Mutex
	online    bool
	snapshots secondary.SnapshotStore
	listeners []ConnectivityListener
}

// NewConnectivityMonitor loads the persisted flag. A runtime that has never
// recorded a transition starts online.
func NewConnectivityMonitor(ctx context.Context, snapshots secondary.SnapshotStore) *ConnectivityMonitor {
	m := &ConnectivityMonitor{
		online:    true,
		snapshots: snapshots,
	}
	if data, err := snapshots.Get(ctx, secondary.SnapshotConnectivity); err == nil {
		var online bool
		if err := json.Unmarshal(data, &online); err == nil {
			m.online = online
		}
	}
	return m
}

// AddListener registers a transition listener. Wiring happens before the
// first command runs.
func (m *ConnectivityMonitor) AddListener(l ConnectivityListener) {
	m.listeners = append(m.listeners, l)
}

// Online returns the current connectivity flag.
func (m *ConnectivityMonitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// SetOnline delivers a connectivity event. Listeners fire only on an actual
// transition; restating the current state does nothing.
func (m *ConnectivityMonitor) SetOnline(ctx context.Context, online bool) error {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return nil
	}
	m.online = online
	m.mu.Unlock()

	if data, err := json.Marshal(online); err == nil {
		// Persistence of the flag is best-effort; the in-process state is
		// already transitioned
		_ = m.snapshots.Put(ctx, secondary.SnapshotConnectivity, data)
	}

	for _, l := range m.listeners {
		l.ConnectivityChanged(online)
	}
	return nil
}
