package app

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/example/altigreen/internal/ports/primary"
	"github.com/example/altigreen/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockSnapshotStore implements secondary.SnapshotStore for testing.
type mockSnapshotStore struct {
	data     map[string][]byte
	getErr   error
	putErr   error
	putCount int
}

func newMockSnapshotStore() *mockSnapshotStore {
	return &mockSnapshotStore{data: make(map[string][]byte)}
}

func (m *mockSnapshotStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if value, ok := m.data[key]; ok {
		return value, nil
	}
	return nil, secondary.ErrSnapshotNotFound
}

func (m *mockSnapshotStore) Put(ctx context.Context, key string, value []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.putCount++
	m.data[key] = value
	return nil
}

// mockLogWriter implements secondary.LogWriter for testing.
type mockLogWriter struct {
	creates []string
	updates []string
}

func (m *mockLogWriter) LogCreate(ctx context.Context, entityType, entityID string) error {
	m.creates = append(m.creates, entityID)
	return nil
}

func (m *mockLogWriter) LogUpdate(ctx context.Context, entityType, entityID, fieldName, oldValue, newValue string) error {
	m.updates = append(m.updates, entityID+":"+fieldName+":"+oldValue+"->"+newValue)
	return nil
}

// mockListener counts mutation notifications.
type mockListener struct {
	notified int
}

func (m *mockListener) MutationApplied() {
	m.notified++
}

// ============================================================================
// Test Helper
// ============================================================================

func newTestWorkOrderService(t *testing.T) (*WorkOrderServiceImpl, *mockSnapshotStore, *mockLogWriter, *mockListener) {
	t.Helper()
	snapshots := newMockSnapshotStore()
	logWriter := &mockLogWriter{}
	service, err := NewWorkOrderService(context.Background(), snapshots, logWriter)
	if err != nil {
		t.Fatalf("NewWorkOrderService failed: %v", err)
	}
	listener := &mockListener{}
	service.AddListener(listener)
	return service, snapshots, logWriter, listener
}

// ============================================================================
// Load Tests
// ============================================================================

func TestNewWorkOrderService_SeedsWhenSnapshotAbsent(t *testing.T) {
	service, snapshots, _, _ := newTestWorkOrderService(t)

	orders, err := service.ListWorkOrders(context.Background(), primary.WorkOrderFilters{})
	if err != nil {
		t.Fatalf("ListWorkOrders failed: %v", err)
	}
	if len(orders) != 4 {
		t.Fatalf("expected 4 seed orders, got %d", len(orders))
	}
	if orders[0].ID != "WO-204" {
		t.Errorf("expected first seed WO-204, got %s", orders[0].ID)
	}

	// Seeds are written through to the snapshot
	if _, ok := snapshots.data[secondary.SnapshotWorkOrders]; !ok {
		t.Error("expected seed sequence persisted")
	}
}

func TestNewWorkOrderService_SeedsWhenSnapshotCorrupt(t *testing.T) {
	snapshots := newMockSnapshotStore()
	snapshots.data[secondary.SnapshotWorkOrders] = []byte("{not json")

	service, err := NewWorkOrderService(context.Background(), snapshots, &mockLogWriter{})
	if err != nil {
		t.Fatalf("NewWorkOrderService failed: %v", err)
	}

	orders, _ := service.ListWorkOrders(context.Background(), primary.WorkOrderFilters{})
	if len(orders) != 4 {
		t.Errorf("expected seed fallback on corrupt snapshot, got %d orders", len(orders))
	}
}

func TestNewWorkOrderService_LoadsExistingSnapshot(t *testing.T) {
	snapshots := newMockSnapshotStore()
	stored := []*secondary.WorkOrderRecord{
		{ID: "WO-900", AssetName: "Pump A", Status: primary.StatusPending},
	}
	data, _ := json.Marshal(stored)
	snapshots.data[secondary.SnapshotWorkOrders] = data

	service, err := NewWorkOrderService(context.Background(), snapshots, &mockLogWriter{})
	if err != nil {
		t.Fatalf("NewWorkOrderService failed: %v", err)
	}

	orders, _ := service.ListWorkOrders(context.Background(), primary.WorkOrderFilters{})
	if len(orders) != 1 || orders[0].ID != "WO-900" {
		t.Errorf("expected stored sequence loaded, got %+v", orders)
	}
}

// ============================================================================
// CreateWorkOrder Tests
// ============================================================================

func TestCreateWorkOrder_Defaults(t *testing.T) {
	service, _, _, _ := newTestWorkOrderService(t)
	ctx := context.Background()

	resp, err := service.CreateWorkOrder(ctx, primary.CreateWorkOrderRequest{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.WorkOrderID == "" {
		t.Error("expected work order ID to be set")
	}

	wo := resp.WorkOrder
	if wo.Status != primary.StatusPending {
		t.Errorf("expected status Pending, got %s", wo.Status)
	}
	if wo.AssetID != "UNKNOWN" {
		t.Errorf("expected assetId fallback UNKNOWN, got %s", wo.AssetID)
	}
	if wo.AssetName != "General Asset" {
		t.Errorf("expected assetName fallback, got %s", wo.AssetName)
	}
	if wo.Description != "No Description Provided" {
		t.Errorf("expected description fallback, got %s", wo.Description)
	}
	if wo.AssignedTo != "Unassigned" {
		t.Errorf("expected assignedTo fallback, got %s", wo.AssignedTo)
	}
	if wo.Location != "Site Default" {
		t.Errorf("expected location fallback, got %s", wo.Location)
	}
}

func TestCreateWorkOrder_Prepends(t *testing.T) {
	service, _, _, _ := newTestWorkOrderService(t)
	ctx := context.Background()

	resp, err := service.CreateWorkOrder(ctx, primary.CreateWorkOrderRequest{
		AssetName:   "Pump A",
		Description: "Leak",
	})
	if err != nil {
		t.Fatalf("CreateWorkOrder failed: %v", err)
	}

	orders, _ := service.ListWorkOrders(ctx, primary.WorkOrderFilters{})
	if orders[0].ID != resp.WorkOrderID {
		t.Errorf("expected new order first, got %s", orders[0].ID)
	}
	if len(orders) != 5 {
		t.Errorf("expected 5 orders, got %d", len(orders))
	}
}

func TestCreateWorkOrder_MonotonicIDs(t *testing.T) {
	service, _, _, _ := newTestWorkOrderService(t)
	ctx := context.Background()

	// Seed maximum is WO-207
	first, _ := service.CreateWorkOrder(ctx, primary.CreateWorkOrderRequest{})
	if first.WorkOrderID != "WO-208" {
		t.Errorf("expected WO-208, got %s", first.WorkOrderID)
	}
	second, _ := service.CreateWorkOrder(ctx, primary.CreateWorkOrderRequest{})
	if second.WorkOrderID != "WO-209" {
		t.Errorf("expected WO-209, got %s", second.WorkOrderID)
	}
}

func TestCreateWorkOrder_ChecklistItems(t *testing.T) {
	service, _, _, _ := newTestWorkOrderService(t)
	ctx := context.Background()

	resp, err := service.CreateWorkOrder(ctx, primary.CreateWorkOrderRequest{
		AssetName: "Pump A",
		Checklist: []string{"Lockout/Tagout", "Inspect seals"},
	})
	if err != nil {
		t.Fatalf("CreateWorkOrder failed: %v", err)
	}

	items := resp.WorkOrder.Checklist
	if len(items) != 2 {
		t.Fatalf("expected 2 checklist items, got %d", len(items))
	}
	if items[0].ID != "c1" || items[1].ID != "c2" {
		t.Errorf("expected IDs c1, c2, got %s, %s", items[0].ID, items[1].ID)
	}
	if items[0].Completed || items[1].Completed {
		t.Error("expected new checklist items incomplete")
	}
}

func TestCreateWorkOrder_PersistsAndNotifies(t *testing.T) {
	service, snapshots, logWriter, listener := newTestWorkOrderService(t)
	ctx := context.Background()

	before := snapshots.putCount
	resp, _ := service.CreateWorkOrder(ctx, primary.CreateWorkOrderRequest{AssetName: "Pump A"})

	if snapshots.putCount != before+1 {
		t.Errorf("expected one persist per mutation, got %d", snapshots.putCount-before)
	}
	if listener.notified != 1 {
		t.Errorf("expected 1 notification, got %d", listener.notified)
	}
	if len(logWriter.creates) != 1 || logWriter.creates[0] != resp.WorkOrderID {
		t.Errorf("expected audit create for %s, got %v", resp.WorkOrderID, logWriter.creates)
	}
}

func TestCreateWorkOrder_PersistFailure(t *testing.T) {
	service, snapshots, _, _ := newTestWorkOrderService(t)
	snapshots.putErr = errors.New("disk full")

	if _, err := service.CreateWorkOrder(context.Background(), primary.CreateWorkOrderRequest{}); err == nil {
		t.Error("expected error when persistence fails")
	}
}

// ============================================================================
// UpdateStatus Tests
// ============================================================================

func TestUpdateStatus_Success(t *testing.T) {
	service, _, logWriter, _ := newTestWorkOrderService(t)
	ctx := context.Background()

	if err := service.UpdateStatus(ctx, "WO-204", primary.StatusInProgress); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	orders, _ := service.ListWorkOrders(ctx, primary.WorkOrderFilters{})
	count := 0
	for _, o := range orders {
		if o.ID == "WO-204" {
			count++
			if o.Status != primary.StatusInProgress {
				t.Errorf("expected status In Progress, got %s", o.Status)
			}
			// Other fields unchanged
			if o.AssetName != "Titan Excavator X1" || o.Priority != primary.PriorityCritical {
				t.Error("expected non-status fields unchanged")
			}
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one WO-204, got %d", count)
	}

	if len(logWriter.updates) != 1 || logWriter.updates[0] != "WO-204:status:Pending->In Progress" {
		t.Errorf("unexpected audit trail: %v", logWriter.updates)
	}
}

func TestUpdateStatus_AnyTransitionAllowed(t *testing.T) {
	service, _, _, _ := newTestWorkOrderService(t)
	ctx := context.Background()

	// Completed back to Pending, Flagged to Completed, restating current
	transitions := []struct{ id, status string }{
		{"WO-206", primary.StatusPending},
		{"WO-207", primary.StatusCompleted},
		{"WO-205", primary.StatusInProgress},
	}
	for _, tr := range transitions {
		if err := service.UpdateStatus(ctx, tr.id, tr.status); err != nil {
			t.Errorf("UpdateStatus(%s, %s) failed: %v", tr.id, tr.status, err)
		}
	}
}

func TestUpdateStatus_UnknownIDIsSilentNoOp(t *testing.T) {
	service, _, _, listener := newTestWorkOrderService(t)

	if err := service.UpdateStatus(context.Background(), "WO-999", primary.StatusCompleted); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if listener.notified != 0 {
		t.Errorf("expected no notification for no-op, got %d", listener.notified)
	}
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	service, _, _, _ := newTestWorkOrderService(t)

	if err := service.UpdateStatus(context.Background(), "WO-204", "Archived"); err == nil {
		t.Error("expected error for invalid status value")
	}
}

// ============================================================================
// ToggleChecklistItem Tests
// ============================================================================

func TestToggleChecklistItem_Toggle(t *testing.T) {
	service, _, _, _ := newTestWorkOrderService(t)
	ctx := context.Background()

	if err := service.ToggleChecklistItem(ctx, "WO-204", "c2"); err != nil {
		t.Fatalf("ToggleChecklistItem failed: %v", err)
	}

	wo, _ := service.GetWorkOrder(ctx, "WO-204")
	if !wo.Checklist[1].Completed {
		t.Error("expected c2 completed after toggle")
	}
	if wo.Checklist[0].Completed || wo.Checklist[2].Completed {
		t.Error("expected other items untouched")
	}
}

func TestToggleChecklistItem_DoubleToggleRestores(t *testing.T) {
	service, _, _, _ := newTestWorkOrderService(t)
	ctx := context.Background()

	if err := service.ToggleChecklistItem(ctx, "WO-204", "c1"); err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if err := service.ToggleChecklistItem(ctx, "WO-204", "c1"); err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}

	wo, _ := service.GetWorkOrder(ctx, "WO-204")
	if wo.Checklist[0].Completed {
		t.Error("expected double toggle to restore original value")
	}
}

func TestToggleChecklistItem_UnknownIDsAreSilentNoOps(t *testing.T) {
	service, _, _, listener := newTestWorkOrderService(t)
	ctx := context.Background()

	if err := service.ToggleChecklistItem(ctx, "WO-999", "c1"); err != nil {
		t.Errorf("expected silent no-op for unknown order, got %v", err)
	}
	if err := service.ToggleChecklistItem(ctx, "WO-204", "c99"); err != nil {
		t.Errorf("expected silent no-op for unknown item, got %v", err)
	}
	// WO-205 has no checklist at all
	if err := service.ToggleChecklistItem(ctx, "WO-205", "c1"); err != nil {
		t.Errorf("expected silent no-op for order without checklist, got %v", err)
	}
	if listener.notified != 0 {
		t.Errorf("expected no notifications, got %d", listener.notified)
	}
}

// ============================================================================
// ListWorkOrders Tests
// ============================================================================

func TestListWorkOrders_FilterPreservesOrder(t *testing.T) {
	service, _, _, _ := newTestWorkOrderService(t)
	ctx := context.Background()

	// Flag a second order so the filter has two hits
	if err := service.UpdateStatus(ctx, "WO-205", primary.StatusFlagged); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	flagged, err := service.ListWorkOrders(ctx, primary.WorkOrderFilters{Status: primary.StatusFlagged})
	if err != nil {
		t.Fatalf("ListWorkOrders failed: %v", err)
	}
	if len(flagged) != 2 {
		t.Fatalf("expected 2 flagged orders, got %d", len(flagged))
	}
	// Relative order of the full sequence is preserved: WO-205 before WO-207
	if flagged[0].ID != "WO-205" || flagged[1].ID != "WO-207" {
		t.Errorf("expected [WO-205 WO-207], got [%s %s]", flagged[0].ID, flagged[1].ID)
	}
}

func TestListWorkOrders_NoFilterReturnsAll(t *testing.T) {
	service, _, _, _ := newTestWorkOrderService(t)

	orders, err := service.ListWorkOrders(context.Background(), primary.WorkOrderFilters{})
	if err != nil {
		t.Fatalf("ListWorkOrders failed: %v", err)
	}
	expected := []string{"WO-204", "WO-205", "WO-206", "WO-207"}
	for i, id := range expected {
		if orders[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, orders[i].ID)
		}
	}
}

// ============================================================================
// Round-trip Tests
// ============================================================================

func TestSnapshotRoundTrip(t *testing.T) {
	service, snapshots, _, _ := newTestWorkOrderService(t)
	ctx := context.Background()

	if _, err := service.CreateWorkOrder(ctx, primary.CreateWorkOrderRequest{
		AssetName: "Pump A",
		Checklist: []string{"Lockout", "Inspect"},
	}); err != nil {
		t.Fatalf("CreateWorkOrder failed: %v", err)
	}
	if err := service.ToggleChecklistItem(ctx, "WO-208", "c1"); err != nil {
		t.Fatalf("ToggleChecklistItem failed: %v", err)
	}

	// A fresh service over the same snapshot reproduces the sequence
	reloaded, err := NewWorkOrderService(ctx, snapshots, &mockLogWriter{})
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	before, _ := service.ListWorkOrders(ctx, primary.WorkOrderFilters{})
	after, _ := reloaded.ListWorkOrders(ctx, primary.WorkOrderFilters{})
	if len(before) != len(after) {
		t.Fatalf("expected %d orders after reload, got %d", len(before), len(after))
	}
	for i := range before {
		b, _ := json.Marshal(before[i])
		a, _ := json.Marshal(after[i])
		if string(b) != string(a) {
			t.Errorf("order %d differs after reload:\n  before: %s\n  after:  %s", i, b, a)
		}
	}
}
