package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/altigreen/internal/ports/primary"
)

// mockWorkOrderService implements primary.WorkOrderService for testing
type mockWorkOrderService struct {
	createFn func(ctx context.Context, req primary.CreateWorkOrderRequest) (*primary.CreateWorkOrderResponse, error)
	getFn    func(ctx context.Context, id string) (*primary.WorkOrder, error)
	listFn   func(ctx context.Context, filters primary.WorkOrderFilters) ([]*primary.WorkOrder, error)

	// Track calls for verification
	lastCreateReq primary.CreateWorkOrderRequest
	lastStatus    string
	lastItemID    string
}

func (m *mockWorkOrderService) CreateWorkOrder(ctx context.Context, req primary.CreateWorkOrderRequest) (*primary.CreateWorkOrderResponse, error) {
	m.lastCreateReq = req
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return &primary.CreateWorkOrderResponse{
		WorkOrderID: "WO-208",
		WorkOrder:   &primary.WorkOrder{ID: "WO-208", Description: req.Description},
	}, nil
}

func (m *mockWorkOrderService) GetWorkOrder(ctx context.Context, id string) (*primary.WorkOrder, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return &primary.WorkOrder{ID: id, AssetName: "Titan Excavator X1", Status: primary.StatusPending}, nil
}

func (m *mockWorkOrderService) ListWorkOrders(ctx context.Context, filters primary.WorkOrderFilters) ([]*primary.WorkOrder, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filters)
	}
	return []*primary.WorkOrder{}, nil
}

func (m *mockWorkOrderService) UpdateStatus(ctx context.Context, id, status string) error {
	m.lastStatus = status
	return nil
}

func (m *mockWorkOrderService) ToggleChecklistItem(ctx context.Context, id, itemID string) error {
	m.lastItemID = itemID
	return nil
}

func TestWorkOrderAdapter_Create(t *testing.T) {
	var buf bytes.Buffer
	mock := &mockWorkOrderService{}
	adapter := NewWorkOrderAdapter(mock, &buf)

	req := primary.CreateWorkOrderRequest{
		AssetName:   "Titan Excavator X1",
		Description: "Hydraulic leak",
		Checklist:   []string{"Lockout", "Inspect"},
	}
	if err := adapter.Create(context.Background(), req); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "✓ Created work order WO-208") {
		t.Errorf("expected creation confirmation, got: %s", out)
	}
	if mock.lastCreateReq.Description != "Hydraulic leak" {
		t.Errorf("request not passed through: %+v", mock.lastCreateReq)
	}
}

func TestWorkOrderAdapter_CreateError(t *testing.T) {
	var buf bytes.Buffer
	mock := &mockWorkOrderService{
		createFn: func(ctx context.Context, req primary.CreateWorkOrderRequest) (*primary.CreateWorkOrderResponse, error) {
			return nil, errors.New("store unavailable")
		},
	}
	adapter := NewWorkOrderAdapter(mock, &buf)

	err := adapter.Create(context.Background(), primary.CreateWorkOrderRequest{})
	if err == nil {
		t.Fatal("expected error")
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output on error, got: %s", buf.String())
	}
}

func TestWorkOrderAdapter_ListEmpty(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewWorkOrderAdapter(&mockWorkOrderService{}, &buf)

	if err := adapter.List(context.Background(), ""); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No work orders found") {
		t.Errorf("expected empty message, got: %s", buf.String())
	}
}

func TestWorkOrderAdapter_ListWithOrders(t *testing.T) {
	var buf bytes.Buffer
	var gotFilter primary.WorkOrderFilters
	mock := &mockWorkOrderService{
		listFn: func(ctx context.Context, filters primary.WorkOrderFilters) ([]*primary.WorkOrder, error) {
			gotFilter = filters
			return []*primary.WorkOrder{
				{ID: "WO-204", AssetName: "Titan Excavator X1", Status: primary.StatusPending, Priority: primary.PriorityHigh, DueDate: "2023-11-15", Description: "Hydraulic leak"},
				{ID: "WO-205", AssetName: "Haul Truck H-12", Status: primary.StatusInProgress, Priority: primary.PriorityMedium, DueDate: "2023-11-18", Description: "Brake inspection"},
			}, nil
		},
	}
	adapter := NewWorkOrderAdapter(mock, &buf)

	if err := adapter.List(context.Background(), "Pending"); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "WO-204") || !strings.Contains(out, "WO-205") {
		t.Errorf("expected both orders in list, got: %s", out)
	}
	if gotFilter.Status != "Pending" {
		t.Errorf("filter not passed through: %+v", gotFilter)
	}
}

func TestWorkOrderAdapter_ShowWithChecklist(t *testing.T) {
	var buf bytes.Buffer
	mock := &mockWorkOrderService{
		getFn: func(ctx context.Context, id string) (*primary.WorkOrder, error) {
			return &primary.WorkOrder{
				ID:          id,
				AssetName:   "Titan Excavator X1",
				AssetID:     "AG-EXC-88",
				Status:      primary.StatusPending,
				Priority:    primary.PriorityHigh,
				Description: "Hydraulic leak",
				Checklist: []primary.ChecklistItem{
					{ID: "c1", Task: "Lockout/Tagout", Completed: true},
					{ID: "c2", Task: "Inspect boom cylinder", Completed: false},
				},
			}, nil
		},
	}
	adapter := NewWorkOrderAdapter(mock, &buf)

	if err := adapter.Show(context.Background(), "WO-204"); err != nil {
		t.Fatalf("Show failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Work Order: WO-204") {
		t.Errorf("expected header, got: %s", out)
	}
	if !strings.Contains(out, "[x] c1") || !strings.Contains(out, "[ ] c2") {
		t.Errorf("expected checklist marks, got: %s", out)
	}
}

func TestWorkOrderAdapter_SetStatus(t *testing.T) {
	var buf bytes.Buffer
	mock := &mockWorkOrderService{}
	adapter := NewWorkOrderAdapter(mock, &buf)

	if err := adapter.SetStatus(context.Background(), "WO-204", primary.StatusCompleted); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if mock.lastStatus != primary.StatusCompleted {
		t.Errorf("status not passed through: %s", mock.lastStatus)
	}
	if !strings.Contains(buf.String(), "✓ Work order WO-204 set to") {
		t.Errorf("expected confirmation, got: %s", buf.String())
	}
}

func TestWorkOrderAdapter_ToggleItem(t *testing.T) {
	var buf bytes.Buffer
	mock := &mockWorkOrderService{}
	adapter := NewWorkOrderAdapter(mock, &buf)

	if err := adapter.ToggleItem(context.Background(), "WO-204", "c2"); err != nil {
		t.Fatalf("ToggleItem failed: %v", err)
	}
	if mock.lastItemID != "c2" {
		t.Errorf("item ID not passed through: %s", mock.lastItemID)
	}
	if !strings.Contains(buf.String(), "✓ Toggled checklist item c2 on WO-204") {
		t.Errorf("expected confirmation, got: %s", buf.String())
	}
}
