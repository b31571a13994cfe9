// Package primary defines the service interfaces (primary ports) for the
// AltiGreen fleet maintenance application. CLI adapters depend on these
// interfaces, never on the implementations in internal/app.
package primary

import "context"

// Work order status values. Transitions between them are unrestricted and
// user-driven only.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusFlagged    = "Flagged"
)

// Work order types.
const (
	TypeScheduled = "Scheduled"
	TypeAdHoc     = "Ad-hoc"
)

// Priority values, ordered by severity. Not used for automatic escalation.
const (
	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

// ValidStatus reports whether s is one of the four work order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusFlagged:
		return true
	}
	return false
}

// ChecklistItem is an independently completable sub-task of a work order.
type ChecklistItem struct {
	ID        string
	Task      string
	Completed bool
}

// WorkOrder is a unit of maintenance work tracked through a status lifecycle.
type WorkOrder struct {
	ID          string
	AssetID     string
	AssetName   string
	Type        string
	Description string
	Priority    string
	Status      string
	AssignedTo  string
	DueDate     string
	Location    string
	Checklist   []ChecklistItem
}

// CreateWorkOrderRequest is a draft work order. All fields are optional;
// missing fields are replaced by documented fallbacks.
type CreateWorkOrderRequest struct {
	AssetID     string
	AssetName   string
	Type        string
	Description string
	Priority    string
	AssignedTo  string
	DueDate     string
	Location    string
	Checklist   []string // task descriptions; IDs are assigned by the store
}

// CreateWorkOrderResponse contains the created work order.
type CreateWorkOrderResponse struct {
	WorkOrderID string
	WorkOrder   *WorkOrder
}

// WorkOrderFilters restrict ListWorkOrders. An empty Status returns the full
// sequence.
type WorkOrderFilters struct {
	Status string
}

// WorkOrderService is the primary port for the work order store.
//
// The store owns the canonical most-recent-first sequence of work orders.
// Every mutation persists the full sequence and notifies the sync
// coordinator. Mutations against unknown IDs are silent no-ops.
type WorkOrderService interface {
	CreateWorkOrder(ctx context.Context, req CreateWorkOrderRequest) (*CreateWorkOrderResponse, error)
	GetWorkOrder(ctx context.Context, workOrderID string) (*WorkOrder, error)
	ListWorkOrders(ctx context.Context, filters WorkOrderFilters) ([]*WorkOrder, error)
	UpdateStatus(ctx context.Context, workOrderID, status string) error
	ToggleChecklistItem(ctx context.Context, workOrderID, itemID string) error
}
