// Package app contains the application services implementing the primary
// ports. Services hold the business rules; all environment effects go through
// secondary ports injected at construction.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/example/altigreen/internal/ports/primary"
	"github.com/example/altigreen/internal/ports/secondary"
)

// Field fallbacks substituted for missing draft values.
const (
	fallbackAssetID     = "UNKNOWN"
	fallbackAssetName   = "General Asset"
	fallbackDescription = "No Description Provided"
	fallbackAssignedTo  = "Unassigned"
	fallbackLocation    = "Site Default"
)

// MutationListener is notified after every applied store mutation.
// The sync coordinator implements this to drive the sync state machine.
type MutationListener interface {
	MutationApplied()
}

// WorkOrderServiceImpl implements the WorkOrderService interface.
//
// It owns the canonical most-recent-first sequence of work orders in memory.
// The sequence is read from the snapshot store once at construction (seed
// fixtures on absent or corrupt data) and written back in full after every
// mutation. All mutation happens under a single mutex, so the persisted
// snapshot after operation N always reflects operations 1..N in order.
type WorkOrderServiceImpl struct {
	mu        sync.Mutex
	orders    []*secondary.WorkOrderRecord
	snapshots secondary.SnapshotStore
	logWriter secondary.LogWriter
	listeners []MutationListener
}

// NewWorkOrderService creates the store and loads the persisted sequence.
func NewWorkOrderService(ctx context.Context, snapshots secondary.SnapshotStore, logWriter secondary.LogWriter) (*WorkOrderServiceImpl, error) {
	s := &WorkOrderServiceImpl{
		snapshots: snapshots,
		logWriter: logWriter,
	}

	data, err := snapshots.Get(ctx, secondary.SnapshotWorkOrders)
	if err == nil {
		if jsonErr := json.Unmarshal(data, &s.orders); jsonErr == nil {
			return s, nil
		}
		// Corrupt snapshot falls through to seeds
	}

	s.orders = seedWorkOrders()
	if err := s.persist(ctx); err != nil {
		return nil, fmt.Errorf("failed to persist seed work orders: %w", err)
	}
	return s, nil
}

// AddListener registers a mutation listener. Not safe to call after the
// service is in use; wiring happens before the first command runs.
func (s *WorkOrderServiceImpl) AddListener(l MutationListener) {
	s.listeners = append(s.listeners, l)
}

// CreateWorkOrder creates a new work order from a draft. Missing fields are
// replaced by documented fallbacks; the order is prepended so the sequence
// stays most-recent-first. Always succeeds for any draft.
func (s *WorkOrderServiceImpl) CreateWorkOrder(ctx context.Context, req primary.CreateWorkOrderRequest) (*primary.CreateWorkOrderResponse, error) {
	s.mu.Lock()

	record := &secondary.WorkOrderRecord{
		ID:          s.nextID(),
		AssetID:     req.AssetID,
		AssetName:   req.AssetName,
		Type:        req.Type,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      primary.StatusPending,
		AssignedTo:  req.AssignedTo,
		DueDate:     req.DueDate,
		Location:    req.Location,
	}

	if record.AssetID == "" {
		record.AssetID = fallbackAssetID
	}
	if record.AssetName == "" {
		record.AssetName = fallbackAssetName
	}
	if record.Description == "" {
		record.Description = fallbackDescription
	}
	if record.AssignedTo == "" {
		record.AssignedTo = fallbackAssignedTo
	}
	if record.Location == "" {
		record.Location = fallbackLocation
	}
	if record.Type == "" {
		record.Type = primary.TypeAdHoc
	}
	if record.Priority == "" {
		record.Priority = primary.PriorityMedium
	}
	if record.DueDate == "" {
		record.DueDate = time.Now().Format("2006-01-02")
	}

	for i, task := range req.Checklist {
		record.Checklist = append(record.Checklist, secondary.ChecklistItemRecord{
			ID:   fmt.Sprintf("c%d", i+1),
			Task: task,
		})
	}

	s.orders = append([]*secondary.WorkOrderRecord{record}, s.orders...)

	if err := s.persist(ctx); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Unlock()

	// Audit is best-effort; the mutation is already applied
	_ = s.logWriter.LogCreate(ctx, "work_order", record.ID)
	s.notify()

	return &primary.CreateWorkOrderResponse{
		WorkOrderID: record.ID,
		WorkOrder:   recordToWorkOrder(record),
	}, nil
}

// GetWorkOrder retrieves a work order by ID.
func (s *WorkOrderServiceImpl) GetWorkOrder(ctx context.Context, workOrderID string) (*primary.WorkOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.orders {
		if r.ID == workOrderID {
			return recordToWorkOrder(r), nil
		}
	}
	return nil, fmt.Errorf("work order %s not found", workOrderID)
}

// ListWorkOrders returns the sequence, optionally restricted to a single
// status. An empty filter returns the full sequence in order.
func (s *WorkOrderServiceImpl) ListWorkOrders(ctx context.Context, filters primary.WorkOrderFilters) ([]*primary.WorkOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*primary.WorkOrder
	for _, r := range s.orders {
		if filters.Status != "" && r.Status != filters.Status {
			continue
		}
		result = append(result, recordToWorkOrder(r))
	}
	return result, nil
}

// UpdateStatus transitions a work order's status. Any status may move to any
// other status, including restating the current one. An unknown ID is a
// silent no-op.
func (s *WorkOrderServiceImpl) UpdateStatus(ctx context.Context, workOrderID, status string) error {
	if !primary.ValidStatus(status) {
		return fmt.Errorf("invalid status %q", status)
	}

	s.mu.Lock()
	var oldStatus string
	found := false
	for _, r := range s.orders {
		if r.ID == workOrderID {
			oldStatus = r.Status
			r.Status = status
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return nil
	}

	if err := s.persist(ctx); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	_ = s.logWriter.LogUpdate(ctx, "work_order", workOrderID, "status", oldStatus, status)
	s.notify()
	return nil
}

// ToggleChecklistItem flips the completed flag of a checklist entry.
// Unknown order or item IDs are silent no-ops.
func (s *WorkOrderServiceImpl) ToggleChecklistItem(ctx context.Context, workOrderID, itemID string) error {
	s.mu.Lock()
	var oldValue, newValue bool
	found := false
	for _, r := range s.orders {
		if r.ID != workOrderID {
			continue
		}
		for i := range r.Checklist {
			if r.Checklist[i].ID == itemID {
				oldValue = r.Checklist[i].Completed
				r.Checklist[i].Completed = !oldValue
				newValue = !oldValue
				found = true
				break
			}
		}
		break
	}
	if !found {
		s.mu.Unlock()
		return nil
	}

	if err := s.persist(ctx); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	_ = s.logWriter.LogUpdate(ctx, "work_order", workOrderID,
		"checklist:"+itemID, strconv.FormatBool(oldValue), strconv.FormatBool(newValue))
	s.notify()
	return nil
}

// Snapshot returns the current sequence serialized in the persisted layout.
// The assistant service feeds this to the insights prompt.
func (s *WorkOrderServiceImpl) Snapshot(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.Marshal(s.orders)
}

// persist writes the full sequence. Callers hold the mutex.
func (s *WorkOrderServiceImpl) persist(ctx context.Context) error {
	data, err := json.Marshal(s.orders)
	if err != nil {
		return fmt.Errorf("failed to marshal work orders: %w", err)
	}
	if err := s.snapshots.Put(ctx, secondary.SnapshotWorkOrders, data); err != nil {
		return fmt.Errorf("failed to persist work orders: %w", err)
	}
	return nil
}

func (s *WorkOrderServiceImpl) notify() {
	for _, l := range s.listeners {
		l.MutationApplied()
	}
}

// nextID returns a monotonic WO-<n> identifier, one past the highest numeric
// suffix in the current collection. Callers hold the mutex.
func (s *WorkOrderServiceImpl) nextID() string {
	maxID := 0
	for _, r := range s.orders {
		suffix, ok := strings.CutPrefix(r.ID, "WO-")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(suffix); err == nil && n > maxID {
			maxID = n
		}
	}
	return fmt.Sprintf("WO-%d", maxID+1)
}

// Helper methods

func recordToWorkOrder(r *secondary.WorkOrderRecord) *primary.WorkOrder {
	wo := &primary.WorkOrder{
		ID:          r.ID,
		AssetID:     r.AssetID,
		AssetName:   r.AssetName,
		Type:        r.Type,
		Description: r.Description,
		Priority:    r.Priority,
		Status:      r.Status,
		AssignedTo:  r.AssignedTo,
		DueDate:     r.DueDate,
		Location:    r.Location,
	}
	for _, item := range r.Checklist {
		wo.Checklist = append(wo.Checklist, primary.ChecklistItem{
			ID:        item.ID,
			Task:      item.Task,
			Completed: item.Completed,
		})
	}
	return wo
}

// seedWorkOrders returns the built-in sample orders used when no snapshot
// exists or the stored one cannot be parsed.
func seedWorkOrders() []*secondary.WorkOrderRecord {
	return []*secondary.WorkOrderRecord{
		{
			ID: "WO-204", AssetID: "AG-EXC-88", AssetName: "Titan Excavator X1", Type: primary.TypeAdHoc,
			Description: "Hydraulic pressure loss in boom arm", Priority: primary.PriorityCritical,
			Status: primary.StatusPending, AssignedTo: "Unassigned", DueDate: "2023-11-25", Location: "Pit Zone A",
			Checklist: []secondary.ChecklistItemRecord{
				{ID: "c1", Task: "Inspect hydraulic lines for visible leaks"},
				{ID: "c2", Task: "Check reservoir fluid level"},
				{ID: "c3", Task: "Tighten loose fittings if found"},
			},
		},
		{
			ID: "WO-205", AssetID: "AG-HT-12", AssetName: "Haul Truck H-500", Type: primary.TypeScheduled,
			Description: "Monthly Drivetrain Diagnostic", Priority: primary.PriorityMedium,
			Status: primary.StatusInProgress, AssignedTo: "Rajesh K.", DueDate: "2023-11-26", Location: "Zone C",
		},
		{
			ID: "WO-206", AssetID: "AG-DR-04", AssetName: "Drill Rig D-20", Type: primary.TypeScheduled,
			Description: "Suspension Greasing", Priority: primary.PriorityLow,
			Status: primary.StatusCompleted, AssignedTo: "Amit S.", DueDate: "2023-11-20", Location: "Zone A",
		},
		{
			ID: "WO-207", AssetID: "EQ-CONV-01", AssetName: "Conveyor Belt System", Type: primary.TypeAdHoc,
			Description: "Belt misalignment detected", Priority: primary.PriorityHigh,
			Status: primary.StatusFlagged, AssignedTo: "Maintenance Team", DueDate: "2023-11-24", Location: "Processing Unit 2",
		},
	}
}

// Ensure WorkOrderServiceImpl implements the interface
var _ primary.WorkOrderService = (*WorkOrderServiceImpl)(nil)
