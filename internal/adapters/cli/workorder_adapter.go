// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// all business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/altigreen/internal/ports/primary"
)

// WorkOrderAdapter translates CLI operations to WorkOrderService calls.
type WorkOrderAdapter struct {
	service primary.WorkOrderService
	out     io.Writer
}

// NewWorkOrderAdapter creates a new WorkOrderAdapter with the given service.
func NewWorkOrderAdapter(service primary.WorkOrderService, out io.Writer) *WorkOrderAdapter {
	return &WorkOrderAdapter{
		service: service,
		out:     out,
	}
}

// Create creates a new work order from the given draft.
func (a *WorkOrderAdapter) Create(ctx context.Context, req primary.CreateWorkOrderRequest) error {
	resp, err := a.service.CreateWorkOrder(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created work order %s: %s\n", resp.WorkOrderID, resp.WorkOrder.Description)
	if len(resp.WorkOrder.Checklist) > 0 {
		fmt.Fprintf(a.out, "  %d checklist items attached\n", len(resp.WorkOrder.Checklist))
	}
	return nil
}

// List lists work orders with an optional status filter.
func (a *WorkOrderAdapter) List(ctx context.Context, status string) error {
	orders, err := a.service.ListWorkOrders(ctx, primary.WorkOrderFilters{
		Status: status,
	})
	if err != nil {
		return fmt.Errorf("failed to list work orders: %w", err)
	}

	if len(orders) == 0 {
		fmt.Fprintln(a.out, "No work orders found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-8s %-14s %-22s %-12s %-10s %s\n", "ID", "STATUS", "ASSET", "PRIORITY", "DUE", "DESCRIPTION")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────────────")
	for _, wo := range orders {
		fmt.Fprintf(a.out, "%-8s %-14s %-22s %-12s %-10s %s\n",
			wo.ID, statusBadge(wo.Status), truncate(wo.AssetName, 22), priorityBadge(wo.Priority), wo.DueDate, truncate(wo.Description, 40))
	}
	fmt.Fprintln(a.out)

	return nil
}

// Show displays details for a single work order, checklist included.
func (a *WorkOrderAdapter) Show(ctx context.Context, workOrderID string) error {
	wo, err := a.service.GetWorkOrder(ctx, workOrderID)
	if err != nil {
		return fmt.Errorf("failed to get work order: %w", err)
	}

	fmt.Fprintf(a.out, "\nWork Order: %s\n", wo.ID)
	fmt.Fprintf(a.out, "Asset:      %s (%s)\n", wo.AssetName, wo.AssetID)
	fmt.Fprintf(a.out, "Type:       %s\n", wo.Type)
	fmt.Fprintf(a.out, "Status:     %s\n", statusBadge(wo.Status))
	fmt.Fprintf(a.out, "Priority:   %s\n", priorityBadge(wo.Priority))
	fmt.Fprintf(a.out, "Assigned:   %s\n", wo.AssignedTo)
	fmt.Fprintf(a.out, "Due:        %s\n", wo.DueDate)
	fmt.Fprintf(a.out, "Location:   %s\n", wo.Location)
	fmt.Fprintf(a.out, "Description: %s\n", wo.Description)

	if len(wo.Checklist) > 0 {
		fmt.Fprintln(a.out, "\nChecklist:")
		for _, item := range wo.Checklist {
			mark := "[ ]"
			if item.Completed {
				mark = "[x]"
			}
			fmt.Fprintf(a.out, "  %s %-4s %s\n", mark, item.ID, item.Task)
		}
	}
	fmt.Fprintln(a.out)

	return nil
}

// SetStatus changes a work order's status.
func (a *WorkOrderAdapter) SetStatus(ctx context.Context, workOrderID, status string) error {
	if err := a.service.UpdateStatus(ctx, workOrderID, status); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Work order %s set to %s\n", workOrderID, statusBadge(status))
	return nil
}

// ToggleItem flips a checklist item's completion state.
func (a *WorkOrderAdapter) ToggleItem(ctx context.Context, workOrderID, itemID string) error {
	if err := a.service.ToggleChecklistItem(ctx, workOrderID, itemID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Toggled checklist item %s on %s\n", itemID, workOrderID)
	return nil
}

func statusBadge(status string) string {
	switch status {
	case primary.StatusPending:
		return color.New(color.FgYellow).Sprint(status)
	case primary.StatusInProgress:
		return color.New(color.FgHiBlue).Sprint(status)
	case primary.StatusCompleted:
		return color.New(color.FgHiGreen).Sprint(status)
	case primary.StatusFlagged:
		return color.New(color.FgRed).Sprint(status)
	default:
		return status
	}
}

func priorityBadge(priority string) string {
	switch priority {
	case primary.PriorityCritical:
		return color.New(color.FgRed, color.Bold).Sprint(priority)
	case primary.PriorityHigh:
		return color.New(color.FgRed).Sprint(priority)
	case primary.PriorityMedium:
		return color.New(color.FgYellow).Sprint(priority)
	default:
		return priority
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
