package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/altigreen/internal/ports/primary"
)

// AuditAdapter translates CLI operations to AuditService calls.
type AuditAdapter struct {
	service primary.AuditService
	out     io.Writer
}

// NewAuditAdapter creates a new AuditAdapter with the given service.
func NewAuditAdapter(service primary.AuditService, out io.Writer) *AuditAdapter {
	return &AuditAdapter{
		service: service,
		out:     out,
	}
}

// List prints the most recent audit entries, newest first.
func (a *AuditAdapter) List(ctx context.Context, limit int) error {
	entries, err := a.service.ListEntries(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list audit entries: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No audit entries found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-8s %-20s %-12s %-8s %-8s %s\n", "ID", "WHEN", "ACTOR", "ACTION", "ENTITY", "CHANGE")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────────────")
	for _, e := range entries {
		change := ""
		if e.FieldName != "" {
			change = fmt.Sprintf("%s: %s → %s", e.FieldName, e.OldValue, e.NewValue)
		}
		fmt.Fprintf(a.out, "%-8s %-20s %-12s %-8s %-8s %s\n", e.ID, e.CreatedAt, e.Actor, e.Action, e.EntityID, change)
	}
	fmt.Fprintln(a.out)

	return nil
}
