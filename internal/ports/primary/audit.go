package primary

import "context"

// AuditEntry is one recorded store mutation.
type AuditEntry struct {
	ID         string
	Actor      string
	EntityType string
	EntityID   string
	Action     string // create, update, toggle
	FieldName  string
	OldValue   string
	NewValue   string
	CreatedAt  string
}

// AuditService lists the mutation audit trail.
type AuditService interface {
	ListEntries(ctx context.Context, limit int) ([]*AuditEntry, error)
}
