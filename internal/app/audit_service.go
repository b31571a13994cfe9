package app

import (
	"context"
	"fmt"

	"github.com/example/altigreen/internal/ports/primary"
	"github.com/example/altigreen/internal/ports/secondary"
)

// AuditServiceImpl implements the AuditService interface.
type AuditServiceImpl struct {
	logRepo secondary.AuditLogRepository
}

// NewAuditService creates a new AuditService with injected dependencies.
func NewAuditService(logRepo secondary.AuditLogRepository) *AuditServiceImpl {
	return &AuditServiceImpl{logRepo: logRepo}
}

// ListEntries returns the most recent mutation audit entries, newest first.
func (s *AuditServiceImpl) ListEntries(ctx context.Context, limit int) ([]*primary.AuditEntry, error) {
	records, err := s.logRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	entries := make([]*primary.AuditEntry, len(records))
	for i, r := range records {
		entries[i] = &primary.AuditEntry{
			ID:         r.ID,
			Actor:      r.Actor,
			EntityType: r.EntityType,
			EntityID:   r.EntityID,
			Action:     r.Action,
			FieldName:  r.FieldName,
			OldValue:   r.OldValue,
			NewValue:   r.NewValue,
			CreatedAt:  r.CreatedAt,
		}
	}
	return entries, nil
}

// Ensure AuditServiceImpl implements the interface
var _ primary.AuditService = (*AuditServiceImpl)(nil)
