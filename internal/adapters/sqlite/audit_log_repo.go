package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/altigreen/internal/ports/secondary"
)

// AuditLogRepository implements secondary.AuditLogRepository with SQLite.
type AuditLogRepository struct {
	db *sql.DB
}

// NewAuditLogRepository creates a new SQLite audit log repository.
func NewAuditLogRepository(db *sql.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create persists a new audit entry.
func (r *AuditLogRepository) Create(ctx context.Context, record *secondary.AuditLogRecord) error {
	var actor, fieldName, oldValue, newValue sql.NullString

	if record.Actor != "" {
		actor = sql.NullString{String: record.Actor, Valid: true}
	}
	if record.FieldName != "" {
		fieldName = sql.NullString{String: record.FieldName, Valid: true}
	}
	if record.OldValue != "" {
		oldValue = sql.NullString{String: record.OldValue, Valid: true}
	}
	if record.NewValue != "" {
		newValue = sql.NullString{String: record.NewValue, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO audit_log (id, actor, entity_type, entity_id, action, field_name, old_value, new_value) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		record.ID, actor, record.EntityType, record.EntityID, record.Action, fieldName, oldValue, newValue,
	)
	if err != nil {
		return fmt.Errorf("failed to create audit entry: %w", err)
	}
	return nil
}

// List retrieves the most recent entries, newest first.
func (r *AuditLogRepository) List(ctx context.Context, limit int) ([]*secondary.AuditLogRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, actor, entity_type, entity_id, action, field_name, old_value, new_value, created_at FROM audit_log ORDER BY created_at DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	var records []*secondary.AuditLogRecord
	for rows.Next() {
		var (
			record    secondary.AuditLogRecord
			actor     sql.NullString
			fieldName sql.NullString
			oldValue  sql.NullString
			newValue  sql.NullString
			createdAt time.Time
		)
		if err := rows.Scan(&record.ID, &actor, &record.EntityType, &record.EntityID, &record.Action,
			&fieldName, &oldValue, &newValue, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		record.Actor = actor.String
		record.FieldName = fieldName.String
		record.OldValue = oldValue.String
		record.NewValue = newValue.String
		record.CreatedAt = createdAt.Format(time.RFC3339)
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate audit entries: %w", err)
	}
	return records, nil
}

// GetNextID returns the next available audit entry ID.
func (r *AuditLogRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM audit_log",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next audit ID: %w", err)
	}
	return fmt.Sprintf("LOG-%03d", maxID+1), nil
}

// Ensure AuditLogRepository implements the interface
var _ secondary.AuditLogRepository = (*AuditLogRepository)(nil)
