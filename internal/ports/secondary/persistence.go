// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// external systems.
package secondary

import "context"

// Snapshot keys. SnapshotWorkOrders keeps the layout the original browser
// application wrote to localStorage, so an exported snapshot loads unchanged.
const (
	SnapshotWorkOrders   = "alti_work_orders"
	SnapshotSyncState    = "alti_sync_state"
	SnapshotConnectivity = "alti_connectivity"
	SnapshotChatHistory  = "alti_chat_history"
)

// SnapshotStore is a durable key -> JSON document store.
type SnapshotStore interface {
	// Get retrieves the document stored under key. A key that has never been
	// written returns ErrSnapshotNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores the document under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
}

// ChecklistItemRecord is the persisted form of a checklist entry.
type ChecklistItemRecord struct {
	ID        string `json:"id"`
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}

// WorkOrderRecord is the persisted form of a work order. JSON field names
// match the original snapshot layout.
type WorkOrderRecord struct {
	ID          string                `json:"id"`
	AssetID     string                `json:"assetId"`
	AssetName   string                `json:"assetName"`
	Type        string                `json:"type"`
	Description string                `json:"description"`
	Priority    string                `json:"priority"`
	Status      string                `json:"status"`
	AssignedTo  string                `json:"assignedTo"`
	DueDate     string                `json:"dueDate"`
	Location    string                `json:"location"`
	Checklist   []ChecklistItemRecord `json:"checklist,omitempty"`
}

// ChatMessageRecord is the persisted form of a conversation turn.
type ChatMessageRecord struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// AssetRecord describes a physical asset reachable by QR scan.
type AssetRecord struct {
	ID              string
	Name            string
	Category        string
	SiteID          string
	LastMaintenance string
	Status          string
}

// AssetHistoryRecord is one maintenance history entry for an asset.
type AssetHistoryRecord struct {
	ID         string
	AssetID    string
	Date       string
	Action     string
	Technician string
	Status     string
}

// AssetRepository defines the secondary port for asset persistence.
type AssetRepository interface {
	// GetByID retrieves an asset by its QR payload.
	GetByID(ctx context.Context, id string) (*AssetRecord, error)

	// GetHistory retrieves maintenance history for an asset, newest first.
	GetHistory(ctx context.Context, assetID string) ([]*AssetHistoryRecord, error)

	// AddHistory appends a maintenance history entry.
	AddHistory(ctx context.Context, entry *AssetHistoryRecord) error

	// GetNextHistoryID returns the next available history entry ID.
	GetNextHistoryID(ctx context.Context) (string, error)
}

// AuditLogRecord is one recorded store mutation.
type AuditLogRecord struct {
	ID         string
	Actor      string
	EntityType string
	EntityID   string
	Action     string
	FieldName  string
	OldValue   string
	NewValue   string
	CreatedAt  string
}

// AuditLogRepository defines the secondary port for the mutation audit trail.
type AuditLogRepository interface {
	// Create persists a new audit entry.
	Create(ctx context.Context, record *AuditLogRecord) error

	// List retrieves the most recent entries, newest first.
	List(ctx context.Context, limit int) ([]*AuditLogRecord, error)

	// GetNextID returns the next available audit entry ID.
	GetNextID(ctx context.Context) (string, error)
}
