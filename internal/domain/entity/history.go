package entity

import (
	"time"

	"github.com/oia-portal/docflow/internal/domain/rbac"
	"github.com/oia-portal/docflow/internal/domain/workflow"
)

// HistoryRecord is one executed transition in a document's audit trail.
// Records are write-once: the ledger exposes no update or delete, and the
// chained to_status sequence starting from the type's initial status must
// reconstruct the document's current status exactly.
type HistoryRecord struct {
	ID         int64           `json:"id"`
	DocumentID string          `json:"document_id"`
	FromStatus workflow.Status `json:"from_status"`
	ToStatus   workflow.Status `json:"to_status"`
	ActorID    string          `json:"actor_id"`
	ActorRole  rbac.Role       `json:"actor_role"`
	Comment    string          `json:"comment,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
}

// TransitionNotification is one best-effort outbox entry recorded after a
// successful transition commit. Delivery failures never roll back transitions.
type TransitionNotification struct {
	ID         int64           `json:"id"`
	DocumentID string          `json:"document_id"`
	FromStatus workflow.Status `json:"from_status"`
	ToStatus   workflow.Status `json:"to_status"`
	ActorID    string          `json:"actor_id"`
	Status     string          `json:"status"`
	ErrorMsg   string          `json:"error_msg,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	SentAt     *time.Time      `json:"sent_at,omitempty"`
}

// Notification status constants
const (
	NotificationStatusPending = "PENDING"
	NotificationStatusSent    = "SENT"
	NotificationStatusFailed  = "FAILED"
)
