package port

import (
	"context"
	"time"

	"github.com/oia-portal/docflow/internal/domain/entity"
	"github.com/oia-portal/docflow/internal/domain/workflow"
)

// DocumentRepository defines persistence operations for Document
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error

	// GetByID returns the document, or (nil, nil) if it does not exist
	GetByID(ctx context.Context, id string) (*entity.Document, error)

	// UpdateStatusFrom sets the document's status to "to" only if it still
	// equals "from" at write time. It returns false when the compare failed
	// (the row is gone or another transition committed first) and writes
	// nothing in that case.
	UpdateStatusFrom(ctx context.Context, id string, from, to workflow.Status, at time.Time) (bool, error)

	List(ctx context.Context, limit, offset int) ([]*entity.Document, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Document, error)
}

// HistoryRepository defines persistence operations for the history ledger.
// The ledger is append-only: there is deliberately no update or delete here.
type HistoryRepository interface {
	// Create appends one record. Called only from within the executor's
	// transaction, never standalone.
	Create(ctx context.Context, record *entity.HistoryRecord) error

	// GetByDocumentID returns all records for a document, ascending by
	// timestamp (insertion id breaks ties)
	GetByDocumentID(ctx context.Context, documentID string) ([]*entity.HistoryRecord, error)
}

// NotificationRepository defines persistence operations for the best-effort
// transition outbox
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.TransitionNotification) error
	MarkSent(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64, errorMsg string) error
	GetPending(ctx context.Context, limit int) ([]*entity.TransitionNotification, error)
}

// TransactionManager handles database transactions
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
