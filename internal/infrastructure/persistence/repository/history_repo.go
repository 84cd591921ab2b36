package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/oia-portal/docflow/internal/application/port"
	"github.com/oia-portal/docflow/internal/domain/entity"
	"github.com/oia-portal/docflow/internal/domain/rbac"
	"github.com/oia-portal/docflow/internal/domain/workflow"
	"github.com/oia-portal/docflow/internal/infrastructure/persistence/sqlite"
)

// HistoryRepository implements port.HistoryRepository. Inserts and ordered
// reads only; the ledger has no update or delete path anywhere in the schema
// or the code.
type HistoryRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *sql.DB, logger *zap.Logger) port.HistoryRepository {
	return &HistoryRepository{
		db:     db,
		logger: logger,
	}
}

// Create appends a new history record
func (r *HistoryRepository) Create(ctx context.Context, record *entity.HistoryRecord) error {
	query := `
		INSERT INTO document_history (
			document_id, from_status, to_status, actor_id, actor_role, comment, timestamp
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query,
		record.DocumentID,
		record.FromStatus.String(),
		record.ToStatus.String(),
		record.ActorID,
		record.ActorRole.String(),
		record.Comment,
		record.Timestamp.UTC(),
	)
	if err != nil {
		r.logger.Error("Failed to create history record", zap.String("document_id", record.DocumentID), zap.Error(err))
		return fmt.Errorf("failed to create history: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	record.ID = id
	return nil
}

// GetByDocumentID retrieves all history records for a document, ascending by
// timestamp with the insertion id as tiebreak so the order is total
func (r *HistoryRepository) GetByDocumentID(ctx context.Context, documentID string) ([]*entity.HistoryRecord, error) {
	query := `
		SELECT id, document_id, from_status, to_status, actor_id, actor_role, comment, timestamp
		FROM document_history
		WHERE document_id = ?
		ORDER BY timestamp ASC, id ASC
	`

	rows, err := r.getExecutor(ctx).QueryContext(ctx, query, documentID)
	if err != nil {
		r.logger.Error("Failed to get history", zap.String("document_id", documentID), zap.Error(err))
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	defer rows.Close()

	var records []*entity.HistoryRecord
	for rows.Next() {
		var record entity.HistoryRecord
		var fromStatus, toStatus, actorRole string

		err := rows.Scan(
			&record.ID,
			&record.DocumentID,
			&fromStatus,
			&toStatus,
			&record.ActorID,
			&actorRole,
			&record.Comment,
			&record.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history record: %w", err)
		}

		record.FromStatus = workflow.Status(fromStatus)
		record.ToStatus = workflow.Status(toStatus)
		record.ActorRole = rbac.Role(actorRole)
		records = append(records, &record)
	}

	return records, rows.Err()
}

// getExecutor returns the context transaction when inside one, otherwise the db
func (r *HistoryRepository) getExecutor(ctx context.Context) executor {
	if tx := sqlite.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

// Verify interface compliance
var _ port.HistoryRepository = (*HistoryRepository)(nil)
