package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/oia-portal/docflow/internal/application/port"
	"github.com/oia-portal/docflow/internal/domain/entity"
	"github.com/oia-portal/docflow/internal/domain/workflow"
	"github.com/oia-portal/docflow/internal/infrastructure/persistence/sqlite"
)

// NotificationRepository implements port.NotificationRepository
type NotificationRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *sql.DB, logger *zap.Logger) port.NotificationRepository {
	return &NotificationRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new outbox entry
func (r *NotificationRepository) Create(ctx context.Context, n *entity.TransitionNotification) error {
	query := `
		INSERT INTO transition_notifications (document_id, from_status, to_status, actor_id, status)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query,
		n.DocumentID,
		n.FromStatus.String(),
		n.ToStatus.String(),
		n.ActorID,
		n.Status,
	)
	if err != nil {
		r.logger.Error("Failed to create notification", zap.String("document_id", n.DocumentID), zap.Error(err))
		return fmt.Errorf("failed to create notification: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	n.ID = id
	return nil
}

// MarkSent records a successful delivery
func (r *NotificationRepository) MarkSent(ctx context.Context, id int64) error {
	query := `UPDATE transition_notifications SET status = ?, sent_at = CURRENT_TIMESTAMP WHERE id = ?`

	_, err := r.getExecutor(ctx).ExecContext(ctx, query, entity.NotificationStatusSent, id)
	if err != nil {
		r.logger.Error("Failed to mark notification sent", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("failed to mark notification sent: %w", err)
	}
	return nil
}

// MarkFailed records a failed delivery attempt
func (r *NotificationRepository) MarkFailed(ctx context.Context, id int64, errorMsg string) error {
	query := `UPDATE transition_notifications SET status = ?, error_msg = ? WHERE id = ?`

	_, err := r.getExecutor(ctx).ExecContext(ctx, query, entity.NotificationStatusFailed, errorMsg, id)
	if err != nil {
		r.logger.Error("Failed to mark notification failed", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("failed to mark notification failed: %w", err)
	}
	return nil
}

// GetPending retrieves undelivered outbox entries, oldest first
func (r *NotificationRepository) GetPending(ctx context.Context, limit int) ([]*entity.TransitionNotification, error) {
	query := `
		SELECT id, document_id, from_status, to_status, actor_id, status, error_msg, created_at, sent_at
		FROM transition_notifications
		WHERE status = ?
		ORDER BY created_at ASC, id ASC
		LIMIT ?
	`

	rows, err := r.getExecutor(ctx).QueryContext(ctx, query, entity.NotificationStatusPending, limit)
	if err != nil {
		r.logger.Error("Failed to list pending notifications", zap.Error(err))
		return nil, fmt.Errorf("failed to list pending notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*entity.TransitionNotification
	for rows.Next() {
		var n entity.TransitionNotification
		var fromStatus, toStatus string
		var sentAt sql.NullTime

		err := rows.Scan(
			&n.ID,
			&n.DocumentID,
			&fromStatus,
			&toStatus,
			&n.ActorID,
			&n.Status,
			&n.ErrorMsg,
			&n.CreatedAt,
			&sentAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}

		n.FromStatus = workflow.Status(fromStatus)
		n.ToStatus = workflow.Status(toStatus)
		if sentAt.Valid {
			n.SentAt = &sentAt.Time
		}
		notifications = append(notifications, &n)
	}

	return notifications, rows.Err()
}

// getExecutor returns the context transaction when inside one, otherwise the db
func (r *NotificationRepository) getExecutor(ctx context.Context) executor {
	if tx := sqlite.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

// Verify interface compliance
var _ port.NotificationRepository = (*NotificationRepository)(nil)
