package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/oia-portal/docflow/internal/application/port"
	"github.com/oia-portal/docflow/internal/infrastructure/persistence/sqlite"
)

// DirectoryRepository implements port.Directory against the staff_directory
// table the portal syncs from the university identity system
type DirectoryRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewDirectoryRepository creates a new directory repository
func NewDirectoryRepository(db *sql.DB, logger *zap.Logger) port.Directory {
	return &DirectoryRepository{
		db:     db,
		logger: logger,
	}
}

// DepartmentOf returns the actor's department, or "" when the actor is not
// listed. Absence is not an error; the scope check fails closed on "".
func (r *DirectoryRepository) DepartmentOf(ctx context.Context, actorID string) (string, error) {
	query := `SELECT department FROM staff_directory WHERE user_id = ?`

	var department string
	err := r.getExecutor(ctx).QueryRowContext(ctx, query, actorID).Scan(&department)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		r.logger.Error("Failed to look up department", zap.String("actor_id", actorID), zap.Error(err))
		return "", fmt.Errorf("failed to look up department: %w", err)
	}

	return department, nil
}

// getExecutor returns the context transaction when inside one, otherwise the db
func (r *DirectoryRepository) getExecutor(ctx context.Context) executor {
	if tx := sqlite.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

// Verify interface compliance
var _ port.Directory = (*DirectoryRepository)(nil)
