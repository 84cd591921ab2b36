package service

import (
	"context"
	"fmt"

	"github.com/oia-portal/docflow/internal/application/port"
	"github.com/oia-portal/docflow/internal/domain/entity"
)

// HistoryService is the read side of the history ledger
type HistoryService interface {
	// ListFor returns a document's full audit trail, ascending by timestamp
	ListFor(ctx context.Context, documentID string) ([]*entity.HistoryRecord, error)
}

type historyServiceImpl struct {
	docRepo     port.DocumentRepository
	historyRepo port.HistoryRepository
	logger      Logger
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(docRepo port.DocumentRepository, historyRepo port.HistoryRepository, logger Logger) HistoryService {
	return &historyServiceImpl{
		docRepo:     docRepo,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (s *historyServiceImpl) ListFor(ctx context.Context, documentID string) ([]*entity.HistoryRecord, error) {
	if documentID == "" {
		return nil, fmt.Errorf("%w: document id is required", ErrValidation)
	}

	doc, err := s.docRepo.GetByID(ctx, documentID)
	if err != nil {
		s.logger.Error("Failed to load document for history", "error", err, "document_id", documentID)
		return nil, fmt.Errorf("%w: load document", ErrInternal)
	}
	if doc == nil {
		return nil, ErrNotFound
	}

	records, err := s.historyRepo.GetByDocumentID(ctx, documentID)
	if err != nil {
		s.logger.Error("Failed to load history", "error", err, "document_id", documentID)
		return nil, fmt.Errorf("%w: load history", ErrInternal)
	}
	return records, nil
}
