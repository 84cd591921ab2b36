package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/oia-portal/docflow/internal/application/port"
	"github.com/oia-portal/docflow/internal/domain/entity"
	"github.com/oia-portal/docflow/internal/domain/workflow"
)

// CreateDocumentRequest carries the fields needed to open a new cooperation
// record. Status is not among them: a document always starts in its type's
// initial status.
type CreateDocumentRequest struct {
	Type       workflow.DocumentType
	OwnerID    string
	AssignedTo string
	Department string
}

// DocumentService is the read/create side of the portal. Status changes never
// happen here; they go through the TransitionService exclusively.
type DocumentService interface {
	Create(ctx context.Context, req CreateDocumentRequest) (*entity.Document, error)
	Get(ctx context.Context, id string) (*entity.Document, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Document, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Document, error)

	// PermittedTargets returns the statuses the document could move to next,
	// ignoring the caller's permissions. UI hint only, never authoritative.
	PermittedTargets(ctx context.Context, id string) ([]workflow.Status, error)
}

type documentServiceImpl struct {
	registry *workflow.Registry
	docRepo  port.DocumentRepository
	logger   Logger
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(registry *workflow.Registry, docRepo port.DocumentRepository, logger Logger) DocumentService {
	return &documentServiceImpl{
		registry: registry,
		docRepo:  docRepo,
		logger:   logger,
	}
}

// Create opens a new document in its type's initial status. No history record
// is written: the ledger starts at the first executed transition, and an empty
// ledger means the document sits in the initial status.
func (s *documentServiceImpl) Create(ctx context.Context, req CreateDocumentRequest) (*entity.Document, error) {
	if req.OwnerID == "" {
		return nil, fmt.Errorf("%w: owner id is required", ErrValidation)
	}

	machine, err := s.registry.Get(req.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown document type %q", ErrValidation, req.Type)
	}

	doc := &entity.Document{
		ID:         uuid.NewString(),
		Type:       req.Type,
		Status:     machine.Initial(),
		OwnerID:    req.OwnerID,
		AssignedTo: req.AssignedTo,
		Department: req.Department,
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		s.logger.Error("Failed to create document", "error", err, "type", req.Type, "owner_id", req.OwnerID)
		return nil, fmt.Errorf("%w: create document", ErrInternal)
	}

	s.logger.Info("Document created", "document_id", doc.ID, "type", doc.Type, "owner_id", doc.OwnerID)
	return doc, nil
}

// Get retrieves a document by ID
func (s *documentServiceImpl) Get(ctx context.Context, id string) (*entity.Document, error) {
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get document", "error", err, "document_id", id)
		return nil, fmt.Errorf("%w: load document", ErrInternal)
	}
	if doc == nil {
		return nil, ErrNotFound
	}
	return doc, nil
}

// List retrieves documents with pagination
func (s *documentServiceImpl) List(ctx context.Context, limit, offset int) ([]*entity.Document, error) {
	docs, err := s.docRepo.List(ctx, normalizeLimit(limit), offset)
	if err != nil {
		s.logger.Error("Failed to list documents", "error", err)
		return nil, fmt.Errorf("%w: list documents", ErrInternal)
	}
	return docs, nil
}

// ListByOwner retrieves documents owned by one actor with pagination
func (s *documentServiceImpl) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Document, error) {
	docs, err := s.docRepo.ListByOwner(ctx, ownerID, normalizeLimit(limit), offset)
	if err != nil {
		s.logger.Error("Failed to list documents by owner", "error", err, "owner_id", ownerID)
		return nil, fmt.Errorf("%w: list documents", ErrInternal)
	}
	return docs, nil
}

// PermittedTargets returns the one-step reachable statuses for the document
func (s *documentServiceImpl) PermittedTargets(ctx context.Context, id string) ([]workflow.Status, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	machine, err := s.registry.Get(doc.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: document type", ErrInternal)
	}
	return machine.PermittedTargets(doc.Status), nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 20
	}
	return limit
}
