package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oia-portal/docflow/internal/application/port"
	"github.com/oia-portal/docflow/internal/domain/entity"
	"github.com/oia-portal/docflow/internal/domain/rbac"
	"github.com/oia-portal/docflow/internal/domain/workflow"
)

// Logger interface for minimal logging dependency
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// maxCommentLength bounds the free-text comment accepted on a transition
const maxCommentLength = 2000

// TransitionRequest is the validated tuple handed to the executor by the
// hosting layer. Actor identity arrives as explicit arguments; the executor
// never reads ambient caller state.
type TransitionRequest struct {
	DocumentID string
	ActorID    string
	ActorRole  rbac.Role
	ToStatus   workflow.Status
	Comment    string
}

// TransitionService is the transition executor: it validates a requested move
// against the type's transition table and the actor's permissions, then
// atomically commits the new status together with its history record.
type TransitionService interface {
	RequestTransition(ctx context.Context, req TransitionRequest) (*entity.HistoryRecord, error)
}

type transitionServiceImpl struct {
	registry    *workflow.Registry
	resolver    *rbac.Resolver
	docRepo     port.DocumentRepository
	historyRepo port.HistoryRepository
	directory   port.Directory
	notifier    port.Notifier
	txManager   port.TransactionManager
	logger      Logger
	now         func() time.Time
}

// NewTransitionService creates a new TransitionService. The notifier may be
// nil when the host wires no notification collaborator.
func NewTransitionService(
	registry *workflow.Registry,
	resolver *rbac.Resolver,
	docRepo port.DocumentRepository,
	historyRepo port.HistoryRepository,
	directory port.Directory,
	notifier port.Notifier,
	txManager port.TransactionManager,
	logger Logger,
) TransitionService {
	return &transitionServiceImpl{
		registry:    registry,
		resolver:    resolver,
		docRepo:     docRepo,
		historyRepo: historyRepo,
		directory:   directory,
		notifier:    notifier,
		txManager:   txManager,
		logger:      logger,
		now:         time.Now,
	}
}

// RequestTransition executes one transition request to completion or fails
// with no partial effect. A disallowed move always leaves the document status
// and history length unchanged.
func (s *transitionServiceImpl) RequestTransition(ctx context.Context, req TransitionRequest) (*entity.HistoryRecord, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	doc, err := s.docRepo.GetByID(ctx, req.DocumentID)
	if err != nil {
		s.logger.Error("Failed to load document", "error", err, "document_id", req.DocumentID)
		return nil, fmt.Errorf("%w: load document", ErrInternal)
	}
	if doc == nil {
		return nil, ErrNotFound
	}

	machine, err := s.registry.Get(doc.Type)
	if err != nil {
		s.logger.Error("Document has unregistered type", "document_id", doc.ID, "type", doc.Type)
		return nil, fmt.Errorf("%w: document type", ErrInternal)
	}

	// Edge check comes strictly before any permission check, so an
	// unauthorized actor cannot probe which statuses exist.
	required, err := machine.RequiredPermission(doc.Status, req.ToStatus)
	if err != nil {
		return nil, err
	}

	if !s.resolver.HasPermission(req.ActorRole, required) {
		return nil, fmt.Errorf("%w: role %s lacks %s", ErrForbidden, req.ActorRole, required)
	}

	if err := s.checkScope(ctx, doc, req, required); err != nil {
		return nil, err
	}

	record := &entity.HistoryRecord{
		DocumentID: doc.ID,
		FromStatus: doc.Status,
		ToStatus:   req.ToStatus,
		ActorID:    req.ActorID,
		ActorRole:  req.ActorRole,
		Comment:    req.Comment,
		Timestamp:  s.now(),
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		// The compare-and-swap re-checks the from status at write time; if
		// another transition committed in the meantime exactly one of the
		// racing requests wins.
		ok, err := s.docRepo.UpdateStatusFrom(txCtx, doc.ID, doc.Status, req.ToStatus, record.Timestamp)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		if !ok {
			current, err := s.docRepo.GetByID(txCtx, doc.ID)
			if err != nil {
				return fmt.Errorf("reload document: %w", err)
			}
			if current == nil {
				return ErrNotFound
			}
			return ErrConflict
		}

		if err := s.historyRepo.Create(txCtx, record); err != nil {
			return fmt.Errorf("append history: %w", err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrConflict) || errors.Is(err, ErrNotFound) {
			return nil, err
		}
		s.logger.Error("Transition commit failed",
			"error", err,
			"document_id", doc.ID,
			"from", doc.Status,
			"to", req.ToStatus,
			"actor_id", req.ActorID)
		return nil, fmt.Errorf("%w: commit transition", ErrInternal)
	}

	s.logger.Info("Document transitioned",
		"document_id", doc.ID,
		"type", doc.Type,
		"from", doc.Status,
		"to", req.ToStatus,
		"actor_id", req.ActorID,
		"actor_role", req.ActorRole)

	s.notify(ctx, doc, req)

	return record, nil
}

// checkScope enforces the actor's data scope on the target document.
// ALL scope and the review/approve/reject grants that the edge itself demands
// bypass ownership; everything else fails closed.
func (s *transitionServiceImpl) checkScope(ctx context.Context, doc *entity.Document, req TransitionRequest, required rbac.Permission) error {
	scope := s.resolver.DataScopeFor(req.ActorRole)
	if scope == rbac.ScopeAll {
		return nil
	}

	switch required.Action() {
	case rbac.ActionReview, rbac.ActionApprove, rbac.ActionReject:
		return nil
	}

	switch scope {
	case rbac.ScopeOwn:
		if req.ActorID == doc.OwnerID || (doc.AssignedTo != "" && req.ActorID == doc.AssignedTo) {
			return nil
		}
		return fmt.Errorf("%w: document not owned by actor", ErrForbidden)

	case rbac.ScopeDepartment:
		dept, err := s.directory.DepartmentOf(ctx, req.ActorID)
		if err != nil {
			s.logger.Error("Directory lookup failed", "error", err, "actor_id", req.ActorID)
			return fmt.Errorf("%w: directory lookup", ErrInternal)
		}
		if dept != "" && dept == doc.Department {
			return nil
		}
		return fmt.Errorf("%w: document outside actor department", ErrForbidden)

	default:
		return fmt.Errorf("%w: scope %s cannot transition documents", ErrForbidden, scope)
	}
}

// notify hands the committed transition to the notification collaborator.
// Best-effort only: failures are logged and swallowed.
func (s *transitionServiceImpl) notify(ctx context.Context, doc *entity.Document, req TransitionRequest) {
	if s.notifier == nil {
		return
	}

	event := port.TransitionEvent{
		DocumentID: doc.ID,
		Type:       doc.Type,
		FromStatus: doc.Status,
		ToStatus:   req.ToStatus,
		ActorID:    req.ActorID,
	}
	if err := s.notifier.DocumentTransitioned(ctx, event); err != nil {
		s.logger.Error("Transition notification failed", "error", err, "document_id", doc.ID)
	}
}

func validateRequest(req TransitionRequest) error {
	if req.DocumentID == "" {
		return fmt.Errorf("%w: document id is required", ErrValidation)
	}
	if req.ActorID == "" {
		return fmt.Errorf("%w: actor id is required", ErrValidation)
	}
	if req.ActorRole == "" {
		return fmt.Errorf("%w: actor role is required", ErrValidation)
	}
	if req.ToStatus == "" {
		return fmt.Errorf("%w: target status is required", ErrValidation)
	}
	if len(req.Comment) > maxCommentLength {
		return fmt.Errorf("%w: comment exceeds %d characters", ErrValidation, maxCommentLength)
	}
	return nil
}
