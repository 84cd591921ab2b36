package service

import (
	"context"
	"fmt"

	"github.com/oia-portal/docflow/internal/application/port"
	"github.com/oia-portal/docflow/internal/domain/entity"
)

// NotificationService records committed transitions in the outbox for the
// delivery collaborator to pick up. It implements port.Notifier; every call
// happens after the transition already committed, so errors here are reported
// to the caller only for logging and never affect the transition.
type NotificationService interface {
	port.Notifier

	// ListPending returns undelivered outbox entries for the delivery worker
	ListPending(ctx context.Context, limit int) ([]*entity.TransitionNotification, error)

	// MarkDelivered records the delivery outcome of an outbox entry
	MarkDelivered(ctx context.Context, id int64, deliveryErr error) error
}

type notificationServiceImpl struct {
	repo   port.NotificationRepository
	logger Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(repo port.NotificationRepository, logger Logger) NotificationService {
	return &notificationServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

// DocumentTransitioned appends an outbox entry for the event
func (s *notificationServiceImpl) DocumentTransitioned(ctx context.Context, event port.TransitionEvent) error {
	n := &entity.TransitionNotification{
		DocumentID: event.DocumentID,
		FromStatus: event.FromStatus,
		ToStatus:   event.ToStatus,
		ActorID:    event.ActorID,
		Status:     entity.NotificationStatusPending,
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	s.logger.Info("Transition notification queued",
		"notification_id", n.ID,
		"document_id", event.DocumentID,
		"from", event.FromStatus,
		"to", event.ToStatus)
	return nil
}

func (s *notificationServiceImpl) ListPending(ctx context.Context, limit int) ([]*entity.TransitionNotification, error) {
	return s.repo.GetPending(ctx, normalizeLimit(limit))
}

func (s *notificationServiceImpl) MarkDelivered(ctx context.Context, id int64, deliveryErr error) error {
	if deliveryErr != nil {
		return s.repo.MarkFailed(ctx, id, deliveryErr.Error())
	}
	return s.repo.MarkSent(ctx, id)
}
