package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oia-portal/docflow/internal/application/port"
	"github.com/oia-portal/docflow/internal/domain/doctype"
	"github.com/oia-portal/docflow/internal/domain/entity"
	"github.com/oia-portal/docflow/internal/domain/workflow"
)

type mockNotificationRepo struct {
	createFunc     func(ctx context.Context, n *entity.TransitionNotification) error
	markSentFunc   func(ctx context.Context, id int64) error
	markFailedFunc func(ctx context.Context, id int64, errorMsg string) error
	getPendingFunc func(ctx context.Context, limit int) ([]*entity.TransitionNotification, error)
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *entity.TransitionNotification) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepo) MarkSent(ctx context.Context, id int64) error {
	if m.markSentFunc != nil {
		return m.markSentFunc(ctx, id)
	}
	return nil
}

func (m *mockNotificationRepo) MarkFailed(ctx context.Context, id int64, errorMsg string) error {
	if m.markFailedFunc != nil {
		return m.markFailedFunc(ctx, id, errorMsg)
	}
	return nil
}

func (m *mockNotificationRepo) GetPending(ctx context.Context, limit int) ([]*entity.TransitionNotification, error) {
	if m.getPendingFunc != nil {
		return m.getPendingFunc(ctx, limit)
	}
	return nil, nil
}

func TestNotificationService_DocumentTransitioned(t *testing.T) {
	var queued *entity.TransitionNotification
	repo := &mockNotificationRepo{
		createFunc: func(ctx context.Context, n *entity.TransitionNotification) error {
			queued = n
			return nil
		},
	}
	svc := NewNotificationService(repo, &mockLogger{})

	err := svc.DocumentTransitioned(context.Background(), port.TransitionEvent{
		DocumentID: "doc-1",
		Type:       workflow.TypeVisa,
		FromStatus: doctype.StatusPending,
		ToStatus:   doctype.StatusSpecialistReview,
		ActorID:    "spec-1",
	})

	require.NoError(t, err)
	require.NotNil(t, queued)
	assert.Equal(t, "doc-1", queued.DocumentID)
	assert.Equal(t, doctype.StatusPending, queued.FromStatus)
	assert.Equal(t, doctype.StatusSpecialistReview, queued.ToStatus)
	assert.Equal(t, "spec-1", queued.ActorID)
	assert.Equal(t, entity.NotificationStatusPending, queued.Status)
}

func TestNotificationService_DocumentTransitioned_RepositoryError(t *testing.T) {
	repo := &mockNotificationRepo{
		createFunc: func(ctx context.Context, n *entity.TransitionNotification) error {
			return errors.New("db closed")
		},
	}
	svc := NewNotificationService(repo, &mockLogger{})

	err := svc.DocumentTransitioned(context.Background(), port.TransitionEvent{DocumentID: "doc-1"})
	assert.Error(t, err)
}

func TestNotificationService_MarkDelivered(t *testing.T) {
	var sentID int64
	var failedID int64
	var failedMsg string
	repo := &mockNotificationRepo{
		markSentFunc: func(ctx context.Context, id int64) error {
			sentID = id
			return nil
		},
		markFailedFunc: func(ctx context.Context, id int64, errorMsg string) error {
			failedID = id
			failedMsg = errorMsg
			return nil
		},
	}
	svc := NewNotificationService(repo, &mockLogger{})

	require.NoError(t, svc.MarkDelivered(context.Background(), 7, nil))
	assert.Equal(t, int64(7), sentID)

	require.NoError(t, svc.MarkDelivered(context.Background(), 9, errors.New("smtp timeout")))
	assert.Equal(t, int64(9), failedID)
	assert.Equal(t, "smtp timeout", failedMsg)
}

func TestNotificationService_ListPending_NormalizesLimit(t *testing.T) {
	var gotLimit int
	repo := &mockNotificationRepo{
		getPendingFunc: func(ctx context.Context, limit int) ([]*entity.TransitionNotification, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	svc := NewNotificationService(repo, &mockLogger{})

	_, err := svc.ListPending(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 20, gotLimit)
}
