package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oia-portal/docflow/internal/domain/doctype"
	"github.com/oia-portal/docflow/internal/domain/entity"
	"github.com/oia-portal/docflow/internal/domain/workflow"
)

func newDocumentService(docRepo *mockDocumentRepo) DocumentService {
	return NewDocumentService(testRegistry(), docRepo, &mockLogger{})
}

func TestDocumentService_Create(t *testing.T) {
	var created *entity.Document
	repo := &mockDocumentRepo{
		createFunc: func(ctx context.Context, doc *entity.Document) error {
			created = doc
			return nil
		},
	}
	svc := newDocumentService(repo)

	doc, err := svc.Create(context.Background(), CreateDocumentRequest{
		Type:       workflow.TypeVisa,
		OwnerID:    "student-1",
		Department: "global-affairs",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created, doc)
	assert.Equal(t, doctype.StatusPending, doc.Status, "new documents start in the type's initial status")
	assert.Equal(t, "student-1", doc.OwnerID)

	_, err = uuid.Parse(doc.ID)
	assert.NoError(t, err, "document id should be a generated uuid")
}

func TestDocumentService_Create_InitialStatusPerType(t *testing.T) {
	repo := &mockDocumentRepo{}
	svc := newDocumentService(repo)

	tests := []struct {
		docType  workflow.DocumentType
		expected workflow.Status
	}{
		{workflow.TypeVisa, doctype.StatusPending},
		{workflow.TypeMOU, doctype.StatusDraft},
		{workflow.TypeVisitor, doctype.StatusPending},
		{workflow.TypeTranslation, doctype.StatusSubmitted},
	}

	for _, tt := range tests {
		t.Run(string(tt.docType), func(t *testing.T) {
			doc, err := svc.Create(context.Background(), CreateDocumentRequest{
				Type:    tt.docType,
				OwnerID: "owner-1",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, doc.Status)
		})
	}
}

func TestDocumentService_Create_UnknownType(t *testing.T) {
	svc := newDocumentService(&mockDocumentRepo{})

	_, err := svc.Create(context.Background(), CreateDocumentRequest{
		Type:    workflow.DocumentType("PASSPORT"),
		OwnerID: "owner-1",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestDocumentService_Create_MissingOwner(t *testing.T) {
	svc := newDocumentService(&mockDocumentRepo{})

	_, err := svc.Create(context.Background(), CreateDocumentRequest{Type: workflow.TypeVisa})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestDocumentService_Create_RepositoryError(t *testing.T) {
	repo := &mockDocumentRepo{
		createFunc: func(ctx context.Context, doc *entity.Document) error {
			return errors.New("disk full")
		},
	}
	svc := newDocumentService(repo)

	_, err := svc.Create(context.Background(), CreateDocumentRequest{
		Type:    workflow.TypeVisa,
		OwnerID: "owner-1",
	})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestDocumentService_Get(t *testing.T) {
	doc := pendingVisa()
	repo := &mockDocumentRepo{
		getByIDFunc: func(ctx context.Context, id string) (*entity.Document, error) {
			if id == doc.ID {
				return doc, nil
			}
			return nil, nil
		},
	}
	svc := newDocumentService(repo)

	got, err := svc.Get(context.Background(), "doc-1")
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	_, err = svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDocumentService_List_NormalizesLimit(t *testing.T) {
	var gotLimit int
	repo := &mockDocumentRepo{
		listFunc: func(ctx context.Context, limit, offset int) ([]*entity.Document, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	svc := newDocumentService(repo)

	tests := []struct {
		limit    int
		expected int
	}{
		{0, 20},
		{-5, 20},
		{1000, 20},
		{50, 50},
	}

	for _, tt := range tests {
		_, err := svc.List(context.Background(), tt.limit, 0)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, gotLimit, "limit %d", tt.limit)
	}
}

func TestDocumentService_PermittedTargets(t *testing.T) {
	doc := pendingVisa()
	repo := &mockDocumentRepo{
		getByIDFunc: func(ctx context.Context, id string) (*entity.Document, error) {
			if id == doc.ID {
				copied := *doc
				return &copied, nil
			}
			return nil, nil
		},
	}
	svc := newDocumentService(repo)

	targets, err := svc.PermittedTargets(context.Background(), "doc-1")
	require.NoError(t, err)
	assert.Equal(t, []workflow.Status{doctype.StatusSpecialistReview}, targets)

	doc.Status = doctype.StatusApproved
	targets, err = svc.PermittedTargets(context.Background(), "doc-1")
	require.NoError(t, err)
	assert.Empty(t, targets, "terminal status has no targets")

	_, err = svc.PermittedTargets(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
