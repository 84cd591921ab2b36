package port

import (
	"context"

	"github.com/oia-portal/docflow/internal/domain/workflow"
)

// Directory is the identity collaborator: it answers which department an
// actor belongs to. Token validation and session handling live entirely
// outside this engine.
type Directory interface {
	// DepartmentOf returns the actor's department, or "" if the actor is not
	// listed in the directory
	DepartmentOf(ctx context.Context, actorID string) (string, error)
}

// TransitionEvent describes one committed transition for collaborators
type TransitionEvent struct {
	DocumentID string
	Type       workflow.DocumentType
	FromStatus workflow.Status
	ToStatus   workflow.Status
	ActorID    string
}

// Notifier receives transition events after a successful commit. Delivery is
// best-effort and outside the transactional guarantee: a notifier failure
// must never roll back a transition.
type Notifier interface {
	DocumentTransitioned(ctx context.Context, event TransitionEvent) error
}
