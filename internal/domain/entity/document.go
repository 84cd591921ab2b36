package entity

import (
	"time"

	"github.com/oia-portal/docflow/internal/domain/workflow"
)

// Document represents one cooperation record (visa extension, MOU, visitor
// group or translation request). It is created by the portal in its type's
// initial status and mutated exclusively through the transition executor.
type Document struct {
	ID         string                `json:"id"`
	Type       workflow.DocumentType `json:"type"`
	Status     workflow.Status       `json:"status"`
	OwnerID    string                `json:"owner_id"`
	AssignedTo string                `json:"assigned_to,omitempty"`
	Department string                `json:"department,omitempty"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
}
