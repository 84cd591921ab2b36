// Package doctype registers each cooperation document kind with the workflow
// engine. The files here are configuration, not logic: a kind contributes its
// status set, its declared transition table and nothing else. Adding a new
// document kind means adding one file and one RegisterAll line.
package doctype

import "github.com/oia-portal/docflow/internal/domain/workflow"

// Statuses shared across the review pipeline of every document kind
const (
	StatusPending                = workflow.Status("PENDING")
	StatusSpecialistReview       = workflow.Status("SPECIALIST_REVIEW")
	StatusPendingManagerApproval = workflow.Status("PENDING_MANAGER_APPROVAL")
	StatusApproved               = workflow.Status("APPROVED")
	StatusRejected               = workflow.Status("REJECTED")
)

// RegisterAll wires every document kind into the registry. Called once at
// process start.
func RegisterAll(reg *workflow.Registry) {
	registerVisa(reg)
	registerMOU(reg)
	registerVisitor(reg)
	registerTranslation(reg)
}
