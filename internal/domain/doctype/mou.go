package doctype

import (
	"github.com/oia-portal/docflow/internal/domain/rbac"
	"github.com/oia-portal/docflow/internal/domain/workflow"
)

// MOU-only statuses. An approved MOU still has to be executed by both parties,
// so SIGNED, not APPROVED, is the terminal status for this kind.
const (
	StatusDraft  = workflow.Status("DRAFT")
	StatusSigned = workflow.Status("SIGNED")
)

func mouRules() []workflow.Rule {
	res := workflow.TypeMOU.Resource()
	review := rbac.NewPermission(res, rbac.ActionReview)
	approve := rbac.NewPermission(res, rbac.ActionApprove)
	reject := rbac.NewPermission(res, rbac.ActionReject)

	return []workflow.Rule{
		{From: StatusDraft, To: StatusSpecialistReview, Permission: review},
		{From: StatusSpecialistReview, To: StatusPendingManagerApproval, Permission: review},
		{From: StatusSpecialistReview, To: StatusRejected, Permission: reject},
		{From: StatusPendingManagerApproval, To: StatusApproved, Permission: approve},
		{From: StatusPendingManagerApproval, To: StatusRejected, Permission: reject},
		{From: StatusPendingManagerApproval, To: StatusSpecialistReview, Permission: review},
		{From: StatusApproved, To: StatusSigned, Permission: approve},
		{From: StatusRejected, To: StatusSpecialistReview, Permission: review},
	}
}

func registerMOU(reg *workflow.Registry) {
	reg.Register(workflow.TypeMOU, workflow.NewMachine(StatusDraft, mouRules()))
}
