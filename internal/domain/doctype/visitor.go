package doctype

import (
	"github.com/oia-portal/docflow/internal/domain/rbac"
	"github.com/oia-portal/docflow/internal/domain/workflow"
)

// visitorRules is the visitor-group lifecycle: the visa pipeline without the
// PROCESSING holding state, since there is no external bureau to wait on.
func visitorRules() []workflow.Rule {
	res := workflow.TypeVisitor.Resource()
	review := rbac.NewPermission(res, rbac.ActionReview)
	approve := rbac.NewPermission(res, rbac.ActionApprove)
	reject := rbac.NewPermission(res, rbac.ActionReject)

	return []workflow.Rule{
		{From: StatusPending, To: StatusSpecialistReview, Permission: review},
		{From: StatusSpecialistReview, To: StatusPendingManagerApproval, Permission: review},
		{From: StatusSpecialistReview, To: StatusRejected, Permission: reject},
		{From: StatusPendingManagerApproval, To: StatusApproved, Permission: approve},
		{From: StatusPendingManagerApproval, To: StatusRejected, Permission: reject},
		{From: StatusPendingManagerApproval, To: StatusSpecialistReview, Permission: review},
		{From: StatusRejected, To: StatusSpecialistReview, Permission: review},
	}
}

func registerVisitor(reg *workflow.Registry) {
	reg.Register(workflow.TypeVisitor, workflow.NewMachine(StatusPending, visitorRules()))
}
