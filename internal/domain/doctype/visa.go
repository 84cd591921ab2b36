package doctype

import (
	"github.com/oia-portal/docflow/internal/domain/rbac"
	"github.com/oia-portal/docflow/internal/domain/workflow"
)

// StatusProcessing is the visa-only holding state used while the office waits
// on the immigration bureau.
const StatusProcessing = workflow.Status("PROCESSING")

// visaRules is the visa extension lifecycle. APPROVED has no outgoing edges
// and is terminal; REJECTED can be reopened back into review.
func visaRules() []workflow.Rule {
	res := workflow.TypeVisa.Resource()
	review := rbac.NewPermission(res, rbac.ActionReview)
	approve := rbac.NewPermission(res, rbac.ActionApprove)
	reject := rbac.NewPermission(res, rbac.ActionReject)

	return []workflow.Rule{
		{From: StatusPending, To: StatusSpecialistReview, Permission: review},
		{From: StatusSpecialistReview, To: StatusPendingManagerApproval, Permission: review},
		{From: StatusSpecialistReview, To: StatusRejected, Permission: reject},
		{From: StatusSpecialistReview, To: StatusProcessing, Permission: review},
		{From: StatusProcessing, To: StatusSpecialistReview, Permission: review},
		{From: StatusProcessing, To: StatusPendingManagerApproval, Permission: review},
		{From: StatusPendingManagerApproval, To: StatusApproved, Permission: approve},
		{From: StatusPendingManagerApproval, To: StatusRejected, Permission: reject},
		{From: StatusPendingManagerApproval, To: StatusSpecialistReview, Permission: review},
		{From: StatusRejected, To: StatusSpecialistReview, Permission: review},
	}
}

func registerVisa(reg *workflow.Registry) {
	reg.Register(workflow.TypeVisa, workflow.NewMachine(StatusPending, visaRules()))
}
