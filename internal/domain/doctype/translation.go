package doctype

import (
	"github.com/oia-portal/docflow/internal/domain/rbac"
	"github.com/oia-portal/docflow/internal/domain/workflow"
)

// Translation-only statuses covering the delivery leg after review
const (
	StatusSubmitted      = workflow.Status("SUBMITTED")
	StatusInTranslation  = workflow.Status("IN_TRANSLATION")
	StatusReadyForPickup = workflow.Status("READY_FOR_PICKUP")
	StatusDelivered      = workflow.Status("DELIVERED")
)

func translationRules() []workflow.Rule {
	res := workflow.TypeTranslation.Resource()
	review := rbac.NewPermission(res, rbac.ActionReview)
	approve := rbac.NewPermission(res, rbac.ActionApprove)
	reject := rbac.NewPermission(res, rbac.ActionReject)

	return []workflow.Rule{
		{From: StatusSubmitted, To: StatusSpecialistReview, Permission: review},
		{From: StatusSpecialistReview, To: StatusInTranslation, Permission: review},
		{From: StatusSpecialistReview, To: StatusRejected, Permission: reject},
		{From: StatusInTranslation, To: StatusReadyForPickup, Permission: review},
		{From: StatusReadyForPickup, To: StatusDelivered, Permission: approve},
		{From: StatusRejected, To: StatusSpecialistReview, Permission: review},
	}
}

func registerTranslation(reg *workflow.Registry) {
	reg.Register(workflow.TypeTranslation, workflow.NewMachine(StatusSubmitted, translationRules()))
}
