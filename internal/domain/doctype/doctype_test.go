package doctype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oia-portal/docflow/internal/domain/rbac"
	"github.com/oia-portal/docflow/internal/domain/workflow"
)

func newRegistry(t *testing.T) *workflow.Registry {
	t.Helper()
	reg := workflow.NewRegistry()
	RegisterAll(reg)
	return reg
}

func TestRegisterAll_CoversEveryType(t *testing.T) {
	reg := newRegistry(t)

	for _, docType := range []workflow.DocumentType{
		workflow.TypeVisa,
		workflow.TypeMOU,
		workflow.TypeVisitor,
		workflow.TypeTranslation,
	} {
		_, err := reg.Get(docType)
		assert.NoError(t, err, "type %s should be registered", docType)
	}
}

func TestVisaTable(t *testing.T) {
	reg := newRegistry(t)
	m, err := reg.Get(workflow.TypeVisa)
	require.NoError(t, err)

	assert.Equal(t, StatusPending, m.Initial())

	// The full declared edge set for visa extensions
	edges := []struct {
		from workflow.Status
		to   workflow.Status
		perm string
	}{
		{StatusPending, StatusSpecialistReview, "visa:review"},
		{StatusSpecialistReview, StatusPendingManagerApproval, "visa:review"},
		{StatusSpecialistReview, StatusRejected, "visa:reject"},
		{StatusSpecialistReview, StatusProcessing, "visa:review"},
		{StatusProcessing, StatusSpecialistReview, "visa:review"},
		{StatusProcessing, StatusPendingManagerApproval, "visa:review"},
		{StatusPendingManagerApproval, StatusApproved, "visa:approve"},
		{StatusPendingManagerApproval, StatusRejected, "visa:reject"},
		{StatusPendingManagerApproval, StatusSpecialistReview, "visa:review"},
		{StatusRejected, StatusSpecialistReview, "visa:review"},
	}

	for _, e := range edges {
		perm, err := m.RequiredPermission(e.from, e.to)
		require.NoError(t, err, "%s -> %s should be declared", e.from, e.to)
		assert.Equal(t, rbac.Permission(e.perm), perm, "%s -> %s", e.from, e.to)
	}

	assert.True(t, m.IsTerminal(StatusApproved), "APPROVED must have no outgoing edges")
	assert.False(t, m.IsTerminal(StatusRejected), "REJECTED is reopenable, not terminal")

	// No undeclared shortcuts
	_, err = m.RequiredPermission(StatusPending, StatusApproved)
	assert.ErrorIs(t, err, workflow.ErrInvalidTransition)
	_, err = m.RequiredPermission(StatusApproved, StatusRejected)
	assert.ErrorIs(t, err, workflow.ErrInvalidTransition)
}

func TestMOUTable(t *testing.T) {
	reg := newRegistry(t)
	m, err := reg.Get(workflow.TypeMOU)
	require.NoError(t, err)

	assert.Equal(t, StatusDraft, m.Initial())

	// An approved MOU still needs execution, so APPROVED is not terminal here
	assert.False(t, m.IsTerminal(StatusApproved))
	assert.True(t, m.IsTerminal(StatusSigned))

	perm, err := m.RequiredPermission(StatusApproved, StatusSigned)
	require.NoError(t, err)
	assert.Equal(t, rbac.Permission("mou:approve"), perm)

	perm, err = m.RequiredPermission(StatusRejected, StatusSpecialistReview)
	require.NoError(t, err)
	assert.Equal(t, rbac.Permission("mou:review"), perm)
}

func TestVisitorTable(t *testing.T) {
	reg := newRegistry(t)
	m, err := reg.Get(workflow.TypeVisitor)
	require.NoError(t, err)

	assert.Equal(t, StatusPending, m.Initial())
	assert.True(t, m.IsTerminal(StatusApproved))
	assert.False(t, m.IsTerminal(StatusRejected))

	// Visitor groups have no external-bureau holding state
	_, err = m.RequiredPermission(StatusSpecialistReview, StatusProcessing)
	assert.ErrorIs(t, err, workflow.ErrInvalidTransition)
}

func TestTranslationTable(t *testing.T) {
	reg := newRegistry(t)
	m, err := reg.Get(workflow.TypeTranslation)
	require.NoError(t, err)

	assert.Equal(t, StatusSubmitted, m.Initial())
	assert.True(t, m.IsTerminal(StatusDelivered))

	// Delivery leg after review
	perm, err := m.RequiredPermission(StatusInTranslation, StatusReadyForPickup)
	require.NoError(t, err)
	assert.Equal(t, rbac.Permission("translation:review"), perm)

	perm, err = m.RequiredPermission(StatusReadyForPickup, StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, rbac.Permission("translation:approve"), perm)
}

func TestEveryTable_ReachesATerminalStatus(t *testing.T) {
	reg := newRegistry(t)

	for _, docType := range reg.Types() {
		m, err := reg.Get(docType)
		require.NoError(t, err)

		// Walk breadth-first from the initial status; at least one reachable
		// status must be terminal or documents of this kind can never finish.
		visited := map[workflow.Status]bool{m.Initial(): true}
		queue := []workflow.Status{m.Initial()}
		foundTerminal := false

		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]

			if m.IsTerminal(current) {
				foundTerminal = true
				continue
			}
			for _, next := range m.PermittedTargets(current) {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}

		assert.True(t, foundTerminal, "type %s has no reachable terminal status", docType)
	}
}
