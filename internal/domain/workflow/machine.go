// Package workflow implements the table-driven lifecycle engine shared by all
// cooperation document types. Each type declares its legal edges as data; the
// machine answers which permission an edge requires and which statuses are
// terminal. There is no wildcard or inheritance matching: every legal edge,
// including reopen edges, must be declared explicitly, so an unanticipated
// status value can never silently acquire transitions.
package workflow

import (
	"fmt"

	"github.com/oia-portal/docflow/internal/domain/rbac"
)

// Rule is a single declared edge in a document type's lifecycle
type Rule struct {
	From       Status
	To         Status
	Permission rbac.Permission
}

type edge struct {
	from Status
	to   Status
}

// Machine holds the compiled transition table for one document type.
// It is immutable after construction and safe for concurrent reads.
type Machine struct {
	initial  Status
	statuses map[Status]bool
	required map[edge]rbac.Permission
	outgoing map[Status]int
}

// NewMachine compiles a rule table into a machine. Malformed tables are a
// wiring error and panic at registration time, before the process serves
// any request.
func NewMachine(initial Status, rules []Rule) *Machine {
	if initial == "" {
		panic("workflow: initial status must not be empty")
	}

	m := &Machine{
		initial:  initial,
		statuses: map[Status]bool{initial: true},
		required: make(map[edge]rbac.Permission, len(rules)),
		outgoing: make(map[Status]int),
	}

	for _, r := range rules {
		if r.From == "" || r.To == "" {
			panic(fmt.Sprintf("workflow: rule with empty status: %+v", r))
		}
		if r.Permission == "" {
			panic(fmt.Sprintf("workflow: rule %s -> %s has no permission", r.From, r.To))
		}
		e := edge{from: r.From, to: r.To}
		if _, dup := m.required[e]; dup {
			panic(fmt.Sprintf("workflow: duplicate rule %s -> %s", r.From, r.To))
		}
		m.required[e] = r.Permission
		m.outgoing[r.From]++
		m.statuses[r.From] = true
		m.statuses[r.To] = true
	}

	return m
}

// Initial returns the status a newly created document starts in
func (m *Machine) Initial() Status {
	return m.initial
}

// IsKnown returns true if the status appears anywhere in the type's table
func (m *Machine) IsKnown(s Status) bool {
	return m.statuses[s]
}

// IsTerminal returns true if the status has no outgoing edges. Statuses the
// table never mentions are terminal as well: they permit nothing.
func (m *Machine) IsTerminal(s Status) bool {
	return m.outgoing[s] == 0
}

// RequiredPermission returns the permission the edge (from, to) requires, or
// ErrInvalidTransition if the edge is not declared. Self-transitions fail
// unless explicitly listed.
func (m *Machine) RequiredPermission(from, to Status) (rbac.Permission, error) {
	perm, ok := m.required[edge{from: from, to: to}]
	if !ok {
		return "", fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return perm, nil
}

// PermittedTargets returns every status reachable from the given status in one
// step. Used by read-side callers for UI affordances; never authoritative.
func (m *Machine) PermittedTargets(from Status) []Status {
	var targets []Status
	for e := range m.required {
		if e.from == from {
			targets = append(targets, e.to)
		}
	}
	return targets
}
