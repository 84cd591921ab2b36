// Package rbac holds the static role and permission model for the cooperation
// portal. The tables here are the single authoritative copy; any client-side
// mirror of them is a UI hint only, never consulted for authorization.
package rbac

// cooperationResources lists every document resource governed by the engine
var cooperationResources = []string{"visa", "mou", "visitor", "translation"}

// roleScopes maps each role to its data scope. Roles absent from this table
// resolve to ScopePublic.
var roleScopes = map[Role]DataScope{
	RoleAdmin:      ScopeAll,
	RoleSystem:     ScopeAll,
	RoleManager:    ScopeAll,
	RoleSpecialist: ScopeDepartment,
	RoleUser:       ScopeOwn,
	RoleStudent:    ScopeOwn,
	RoleViewer:     ScopePublic,
}

// roleActions maps each role to the actions it holds on every resource.
// Student grants are narrower and listed explicitly in studentPermissions.
var roleActions = map[Role][]string{
	RoleAdmin:      {ActionCreate, ActionView, ActionReview, ActionApprove, ActionReject},
	RoleSystem:     {ActionCreate, ActionView, ActionReview, ActionApprove, ActionReject},
	RoleManager:    {ActionView, ActionReview, ActionApprove, ActionReject},
	RoleSpecialist: {ActionView, ActionReview, ActionReject},
	RoleUser:       {ActionCreate, ActionView},
	RoleViewer:     {ActionView},
}

// studentPermissions are the explicit grants for the STUDENT role: students
// file their own visa extensions and translation requests and can view records,
// but hold no review or approval grants anywhere.
var studentPermissions = []Permission{
	NewPermission("visa", ActionCreate),
	NewPermission("translation", ActionCreate),
	NewPermission("visa", ActionView),
	NewPermission("mou", ActionView),
	NewPermission("visitor", ActionView),
	NewPermission("translation", ActionView),
}

// Resolver answers permission and data-scope questions for roles. It is built
// once at process start from the static tables above and is immutable after
// construction, so it is safe for unlimited concurrent reads.
type Resolver struct {
	grants map[Role]map[Permission]struct{}
	scopes map[Role]DataScope
}

// NewResolver builds the resolver from the static role tables
func NewResolver() *Resolver {
	grants := make(map[Role]map[Permission]struct{}, len(roleActions)+1)

	for role, actions := range roleActions {
		set := make(map[Permission]struct{}, len(actions)*len(cooperationResources))
		for _, resource := range cooperationResources {
			for _, action := range actions {
				set[NewPermission(resource, action)] = struct{}{}
			}
		}
		grants[role] = set
	}

	studentSet := make(map[Permission]struct{}, len(studentPermissions))
	for _, p := range studentPermissions {
		studentSet[p] = struct{}{}
	}
	grants[RoleStudent] = studentSet

	return &Resolver{
		grants: grants,
		scopes: roleScopes,
	}
}

// HasPermission returns true if the role holds the permission token.
// Unknown roles hold nothing.
func (r *Resolver) HasPermission(role Role, permission Permission) bool {
	set, ok := r.grants[role]
	if !ok {
		return false
	}
	_, ok = set[permission]
	return ok
}

// DataScopeFor returns the data scope of the role. Unknown roles resolve to
// ScopePublic so an unanticipated role value can never widen access.
func (r *Resolver) DataScopeFor(role Role) DataScope {
	if scope, ok := r.scopes[role]; ok {
		return scope
	}
	return ScopePublic
}
