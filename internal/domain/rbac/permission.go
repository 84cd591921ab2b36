package rbac

import "strings"

// Permission is a "resource:action" capability token. Tokens are data, not code:
// the transition tables reference them and the resolver checks them, nothing else
// interprets their content.
type Permission string

// Actions shared by all document resources
const (
	ActionCreate  = "create"
	ActionView    = "view"
	ActionReview  = "review"
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// NewPermission builds a permission token from a resource and an action
func NewPermission(resource, action string) Permission {
	return Permission(resource + ":" + action)
}

// Resource returns the part before the colon, or the whole token if unseparated
func (p Permission) Resource() string {
	if i := strings.IndexByte(string(p), ':'); i >= 0 {
		return string(p)[:i]
	}
	return string(p)
}

// Action returns the part after the colon, or "" if unseparated
func (p Permission) Action() string {
	if i := strings.IndexByte(string(p), ':'); i >= 0 {
		return string(p)[i+1:]
	}
	return ""
}

// String returns the string representation of the token
func (p Permission) String() string {
	return string(p)
}
