package rbac

// Role represents an actor role in the cooperation portal
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleUser       Role = "USER"
	RoleStudent    Role = "STUDENT"
	RoleSpecialist Role = "SPECIALIST"
	RoleManager    Role = "MANAGER"
	RoleViewer     Role = "VIEWER"
	RoleSystem     Role = "SYSTEM"
)

var validRoles = map[Role]bool{
	RoleAdmin:      true,
	RoleUser:       true,
	RoleStudent:    true,
	RoleSpecialist: true,
	RoleManager:    true,
	RoleViewer:     true,
	RoleSystem:     true,
}

// IsValid returns true if the role is a known portal role
func (r Role) IsValid() bool {
	return validRoles[r]
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// DataScope describes the breadth of documents a role may act upon
type DataScope string

const (
	ScopeOwn        DataScope = "OWN"
	ScopeDepartment DataScope = "DEPARTMENT"
	ScopeAll        DataScope = "ALL"
	ScopePublic     DataScope = "PUBLIC"
)
