package rbac

import "testing"

func TestResolver_HasPermission(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		name       string
		role       Role
		permission Permission
		expected   bool
	}{
		{"admin approves visas", RoleAdmin, NewPermission("visa", ActionApprove), true},
		{"system approves mous", RoleSystem, NewPermission("mou", ActionApprove), true},
		{"manager approves visas", RoleManager, NewPermission("visa", ActionApprove), true},
		{"manager reviews translations", RoleManager, NewPermission("translation", ActionReview), true},
		{"specialist reviews visas", RoleSpecialist, NewPermission("visa", ActionReview), true},
		{"specialist rejects visas", RoleSpecialist, NewPermission("visa", ActionReject), true},
		{"specialist cannot approve", RoleSpecialist, NewPermission("visa", ActionApprove), false},
		{"user creates visitors", RoleUser, NewPermission("visitor", ActionCreate), true},
		{"user cannot review", RoleUser, NewPermission("visa", ActionReview), false},
		{"student creates visas", RoleStudent, NewPermission("visa", ActionCreate), true},
		{"student creates translations", RoleStudent, NewPermission("translation", ActionCreate), true},
		{"student cannot create mous", RoleStudent, NewPermission("mou", ActionCreate), false},
		{"student cannot approve", RoleStudent, NewPermission("visa", ActionApprove), false},
		{"viewer only views", RoleViewer, NewPermission("visa", ActionView), true},
		{"viewer cannot create", RoleViewer, NewPermission("visa", ActionCreate), false},
		{"unknown role holds nothing", Role("INTRUDER"), NewPermission("visa", ActionView), false},
		{"empty role holds nothing", Role(""), NewPermission("visa", ActionView), false},
		{"unknown token denied", RoleAdmin, Permission("visa:teleport"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.HasPermission(tt.role, tt.permission); got != tt.expected {
				t.Errorf("HasPermission(%s, %s) = %v, want %v", tt.role, tt.permission, got, tt.expected)
			}
		})
	}
}

func TestResolver_DataScopeFor(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		role     Role
		expected DataScope
	}{
		{RoleAdmin, ScopeAll},
		{RoleSystem, ScopeAll},
		{RoleManager, ScopeAll},
		{RoleSpecialist, ScopeDepartment},
		{RoleUser, ScopeOwn},
		{RoleStudent, ScopeOwn},
		{RoleViewer, ScopePublic},
		// Fail closed: unknown roles get the narrowest scope
		{Role("INTRUDER"), ScopePublic},
		{Role(""), ScopePublic},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := r.DataScopeFor(tt.role); got != tt.expected {
				t.Errorf("DataScopeFor(%s) = %v, want %v", tt.role, got, tt.expected)
			}
		})
	}
}

func TestPermission_Parts(t *testing.T) {
	p := NewPermission("visa", ActionApprove)
	if p.String() != "visa:approve" {
		t.Errorf("String() = %v, want visa:approve", p)
	}
	if p.Resource() != "visa" {
		t.Errorf("Resource() = %v, want visa", p.Resource())
	}
	if p.Action() != "approve" {
		t.Errorf("Action() = %v, want approve", p.Action())
	}

	bare := Permission("malformed")
	if bare.Resource() != "malformed" || bare.Action() != "" {
		t.Errorf("malformed token parsed as (%q, %q)", bare.Resource(), bare.Action())
	}
}

func TestRole_IsValid(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleUser, RoleStudent, RoleSpecialist, RoleManager, RoleViewer, RoleSystem} {
		if !role.IsValid() {
			t.Errorf("IsValid(%s) = false, want true", role)
		}
	}
	if Role("INTRUDER").IsValid() {
		t.Error("IsValid(INTRUDER) = true, want false")
	}
}
