package domain

import "testing"

func TestUser_Role(t *testing.T) {
	t.Parallel()

	anon := &User{IsAnonymous: true}
	if got := anon.Role(); got != RoleAnonymous {
		t.Errorf("anonymous Role() = %q, want %q", got, RoleAnonymous)
	}

	named := &User{}
	if got := named.Role(); got != RoleUser {
		t.Errorf("Role() = %q, want %q", got, RoleUser)
	}
}
