package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission_PublicRoutes(t *testing.T) {
	for _, route := range []string{RouteLogin, RouteQuery, RouteMobileQuery} {
		assert.True(t, HasPermission(route, nil), "public route %q should pass without a session", route)
	}
}

func TestHasPermission_RequiresSession(t *testing.T) {
	protected := []string{
		RouteDocuments, RouteUpload, RouteView, RouteUsers, RouteGroups, RouteChangePassword,
	}
	for _, route := range protected {
		assert.False(t, HasPermission(route, nil), "route %q must require a session", route)
	}
}

func TestHasPermission_GroupsAdminOnly(t *testing.T) {
	tests := []struct {
		name string
		user User
		want bool
	}{
		{"admin", User{IsAdmin: true, Role: RoleAdmin}, true},
		{"group admin", User{Role: RoleGroupAdmin}, false},
		{"regular user", User{Role: RoleUser}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(RouteGroups, &tt.user))
		})
	}
}

func TestHasPermission_UsersAdminOrGroupAdmin(t *testing.T) {
	tests := []struct {
		name string
		user User
		want bool
	}{
		{"admin", User{IsAdmin: true, Role: RoleAdmin}, true},
		{"group admin", User{Role: RoleGroupAdmin}, true},
		{"regular user", User{Role: RoleUser}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(RouteUsers, &tt.user))
		})
	}
}

func TestHasPermission_OtherRoutesOpenToAnyRole(t *testing.T) {
	u := User{Role: RoleUser}
	for _, route := range []string{RouteDocuments, RouteUpload, RouteView, RouteChangePassword} {
		assert.True(t, HasPermission(route, &u), "route %q should be open to any logged-in role", route)
	}
}

func TestUser_RoleLabel(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{"admin", User{IsAdmin: true, Role: RoleAdmin}, "Admin"},
		{"admin flag wins over role", User{IsAdmin: true, Role: RoleUser}, "Admin"},
		{"group admin", User{Role: RoleGroupAdmin}, "Group admin"},
		{"regular user", User{Role: RoleUser}, "User"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.RoleLabel())
		})
	}
}

func TestSession_Expired(t *testing.T) {
	assert.True(t, Session{}.Expired())
}
