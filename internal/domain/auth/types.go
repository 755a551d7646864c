package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of transport/adapter concerns.

import "time"

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleGroupAdmin Role = "group_admin"
	RoleUser       Role = "user"
)

// User is the current-user record returned by the backend on login/verify.
// It is rebuilt from the server response and discarded on logout.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	IsAdmin   bool   `json:"is_admin"`
	Role      Role   `json:"role"`
	GroupID   *int64 `json:"group_id,omitempty"`
	GroupName string `json:"group_name,omitempty"`
}

// RoleLabel returns the badge text shown next to the username. Admin wins
// over the role field, matching how the backend reports elevated accounts.
func (u User) RoleLabel() string {
	switch {
	case u.IsAdmin:
		return "Admin"
	case u.Role == RoleGroupAdmin:
		return "Group admin"
	default:
		return "User"
	}
}

// Session is the server-side record persisted for an authenticated browser.
// ID is an opaque session identifier; Token is the backend-issued bearer token
// attached to outbound API calls on the user's behalf.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry.
func (s Session) Expired() bool { return time.Now().After(s.ExpiresAt) }
