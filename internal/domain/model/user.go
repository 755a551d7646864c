package model

// UserRecord is a managed account as listed by the backend users API.
// Distinct from auth.User, which is the authenticated principal of the
// current session.
type UserRecord struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	IsAdmin   bool   `json:"is_admin"`
	Role      string `json:"role"`
	GroupID   *int64 `json:"group_id,omitempty"`
	GroupName string `json:"group_name,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// CreateUserRequest creates a new account.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=2,max=64"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=admin group_admin user"`
	GroupID  *int64 `json:"group_id,omitempty"`
}

// UpdateUserRequest updates an existing account. Empty password leaves it unchanged.
type UpdateUserRequest struct {
	Password string `json:"password,omitempty" validate:"omitempty,min=6"`
	Role     string `json:"role,omitempty"     validate:"omitempty,oneof=admin group_admin user"`
	GroupID  *int64 `json:"group_id,omitempty"`
}

// ChangePasswordRequest changes the calling user's own password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=6"`
}
