package model

// Group is a user group as reported by the backend groups API.
type Group struct {
	ID          int64  `json:"id"`
	GroupName   string `json:"group_name"`
	Description string `json:"description,omitempty"`
	MemberCount int    `json:"member_count,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// CreateGroupRequest creates a new group.
type CreateGroupRequest struct {
	GroupName   string `json:"group_name"  validate:"required,min=2,max=64"`
	Description string `json:"description" validate:"max=256"`
}

// UpdateGroupRequest updates an existing group.
type UpdateGroupRequest struct {
	GroupName   string `json:"group_name,omitempty"  validate:"omitempty,min=2,max=64"`
	Description string `json:"description,omitempty" validate:"omitempty,max=256"`
}
