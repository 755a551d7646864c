package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/docvault/docvault-ui/internal/domain/model"
)

// ChangePassword changes the calling user's own password.
func (c *Client) ChangePassword(ctx context.Context, token string, req model.ChangePasswordRequest) error {
	return c.doJSON(ctx, call{
		method: http.MethodPost,
		path:   "/auth/change-password",
		token:  token,
		body:   req,
	})
}

// ListUsers returns all accounts visible to the caller.
func (c *Client) ListUsers(ctx context.Context, token string) ([]model.UserRecord, error) {
	var out struct {
		Users []model.UserRecord `json:"users"`
	}
	err := c.doJSON(ctx, call{method: http.MethodGet, path: "/users", token: token, out: &out})
	if err != nil {
		return nil, err
	}
	return out.Users, nil
}

// GetUser returns a single account.
func (c *Client) GetUser(ctx context.Context, token string, id int64) (model.UserRecord, error) {
	var out struct {
		User model.UserRecord `json:"user"`
	}
	err := c.doJSON(ctx, call{method: http.MethodGet, path: userPath(id), token: token, out: &out})
	return out.User, err
}

// CreateUser creates a new account.
func (c *Client) CreateUser(ctx context.Context, token string, req model.CreateUserRequest) (model.UserRecord, error) {
	var out struct {
		User model.UserRecord `json:"user"`
	}
	err := c.doJSON(ctx, call{method: http.MethodPost, path: "/users", token: token, body: req, out: &out})
	return out.User, err
}

// UpdateUser updates an existing account.
func (c *Client) UpdateUser(
	ctx context.Context,
	token string,
	id int64,
	req model.UpdateUserRequest,
) (model.UserRecord, error) {
	var out struct {
		User model.UserRecord `json:"user"`
	}
	err := c.doJSON(ctx, call{method: http.MethodPut, path: userPath(id), token: token, body: req, out: &out})
	return out.User, err
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, token string, id int64) error {
	return c.doJSON(ctx, call{method: http.MethodDelete, path: userPath(id), token: token})
}

// ListGroups returns all groups.
func (c *Client) ListGroups(ctx context.Context, token string) ([]model.Group, error) {
	var out struct {
		Groups []model.Group `json:"groups"`
	}
	err := c.doJSON(ctx, call{method: http.MethodGet, path: "/groups", token: token, out: &out})
	if err != nil {
		return nil, err
	}
	return out.Groups, nil
}

// GetGroup returns a single group.
func (c *Client) GetGroup(ctx context.Context, token string, id int64) (model.Group, error) {
	var out struct {
		Group model.Group `json:"group"`
	}
	err := c.doJSON(ctx, call{method: http.MethodGet, path: groupPath(id), token: token, out: &out})
	return out.Group, err
}

// CreateGroup creates a new group.
func (c *Client) CreateGroup(ctx context.Context, token string, req model.CreateGroupRequest) (model.Group, error) {
	var out struct {
		Group model.Group `json:"group"`
	}
	err := c.doJSON(ctx, call{method: http.MethodPost, path: "/groups", token: token, body: req, out: &out})
	return out.Group, err
}

// UpdateGroup updates an existing group.
func (c *Client) UpdateGroup(
	ctx context.Context,
	token string,
	id int64,
	req model.UpdateGroupRequest,
) (model.Group, error) {
	var out struct {
		Group model.Group `json:"group"`
	}
	err := c.doJSON(ctx, call{method: http.MethodPut, path: groupPath(id), token: token, body: req, out: &out})
	return out.Group, err
}

// DeleteGroup removes a group.
func (c *Client) DeleteGroup(ctx context.Context, token string, id int64) error {
	return c.doJSON(ctx, call{method: http.MethodDelete, path: groupPath(id), token: token})
}

func userPath(id int64) string  { return fmt.Sprintf("/users/%d", id) }
func groupPath(id int64) string { return fmt.Sprintf("/groups/%d", id) }
