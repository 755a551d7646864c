package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docvault/docvault-ui/internal/domain/model"
	apperrors "github.com/docvault/docvault-ui/internal/errors"
	"github.com/docvault/docvault-ui/internal/mocks/backend"
)

func TestUserService_CreateValidation(t *testing.T) {
	svc := NewUserService(backend.NewFake(), discardLogger())
	ctx := context.Background()

	_, err := svc.Create(ctx, "tok", model.CreateUserRequest{Username: "a", Password: "secret1", Role: "user"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Create(ctx, "tok", model.CreateUserRequest{Username: "alice", Password: "short", Role: "user"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Create(ctx, "tok", model.CreateUserRequest{Username: "alice", Password: "secret1", Role: "superuser"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUserService_CreateForwardsConflict(t *testing.T) {
	fake := backend.NewFake()
	fake.CreateUserFunc = func(context.Context, string, model.CreateUserRequest) (model.UserRecord, error) {
		return model.UserRecord{}, apperrors.Conflict("Username already exists")
	}
	svc := NewUserService(fake, discardLogger())

	_, err := svc.Create(context.Background(), "tok", model.CreateUserRequest{
		Username: "alice", Password: "secret1", Role: "user",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestUserService_UpdateAllowsEmptyPassword(t *testing.T) {
	fake := backend.NewFake()
	fake.UpdateUserFunc = func(_ context.Context, _ string, id int64, req model.UpdateUserRequest) (model.UserRecord, error) {
		return model.UserRecord{ID: id, Role: req.Role}, nil
	}
	svc := NewUserService(fake, discardLogger())

	user, err := svc.Update(context.Background(), "tok", 3, model.UpdateUserRequest{Role: "group_admin"})
	require.NoError(t, err)
	assert.Equal(t, "group_admin", user.Role)
}

func TestGroupService_CreateValidation(t *testing.T) {
	svc := NewGroupService(backend.NewFake(), discardLogger())
	ctx := context.Background()

	_, err := svc.Create(ctx, "tok", model.CreateGroupRequest{GroupName: "x"})
	assert.True(t, apperrors.IsValidation(err))

	fakeCalled := false
	fake := backend.NewFake()
	fake.CreateGroupFunc = func(_ context.Context, _ string, req model.CreateGroupRequest) (model.Group, error) {
		fakeCalled = true
		return model.Group{ID: 1, GroupName: req.GroupName}, nil
	}
	svc = NewGroupService(fake, discardLogger())
	group, err := svc.Create(ctx, "tok", model.CreateGroupRequest{GroupName: "inspectors"})
	require.NoError(t, err)
	assert.True(t, fakeCalled)
	assert.Equal(t, "inspectors", group.GroupName)
}
