package service

import (
	"context"
	"log/slog"

	validatorpkg "github.com/go-playground/validator/v10"

	"github.com/docvault/docvault-ui/internal/domain/model"
	"github.com/docvault/docvault-ui/internal/ports"
)

// GroupService validates and forwards group management calls.
type GroupService struct {
	backend  ports.BackendClient
	validate *validatorpkg.Validate
	logger   *slog.Logger
}

// NewGroupService constructs a GroupService.
func NewGroupService(backend ports.BackendClient, logger *slog.Logger) *GroupService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GroupService{
		backend:  backend,
		validate: newValidator(),
		logger:   logger,
	}
}

func (s *GroupService) List(ctx context.Context, token string) ([]model.Group, error) {
	return s.backend.ListGroups(ctx, token)
}

func (s *GroupService) Get(ctx context.Context, token string, id int64) (model.Group, error) {
	return s.backend.GetGroup(ctx, token, id)
}

func (s *GroupService) Create(ctx context.Context, token string, req model.CreateGroupRequest) (model.Group, error) {
	if err := s.validate.Struct(req); err != nil {
		return model.Group{}, validationError(err)
	}
	group, err := s.backend.CreateGroup(ctx, token, req)
	if err != nil {
		return model.Group{}, err
	}
	s.logger.Info("group created", "group_name", group.GroupName)
	return group, nil
}

func (s *GroupService) Update(ctx context.Context, token string, id int64, req model.UpdateGroupRequest) (model.Group, error) {
	if err := s.validate.Struct(req); err != nil {
		return model.Group{}, validationError(err)
	}
	return s.backend.UpdateGroup(ctx, token, id, req)
}

func (s *GroupService) Delete(ctx context.Context, token string, id int64) error {
	if err := s.backend.DeleteGroup(ctx, token, id); err != nil {
		return err
	}
	s.logger.Info("group deleted", "group_id", id)
	return nil
}
