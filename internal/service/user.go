package service

import (
	"context"
	"log/slog"

	validatorpkg "github.com/go-playground/validator/v10"

	"github.com/docvault/docvault-ui/internal/domain/model"
	"github.com/docvault/docvault-ui/internal/ports"
)

// UserService validates and forwards account management calls. Only admins and
// group admins reach these handlers; the backend enforces the final say.
type UserService struct {
	backend  ports.BackendClient
	validate *validatorpkg.Validate
	logger   *slog.Logger
}

// NewUserService constructs a UserService.
func NewUserService(backend ports.BackendClient, logger *slog.Logger) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		backend:  backend,
		validate: newValidator(),
		logger:   logger,
	}
}

func (s *UserService) List(ctx context.Context, token string) ([]model.UserRecord, error) {
	return s.backend.ListUsers(ctx, token)
}

func (s *UserService) Get(ctx context.Context, token string, id int64) (model.UserRecord, error) {
	return s.backend.GetUser(ctx, token, id)
}

func (s *UserService) Create(ctx context.Context, token string, req model.CreateUserRequest) (model.UserRecord, error) {
	if err := s.validate.Struct(req); err != nil {
		return model.UserRecord{}, validationError(err)
	}
	user, err := s.backend.CreateUser(ctx, token, req)
	if err != nil {
		return model.UserRecord{}, err
	}
	s.logger.Info("user created", "username", user.Username, "role", user.Role)
	return user, nil
}

func (s *UserService) Update(ctx context.Context, token string, id int64, req model.UpdateUserRequest) (model.UserRecord, error) {
	if err := s.validate.Struct(req); err != nil {
		return model.UserRecord{}, validationError(err)
	}
	return s.backend.UpdateUser(ctx, token, id, req)
}

func (s *UserService) Delete(ctx context.Context, token string, id int64) error {
	if err := s.backend.DeleteUser(ctx, token, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", "user_id", id)
	return nil
}
