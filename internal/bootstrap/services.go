package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/docvault/docvault-ui/config"
	"github.com/docvault/docvault-ui/internal/apiclient"
	"github.com/docvault/docvault-ui/internal/ports"
	"github.com/docvault/docvault-ui/internal/service"
)

// ServiceContainer holds the constructed application services.
type ServiceContainer struct {
	Backend   ports.BackendClient
	Auth      *service.AuthService
	Documents *service.DocumentService
	Users     *service.UserService
	Groups    *service.GroupService
}

// ServiceDeps groups the dependencies for NewServices.
type ServiceDeps struct {
	Config   *config.AppConfig
	Sessions ports.SessionStore
	Logger   *slog.Logger
}

// NewServices wires the backend client and the application services.
func NewServices(deps *ServiceDeps) (*ServiceContainer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	backend, err := apiclient.New(apiclient.Config{
		BaseURL: deps.Config.Backend.BaseURL,
		Timeout: deps.Config.Backend.Timeout,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build backend client: %w", err)
	}

	auth := service.NewAuthService(service.AuthServiceOptions{
		Backend:    backend,
		Sessions:   deps.Sessions,
		SessionTTL: deps.Config.Session.TTL,
		Logger:     logger,
	})

	return &ServiceContainer{
		Backend:   backend,
		Auth:      auth,
		Documents: service.NewDocumentService(backend, logger),
		Users:     service.NewUserService(backend, logger),
		Groups:    service.NewGroupService(backend, logger),
	}, nil
}
