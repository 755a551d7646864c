package ports

// Package ports defines interfaces (hexagonal ports) for outbound dependencies.
// Implementations live in internal/apiclient and internal/adapters; orchestration
// in internal/service.

import (
	"context"

	domainauth "github.com/docvault/docvault-ui/internal/domain/auth"
	"github.com/docvault/docvault-ui/internal/domain/model"
)

// Credentials carries a username/password pair for login.
type Credentials struct {
	Username string
	Password string
}

// LoginResult is the backend's answer to a successful login.
type LoginResult struct {
	Token string
	User  domainauth.User
}

// VerifyResult is the backend's answer to a token verification.
// User is set only when Valid is true.
type VerifyResult struct {
	Valid bool
	User  *domainauth.User
}

// BackendClient wraps every outbound call to the document management backend.
// All calls attach the given bearer token when non-empty and normalize error
// responses into the internal error taxonomy.
type BackendClient interface {
	// Auth
	Login(ctx context.Context, creds Credentials) (LoginResult, error)
	Logout(ctx context.Context, token string) error
	VerifyToken(ctx context.Context, token string) (VerifyResult, error)
	ChangePassword(ctx context.Context, token string, req model.ChangePasswordRequest) error

	// Users
	ListUsers(ctx context.Context, token string) ([]model.UserRecord, error)
	GetUser(ctx context.Context, token string, id int64) (model.UserRecord, error)
	CreateUser(ctx context.Context, token string, req model.CreateUserRequest) (model.UserRecord, error)
	UpdateUser(ctx context.Context, token string, id int64, req model.UpdateUserRequest) (model.UserRecord, error)
	DeleteUser(ctx context.Context, token string, id int64) error

	// Groups
	ListGroups(ctx context.Context, token string) ([]model.Group, error)
	GetGroup(ctx context.Context, token string, id int64) (model.Group, error)
	CreateGroup(ctx context.Context, token string, req model.CreateGroupRequest) (model.Group, error)
	UpdateGroup(ctx context.Context, token string, id int64, req model.UpdateGroupRequest) (model.Group, error)
	DeleteGroup(ctx context.Context, token string, id int64) error

	// Documents
	ListDocuments(ctx context.Context, token string) ([]model.Document, error)
	GetDocument(ctx context.Context, token string, id int64) (model.Document, error)
	UploadDocument(ctx context.Context, token string, upload model.DocumentUpload) (model.Document, error)
	DeleteDocument(ctx context.Context, token string, id int64) error
	ToggleDocumentVisibility(ctx context.Context, token string, id int64) (model.Document, error)
	QueryDocument(ctx context.Context, query model.DocumentQuery) (model.Document, error)

	// GenerateQRCode returns the binary QR image for the given text.
	GenerateQRCode(ctx context.Context, text string) (model.QRCode, error)
}
