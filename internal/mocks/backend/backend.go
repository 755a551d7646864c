package backend

// Package backend contains a hand-written test double for the backend API
// client port. Set the Func field for a call you expect; unset calls return
// zero values so tests only wire what they use.

import (
	"context"

	domainauth "github.com/docvault/docvault-ui/internal/domain/auth"
	"github.com/docvault/docvault-ui/internal/domain/model"
	"github.com/docvault/docvault-ui/internal/ports"
)

// Ensure compile-time conformance to the port.
var _ ports.BackendClient = (*Fake)(nil)

// Fake is a configurable BackendClient double.
type Fake struct {
	LoginFunc          func(ctx context.Context, creds ports.Credentials) (ports.LoginResult, error)
	LogoutFunc         func(ctx context.Context, token string) error
	VerifyTokenFunc    func(ctx context.Context, token string) (ports.VerifyResult, error)
	ChangePasswordFunc func(ctx context.Context, token string, req model.ChangePasswordRequest) error

	ListUsersFunc  func(ctx context.Context, token string) ([]model.UserRecord, error)
	GetUserFunc    func(ctx context.Context, token string, id int64) (model.UserRecord, error)
	CreateUserFunc func(ctx context.Context, token string, req model.CreateUserRequest) (model.UserRecord, error)
	UpdateUserFunc func(ctx context.Context, token string, id int64, req model.UpdateUserRequest) (model.UserRecord, error)
	DeleteUserFunc func(ctx context.Context, token string, id int64) error

	ListGroupsFunc  func(ctx context.Context, token string) ([]model.Group, error)
	GetGroupFunc    func(ctx context.Context, token string, id int64) (model.Group, error)
	CreateGroupFunc func(ctx context.Context, token string, req model.CreateGroupRequest) (model.Group, error)
	UpdateGroupFunc func(ctx context.Context, token string, id int64, req model.UpdateGroupRequest) (model.Group, error)
	DeleteGroupFunc func(ctx context.Context, token string, id int64) error

	ListDocumentsFunc            func(ctx context.Context, token string) ([]model.Document, error)
	GetDocumentFunc              func(ctx context.Context, token string, id int64) (model.Document, error)
	UploadDocumentFunc           func(ctx context.Context, token string, upload model.DocumentUpload) (model.Document, error)
	DeleteDocumentFunc           func(ctx context.Context, token string, id int64) error
	ToggleDocumentVisibilityFunc func(ctx context.Context, token string, id int64) (model.Document, error)
	QueryDocumentFunc            func(ctx context.Context, query model.DocumentQuery) (model.Document, error)

	GenerateQRCodeFunc func(ctx context.Context, text string) (model.QRCode, error)
}

// NewFake creates an empty Fake.
func NewFake() *Fake { return &Fake{} }

// WithUser returns a Fake whose Login and VerifyToken succeed for the given
// user and token. Convenient base for handler tests.
func WithUser(token string, user domainauth.User) *Fake {
	return &Fake{
		LoginFunc: func(_ context.Context, _ ports.Credentials) (ports.LoginResult, error) {
			return ports.LoginResult{Token: token, User: user}, nil
		},
		VerifyTokenFunc: func(_ context.Context, got string) (ports.VerifyResult, error) {
			if got != token {
				return ports.VerifyResult{Valid: false}, nil
			}
			u := user
			return ports.VerifyResult{Valid: true, User: &u}, nil
		},
	}
}

func (f *Fake) Login(ctx context.Context, creds ports.Credentials) (ports.LoginResult, error) {
	if f.LoginFunc != nil {
		return f.LoginFunc(ctx, creds)
	}
	return ports.LoginResult{}, nil
}

func (f *Fake) Logout(ctx context.Context, token string) error {
	if f.LogoutFunc != nil {
		return f.LogoutFunc(ctx, token)
	}
	return nil
}

func (f *Fake) VerifyToken(ctx context.Context, token string) (ports.VerifyResult, error) {
	if f.VerifyTokenFunc != nil {
		return f.VerifyTokenFunc(ctx, token)
	}
	return ports.VerifyResult{}, nil
}

func (f *Fake) ChangePassword(ctx context.Context, token string, req model.ChangePasswordRequest) error {
	if f.ChangePasswordFunc != nil {
		return f.ChangePasswordFunc(ctx, token, req)
	}
	return nil
}

func (f *Fake) ListUsers(ctx context.Context, token string) ([]model.UserRecord, error) {
	if f.ListUsersFunc != nil {
		return f.ListUsersFunc(ctx, token)
	}
	return nil, nil
}

func (f *Fake) GetUser(ctx context.Context, token string, id int64) (model.UserRecord, error) {
	if f.GetUserFunc != nil {
		return f.GetUserFunc(ctx, token, id)
	}
	return model.UserRecord{}, nil
}

func (f *Fake) CreateUser(ctx context.Context, token string, req model.CreateUserRequest) (model.UserRecord, error) {
	if f.CreateUserFunc != nil {
		return f.CreateUserFunc(ctx, token, req)
	}
	return model.UserRecord{}, nil
}

func (f *Fake) UpdateUser(ctx context.Context, token string, id int64, req model.UpdateUserRequest) (model.UserRecord, error) {
	if f.UpdateUserFunc != nil {
		return f.UpdateUserFunc(ctx, token, id, req)
	}
	return model.UserRecord{}, nil
}

func (f *Fake) DeleteUser(ctx context.Context, token string, id int64) error {
	if f.DeleteUserFunc != nil {
		return f.DeleteUserFunc(ctx, token, id)
	}
	return nil
}

func (f *Fake) ListGroups(ctx context.Context, token string) ([]model.Group, error) {
	if f.ListGroupsFunc != nil {
		return f.ListGroupsFunc(ctx, token)
	}
	return nil, nil
}

func (f *Fake) GetGroup(ctx context.Context, token string, id int64) (model.Group, error) {
	if f.GetGroupFunc != nil {
		return f.GetGroupFunc(ctx, token, id)
	}
	return model.Group{}, nil
}

func (f *Fake) CreateGroup(ctx context.Context, token string, req model.CreateGroupRequest) (model.Group, error) {
	if f.CreateGroupFunc != nil {
		return f.CreateGroupFunc(ctx, token, req)
	}
	return model.Group{}, nil
}

func (f *Fake) UpdateGroup(ctx context.Context, token string, id int64, req model.UpdateGroupRequest) (model.Group, error) {
	if f.UpdateGroupFunc != nil {
		return f.UpdateGroupFunc(ctx, token, id, req)
	}
	return model.Group{}, nil
}

func (f *Fake) DeleteGroup(ctx context.Context, token string, id int64) error {
	if f.DeleteGroupFunc != nil {
		return f.DeleteGroupFunc(ctx, token, id)
	}
	return nil
}

func (f *Fake) ListDocuments(ctx context.Context, token string) ([]model.Document, error) {
	if f.ListDocumentsFunc != nil {
		return f.ListDocumentsFunc(ctx, token)
	}
	return nil, nil
}

func (f *Fake) GetDocument(ctx context.Context, token string, id int64) (model.Document, error) {
	if f.GetDocumentFunc != nil {
		return f.GetDocumentFunc(ctx, token, id)
	}
	return model.Document{}, nil
}

func (f *Fake) UploadDocument(ctx context.Context, token string, upload model.DocumentUpload) (model.Document, error) {
	if f.UploadDocumentFunc != nil {
		return f.UploadDocumentFunc(ctx, token, upload)
	}
	return model.Document{}, nil
}

func (f *Fake) DeleteDocument(ctx context.Context, token string, id int64) error {
	if f.DeleteDocumentFunc != nil {
		return f.DeleteDocumentFunc(ctx, token, id)
	}
	return nil
}

func (f *Fake) ToggleDocumentVisibility(ctx context.Context, token string, id int64) (model.Document, error) {
	if f.ToggleDocumentVisibilityFunc != nil {
		return f.ToggleDocumentVisibilityFunc(ctx, token, id)
	}
	return model.Document{}, nil
}

func (f *Fake) QueryDocument(ctx context.Context, query model.DocumentQuery) (model.Document, error) {
	if f.QueryDocumentFunc != nil {
		return f.QueryDocumentFunc(ctx, query)
	}
	return model.Document{}, nil
}

func (f *Fake) GenerateQRCode(ctx context.Context, text string) (model.QRCode, error) {
	if f.GenerateQRCodeFunc != nil {
		return f.GenerateQRCodeFunc(ctx, text)
	}
	return model.QRCode{}, nil
}
