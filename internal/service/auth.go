package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/docvault/docvault-ui/internal/domain/auth"
	"github.com/docvault/docvault-ui/internal/domain/model"
	apperrors "github.com/docvault/docvault-ui/internal/errors"
	"github.com/docvault/docvault-ui/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Backend    ports.BackendClient
	Sessions   ports.SessionStore
	SessionTTL time.Duration
	Logger     *slog.Logger
}

// AuthService orchestrates login, logout, and token verification against the
// backend API and keeps the browser session in step with the backend's answer.
type AuthService struct {
	backend  ports.BackendClient
	sessions ports.SessionStore
	ttl      time.Duration
	logger   *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		backend:  opts.Backend,
		sessions: opts.Sessions,
		ttl:      ttl,
		logger:   logger,
	}
}

// Login authenticates against the backend and persists a fresh session on
// success. Backend errors pass through unchanged so the login page can show
// the backend's own message.
func (s *AuthService) Login(ctx context.Context, creds ports.Credentials) (domainauth.Session, error) {
	result, err := s.backend.Login(ctx, creds)
	if err != nil {
		return domainauth.Session{}, err
	}

	now := time.Now()
	session := domainauth.Session{
		ID:        uuid.New().String(),
		Token:     result.Token,
		User:      result.User,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return domainauth.Session{}, fmt.Errorf("save session: %w", saveErr)
	}

	s.logger.Info("user logged in",
		"username", result.User.Username,
		"role", result.User.Role)

	return session, nil
}

// Logout tells the backend to revoke the token and removes the local session.
// The backend call is best effort: the session is deleted either way, and
// logging out twice is not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err == nil && sess.Token != "" {
		if logoutErr := s.backend.Logout(ctx, sess.Token); logoutErr != nil {
			s.logger.Warn("backend logout failed", "error", logoutErr)
		}
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Verify reports whether the session's token is still accepted by the backend.
// A missing session answers false without a network call. A rejected or
// unverifiable token clears the session. Verify never returns an error.
func (s *AuthService) Verify(ctx context.Context, sessionID string) (bool, *domainauth.User) {
	if sessionID == "" {
		return false, nil
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return false, nil
	}

	result, err := s.backend.VerifyToken(ctx, sess.Token)
	if err != nil {
		s.logger.Warn("token verification failed", "error", err)
		s.discard(ctx, sessionID)
		return false, nil
	}
	if !result.Valid {
		s.discard(ctx, sessionID)
		return false, nil
	}

	// Refresh the stored user in case roles changed server-side.
	if result.User != nil && *result.User != sess.User {
		sess.User = *result.User
		if saveErr := s.sessions.Save(ctx, sess); saveErr != nil {
			s.logger.Warn("session refresh failed", "error", saveErr)
		}
	}

	user := sess.User
	if result.User != nil {
		user = *result.User
	}
	return true, &user
}

// GetSession retrieves a session by ID. Expired or unknown sessions come back
// as a not-found application error.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (domainauth.Session, error) {
	if sessionID == "" {
		return domainauth.Session{}, apperrors.Unauthorized("no session")
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "session not found")
	}
	if sess.Expired() {
		s.discard(ctx, sessionID)
		return domainauth.Session{}, apperrors.Unauthorized("session expired")
	}
	return sess, nil
}

// ChangePassword forwards a password change for the session's user.
func (s *AuthService) ChangePassword(ctx context.Context, sessionID string, req model.ChangePasswordRequest) error {
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return apperrors.Validation("current and new password are required")
	}
	if req.CurrentPassword == req.NewPassword {
		return apperrors.ValidationField("new_password", "must differ from the current password")
	}

	sess, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	return s.backend.ChangePassword(ctx, sess.Token, req)
}

func (s *AuthService) discard(ctx context.Context, sessionID string) {
	if err := s.sessions.Delete(ctx, sessionID); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Warn("session cleanup failed", "session_id", sessionID, "error", err)
	}
}
