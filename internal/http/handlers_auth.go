package httpx

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/docvault/docvault-ui/internal/domain/model"
	apperrors "github.com/docvault/docvault-ui/internal/errors"
	"github.com/docvault/docvault-ui/internal/ports"
	"github.com/docvault/docvault-ui/internal/service"
)

// AuthHandlers serves the login, logout, and change-password flows.
type AuthHandlers struct {
	Auth     *service.AuthService
	Router   *Router
	Renderer *TemplateRenderer
	Logger   *slog.Logger
}

func setSessionCookie(w http.ResponseWriter, sessionID string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// LoginPage renders the login form. A user who is already signed in is sent
// straight to the documents page.
func (h *AuthHandlers) LoginPage(w http.ResponseWriter, r *http.Request, pc PageContext) {
	if pc.Session != nil {
		http.Redirect(w, r, "/documents", http.StatusSeeOther)
		return
	}
	data := h.Router.PageData("Sign in", pc)
	_ = h.Renderer.RenderPage(w, "login", data)
}

// HandleLogin processes the login form submission.
func (h *AuthHandlers) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Router.RenderErrorPage(w, r, http.StatusBadRequest, "Malformed form submission.")
		return
	}

	creds := ports.Credentials{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
	}
	if creds.Username == "" || creds.Password == "" {
		h.rerenderLogin(w, r, http.StatusUnprocessableEntity, creds.Username, "Username and password are required.")
		return
	}

	session, err := h.Auth.Login(r.Context(), creds)
	if err != nil {
		h.Logger.Warn("login failed", "username", creds.Username, "error", err)
		h.rerenderLogin(w, r, apperrors.HTTPStatus(err), creds.Username, err.Error())
		return
	}

	setSessionCookie(w, session.ID, session.ExpiresAt)
	http.Redirect(w, r, "/documents", http.StatusSeeOther)
}

func (h *AuthHandlers) rerenderLogin(w http.ResponseWriter, r *http.Request, status int, username, message string) {
	pc := PageContext{Route: "login"}
	data := h.Router.PageData("Sign in", pc)
	data.Flash = &Flash{Kind: FlashError, Message: message}
	data.Form = map[string]string{"username": username}
	if err := h.Renderer.RenderPageStatus(w, status, "login", data); err != nil {
		http.Error(w, message, status)
	}
}

// HandleLogout terminates the session and returns to the login page.
// Logging out without a session is not an error.
func (h *AuthHandlers) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if logoutErr := h.Auth.Logout(r.Context(), cookie.Value); logoutErr != nil {
			h.Logger.Warn("logout failed", "error", logoutErr)
		}
	}
	clearSessionCookie(w)
	SetFlash(w, FlashSuccess, "You have been signed out.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// ChangePasswordPage renders the password change form.
func (h *AuthHandlers) ChangePasswordPage(w http.ResponseWriter, _ *http.Request, pc PageContext) {
	data := h.Router.PageData("Change password", pc)
	_ = h.Renderer.RenderPage(w, "change-password", data)
}

// HandleChangePassword processes the password change form.
func (h *AuthHandlers) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	pc, ok := requireFormSession(w, r, "change-password")
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.Router.RenderErrorPage(w, r, http.StatusBadRequest, "Malformed form submission.")
		return
	}

	req := model.ChangePasswordRequest{
		CurrentPassword: r.PostFormValue("current_password"),
		NewPassword:     r.PostFormValue("new_password"),
	}
	confirm := r.PostFormValue("confirm_password")

	rerender := func(status int, message, field string) {
		data := h.Router.PageData("Change password", pc)
		data.Flash = &Flash{Kind: FlashError, Message: message}
		data.FieldError = field
		if err := h.Renderer.RenderPageStatus(w, status, "change-password", data); err != nil {
			http.Error(w, message, status)
		}
	}

	if req.NewPassword != confirm {
		rerender(http.StatusUnprocessableEntity, "New password and confirmation do not match.", "confirm_password")
		return
	}

	if err := h.Auth.ChangePassword(r.Context(), pc.Session.ID, req); err != nil {
		rerender(apperrors.HTTPStatus(err), err.Error(), apperrors.GetField(err))
		return
	}

	SetFlash(w, FlashSuccess, "Password changed.")
	http.Redirect(w, r, "/documents", http.StatusSeeOther)
}
