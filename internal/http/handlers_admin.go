package httpx

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/docvault/docvault-ui/internal/domain/model"
	apperrors "github.com/docvault/docvault-ui/internal/errors"
	"github.com/docvault/docvault-ui/internal/service"
)

// AdminHandlers serves the user and group management pages. The router has
// already checked route permissions; the backend rejects anything the UI
// might have missed.
type AdminHandlers struct {
	Users    *service.UserService
	Groups   *service.GroupService
	Router   *Router
	Renderer *TemplateRenderer
	Logger   *slog.Logger
}

// usersView is the view model of the users page.
type usersView struct {
	Users   []model.UserRecord
	Groups  []model.Group
	Editing *model.UserRecord
}

// UsersPage renders the account list, with an edit form when the navigation
// path carries an id parameter.
func (h *AdminHandlers) UsersPage(w http.ResponseWriter, r *http.Request, pc PageContext) {
	users, err := h.Users.List(r.Context(), pc.Token())
	if err != nil {
		h.Router.RenderErrorPage(w, r, apperrors.HTTPStatus(err), err.Error())
		return
	}
	groups, err := h.Groups.List(r.Context(), pc.Token())
	if err != nil {
		h.Logger.Warn("group list for user form failed", "error", err)
	}

	view := usersView{Users: users, Groups: groups}
	if raw, ok := pc.Params["id"]; ok {
		id, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			h.Router.RenderErrorPage(w, r, http.StatusBadRequest, "Invalid user ID.")
			return
		}
		user, getErr := h.Users.Get(r.Context(), pc.Token(), id)
		if getErr != nil {
			h.Router.RenderErrorPage(w, r, apperrors.HTTPStatus(getErr), getErr.Error())
			return
		}
		view.Editing = &user
	}

	data := h.Router.PageData("Users", pc)
	data.Data = view
	_ = h.Renderer.RenderPage(w, "users", data)
}

// HandleCreateUser processes the new-account form.
func (h *AdminHandlers) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	pc, ok := requireFormSession(w, r, "users")
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.Router.RenderErrorPage(w, r, http.StatusBadRequest, "Malformed form submission.")
		return
	}

	req := model.CreateUserRequest{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
		Role:     r.PostFormValue("role"),
		GroupID:  optionalID(r.PostFormValue("group_id")),
	}

	user, err := h.Users.Create(r.Context(), pc.Token(), req)
	if err != nil {
		SetFlash(w, FlashError, err.Error())
	} else {
		SetFlash(w, FlashSuccess, "User "+user.Username+" created.")
	}
	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

// HandleUpdateUser processes the edit-account form.
func (h *AdminHandlers) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	pc, ok := requireFormSession(w, r, "users")
	if !ok {
		return
	}
	id, err := formID(r)
	if err != nil {
		h.Router.RenderErrorPage(w, r, http.StatusBadRequest, "Missing or invalid user ID.")
		return
	}

	req := model.UpdateUserRequest{
		Password: r.PostFormValue("password"),
		Role:     r.PostFormValue("role"),
		GroupID:  optionalID(r.PostFormValue("group_id")),
	}

	if _, err := h.Users.Update(r.Context(), pc.Token(), id, req); err != nil {
		SetFlash(w, FlashError, err.Error())
	} else {
		SetFlash(w, FlashSuccess, "User updated.")
	}
	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

// HandleDeleteUser removes an account.
func (h *AdminHandlers) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	pc, ok := requireFormSession(w, r, "users")
	if !ok {
		return
	}
	id, err := formID(r)
	if err != nil {
		h.Router.RenderErrorPage(w, r, http.StatusBadRequest, "Missing or invalid user ID.")
		return
	}

	if err := h.Users.Delete(r.Context(), pc.Token(), id); err != nil {
		SetFlash(w, FlashError, err.Error())
	} else {
		SetFlash(w, FlashSuccess, "User deleted.")
	}
	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

// groupsView is the view model of the groups page.
type groupsView struct {
	Groups  []model.Group
	Editing *model.Group
}

// GroupsPage renders the group list, with an edit form when the navigation
// path carries an id parameter.
func (h *AdminHandlers) GroupsPage(w http.ResponseWriter, r *http.Request, pc PageContext) {
	groups, err := h.Groups.List(r.Context(), pc.Token())
	if err != nil {
		h.Router.RenderErrorPage(w, r, apperrors.HTTPStatus(err), err.Error())
		return
	}

	view := groupsView{Groups: groups}
	if raw, ok := pc.Params["id"]; ok {
		id, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			h.Router.RenderErrorPage(w, r, http.StatusBadRequest, "Invalid group ID.")
			return
		}
		group, getErr := h.Groups.Get(r.Context(), pc.Token(), id)
		if getErr != nil {
			h.Router.RenderErrorPage(w, r, apperrors.HTTPStatus(getErr), getErr.Error())
			return
		}
		view.Editing = &group
	}

	data := h.Router.PageData("Groups", pc)
	data.Data = view
	_ = h.Renderer.RenderPage(w, "groups", data)
}

// HandleCreateGroup processes the new-group form.
func (h *AdminHandlers) HandleCreateGroup(w http.ResponseWriter, r *http.Request) {
	pc, ok := requireFormSession(w, r, "groups")
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.Router.RenderErrorPage(w, r, http.StatusBadRequest, "Malformed form submission.")
		return
	}

	req := model.CreateGroupRequest{
		GroupName:   strings.TrimSpace(r.PostFormValue("group_name")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
	}

	group, err := h.Groups.Create(r.Context(), pc.Token(), req)
	if err != nil {
		SetFlash(w, FlashError, err.Error())
	} else {
		SetFlash(w, FlashSuccess, "Group "+group.GroupName+" created.")
	}
	http.Redirect(w, r, "/groups", http.StatusSeeOther)
}

// HandleUpdateGroup processes the edit-group form.
func (h *AdminHandlers) HandleUpdateGroup(w http.ResponseWriter, r *http.Request) {
	pc, ok := requireFormSession(w, r, "groups")
	if !ok {
		return
	}
	id, err := formID(r)
	if err != nil {
		h.Router.RenderErrorPage(w, r, http.StatusBadRequest, "Missing or invalid group ID.")
		return
	}

	req := model.UpdateGroupRequest{
		GroupName:   strings.TrimSpace(r.PostFormValue("group_name")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
	}

	if _, err := h.Groups.Update(r.Context(), pc.Token(), id, req); err != nil {
		SetFlash(w, FlashError, err.Error())
	} else {
		SetFlash(w, FlashSuccess, "Group updated.")
	}
	http.Redirect(w, r, "/groups", http.StatusSeeOther)
}

// HandleDeleteGroup removes a group.
func (h *AdminHandlers) HandleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	pc, ok := requireFormSession(w, r, "groups")
	if !ok {
		return
	}
	id, err := formID(r)
	if err != nil {
		h.Router.RenderErrorPage(w, r, http.StatusBadRequest, "Missing or invalid group ID.")
		return
	}

	if err := h.Groups.Delete(r.Context(), pc.Token(), id); err != nil {
		SetFlash(w, FlashError, err.Error())
	} else {
		SetFlash(w, FlashSuccess, "Group deleted.")
	}
	http.Redirect(w, r, "/groups", http.StatusSeeOther)
}

// requireFormSession resolves the context session for a form handler,
// redirecting guests to the login page.
func requireFormSession(w http.ResponseWriter, r *http.Request, route string) (PageContext, bool) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return PageContext{}, false
	}
	return PageContext{Route: route, Session: session, Params: map[string]string{}}, true
}

// optionalID parses an optional numeric form value into a pointer.
func optionalID(raw string) *int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}
