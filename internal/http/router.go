package httpx

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	domainauth "github.com/docvault/docvault-ui/internal/domain/auth"
)

// PageContext carries everything a page handler needs beyond the request.
type PageContext struct {
	Route   string
	Session *domainauth.Session
	Params  map[string]string
	Flash   *Flash
}

// User returns the authenticated user, or nil for guests.
func (pc PageContext) User() *domainauth.User {
	if pc.Session == nil {
		return nil
	}
	u := pc.Session.User
	return &u
}

// Token returns the backend bearer token of the session, or "".
func (pc PageContext) Token() string {
	if pc.Session == nil {
		return ""
	}
	return pc.Session.Token
}

// PageHandlerFunc renders one page. Permission checks are done before the
// handler runs; it can assume the route was allowed.
type PageHandlerFunc func(w http.ResponseWriter, r *http.Request, pc PageContext)

// Router resolves navigation paths of the form "<route>?<key>=<value>" to
// registered page handlers, enforcing route permissions on every dispatch.
type Router struct {
	renderer *TemplateRenderer
	logger   *slog.Logger
	pages    map[string]PageHandlerFunc
}

// NewRouterCore creates a page router on the given renderer.
func NewRouterCore(renderer *TemplateRenderer, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		renderer: renderer,
		logger:   logger,
		pages:    make(map[string]PageHandlerFunc),
	}
}

// Handle registers a page handler for a route name. Registering the same
// route twice replaces the earlier handler.
func (rt *Router) Handle(route string, h PageHandlerFunc) {
	rt.pages[route] = h
}

// Dispatch resolves a navigation path and renders the matching page.
//
// The path has the shape "<route>?<key>=<value>&...". An empty route falls
// back to the default route. Unknown routes render the not-found page before
// any permission check, so guests and users see the same 404. Routes outside
// the public allowlist require a session: guests are redirected to the login
// page, and authenticated users without the needed role get the
// permission-denied page. The navigation bar highlights only the route that
// actually rendered.
func (rt *Router) Dispatch(w http.ResponseWriter, r *http.Request, path string) {
	route, rawParams, _ := strings.Cut(path, "?")
	if route == "" {
		route = domainauth.DefaultRoute
	}

	handler, ok := rt.pages[route]
	if !ok {
		rt.RenderErrorPage(w, r, http.StatusNotFound, "Page not found.")
		return
	}

	session := GetSessionFromContext(r.Context())
	var user *domainauth.User
	if session != nil {
		u := session.User
		user = &u
	}

	if !domainauth.HasPermission(route, user) {
		if user == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		rt.logger.Warn("navigation denied",
			slog.String("route", route),
			slog.String("username", user.Username),
			slog.String("role", string(user.Role)))
		rt.RenderErrorPage(w, r, http.StatusForbidden, "You do not have permission to view this page.")
		return
	}

	handler(w, r, PageContext{
		Route:   route,
		Session: session,
		Params:  ParseParams(rawParams),
		Flash:   PopFlash(w, r),
	})
}

// RenderErrorPage renders the error page, falling back to http.Error if the
// template itself fails.
func (rt *Router) RenderErrorPage(w http.ResponseWriter, r *http.Request, status int, message string) {
	user := GetUserFromContext(r.Context())
	data := ErrorPageData{
		Status:  status,
		Message: message,
		User:    user,
		Nav:     NavFor("", user),
	}
	if err := rt.renderer.RenderError(w, data); err != nil {
		http.Error(w, message, status)
	}
}

// PageData builds the base payload for a page render.
func (rt *Router) PageData(title string, pc PageContext) PageData {
	return PageData{
		Title:  title,
		Nav:    NavFor(pc.Route, pc.User()),
		User:   pc.User(),
		Flash:  pc.Flash,
		Params: pc.Params,
	}
}

// ParseParams decodes the query portion of a navigation path. Both keys and
// values are URL-decoded, a key without "=" maps to the empty string, and a
// repeated key keeps the last value.
func ParseParams(raw string) map[string]string {
	params := make(map[string]string)
	if raw == "" {
		return params
	}
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		decodedKey, err := url.QueryUnescape(key)
		if err != nil || decodedKey == "" {
			continue
		}
		decodedValue, err := url.QueryUnescape(value)
		if err != nil {
			decodedValue = value
		}
		params[decodedKey] = decodedValue
	}
	return params
}
