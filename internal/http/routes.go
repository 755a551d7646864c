package httpx

import (
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	docvault "github.com/docvault/docvault-ui"
	domainauth "github.com/docvault/docvault-ui/internal/domain/auth"
	"github.com/docvault/docvault-ui/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth      *service.AuthService
	Documents *service.DocumentService
	Users     *service.UserService
	Groups    *service.GroupService

	IsDev  bool         // Development mode flag for on-disk templates
	Logger *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates and configures the HTTP handler tree: static assets,
// health checks, the page router, and all form endpoints, wrapped in the
// logging, recovery, compression, and session middlewares.
func NewRouter(services RouterServices) (http.Handler, error) {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	renderer, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateFS(services.IsDev),
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	core := NewRouterCore(renderer, logger)

	authHandlers := &AuthHandlers{Auth: services.Auth, Router: core, Renderer: renderer, Logger: logger}
	docHandlers := &DocumentHandlers{Documents: services.Documents, Router: core, Renderer: renderer, Logger: logger}
	queryHandlers := &QueryHandlers{Documents: services.Documents, Router: core, Renderer: renderer, Logger: logger}
	adminHandlers := &AdminHandlers{
		Users:    services.Users,
		Groups:   services.Groups,
		Router:   core,
		Renderer: renderer,
		Logger:   logger,
	}

	core.Handle(domainauth.RouteLogin, authHandlers.LoginPage)
	core.Handle(domainauth.RouteChangePassword, authHandlers.ChangePasswordPage)
	core.Handle(domainauth.RouteDocuments, docHandlers.DocumentsPage)
	core.Handle(domainauth.RouteView, docHandlers.ViewPage)
	core.Handle(domainauth.RouteUpload, docHandlers.UploadPage)
	core.Handle(domainauth.RouteQuery, queryHandlers.QueryPage)
	core.Handle(domainauth.RouteMobileQuery, queryHandlers.MobileQueryPage)
	core.Handle(domainauth.RouteUsers, adminHandlers.UsersPage)
	core.Handle(domainauth.RouteGroups, adminHandlers.GroupsPage)

	mux := http.NewServeMux()

	// Page navigation. The root URL verifies the stored token against the
	// backend before landing on the default page, mirroring app startup.
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
			if ok, _ := services.Auth.Verify(r.Context(), cookie.Value); !ok {
				clearSessionCookie(w)
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
		}
		core.Dispatch(w, r, "")
	})
	mux.HandleFunc("GET /{page}", func(w http.ResponseWriter, r *http.Request) {
		path := r.PathValue("page")
		if r.URL.RawQuery != "" {
			path += "?" + r.URL.RawQuery
		}
		core.Dispatch(w, r, path)
	})

	// Auth forms
	mux.HandleFunc("POST /login", authHandlers.HandleLogin)
	mux.HandleFunc("POST /logout", authHandlers.HandleLogout)
	mux.HandleFunc("POST /change-password", authHandlers.HandleChangePassword)

	// Document forms and the QR code image proxy
	mux.HandleFunc("POST /upload", docHandlers.HandleUpload)
	mux.HandleFunc("POST /documents/delete", docHandlers.HandleDelete)
	mux.HandleFunc("POST /documents/visibility", docHandlers.HandleToggleVisibility)
	mux.HandleFunc("GET /qrcode", docHandlers.HandleQRCode)

	// Public lookup form
	mux.HandleFunc("POST /query", queryHandlers.HandleQuery)

	// Admin forms
	mux.HandleFunc("POST /users/create", adminHandlers.HandleCreateUser)
	mux.HandleFunc("POST /users/update", adminHandlers.HandleUpdateUser)
	mux.HandleFunc("POST /users/delete", adminHandlers.HandleDeleteUser)
	mux.HandleFunc("POST /groups/create", adminHandlers.HandleCreateGroup)
	mux.HandleFunc("POST /groups/update", adminHandlers.HandleUpdateGroup)
	mux.HandleFunc("POST /groups/delete", adminHandlers.HandleDeleteGroup)

	mux.HandleFunc("GET /healthz", healthHandler)
	mux.HandleFunc("HEAD /healthz", healthHandler)

	mux.Handle("GET /static/", staticHandler(services.IsDev))

	var handler http.Handler = mux
	handler = LoadSession(services.Auth)(handler)
	handler = Compression(logger)(handler)
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler, nil
}

// templateFS returns the template filesystem: on-disk in dev mode for hot
// reloading, embedded otherwise.
func templateFS(isDev bool) fs.FS {
	if isDev {
		return os.DirFS(TemplatePathFromRoot)
	}
	sub, err := fs.Sub(docvault.TemplateFS, TemplatePathFromRoot)
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return sub
}

// staticHandler serves /static/ assets from disk in dev mode and from the
// embedded filesystem in production.
func staticHandler(isDev bool) http.Handler {
	if isDev {
		return http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static")))
	}
	sub, err := fs.Sub(docvault.StaticFS, "frontend/static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}
