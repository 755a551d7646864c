package auth

// Route names. Each names one page module registered with the router.
const (
	RouteLogin          = "login"
	RouteDocuments      = "documents"
	RouteUpload         = "upload"
	RouteQuery          = "query"
	RouteMobileQuery    = "mobile-query"
	RouteView           = "view"
	RouteUsers          = "users"
	RouteGroups         = "groups"
	RouteChangePassword = "change-password"
)

// DefaultRoute is the route used when the navigation path is empty.
const DefaultRoute = RouteDocuments

// publicRoutes can be visited without a session (unauthenticated document
// lookup flows plus the login page itself).
var publicRoutes = map[string]bool{
	RouteLogin:       true,
	RouteQuery:       true,
	RouteMobileQuery: true,
}

// IsPublicRoute reports whether a route skips authorization entirely.
func IsPublicRoute(route string) bool { return publicRoutes[route] }

// HasPermission decides whether the given user may access a route.
// A nil user means no active session.
//
// Rules: public routes always pass; all other routes require a user;
// group management is admin-only; user management is open to admins and
// group admins; every other authenticated route is open to any role.
func HasPermission(route string, u *User) bool {
	if IsPublicRoute(route) {
		return true
	}
	if u == nil {
		return false
	}
	switch route {
	case RouteGroups:
		return u.IsAdmin
	case RouteUsers:
		return u.IsAdmin || u.Role == RoleGroupAdmin
	default:
		return true
	}
}
