package httpx

import (
	domainauth "github.com/docvault/docvault-ui/internal/domain/auth"
)

// Nav controls which navigation entries the layout renders. Visibility follows
// the same permission rules the router enforces, so a user never sees a link
// they cannot open.
type Nav struct {
	// CurrentPage is the route of the page that actually rendered. Failed
	// navigations highlight nothing.
	CurrentPage string

	ShowDocuments bool
	ShowUpload    bool
	ShowUsers     bool
	ShowGroups    bool
	ShowAccount   bool
}

// NavFor computes navigation visibility for the given user. Guests get an
// empty nav; the layout shows only the login link for them.
func NavFor(currentPage string, user *domainauth.User) Nav {
	if user == nil {
		return Nav{CurrentPage: currentPage}
	}
	return Nav{
		CurrentPage:   currentPage,
		ShowDocuments: domainauth.HasPermission(domainauth.RouteDocuments, user),
		ShowUpload:    domainauth.HasPermission(domainauth.RouteUpload, user),
		ShowUsers:     domainauth.HasPermission(domainauth.RouteUsers, user),
		ShowGroups:    domainauth.HasPermission(domainauth.RouteGroups, user),
		ShowAccount:   domainauth.HasPermission(domainauth.RouteChangePassword, user),
	}
}

// PageData is the payload every full page render receives.
type PageData struct {
	Title string
	Nav   Nav
	User  *domainauth.User
	Flash *Flash

	// Params holds the query parameters the page was opened with.
	Params map[string]string

	// Form echoes submitted values back into a re-rendered form.
	Form map[string]string

	// FieldError names the form field that failed validation, if any.
	FieldError string

	// Data carries the page-specific view model.
	Data any
}

// ErrorPageData feeds the standalone error template.
type ErrorPageData struct {
	Title   string
	Status  int
	Message string
	User    *domainauth.User
	Nav     Nav
}
