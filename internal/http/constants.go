package httpx

// Cookie names used by the UI.
const (
	// SessionCookieName carries the server-side session ID.
	SessionCookieName = "session_id"
	// FlashCookieName carries a one-shot message shown on the next render.
	FlashCookieName = "docvault_flash"
)

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
)
