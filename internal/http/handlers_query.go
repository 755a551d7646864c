package httpx

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/docvault/docvault-ui/internal/domain/model"
	apperrors "github.com/docvault/docvault-ui/internal/errors"
	"github.com/docvault/docvault-ui/internal/service"
)

// QueryHandlers serves the public document lookup pages. These work without
// a session, including the mobile variant used by QR code scans.
type QueryHandlers struct {
	Documents *service.DocumentService
	Router    *Router
	Renderer  *TemplateRenderer
	Logger    *slog.Logger
}

// queryView is the view model shared by the query and mobile-query pages.
type queryView struct {
	Result    *model.Document
	Submitted bool
}

// QueryPage renders the lookup form. When the navigation path already carries
// file_number and inspection_date (a scanned QR link), the lookup runs
// immediately.
func (h *QueryHandlers) QueryPage(w http.ResponseWriter, r *http.Request, pc PageContext) {
	h.renderQuery(w, r, pc, "query", "Document lookup")
}

// MobileQueryPage is the reduced layout for phone screens.
func (h *QueryHandlers) MobileQueryPage(w http.ResponseWriter, r *http.Request, pc PageContext) {
	h.renderQuery(w, r, pc, "mobile-query", "Document lookup")
}

func (h *QueryHandlers) renderQuery(w http.ResponseWriter, r *http.Request, pc PageContext, page, title string) {
	data := h.Router.PageData(title, pc)

	query := model.DocumentQuery{
		FileNumber:     pc.Params["file_number"],
		InspectionDate: pc.Params["inspection_date"],
	}
	if query.FileNumber == "" && query.InspectionDate == "" {
		_ = h.Renderer.RenderPage(w, page, data)
		return
	}

	view := queryView{Submitted: true}
	doc, err := h.Documents.Query(r.Context(), query)
	switch {
	case err == nil:
		view.Result = &doc
	case apperrors.IsNotFound(err):
		data.Flash = &Flash{Kind: FlashWarning, Message: "No document matches that file number and date."}
	default:
		data.Flash = &Flash{Kind: FlashError, Message: err.Error()}
	}
	data.Form = map[string]string{
		"file_number":     query.FileNumber,
		"inspection_date": query.InspectionDate,
	}
	data.Data = view
	_ = h.Renderer.RenderPage(w, page, data)
}

// HandleQuery processes the lookup form and redirects back to the page with
// the search in the URL, so results are shareable.
func (h *QueryHandlers) HandleQuery(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Router.RenderErrorPage(w, r, http.StatusBadRequest, "Malformed form submission.")
		return
	}

	page := "query"
	if r.PostFormValue("mobile") == "1" {
		page = "mobile-query"
	}

	fileNumber := strings.TrimSpace(r.PostFormValue("file_number"))
	inspectionDate := strings.TrimSpace(r.PostFormValue("inspection_date"))

	target := "/" + page + "?file_number=" + url.QueryEscape(fileNumber) +
		"&inspection_date=" + url.QueryEscape(inspectionDate)
	http.Redirect(w, r, target, http.StatusSeeOther)
}
