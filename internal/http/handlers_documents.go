package httpx

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	domainauth "github.com/docvault/docvault-ui/internal/domain/auth"
	"github.com/docvault/docvault-ui/internal/domain/model"
	apperrors "github.com/docvault/docvault-ui/internal/errors"
	"github.com/docvault/docvault-ui/internal/service"
)

// maxUploadBytes caps document uploads at 32 MiB, matching the backend limit.
const maxUploadBytes = 32 << 20

// DocumentHandlers serves the document list, viewer, upload, and management
// actions.
type DocumentHandlers struct {
	Documents *service.DocumentService
	Router    *Router
	Renderer  *TemplateRenderer
	Logger    *slog.Logger
}

// documentsView is the view model of the documents list page.
type documentsView struct {
	Documents []model.Document
	CanManage bool
}

// DocumentsPage renders the document list.
func (h *DocumentHandlers) DocumentsPage(w http.ResponseWriter, r *http.Request, pc PageContext) {
	docs, err := h.Documents.List(r.Context(), pc.Token())
	if err != nil {
		h.Logger.Error("document list failed", "error", err)
		h.Router.RenderErrorPage(w, r, apperrors.HTTPStatus(err), err.Error())
		return
	}

	data := h.Router.PageData("Documents", pc)
	user := pc.User()
	data.Data = documentsView{
		Documents: docs,
		CanManage: user != nil && (user.IsAdmin || user.Role == domainauth.RoleGroupAdmin),
	}
	_ = h.Renderer.RenderPage(w, "documents", data)
}

// ViewPage renders a single document with its QR code.
func (h *DocumentHandlers) ViewPage(w http.ResponseWriter, r *http.Request, pc PageContext) {
	id, err := strconv.ParseInt(pc.Params["id"], 10, 64)
	if err != nil {
		h.Router.RenderErrorPage(w, r, http.StatusBadRequest, "Missing or invalid document ID.")
		return
	}

	doc, err := h.Documents.Get(r.Context(), pc.Token(), id)
	if err != nil {
		h.Router.RenderErrorPage(w, r, apperrors.HTTPStatus(err), err.Error())
		return
	}

	data := h.Router.PageData("Document "+doc.FileNumber, pc)
	data.Data = doc
	_ = h.Renderer.RenderPage(w, "view", data)
}

// UploadPage renders the upload form.
func (h *DocumentHandlers) UploadPage(w http.ResponseWriter, _ *http.Request, pc PageContext) {
	data := h.Router.PageData("Upload document", pc)
	_ = h.Renderer.RenderPage(w, "upload", data)
}

// HandleUpload processes the multipart upload form.
func (h *DocumentHandlers) HandleUpload(w http.ResponseWriter, r *http.Request) {
	pc, ok := requireFormSession(w, r, "upload")
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.rerenderUpload(w, pc, http.StatusRequestEntityTooLarge, "The uploaded file is too large.", "file", nil)
		return
	}

	form := map[string]string{
		"file_number":     strings.TrimSpace(r.PostFormValue("file_number")),
		"inspection_date": strings.TrimSpace(r.PostFormValue("inspection_date")),
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.rerenderUpload(w, pc, http.StatusUnprocessableEntity, "A file is required.", "file", form)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.rerenderUpload(w, pc, http.StatusInternalServerError, "Reading the uploaded file failed.", "file", form)
		return
	}

	upload := model.DocumentUpload{
		FileNumber:     form["file_number"],
		InspectionDate: form["inspection_date"],
		FileName:       header.Filename,
		Content:        content,
	}

	doc, err := h.Documents.Upload(r.Context(), pc.Token(), upload)
	if err != nil {
		h.rerenderUpload(w, pc, apperrors.HTTPStatus(err), err.Error(), apperrors.GetField(err), form)
		return
	}

	SetFlash(w, FlashSuccess, "Document "+doc.FileNumber+" uploaded.")
	http.Redirect(w, r, "/documents", http.StatusSeeOther)
}

func (h *DocumentHandlers) rerenderUpload(w http.ResponseWriter, pc PageContext, status int, message, field string, form map[string]string) {
	data := h.Router.PageData("Upload document", pc)
	data.Flash = &Flash{Kind: FlashError, Message: message}
	data.FieldError = field
	data.Form = form
	if err := h.Renderer.RenderPageStatus(w, status, "upload", data); err != nil {
		http.Error(w, message, status)
	}
}

// HandleDelete removes a document and returns to the list.
func (h *DocumentHandlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	pc, ok := requireFormSession(w, r, "documents")
	if !ok {
		return
	}
	id, err := formID(r)
	if err != nil {
		h.Router.RenderErrorPage(w, r, http.StatusBadRequest, "Missing or invalid document ID.")
		return
	}

	if err := h.Documents.Delete(r.Context(), pc.Token(), id); err != nil {
		SetFlash(w, FlashError, err.Error())
	} else {
		SetFlash(w, FlashSuccess, "Document deleted.")
	}
	http.Redirect(w, r, "/documents", http.StatusSeeOther)
}

// HandleToggleVisibility flips a document between public and private.
func (h *DocumentHandlers) HandleToggleVisibility(w http.ResponseWriter, r *http.Request) {
	pc, ok := requireFormSession(w, r, "documents")
	if !ok {
		return
	}
	id, err := formID(r)
	if err != nil {
		h.Router.RenderErrorPage(w, r, http.StatusBadRequest, "Missing or invalid document ID.")
		return
	}

	doc, err := h.Documents.ToggleVisibility(r.Context(), pc.Token(), id)
	if err != nil {
		SetFlash(w, FlashError, err.Error())
	} else if doc.IsPublic {
		SetFlash(w, FlashSuccess, "Document "+doc.FileNumber+" is now public.")
	} else {
		SetFlash(w, FlashSuccess, "Document "+doc.FileNumber+" is now private.")
	}
	http.Redirect(w, r, "/documents", http.StatusSeeOther)
}

// HandleQRCode proxies the QR code image for a document link.
func (h *DocumentHandlers) HandleQRCode(w http.ResponseWriter, r *http.Request) {
	if GetSessionFromContext(r.Context()) == nil {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	text := r.URL.Query().Get("text")
	qr, err := h.Documents.QRCode(r.Context(), text)
	if err != nil {
		http.Error(w, err.Error(), apperrors.HTTPStatus(err))
		return
	}

	contentType := qr.ContentType
	if contentType == "" {
		contentType = "image/png"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(qr.Data)
}

// formID reads the numeric "id" field of a submitted form.
func formID(r *http.Request) (int64, error) {
	if err := r.ParseForm(); err != nil {
		return 0, err
	}
	return strconv.ParseInt(r.PostFormValue("id"), 10, 64)
}
