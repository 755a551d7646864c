package service

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	validatorpkg "github.com/go-playground/validator/v10"

	"github.com/docvault/docvault-ui/internal/domain/model"
	apperrors "github.com/docvault/docvault-ui/internal/errors"
	"github.com/docvault/docvault-ui/internal/ports"
)

// allowedUploadExtensions lists the file types accepted for upload, matching
// what the backend will store.
var allowedUploadExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// DocumentService validates document operations before handing them to the
// backend. The backend enforces permissions; this layer rejects malformed
// input early so the form can be re-rendered with field feedback.
type DocumentService struct {
	backend  ports.BackendClient
	validate *validatorpkg.Validate
	logger   *slog.Logger
}

// NewDocumentService constructs a DocumentService.
func NewDocumentService(backend ports.BackendClient, logger *slog.Logger) *DocumentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentService{
		backend:  backend,
		validate: newValidator(),
		logger:   logger,
	}
}

// List returns all documents visible to the session's user.
func (s *DocumentService) List(ctx context.Context, token string) ([]model.Document, error) {
	return s.backend.ListDocuments(ctx, token)
}

// Get returns a single document by ID.
func (s *DocumentService) Get(ctx context.Context, token string, id int64) (model.Document, error) {
	return s.backend.GetDocument(ctx, token, id)
}

// Upload validates and submits a new document.
func (s *DocumentService) Upload(ctx context.Context, token string, upload model.DocumentUpload) (model.Document, error) {
	if err := s.validate.Struct(upload); err != nil {
		return model.Document{}, validationError(err)
	}
	ext := strings.ToLower(filepath.Ext(upload.FileName))
	if !allowedUploadExtensions[ext] {
		return model.Document{}, apperrors.ValidationField("file", "unsupported file type")
	}

	doc, err := s.backend.UploadDocument(ctx, token, upload)
	if err != nil {
		return model.Document{}, err
	}

	s.logger.Info("document uploaded",
		"file_number", doc.FileNumber,
		"filename", doc.OriginalFilename)
	return doc, nil
}

// Delete removes a document.
func (s *DocumentService) Delete(ctx context.Context, token string, id int64) error {
	return s.backend.DeleteDocument(ctx, token, id)
}

// ToggleVisibility flips a document between public and private.
func (s *DocumentService) ToggleVisibility(ctx context.Context, token string, id int64) (model.Document, error) {
	return s.backend.ToggleDocumentVisibility(ctx, token, id)
}

// Query performs the unauthenticated public lookup by file number and
// inspection date.
func (s *DocumentService) Query(ctx context.Context, query model.DocumentQuery) (model.Document, error) {
	if err := s.validate.Struct(query); err != nil {
		return model.Document{}, validationError(err)
	}
	return s.backend.QueryDocument(ctx, query)
}

// QRCode generates a QR code image for the given text.
func (s *DocumentService) QRCode(ctx context.Context, text string) (model.QRCode, error) {
	if strings.TrimSpace(text) == "" {
		return model.QRCode{}, apperrors.Validation("text is required")
	}
	return s.backend.GenerateQRCode(ctx, text)
}
