package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docvault/docvault-ui/internal/domain/model"
	apperrors "github.com/docvault/docvault-ui/internal/errors"
	"github.com/docvault/docvault-ui/internal/mocks/backend"
)

func validUpload() model.DocumentUpload {
	return model.DocumentUpload{
		FileNumber:     "DOC-2026_001+A",
		InspectionDate: "2026-08-31",
		FileName:       "report.pdf",
		Content:        []byte("%PDF-1.4"),
	}
}

func TestDocumentService_UploadValid(t *testing.T) {
	fake := backend.NewFake()
	var got model.DocumentUpload
	fake.UploadDocumentFunc = func(_ context.Context, token string, upload model.DocumentUpload) (model.Document, error) {
		assert.Equal(t, "tok", token)
		got = upload
		return model.Document{ID: 1, FileNumber: upload.FileNumber, OriginalFilename: upload.FileName}, nil
	}
	svc := NewDocumentService(fake, discardLogger())

	doc, err := svc.Upload(context.Background(), "tok", validUpload())
	require.NoError(t, err)
	assert.Equal(t, int64(1), doc.ID)
	assert.Equal(t, validUpload(), got)
}

func TestDocumentService_UploadValidation(t *testing.T) {
	svc := NewDocumentService(backend.NewFake(), discardLogger())
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*model.DocumentUpload)
		field  string
	}{
		{"missing file number", func(u *model.DocumentUpload) { u.FileNumber = "" }, "FileNumber"},
		{"file number with spaces", func(u *model.DocumentUpload) { u.FileNumber = "DOC 001" }, "FileNumber"},
		{"file number with slash", func(u *model.DocumentUpload) { u.FileNumber = "DOC/001" }, "FileNumber"},
		{"bad date format", func(u *model.DocumentUpload) { u.InspectionDate = "31/08/2026" }, "InspectionDate"},
		{"missing date", func(u *model.DocumentUpload) { u.InspectionDate = "" }, "InspectionDate"},
		{"empty content", func(u *model.DocumentUpload) { u.Content = nil }, "Content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upload := validUpload()
			tt.mutate(&upload)

			_, err := svc.Upload(ctx, "tok", upload)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err), "expected validation error, got %v", err)
			assert.Equal(t, tt.field, apperrors.GetField(err))
		})
	}
}

func TestDocumentService_UploadRejectsUnsupportedExtension(t *testing.T) {
	svc := NewDocumentService(backend.NewFake(), discardLogger())

	upload := validUpload()
	upload.FileName = "malware.exe"

	_, err := svc.Upload(context.Background(), "tok", upload)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "file", apperrors.GetField(err))
}

func TestDocumentService_QueryValidation(t *testing.T) {
	fake := backend.NewFake()
	called := false
	fake.QueryDocumentFunc = func(_ context.Context, q model.DocumentQuery) (model.Document, error) {
		called = true
		return model.Document{ID: 9, FileNumber: q.FileNumber}, nil
	}
	svc := NewDocumentService(fake, discardLogger())
	ctx := context.Background()

	_, err := svc.Query(ctx, model.DocumentQuery{FileNumber: "DOC-1"})
	assert.True(t, apperrors.IsValidation(err))
	assert.False(t, called)

	doc, err := svc.Query(ctx, model.DocumentQuery{FileNumber: "DOC-1", InspectionDate: "2026-08-31"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), doc.ID)
	assert.True(t, called)
}

func TestDocumentService_QRCodeRequiresText(t *testing.T) {
	svc := NewDocumentService(backend.NewFake(), discardLogger())

	_, err := svc.QRCode(context.Background(), "   ")
	assert.True(t, apperrors.IsValidation(err))
}
