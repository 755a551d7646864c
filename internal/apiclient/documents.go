package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/docvault/docvault-ui/internal/domain/model"
	apperrors "github.com/docvault/docvault-ui/internal/errors"
)

// ListDocuments returns the documents visible to the caller.
func (c *Client) ListDocuments(ctx context.Context, token string) ([]model.Document, error) {
	var out struct {
		Documents []model.Document `json:"documents"`
	}
	err := c.doJSON(ctx, call{method: http.MethodGet, path: "/documents", token: token, out: &out})
	if err != nil {
		return nil, err
	}
	return out.Documents, nil
}

// GetDocument returns a single document.
func (c *Client) GetDocument(ctx context.Context, token string, id int64) (model.Document, error) {
	var out struct {
		Document model.Document `json:"document"`
	}
	err := c.doJSON(ctx, call{method: http.MethodGet, path: documentPath(id), token: token, out: &out})
	return out.Document, err
}

// UploadDocument submits a multipart upload. The content type is left to the
// multipart writer so the boundary is set automatically; no JSON content type
// is attached.
func (c *Client) UploadDocument(
	ctx context.Context,
	token string,
	upload model.DocumentUpload,
) (model.Document, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("file_number", upload.FileNumber); err != nil {
		return model.Document{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "write file_number field")
	}
	if err := mw.WriteField("inspection_date", upload.InspectionDate); err != nil {
		return model.Document{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "write inspection_date field")
	}
	fw, err := mw.CreateFormFile("file", upload.FileName)
	if err != nil {
		return model.Document{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "create form file")
	}
	if _, err := fw.Write(upload.Content); err != nil {
		return model.Document{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "write file content")
	}
	if err := mw.Close(); err != nil {
		return model.Document{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "finalize multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/documents", &buf)
	if err != nil {
		return model.Document{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "create request")
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	setBearer(req, token)

	resp, err := c.client.Do(req)
	if err != nil {
		return model.Document{}, transportError(err)
	}
	defer closeBody(resp, c.logger)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.Document{}, c.normalizeError(resp)
	}

	var out struct {
		Document model.Document `json:"document"`
	}
	if err := decodeJSONBody(resp.Body, &out); err != nil {
		return model.Document{}, err
	}
	return out.Document, nil
}

// DeleteDocument removes a document.
func (c *Client) DeleteDocument(ctx context.Context, token string, id int64) error {
	return c.doJSON(ctx, call{method: http.MethodDelete, path: documentPath(id), token: token})
}

// ToggleDocumentVisibility flips the public flag and returns the updated document.
func (c *Client) ToggleDocumentVisibility(ctx context.Context, token string, id int64) (model.Document, error) {
	var out struct {
		Document model.Document `json:"document"`
	}
	err := c.doJSON(ctx, call{
		method: http.MethodPut,
		path:   documentPath(id) + "/visibility",
		token:  token,
		out:    &out,
	})
	return out.Document, err
}

// QueryDocument performs the unauthenticated document lookup by file number
// and inspection date.
func (c *Client) QueryDocument(ctx context.Context, query model.DocumentQuery) (model.Document, error) {
	var out struct {
		Document model.Document `json:"document"`
	}
	err := c.doJSON(ctx, call{method: http.MethodPost, path: "/documents/query", body: query, out: &out})
	return out.Document, err
}

// GenerateQRCode fetches the binary QR image for the given text. Failures are
// logged and returned unchanged.
func (c *Client) GenerateQRCode(ctx context.Context, text string) (model.QRCode, error) {
	body := map[string]string{"text": text}
	data, err := jsonBody(body)
	if err != nil {
		return model.QRCode{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/qrcode", data)
	if err != nil {
		return model.QRCode{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		err = transportError(err)
		c.logger.Error("qr code generation failed", slog.Any("error", err))
		return model.QRCode{}, err
	}
	defer closeBody(resp, c.logger)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err = c.normalizeError(resp)
		c.logger.Error("qr code generation failed", slog.Any("error", err))
		return model.QRCode{}, err
	}

	img, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.QRCode{}, apperrors.Wrap(err, apperrors.ErrCodeUpstream, "read qr image")
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}
	return model.QRCode{Data: img, ContentType: contentType}, nil
}

func documentPath(id int64) string { return fmt.Sprintf("/documents/%d", id) }
