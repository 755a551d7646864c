package model

// Document is a stored document as reported by the backend API.
type Document struct {
	ID               int64  `json:"id"`
	FileNumber       string `json:"file_number"`
	OriginalFilename string `json:"original_filename"`
	Filename         string `json:"filename"`
	InspectionDate   string `json:"inspection_date"`
	UploadDate       string `json:"upload_date"`
	UploadedBy       string `json:"uploaded_by"`
	GroupID          *int64 `json:"group_id,omitempty"`
	IsPublic         bool   `json:"is_public"`
	ViewURL          string `json:"view_url"`
	QRCodeURL        string `json:"qrcode_url"`
}

// DocumentUpload carries the multipart upload payload for a new document.
// FileName is the client-supplied name; Content is the raw file body.
type DocumentUpload struct {
	FileNumber     string `validate:"required,file_number"`
	InspectionDate string `validate:"required,datetime=2006-01-02"`
	FileName       string `validate:"required"`
	Content        []byte `validate:"required"`
}

// DocumentQuery identifies a document for the unauthenticated lookup flow.
type DocumentQuery struct {
	FileNumber     string `json:"file_number"     validate:"required"`
	InspectionDate string `json:"inspection_date" validate:"required"`
}

// QRCode is a generated QR code image returned by the backend.
type QRCode struct {
	Data        []byte
	ContentType string
}
