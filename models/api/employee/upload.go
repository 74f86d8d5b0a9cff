package employeeapimodels

import (
	"time"

	"hr-office-backend/models"
)

type UploadInitData struct {
	FileName string `json:"file_name"`
	FileSize int64  `json:"file_size"`
	MimeType string `json:"mime_type"`
	Category string `json:"category"`
}

func (r UploadInitData) Validate() error {
	details := []models.FieldDetail{}
	if r.FileName == "" {
		details = append(details, models.FieldDetail{Field: "file_name", Message: "File name is required"})
	}
	if r.FileSize <= 0 {
		details = append(details, models.FieldDetail{Field: "file_size", Message: "File size must be positive"})
	}
	if r.MimeType == "" {
		details = append(details, models.FieldDetail{Field: "mime_type", Message: "Mime type is required"})
	}
	if len(details) != 0 {
		return models.NewValidationError("upload request is not valid", details...)
	}
	return nil
}

type UploadInitResult struct {
	UploadID  string    `json:"upload_id"`
	SignedUrl string    `json:"signed_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type UploadCompleteData struct {
	FileUrl string `json:"file_url,omitempty"`
}

type UploadCompleteResult struct {
	UploadID string `json:"upload_id"`
	FileUrl  string `json:"file_url"`
	FileSize int64  `json:"file_size"`
}
