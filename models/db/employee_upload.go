package dbmodels

import (
	"time"

	"hr-office-backend/models"
)

// EmployeeUpload - разрешение на загрузку файла. Сам файл хранит внешний
// blob-сервис, здесь фиксируется только намерение и срок действия ссылки.
type EmployeeUpload struct {
	BaseModel
	TenantID    string              `gorm:"index:idx_employee_uploads_tenant;uniqueIndex:udx_employee_uploads_upload_id" json:"tenant_id"`
	UploadID    string              `gorm:"uniqueIndex:udx_employee_uploads_upload_id" json:"upload_id"`
	FileName    string              `json:"file_name"`
	FileSize    int64               `json:"file_size"`
	MimeType    string              `json:"mime_type"`
	Category    string              `json:"category"`
	Status      models.UploadStatus `gorm:"index" json:"status"`
	SignedUrl   string              `json:"signed_url"`
	FileUrl     string              `json:"file_url,omitempty"`
	ExpiresAt   time.Time           `json:"expires_at"`
	CompletedAt *time.Time          `json:"completed_at,omitempty"`
	CreatedBy   string              `json:"created_by"`
}

func (EmployeeUpload) TableName() string {
	return "employee_uploads"
}
