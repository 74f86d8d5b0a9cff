package uploadhandler

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"hr-office-backend/config"
	"hr-office-backend/db"
	uploadstore "hr-office-backend/lib/upload/store"
	"hr-office-backend/lib/utils/helpers"
	"hr-office-backend/models"
	employeeapimodels "hr-office-backend/models/api/employee"
	dbmodels "hr-office-backend/models/db"
	s3client "hr-office-backend/s3"
)

type Provider interface {
	InitUpload(ctx context.Context, tenantID, userID string, data employeeapimodels.UploadInitData) (employeeapimodels.UploadInitResult, error)
	CompleteUpload(tenantID, uploadID string, data employeeapimodels.UploadCompleteData) (employeeapimodels.UploadCompleteResult, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: uploadstore.NewInstance(db.DB),
	}
}

type impl struct {
	store uploadstore.Provider
}

func (i impl) InitUpload(ctx context.Context, tenantID, userID string, data employeeapimodels.UploadInitData) (result employeeapimodels.UploadInitResult, err error) {
	if err = data.Validate(); err != nil {
		return result, err
	}
	if helpers.IsContextDone(ctx) {
		return result, errors.New("запрос отменён до выдачи подписанной ссылки")
	}

	uploadID := generateUploadID()
	ttl := time.Duration(config.Conf.Upload.SignedUrlTTLMin) * time.Minute
	objectName := tenantID + "/" + uploadID + "/" + data.FileName
	signedUrl, err := s3client.Client.PresignedPut(ctx, objectName, ttl)
	if err != nil {
		return result, errors.Wrap(err, "ошибка получения подписанной ссылки")
	}

	now := time.Now()
	rec := dbmodels.EmployeeUpload{
		TenantID:  tenantID,
		UploadID:  uploadID,
		FileName:  data.FileName,
		FileSize:  data.FileSize,
		MimeType:  data.MimeType,
		Category:  data.Category,
		Status:    models.UploadStatusAuthorized,
		SignedUrl: signedUrl.String(),
		ExpiresAt: now.Add(ttl),
		CreatedBy: userID,
	}
	if _, err = i.store.Create(rec); err != nil {
		return result, err
	}
	return employeeapimodels.UploadInitResult{
		UploadID:  uploadID,
		SignedUrl: rec.SignedUrl,
		ExpiresAt: rec.ExpiresAt,
	}, nil
}

func (i impl) CompleteUpload(tenantID, uploadID string, data employeeapimodels.UploadCompleteData) (result employeeapimodels.UploadCompleteResult, err error) {
	rec, err := i.store.GetByUploadID(tenantID, uploadID)
	if err != nil {
		return result, err
	}
	if rec == nil {
		return result, models.NewNotFoundError("Upload not found")
	}
	if rec.Status == models.UploadStatusCompleted {
		// повторное подтверждение ничего не меняет
		return employeeapimodels.UploadCompleteResult{
			UploadID: uploadID,
			FileUrl:  rec.FileUrl,
			FileSize: rec.FileSize,
		}, nil
	}

	fileUrl := data.FileUrl
	if fileUrl == "" {
		fileUrl = FallbackFileUrl(config.Conf.S3.PublicBaseUrl, uploadID)
	}
	now := time.Now()
	updMap := map[string]interface{}{
		"status":       models.UploadStatusCompleted,
		"file_url":     fileUrl,
		"completed_at": now,
	}
	if err = i.store.Update(tenantID, uploadID, updMap); err != nil {
		return result, err
	}
	return employeeapimodels.UploadCompleteResult{
		UploadID: uploadID,
		FileUrl:  fileUrl,
		FileSize: rec.FileSize,
	}, nil
}

// FallbackFileUrl строит итоговый адрес файла, когда клиент не прислал свой.
func FallbackFileUrl(baseUrl, uploadID string) string {
	return strings.TrimSuffix(baseUrl, "/") + "/" + uploadID
}

func generateUploadID() string {
	return "upload_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
