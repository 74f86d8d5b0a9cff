package draftstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-office-backend/models"
	dbmodels "hr-office-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.EmployeeDraft) (id string, err error)
	GetByDraftID(tenantID, draftID string) (rec *dbmodels.EmployeeDraft, err error)
	Update(tenantID, draftID string, updMap map[string]interface{}) error
	MarkCompleted(tenantID, draftID string, updMap map[string]interface{}) (completed bool, err error)
	ListByCreator(tenantID, userID string) (list []dbmodels.EmployeeDraft, err error)
	Delete(tenantID, draftID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.EmployeeDraft) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByDraftID(tenantID, draftID string) (*dbmodels.EmployeeDraft, error) {
	rec := dbmodels.EmployeeDraft{}
	err := i.db.
		Where("draft_id = ?", draftID).
		Where("tenant_id = ?", tenantID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(tenantID, draftID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.EmployeeDraft{}).
		Where("draft_id = ?", draftID).
		Where("tenant_id = ?", tenantID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

// MarkCompleted переводит черновик в completed только из in_progress,
// повторная финализация того же черновика проигрывает это условие.
func (i impl) MarkCompleted(tenantID, draftID string, updMap map[string]interface{}) (completed bool, err error) {
	tx := i.db.
		Model(&dbmodels.EmployeeDraft{}).
		Where("draft_id = ?", draftID).
		Where("tenant_id = ?", tenantID).
		Where("status = ?", models.DraftStatusInProgress).
		Updates(updMap)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (i impl) ListByCreator(tenantID, userID string) (list []dbmodels.EmployeeDraft, err error) {
	list = []dbmodels.EmployeeDraft{}
	err = i.db.
		Where("tenant_id = ?", tenantID).
		Where("created_by = ?", userID).
		Where("status <> ?", models.DraftStatusCompleted).
		Order("updated_at desc").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(tenantID, draftID string) error {
	err := i.db.
		Where("draft_id = ?", draftID).
		Where("tenant_id = ?", tenantID).
		Delete(&dbmodels.EmployeeDraft{}).
		Error
	if err != nil {
		return err
	}
	return nil
}
