package masterdictstore

import (
	"gorm.io/gorm"
	"hr-office-backend/models"
	dbmodels "hr-office-backend/models/db"
)

// Справочники принадлежат внешнему модулю, отсюда только чтение.
type Provider interface {
	Departments(tenantID string) (list []dbmodels.Department, err error)
	Designations(tenantID string) (list []dbmodels.Designation, err error)
	Locations(tenantID string) (list []dbmodels.Location, err error)
	Roles(tenantID string) (list []dbmodels.PermissionRole, err error)
	ActiveEmployees(tenantID string) (list []dbmodels.Employee, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Departments(tenantID string) (list []dbmodels.Department, err error) {
	list = []dbmodels.Department{}
	err = i.db.
		Where("tenant_id = ?", tenantID).
		Where("del is not true").
		Order("name").
		Find(&list).
		Error
	return list, err
}

func (i impl) Designations(tenantID string) (list []dbmodels.Designation, err error) {
	list = []dbmodels.Designation{}
	err = i.db.
		Where("tenant_id = ?", tenantID).
		Where("del is not true").
		Order("name").
		Find(&list).
		Error
	return list, err
}

func (i impl) Locations(tenantID string) (list []dbmodels.Location, err error) {
	list = []dbmodels.Location{}
	err = i.db.
		Where("tenant_id = ?", tenantID).
		Order("name").
		Find(&list).
		Error
	return list, err
}

func (i impl) Roles(tenantID string) (list []dbmodels.PermissionRole, err error) {
	list = []dbmodels.PermissionRole{}
	err = i.db.
		Where("tenant_id = ?", tenantID).
		Order("name").
		Find(&list).
		Error
	return list, err
}

func (i impl) ActiveEmployees(tenantID string) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	err = i.db.
		Where("tenant_id = ?", tenantID).
		Where("status = ?", models.EmployeeStatusActive).
		Order("created_at desc").
		Find(&list).
		Error
	return list, err
}
