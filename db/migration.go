package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "hr-office-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.EmployeeDraft{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры EmployeeDraft")
	}
	if err := DB.AutoMigrate(&dbmodels.Employee{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Employee")
	}
	if err := DB.AutoMigrate(&dbmodels.EmployeeUpload{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры EmployeeUpload")
	}
	if err := DB.AutoMigrate(&dbmodels.Department{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Department")
	}
	if err := DB.AutoMigrate(&dbmodels.Designation{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Designation")
	}
	if err := DB.AutoMigrate(&dbmodels.Location{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Location")
	}
	if err := DB.AutoMigrate(&dbmodels.PermissionRole{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры PermissionRole")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
