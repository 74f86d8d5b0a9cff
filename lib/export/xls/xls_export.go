package xlsexport

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	employeeapimodels "hr-office-backend/models/api/employee"
)

type Provider interface {
	ExportEmployeeList(list []employeeapimodels.ExportRow) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var employeeHeaders = []string{"Employee code", "Full name", "Department", "Designation", "Work email", "Personal email", "Employment type", "Join date", "Manager", "Status", "Employment status", "Tags", "Bank name", "IFSC"}

func (i impl) ExportEmployeeList(list []employeeapimodels.ExportRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, employeeHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeEmployeeData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Employees")
	return f.WriteToBuffer()
}

func writeEmployeeData(f *excelize.File, sheet string, list []employeeapimodels.ExportRow, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(employeeHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		values := []interface{}{
			item.EmployeeCode,
			item.FullName,
			item.DepartmentID,
			item.Designation,
			item.WorkEmail,
			item.PersonalEmail,
			item.EmploymentType,
			item.JoinDate,
			item.ManagerID,
			item.Status,
			item.EmploymentStatus,
			strings.Join(item.Tags, ", "),
			item.BankName,
			item.Ifsc,
		}
		for idx, value := range values {
			if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
