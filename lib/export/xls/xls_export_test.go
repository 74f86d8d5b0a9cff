package xlsexport

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	employeeapimodels "hr-office-backend/models/api/employee"
)

func TestExportEmployeeList(t *testing.T) {
	NewHandler()
	list := []employeeapimodels.ExportRow{
		{
			EmployeeCode: "EMP-001",
			FullName:     "Anna Petrova",
			WorkEmail:    "a.petrova@corp.example",
			Status:       "active",
			Tags:         []string{"new-joiner", "remote"},
		},
	}
	buf, err := Instance.ExportEmployeeList(list)
	require.Nil(t, err)

	f, err := excelize.OpenReader(buf)
	require.Nil(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Employees", "A1")
	require.Nil(t, err)
	require.Equal(t, "Employee code", header)

	code, err := f.GetCellValue("Employees", "A2")
	require.Nil(t, err)
	require.Equal(t, "EMP-001", code)

	name, err := f.GetCellValue("Employees", "B2")
	require.Nil(t, err)
	require.Equal(t, "Anna Petrova", name)

	tags, err := f.GetCellValue("Employees", "L2")
	require.Nil(t, err)
	require.Equal(t, "new-joiner, remote", tags)
}
