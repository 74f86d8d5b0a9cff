package employeeapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
	"hr-office-backend/models"
)

func TestUpdateEmployeeDataIsEmpty(t *testing.T) {
	require.Equal(t, true, UpdateEmployeeData{}.IsEmpty())
	require.Equal(t, false, UpdateEmployeeData{Status: "inactive"}.IsEmpty())
	require.Equal(t, false, UpdateEmployeeData{
		Personal: map[string]interface{}{"first_name": "Anna"},
	}.IsEmpty())
	require.Equal(t, false, UpdateEmployeeData{
		Documents: []map[string]interface{}{{"category": "id_proof"}},
	}.IsEmpty())
}

func TestBulkEssDataIsEnable(t *testing.T) {
	require.Equal(t, true, BulkEssData{}.IsEnable())

	enable := false
	require.Equal(t, false, BulkEssData{Enable: &enable}.IsEnable())
	enable = true
	require.Equal(t, true, BulkEssData{Enable: &enable}.IsEnable())
}

func TestBulkValidate(t *testing.T) {
	t.Run(`назначение роли без role_id`, func(t *testing.T) {
		err := BulkAssignRoleData{EmployeeIDs: []string{"id"}}.Validate()
		domainErr, ok := models.AsDomainError(err)
		require.Equal(t, true, ok)
		require.Equal(t, "role_id is required", domainErr.Message)
	})

	t.Run(`тег из пробелов отклоняется`, func(t *testing.T) {
		err := BulkTagData{Tag: "   "}.Validate()
		require.NotNil(t, err)
		require.Nil(t, BulkTagData{Tag: "new-joiner"}.Validate())
	})
}

func TestUploadInitDataValidate(t *testing.T) {
	t.Run(`валидный запрос`, func(t *testing.T) {
		data := UploadInitData{FileName: "passport.pdf", FileSize: 1024, MimeType: "application/pdf"}
		require.Nil(t, data.Validate())
	})

	t.Run(`все нарушения собираются в details`, func(t *testing.T) {
		err := UploadInitData{FileSize: -1}.Validate()
		domainErr, ok := models.AsDomainError(err)
		require.Equal(t, true, ok)
		require.Equal(t, models.ErrCodeValidationFailed, domainErr.Code)
		require.Equal(t, 3, len(domainErr.Details))
	})
}
