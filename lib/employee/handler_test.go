package employeehandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"hr-office-backend/models"
	dbmodels "hr-office-backend/models/db"
)

func TestFilterValidIDs(t *testing.T) {
	t.Run(`невалидные идентификаторы отбрасываются`, func(t *testing.T) {
		ids, err := FilterValidIDs([]string{
			"not-a-uuid",
			"7a6f6f6e-0000-4000-8000-000000000001",
			"",
			"7a6f6f6e-0000-4000-8000-000000000002",
		})
		require.Nil(t, err)
		require.Equal(t, []string{
			"7a6f6f6e-0000-4000-8000-000000000001",
			"7a6f6f6e-0000-4000-8000-000000000002",
		}, ids)
	})

	t.Run(`пустой список после фильтрации - ошибка валидации`, func(t *testing.T) {
		_, err := FilterValidIDs([]string{"junk", ""})
		domainErr, ok := models.AsDomainError(err)
		require.Equal(t, true, ok)
		require.Equal(t, models.ErrCodeValidationFailed, domainErr.Code)
		require.Equal(t, "employee_ids must include at least one valid identifier", domainErr.Message)
	})
}

func TestClampExportLimit(t *testing.T) {
	t.Run(`значение по умолчанию`, func(t *testing.T) {
		require.Equal(t, 1000, ClampExportLimit(0))
	})
	t.Run(`верхняя граница`, func(t *testing.T) {
		require.Equal(t, 5000, ClampExportLimit(100000))
	})
	t.Run(`нижняя граница`, func(t *testing.T) {
		require.Equal(t, 1, ClampExportLimit(-5))
	})
	t.Run(`значение в диапазоне не меняется`, func(t *testing.T) {
		require.Equal(t, 250, ClampExportLimit(250))
	})
}

func TestGenerateIdentifiers(t *testing.T) {
	t.Run(`формат идентификатора черновика`, func(t *testing.T) {
		id := generateDraftID()
		require.Equal(t, 18, len(id))
		require.Equal(t, "draft_", id[:6])
	})

	t.Run(`etag - 32 символа без дефисов`, func(t *testing.T) {
		etag := generateETag()
		require.Equal(t, 32, len(etag))
		require.NotContains(t, etag, "-")
	})

	t.Run(`значения не повторяются`, func(t *testing.T) {
		require.NotEqual(t, generateETag(), generateETag())
		require.NotEqual(t, generateDraftID(), generateDraftID())
	})
}

func TestEnsureETag(t *testing.T) {
	t.Run(`совпадение проходит`, func(t *testing.T) {
		require.Nil(t, ensureETag("abc", "abc"))
	})
	t.Run(`пустой присланный токен пропускается`, func(t *testing.T) {
		require.Nil(t, ensureETag("abc", ""))
	})
	t.Run(`расхождение - precondition failed`, func(t *testing.T) {
		err := ensureETag("abc", "stale")
		domainErr, ok := models.AsDomainError(err)
		require.Equal(t, true, ok)
		require.Equal(t, models.ErrCodePreconditionFailed, domainErr.Code)
		require.Equal(t, "Version mismatch. Refresh employee before updating", domainErr.Message)
	})
}

func TestRequireSection(t *testing.T) {
	t.Run(`пустая секция отклоняется`, func(t *testing.T) {
		_, err := requireSection(nil, models.SectionPersonal)
		domainErr, ok := models.AsDomainError(err)
		require.Equal(t, true, ok)
		require.Equal(t, "personal must be an object", domainErr.Message)
	})

	t.Run(`непустая секция сериализуется`, func(t *testing.T) {
		raw, err := requireSection(map[string]interface{}{"first_name": "Anna"}, models.SectionPersonal)
		require.Nil(t, err)
		require.JSONEq(t, `{"first_name":"Anna"}`, string(raw))
	})
}

func TestAppendHistory(t *testing.T) {
	history := appendHistory(nil, 1, "user-1", "Saved personal info")
	history = appendHistory(history, 2, "user-2", "Saved section employment")
	require.Equal(t, 2, len(history))
	require.Equal(t, 1, history[0].Step)
	require.Equal(t, "user-1", history[0].By)
	require.Equal(t, "Saved personal info", history[0].Details)
	require.Equal(t, "Saved section employment", history[1].Details)
	require.Equal(t, false, history[1].At.IsZero())
}

func TestProjections(t *testing.T) {
	rec := dbmodels.Employee{
		Personal:   datatypes.JSON(`{"first_name":"Anna","last_name":"Petrova","personal_email":"anna@example.com"}`),
		Employment: datatypes.JSON(`{"employee_code":"EMP-001","work_email":"a.petrova@corp.example","department_id":"dep-1","designation":"Engineer","join_date":"2026-02-01","manager_id":"mgr-1","employment_type":"full_time"}`),
		BankTax:    datatypes.JSON(`{"bank_name":"First Bank","ifsc":"FB000123"}`),
		Status:     models.EmployeeStatusActive,
		Tags:       []string{"new-joiner"},
	}
	rec.EmploymentStatus = models.EmploymentStatusActive

	t.Run(`строка реестра`, func(t *testing.T) {
		item := projectListItem(rec)
		require.Equal(t, "EMP-001", item.EmployeeCode)
		require.Equal(t, "Anna Petrova", item.Name)
		require.Equal(t, "dep-1", item.Department)
		require.Equal(t, "a.petrova@corp.example", item.WorkEmail)
		require.Equal(t, "active", item.Status)
		require.Equal(t, []string{"new-joiner"}, item.Tags)
	})

	t.Run(`строка выгрузки`, func(t *testing.T) {
		row := projectExportRow(rec)
		require.Equal(t, "EMP-001", row.EmployeeCode)
		require.Equal(t, "Anna Petrova", row.FullName)
		require.Equal(t, "anna@example.com", row.PersonalEmail)
		require.Equal(t, "full_time", row.EmploymentType)
		require.Equal(t, "First Bank", row.BankName)
		require.Equal(t, "FB000123", row.Ifsc)
	})
}
