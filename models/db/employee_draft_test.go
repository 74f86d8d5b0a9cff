package dbmodels

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"hr-office-backend/models"
)

func TestIsEmptySection(t *testing.T) {
	t.Run(`незаполненная колонка пуста`, func(t *testing.T) {
		require.Equal(t, true, IsEmptySection(nil))
		require.Equal(t, true, IsEmptySection(datatypes.JSON{}))
	})

	t.Run(`пустой объект пуст`, func(t *testing.T) {
		require.Equal(t, true, IsEmptySection(datatypes.JSON(`{}`)))
	})

	t.Run(`объект с полями не пуст`, func(t *testing.T) {
		require.Equal(t, false, IsEmptySection(datatypes.JSON(`{"first_name":"Anna"}`)))
	})

	t.Run(`не-объект не считается пустым`, func(t *testing.T) {
		require.Equal(t, false, IsEmptySection(datatypes.JSON(`[{"category":"id_proof"}]`)))
	})
}

func TestSectionValue(t *testing.T) {
	section := datatypes.JSON(`{"work_email":"a@corp.example","grade":7}`)

	t.Run(`строковое поле`, func(t *testing.T) {
		require.Equal(t, "a@corp.example", SectionValue(section, "work_email"))
	})

	t.Run(`нестроковое и отсутствующее поле - пустая строка`, func(t *testing.T) {
		require.Equal(t, "", SectionValue(section, "grade"))
		require.Equal(t, "", SectionValue(section, "missing"))
		require.Equal(t, "", SectionValue(nil, "work_email"))
	})
}

func TestMissingSections(t *testing.T) {
	t.Run(`новый черновик - все секции отсутствуют`, func(t *testing.T) {
		draft := EmployeeDraft{}
		require.Equal(t, models.RequiredSections, draft.MissingSections())
	})

	t.Run(`частично заполненный черновик`, func(t *testing.T) {
		draft := EmployeeDraft{
			Personal:   datatypes.JSON(`{"first_name":"Anna"}`),
			Employment: datatypes.JSON(`{"employee_code":"EMP-001"}`),
			BankTax:    datatypes.JSON(`{}`),
		}
		require.Equal(t, []string{
			models.SectionCompensation,
			models.SectionBankTax,
			models.SectionDocuments,
			models.SectionEmergencyAddress,
		}, draft.MissingSections())
	})

	t.Run(`полный черновик`, func(t *testing.T) {
		draft := EmployeeDraft{
			Personal:         datatypes.JSON(`{"first_name":"Anna"}`),
			Employment:       datatypes.JSON(`{"employee_code":"EMP-001"}`),
			Compensation:     datatypes.JSON(`{"base_salary":100}`),
			BankTax:          datatypes.JSON(`{"bank_name":"First Bank"}`),
			Documents:        datatypes.JSON(`{"documents":[{"category":"id_proof"}]}`),
			EmergencyAddress: datatypes.JSON(`{"contact_name":"Ivan"}`),
		}
		require.Equal(t, []string{}, draft.MissingSections())
	})
}

func TestGetFullName(t *testing.T) {
	t.Run(`полное имя с отчеством`, func(t *testing.T) {
		rec := Employee{Personal: datatypes.JSON(`{"first_name":"Anna","middle_name":"P","last_name":"Petrova"}`)}
		require.Equal(t, "Anna P Petrova", rec.GetFullName())
	})

	t.Run(`пропуски не порождают лишних пробелов`, func(t *testing.T) {
		rec := Employee{Personal: datatypes.JSON(`{"first_name":"Anna","last_name":"Petrova"}`)}
		require.Equal(t, "Anna Petrova", rec.GetFullName())
		require.Equal(t, "", Employee{}.GetFullName())
	})
}

func TestDraftHistoryRoundTrip(t *testing.T) {
	history := DraftHistory{{Step: 1, By: "user-1", Details: "Saved personal info"}}
	value, err := history.Value()
	require.Nil(t, err)

	var restored DraftHistory
	err = restored.Scan([]byte(value.(string)))
	require.Nil(t, err)
	require.Equal(t, 1, len(restored))
	require.Equal(t, "Saved personal info", restored[0].Details)

	t.Run(`nil сериализуется как пустой список`, func(t *testing.T) {
		var empty DraftHistory
		value, err := empty.Value()
		require.Nil(t, err)
		require.Equal(t, "[]", value)
	})
}
