package employeeapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
	"hr-office-backend/models"
)

func TestSectionPayload(t *testing.T) {
	t.Run(`секция под своим ключом`, func(t *testing.T) {
		payload := StepSaveData{
			Employment: map[string]interface{}{"employee_code": "EMP-001"},
			Data:       map[string]interface{}{"ignored": true},
		}
		section := payload.SectionPayload(models.SectionEmployment)
		require.Equal(t, "EMP-001", section["employee_code"])
	})

	t.Run(`запасной ключ data`, func(t *testing.T) {
		payload := StepSaveData{
			Data: map[string]interface{}{"first_name": "Anna"},
		}
		section := payload.SectionPayload(models.SectionPersonal)
		require.Equal(t, "Anna", section["first_name"])
	})

	t.Run(`пусто, если нет ни секции, ни data`, func(t *testing.T) {
		require.Equal(t, 0, len(StepSaveData{}.SectionPayload(models.SectionBankTax)))
	})
}
