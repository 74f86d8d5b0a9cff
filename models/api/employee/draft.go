package employeeapimodels

import (
	"time"

	"hr-office-backend/models"
)

// StepSaveData - тело запроса сохранения шага. Секция передаётся под своим
// ключом, допускается запасной ключ data.
type StepSaveData struct {
	DraftID          string                   `json:"draft_id"`
	Personal         map[string]interface{}   `json:"personal,omitempty"`
	Employment       map[string]interface{}   `json:"employment,omitempty"`
	Compensation     map[string]interface{}   `json:"compensation,omitempty"`
	BankTax          map[string]interface{}   `json:"bank_tax,omitempty"`
	Documents        []map[string]interface{} `json:"documents,omitempty"`
	EmergencyAddress map[string]interface{}   `json:"emergency_address,omitempty"`
	Data             map[string]interface{}   `json:"data,omitempty"`
}

// SectionPayload возвращает полезную нагрузку секции для указанного ключа.
func (r StepSaveData) SectionPayload(sectionKey string) map[string]interface{} {
	var section map[string]interface{}
	switch sectionKey {
	case models.SectionPersonal:
		section = r.Personal
	case models.SectionEmployment:
		section = r.Employment
	case models.SectionCompensation:
		section = r.Compensation
	case models.SectionBankTax:
		section = r.BankTax
	case models.SectionEmergencyAddress:
		section = r.EmergencyAddress
	}
	if len(section) == 0 {
		return r.Data
	}
	return section
}

type StepSaveResult struct {
	DraftID       string  `json:"draft_id"`
	StepCompleted int     `json:"step_completed"`
	NextStep      *int    `json:"next_step"`
	EmployeeID    *string `json:"employee_id,omitempty"`
}

type CompleteData struct {
	DraftID string `json:"draft_id"`
}

type CompleteResult struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code,omitempty"`
	WorkEmail    string `json:"work_email,omitempty"`
	Status       string `json:"status"`
	ETag         string `json:"etag"`
}

type DraftListItem struct {
	DraftID       string    `json:"draft_id"`
	EmployeeName  string    `json:"employee_name,omitempty"`
	StepCompleted int       `json:"step_completed"`
	NextStep      *int      `json:"next_step"`
	UpdatedAt     time.Time `json:"updated_at"`
}
