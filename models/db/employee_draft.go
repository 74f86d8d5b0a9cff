package dbmodels

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"hr-office-backend/models"
)

// EmployeeDraft - незавершённая анкета сотрудника, заполняется за 6 шагов.
// Завершённые черновики не удаляются, остаются как аудиторский след.
type EmployeeDraft struct {
	BaseModel
	TenantID         string             `gorm:"index:idx_employee_drafts_tenant;uniqueIndex:udx_employee_drafts_draft_id" json:"tenant_id"`
	DraftID          string             `gorm:"uniqueIndex:udx_employee_drafts_draft_id" json:"draft_id"`
	Status           models.DraftStatus `gorm:"index" json:"status"`
	StepCompleted    int                `json:"step_completed"`
	NextStep         *int               `json:"next_step"`
	Personal         datatypes.JSON     `gorm:"type:jsonb" json:"personal,omitempty"`
	Employment       datatypes.JSON     `gorm:"type:jsonb" json:"employment,omitempty"`
	Compensation     datatypes.JSON     `gorm:"type:jsonb" json:"compensation,omitempty"`
	BankTax          datatypes.JSON     `gorm:"type:jsonb" json:"bank_tax,omitempty"`
	Documents        datatypes.JSON     `gorm:"type:jsonb" json:"documents,omitempty"`
	EmergencyAddress datatypes.JSON     `gorm:"type:jsonb" json:"emergency_address,omitempty"`
	History          DraftHistory       `gorm:"type:jsonb" json:"history"`
	CreatedBy        string             `json:"created_by"`
	UpdatedBy        string             `json:"updated_by"`
	EmployeeID       *string            `json:"employee_id,omitempty"`
	CompletedAt      *time.Time         `json:"completed_at,omitempty"`
}

func (EmployeeDraft) TableName() string {
	return "employee_drafts"
}

// Section возвращает jsonb колонку секции по её ключу.
func (d EmployeeDraft) Section(key string) datatypes.JSON {
	switch key {
	case models.SectionPersonal:
		return d.Personal
	case models.SectionEmployment:
		return d.Employment
	case models.SectionCompensation:
		return d.Compensation
	case models.SectionBankTax:
		return d.BankTax
	case models.SectionDocuments:
		return d.Documents
	case models.SectionEmergencyAddress:
		return d.EmergencyAddress
	}
	return nil
}

// MissingSections перечисляет незаполненные секции в порядке шагов.
func (d EmployeeDraft) MissingSections() []string {
	missing := []string{}
	for _, key := range models.RequiredSections {
		if IsEmptySection(d.Section(key)) {
			missing = append(missing, key)
		}
	}
	return missing
}

// IsEmptySection - секция считается пустой, если колонка не заполнена
// или содержит пустой объект.
func IsEmptySection(section datatypes.JSON) bool {
	if len(section) == 0 {
		return true
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(section, &probe); err != nil {
		return false
	}
	return len(probe) == 0
}

// SectionValue извлекает значение поля секции (для employee_code/work_email
// в ответе финализации).
func SectionValue(section datatypes.JSON, field string) string {
	if len(section) == 0 {
		return ""
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(section, &doc); err != nil {
		return ""
	}
	if value, ok := doc[field].(string); ok {
		return value
	}
	return ""
}
