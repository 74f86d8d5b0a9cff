package dbmodels

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"hr-office-backend/models"
)

// Employee - каноническая запись сотрудника, создаётся только финализацией
// черновика. Каждая успешная мутация увеличивает version ровно на 1 и
// заменяет etag.
type Employee struct {
	BaseModel
	TenantID              string                  `gorm:"index" json:"tenant_id"`
	DraftID               string                  `gorm:"index" json:"draft_id"`
	Personal              datatypes.JSON          `gorm:"type:jsonb" json:"personal"`
	Employment            datatypes.JSON          `gorm:"type:jsonb" json:"employment"`
	Compensation          datatypes.JSON          `gorm:"type:jsonb" json:"compensation"`
	BankTax               datatypes.JSON          `gorm:"type:jsonb" json:"bank_tax"`
	Documents             datatypes.JSON          `gorm:"type:jsonb" json:"documents"`
	EmergencyAddress      datatypes.JSON          `gorm:"type:jsonb" json:"emergency_address"`
	Status                models.EmployeeStatus   `gorm:"index" json:"status"`
	EmploymentStatus      models.EmploymentStatus `gorm:"index" json:"employment_status"`
	Version               int                     `json:"version"`
	ETag                  string                  `gorm:"column:etag" json:"etag"`
	Tags                  pq.StringArray          `gorm:"type:text[]" json:"tags"`
	PermissionProfileID   *string                 `gorm:"index" json:"permission_profile_id,omitempty"`
	PermissionProfileName *string                 `json:"permission_profile_name,omitempty"`
	EssEnabled            bool                    `json:"ess_enabled"`
	EssActivatedAt        *time.Time              `json:"ess_activated_at,omitempty"`
	SuspensionReason      *string                 `json:"suspension_reason,omitempty"`
	SuspensionDate        *string                 `gorm:"column:suspension_effective_date" json:"suspension_effective_date,omitempty"`
	TerminationReason     *string                 `json:"termination_reason,omitempty"`
	TerminationDate       *string                 `json:"termination_date,omitempty"`
	StatusReason          *string                 `json:"status_reason,omitempty"`
	StatusEffectiveDate   *string                 `json:"status_effective_date,omitempty"`
	CreatedBy             string                  `json:"created_by"`
	UpdatedBy             string                  `json:"updated_by"`
}

func (Employee) TableName() string {
	return "employees"
}

// GetFullName собирает ФИО из персональной секции.
func (e Employee) GetFullName() string {
	result := ""
	for _, field := range []string{"first_name", "middle_name", "last_name"} {
		part := SectionValue(e.Personal, field)
		if part == "" {
			continue
		}
		if result != "" {
			result += " "
		}
		result += part
	}
	return result
}

// Section возвращает jsonb колонку секции по её ключу.
func (e Employee) Section(key string) datatypes.JSON {
	switch key {
	case models.SectionPersonal:
		return e.Personal
	case models.SectionEmployment:
		return e.Employment
	case models.SectionCompensation:
		return e.Compensation
	case models.SectionBankTax:
		return e.BankTax
	case models.SectionDocuments:
		return e.Documents
	case models.SectionEmergencyAddress:
		return e.EmergencyAddress
	}
	return nil
}

// EmployeeFilter - нормализованный набор фильтров списка сотрудников.
type EmployeeFilter struct {
	Search           string   `json:"search,omitempty" query:"search"`
	Status           string   `json:"status,omitempty" query:"status"`
	EmploymentStatus string   `json:"employment_status,omitempty" query:"employment_status"`
	DepartmentID     string   `json:"department_id,omitempty" query:"department_id"`
	Designation      string   `json:"designation,omitempty" query:"designation"`
	RoleID           string   `json:"role_id,omitempty" query:"role_id"`
	LocationID       string   `json:"location_id,omitempty" query:"location_id"`
	ManagerID        string   `json:"manager_id,omitempty" query:"manager_id"`
	Tags             []string `json:"tags,omitempty" query:"tags"`
	JoinDateFrom     string   `json:"join_date_from,omitempty" query:"join_date_from"`
	JoinDateTo       string   `json:"join_date_to,omitempty" query:"join_date_to"`
	SortBy           string   `json:"sort_by,omitempty" query:"sort_by"`
	SortOrder        string   `json:"sort_order,omitempty" query:"sort_order"`
}
