package employeeapimodels

import (
	"strings"

	"hr-office-backend/models"
)

type BulkAssignRoleData struct {
	EmployeeIDs []string `json:"employee_ids"`
	RoleID      string   `json:"role_id"`
	RoleName    string   `json:"role_name,omitempty"`
}

func (r BulkAssignRoleData) Validate() error {
	if r.RoleID == "" {
		return models.NewValidationError("role_id is required",
			models.FieldDetail{Field: "role_id", Message: "Role id is required"})
	}
	return nil
}

type BulkSuspendData struct {
	EmployeeIDs   []string `json:"employee_ids"`
	Reason        string   `json:"reason,omitempty"`
	EffectiveDate string   `json:"effective_date,omitempty"`
}

type BulkTerminateData struct {
	EmployeeIDs    []string `json:"employee_ids"`
	Reason         string   `json:"reason,omitempty"`
	LastWorkingDay string   `json:"last_working_day,omitempty"`
}

type BulkEssData struct {
	EmployeeIDs []string `json:"employee_ids"`
	Enable      *bool    `json:"enable,omitempty"`
}

// IsEnable - по умолчанию доступ включается.
func (r BulkEssData) IsEnable() bool {
	if r.Enable == nil {
		return true
	}
	return *r.Enable
}

type BulkTagData struct {
	EmployeeIDs []string `json:"employee_ids"`
	Tag         string   `json:"tag"`
}

func (r BulkTagData) Validate() error {
	if strings.TrimSpace(r.Tag) == "" {
		return models.NewValidationError("tag is required",
			models.FieldDetail{Field: "tag", Message: "Tag text is required"})
	}
	return nil
}

type BulkResult struct {
	Updated int64 `json:"updated"`
}
