package employeeapimodels

import (
	apimodels "hr-office-backend/models/api"
	dbmodels "hr-office-backend/models/db"
)

type ListFilter struct {
	apimodels.Pagination
	dbmodels.EmployeeFilter
}

type EmployeeListItem struct {
	ID               string   `json:"id"`
	EmployeeCode     string   `json:"employee_code,omitempty"`
	Name             string   `json:"name"`
	Department       string   `json:"department,omitempty"`
	Designation      string   `json:"designation,omitempty"`
	ManagerID        string   `json:"manager_id,omitempty"`
	WorkLocationID   string   `json:"work_location_id,omitempty"`
	Status           string   `json:"status"`
	EmploymentStatus string   `json:"employment_status,omitempty"`
	Tags             []string `json:"tags"`
	EssEnabled       bool     `json:"ess_enabled"`
	WorkEmail        string   `json:"work_email,omitempty"`
	JoinDate         string   `json:"join_date,omitempty"`
	UpdatedAt        string   `json:"updated_at"`
}

type ListResult struct {
	Items          []EmployeeListItem      `json:"items"`
	Page           int                     `json:"page"`
	Limit          int                     `json:"limit"`
	Total          int64                   `json:"total"`
	TotalPages     int64                   `json:"total_pages"`
	FiltersApplied dbmodels.EmployeeFilter `json:"filters_applied"`
}

type ExportData struct {
	Filters dbmodels.EmployeeFilter `json:"filters"`
	Limit   int                     `json:"limit,omitempty"`
}

type ExportRow struct {
	EmployeeCode     string   `json:"employee_code,omitempty"`
	FullName         string   `json:"full_name"`
	DepartmentID     string   `json:"department_id,omitempty"`
	Designation      string   `json:"designation,omitempty"`
	WorkEmail        string   `json:"work_email,omitempty"`
	PersonalEmail    string   `json:"personal_email,omitempty"`
	EmploymentType   string   `json:"employment_type,omitempty"`
	JoinDate         string   `json:"join_date,omitempty"`
	ManagerID        string   `json:"manager_id,omitempty"`
	Status           string   `json:"status"`
	EmploymentStatus string   `json:"employment_status,omitempty"`
	Tags             []string `json:"tags"`
	BankName         string   `json:"bank_name,omitempty"`
	Ifsc             string   `json:"ifsc,omitempty"`
}

type ExportResult struct {
	Items []ExportRow `json:"items"`
	Count int         `json:"count"`
}

type OptionItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Code       string `json:"code,omitempty"`
	Department string `json:"department,omitempty"`
}

type StatusOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FilterOptions struct {
	Departments  []OptionItem   `json:"departments"`
	Designations []OptionItem   `json:"designations"`
	Locations    []OptionItem   `json:"locations"`
	Roles        []OptionItem   `json:"roles"`
	Tags         []string       `json:"tags"`
	Statuses     []StatusOption `json:"statuses"`
}
