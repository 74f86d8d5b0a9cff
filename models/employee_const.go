package models

type DraftStatus string

const (
	DraftStatusInProgress DraftStatus = "in_progress"
	DraftStatusCompleted  DraftStatus = "completed"
)

type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "active"
	EmployeeStatusInactive EmployeeStatus = "inactive"
)

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusInactive   EmploymentStatus = "inactive"
	EmploymentStatusSuspended  EmploymentStatus = "suspended"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

type UploadStatus string

const (
	UploadStatusAuthorized UploadStatus = "authorized"
	UploadStatusCompleted  UploadStatus = "completed"
)

const (
	SectionPersonal         = "personal"
	SectionEmployment       = "employment"
	SectionCompensation     = "compensation"
	SectionBankTax          = "bank_tax"
	SectionDocuments        = "documents"
	SectionEmergencyAddress = "emergency_address"
)

// RequiredSections lists the six onboarding sections in step order,
// all of them must be present before a draft can be finalized.
var RequiredSections = []string{
	SectionPersonal,
	SectionEmployment,
	SectionCompensation,
	SectionBankTax,
	SectionDocuments,
	SectionEmergencyAddress,
}

// StepSection maps an onboarding step number to its section key.
var StepSection = map[int]string{
	1: SectionPersonal,
	2: SectionEmployment,
	3: SectionCompensation,
	4: SectionBankTax,
	5: SectionDocuments,
	6: SectionEmergencyAddress,
}

// MapEmployeeStatus maps a requested status value to the coarse record
// status plus the fine-grained employment status.
func MapEmployeeStatus(value EmploymentStatus) EmployeeStatus {
	if value == EmploymentStatusActive {
		return EmployeeStatusActive
	}
	return EmployeeStatusInactive
}

func IsKnownEmploymentStatus(value EmploymentStatus) bool {
	switch value {
	case EmploymentStatusActive, EmploymentStatusInactive, EmploymentStatusSuspended, EmploymentStatusTerminated:
		return true
	}
	return false
}
