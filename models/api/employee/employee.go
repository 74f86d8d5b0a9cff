package employeeapimodels

// UpdateEmployeeData - полное обновление: перечисленные секции заменяют
// существующие, отсутствующие остаются как были.
type UpdateEmployeeData struct {
	Personal         map[string]interface{}   `json:"personal,omitempty"`
	Employment       map[string]interface{}   `json:"employment,omitempty"`
	Compensation     map[string]interface{}   `json:"compensation,omitempty"`
	BankTax          map[string]interface{}   `json:"bank_tax,omitempty"`
	Documents        []map[string]interface{} `json:"documents,omitempty"`
	EmergencyAddress map[string]interface{}   `json:"emergency_address,omitempty"`
	Status           string                   `json:"status,omitempty"`
}

func (r UpdateEmployeeData) IsEmpty() bool {
	return len(r.Personal) == 0 &&
		len(r.Employment) == 0 &&
		len(r.Compensation) == 0 &&
		len(r.BankTax) == 0 &&
		len(r.Documents) == 0 &&
		len(r.EmergencyAddress) == 0 &&
		r.Status == ""
}

type UpdateStatusData struct {
	Status        string `json:"status"`
	Reason        string `json:"reason,omitempty"`
	EffectiveDate string `json:"effective_date,omitempty"`
}

type ValidateResult struct {
	IsUnique bool   `json:"is_unique"`
	Message  string `json:"message"`
}
