package employeeapimodels

type LookupExtra struct {
	Department string `json:"department,omitempty"`
	Level      string `json:"level,omitempty"`
}

type LookupItem struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Code  string      `json:"code,omitempty"`
	Extra LookupExtra `json:"extra"`
}

type StaticLookupItem struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}
