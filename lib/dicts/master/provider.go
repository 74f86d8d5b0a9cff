package masterdictprovider

import (
	"hr-office-backend/db"
	masterdictstore "hr-office-backend/lib/dicts/master/store"
	"hr-office-backend/models"
	employeeapimodels "hr-office-backend/models/api/employee"
	dbmodels "hr-office-backend/models/db"
)

type Provider interface {
	GetLookup(tenantID, resource string) (list []employeeapimodels.LookupItem, err error)
	GetStaticLookup(resource string) (list []employeeapimodels.StaticLookupItem, found bool)
	Departments(tenantID string) (list []employeeapimodels.OptionItem, err error)
	Designations(tenantID string) (list []employeeapimodels.OptionItem, err error)
	Locations(tenantID string) (list []employeeapimodels.OptionItem, err error)
	Roles(tenantID string) (list []employeeapimodels.OptionItem, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: masterdictstore.NewInstance(db.DB),
	}
}

type impl struct {
	store masterdictstore.Provider
}

var documentCategories = []employeeapimodels.StaticLookupItem{
	{Code: "offer_letter", Label: "Offer Letter"},
	{Code: "id_proof", Label: "ID Proof"},
	{Code: "address_proof", Label: "Address Proof"},
	{Code: "experience_letter", Label: "Experience Letter"},
}

var permissionProfiles = []employeeapimodels.StaticLookupItem{
	{Code: "admin", Label: "Administrator"},
	{Code: "hr_manager", Label: "HR Manager"},
	{Code: "people_manager", Label: "People Manager"},
}

func (i impl) GetStaticLookup(resource string) ([]employeeapimodels.StaticLookupItem, bool) {
	switch resource {
	case "document-categories":
		return documentCategories, true
	case "permission-profiles":
		return permissionProfiles, true
	}
	return nil, false
}

func (i impl) GetLookup(tenantID, resource string) ([]employeeapimodels.LookupItem, error) {
	switch resource {
	case "departments":
		list, err := i.store.Departments(tenantID)
		if err != nil {
			return nil, err
		}
		result := make([]employeeapimodels.LookupItem, 0, len(list))
		for _, rec := range list {
			result = append(result, employeeapimodels.LookupItem{ID: rec.ID, Name: rec.Name, Code: rec.Code})
		}
		return result, nil
	case "designations":
		list, err := i.store.Designations(tenantID)
		if err != nil {
			return nil, err
		}
		result := make([]employeeapimodels.LookupItem, 0, len(list))
		for _, rec := range list {
			result = append(result, employeeapimodels.LookupItem{
				ID:   rec.ID,
				Name: rec.Name,
				Extra: employeeapimodels.LookupExtra{
					Department: rec.Department,
					Level:      rec.Level,
				},
			})
		}
		return result, nil
	case "locations":
		list, err := i.store.Locations(tenantID)
		if err != nil {
			return nil, err
		}
		result := make([]employeeapimodels.LookupItem, 0, len(list))
		for _, rec := range list {
			result = append(result, employeeapimodels.LookupItem{ID: rec.ID, Name: rec.Name})
		}
		return result, nil
	case "roles":
		list, err := i.store.Roles(tenantID)
		if err != nil {
			return nil, err
		}
		result := make([]employeeapimodels.LookupItem, 0, len(list))
		for _, rec := range list {
			result = append(result, employeeapimodels.LookupItem{ID: rec.ID, Name: rec.Name, Code: rec.Code})
		}
		return result, nil
	case "employees":
		list, err := i.store.ActiveEmployees(tenantID)
		if err != nil {
			return nil, err
		}
		result := make([]employeeapimodels.LookupItem, 0, len(list))
		for _, rec := range list {
			result = append(result, employeeapimodels.LookupItem{
				ID:   rec.ID,
				Name: rec.GetFullName(),
				Code: dbmodels.SectionValue(rec.Employment, "employee_code"),
			})
		}
		return result, nil
	}
	return nil, models.NewNotFoundError("Lookup not supported")
}

func (i impl) Departments(tenantID string) ([]employeeapimodels.OptionItem, error) {
	list, err := i.store.Departments(tenantID)
	if err != nil {
		return nil, err
	}
	result := make([]employeeapimodels.OptionItem, 0, len(list))
	for _, rec := range list {
		result = append(result, employeeapimodels.OptionItem{ID: rec.ID, Name: rec.Name, Code: rec.Code})
	}
	return result, nil
}

func (i impl) Designations(tenantID string) ([]employeeapimodels.OptionItem, error) {
	list, err := i.store.Designations(tenantID)
	if err != nil {
		return nil, err
	}
	result := make([]employeeapimodels.OptionItem, 0, len(list))
	for _, rec := range list {
		result = append(result, employeeapimodels.OptionItem{ID: rec.ID, Name: rec.Name, Department: rec.Department})
	}
	return result, nil
}

func (i impl) Locations(tenantID string) ([]employeeapimodels.OptionItem, error) {
	list, err := i.store.Locations(tenantID)
	if err != nil {
		return nil, err
	}
	result := make([]employeeapimodels.OptionItem, 0, len(list))
	for _, rec := range list {
		result = append(result, employeeapimodels.OptionItem{ID: rec.ID, Name: rec.Name})
	}
	return result, nil
}

func (i impl) Roles(tenantID string) ([]employeeapimodels.OptionItem, error) {
	list, err := i.store.Roles(tenantID)
	if err != nil {
		return nil, err
	}
	result := make([]employeeapimodels.OptionItem, 0, len(list))
	for _, rec := range list {
		result = append(result, employeeapimodels.OptionItem{ID: rec.ID, Name: rec.Name, Code: rec.Code})
	}
	return result, nil
}
