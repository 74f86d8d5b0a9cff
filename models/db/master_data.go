package dbmodels

// Справочники (подразделения, должности, локации, роли) принадлежат
// внешнему модулю, здесь используются только на чтение.

type Department struct {
	BaseTenantModel
	Name    string `json:"name"`
	Code    string `json:"code"`
	Deleted bool   `gorm:"column:del" json:"-"`
}

func (Department) TableName() string {
	return "tenant_departments"
}

type Designation struct {
	BaseTenantModel
	Name       string `json:"name"`
	Department string `json:"department"`
	Level      string `json:"level"`
	Deleted    bool   `gorm:"column:del" json:"-"`
}

func (Designation) TableName() string {
	return "tenant_designations"
}

type Location struct {
	BaseTenantModel
	Name string `json:"name"`
}

func (Location) TableName() string {
	return "tenant_locations"
}

type PermissionRole struct {
	BaseTenantModel
	Name string `json:"name"`
	Code string `json:"code"`
}

func (PermissionRole) TableName() string {
	return "permission_roles"
}
