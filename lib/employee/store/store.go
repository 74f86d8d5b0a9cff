package employeestore

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-office-backend/lib/utils/helpers"
	"hr-office-backend/models"
	dbmodels "hr-office-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Employee) (id string, err error)
	GetByID(tenantID, id string) (rec *dbmodels.Employee, err error)
	// UpdateWithETag - условная запись: строка меняется только если
	// сохранённый etag всё ещё равен expectedETag. Возвращает matched=false
	// при проигранной гонке, никакая часть обновления не применяется.
	UpdateWithETag(tenantID, id, expectedETag string, updMap map[string]interface{}) (matched bool, err error)
	BulkUpdate(tenantID string, ids []string, updMap map[string]interface{}) (updated int64, err error)
	BulkAddTag(tenantID string, ids []string, tag string, updMap map[string]interface{}) (updated int64, err error)
	List(tenantID string, filter dbmodels.EmployeeFilter, page, limit int) (list []dbmodels.Employee, err error)
	Count(tenantID string, filter dbmodels.EmployeeFilter) (count int64, err error)
	Export(tenantID string, filter dbmodels.EmployeeFilter, limit int) (list []dbmodels.Employee, err error)
	ExistsByField(tenantID, fieldPath, value, excludeID string) (found bool, err error)
	DistinctTags(tenantID string) (tags []string, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Employee) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(tenantID, id string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) UpdateWithETag(tenantID, id, expectedETag string, updMap map[string]interface{}) (matched bool, err error) {
	if len(updMap) == 0 {
		return true, nil
	}
	tx := i.db.
		Model(&dbmodels.Employee{}).
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Where("etag = ?", expectedETag).
		Updates(updMap)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (i impl) BulkUpdate(tenantID string, ids []string, updMap map[string]interface{}) (updated int64, err error) {
	if len(updMap) == 0 || len(ids) == 0 {
		return 0, nil
	}
	tx := i.db.
		Model(&dbmodels.Employee{}).
		Where("tenant_id = ?", tenantID).
		Where("id in ?", ids).
		Updates(i.withVersionBump(updMap))
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

// BulkAddTag добавляет тег в множество tags без дублей одной командой.
func (i impl) BulkAddTag(tenantID string, ids []string, tag string, updMap map[string]interface{}) (updated int64, err error) {
	if len(ids) == 0 {
		return 0, nil
	}
	upd := i.withVersionBump(updMap)
	upd["tags"] = gorm.Expr(
		"case when tags @> array[?]::text[] then tags else array_append(coalesce(tags, '{}'), ?) end",
		tag, tag)
	tx := i.db.
		Model(&dbmodels.Employee{}).
		Where("tenant_id = ?", tenantID).
		Where("id in ?", ids).
		Updates(upd)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

// массовые операции тоже двигают version/etag, чтобы последующая
// одиночная правка видела актуальное состояние
func (i impl) withVersionBump(updMap map[string]interface{}) map[string]interface{} {
	upd := make(map[string]interface{}, len(updMap)+2)
	for k, v := range updMap {
		upd[k] = v
	}
	upd["version"] = gorm.Expr("version + 1")
	upd["etag"] = gorm.Expr("md5(random()::text || clock_timestamp()::text)")
	return upd
}

func (i impl) List(tenantID string, filter dbmodels.EmployeeFilter, page, limit int) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	tx := i.db.
		Model(&dbmodels.Employee{}).
		Where("tenant_id = ?", tenantID)
	i.addEmployeeFilter(tx, filter)
	err = tx.Order(SortExpression(filter.SortBy, filter.SortOrder)).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) Count(tenantID string, filter dbmodels.EmployeeFilter) (count int64, err error) {
	tx := i.db.
		Model(&dbmodels.Employee{}).
		Where("tenant_id = ?", tenantID)
	i.addEmployeeFilter(tx, filter)
	err = tx.Count(&count).Error
	return count, err
}

func (i impl) Export(tenantID string, filter dbmodels.EmployeeFilter, limit int) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	tx := i.db.
		Model(&dbmodels.Employee{}).
		Where("tenant_id = ?", tenantID)
	i.addEmployeeFilter(tx, filter)
	err = tx.Order("updated_at desc").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) addEmployeeFilter(tx *gorm.DB, filter dbmodels.EmployeeFilter) {
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where(`personal ->> 'first_name' ilike ?
			or personal ->> 'last_name' ilike ?
			or personal ->> 'personal_email' ilike ?
			or employment ->> 'employee_code' ilike ?
			or employment ->> 'work_email' ilike ?`,
			searchValue, searchValue, searchValue, searchValue, searchValue)
	}
	if filter.Status != "" {
		tx.Where("status = ?", filter.Status)
	}
	if filter.EmploymentStatus != "" {
		tx.Where("employment_status = ?", filter.EmploymentStatus)
	}
	if filter.DepartmentID != "" {
		tx.Where("employment ->> 'department_id' = ?", filter.DepartmentID)
	}
	if filter.Designation != "" {
		tx.Where("employment ->> 'designation' = ?", filter.Designation)
	}
	if filter.RoleID != "" {
		tx.Where("permission_profile_id = ?", filter.RoleID)
	}
	if filter.LocationID != "" {
		tx.Where("employment ->> 'work_location_id' = ?", filter.LocationID)
	}
	if filter.ManagerID != "" {
		tx.Where("employment ->> 'manager_id' = ?", filter.ManagerID)
	}
	if len(filter.Tags) != 0 {
		// требуются все перечисленные теги
		tx.Where("tags @> ?", pq.Array(filter.Tags))
	}
	if filter.JoinDateFrom != "" {
		tx.Where("employment ->> 'join_date' >= ?", filter.JoinDateFrom)
	}
	if filter.JoinDateTo != "" {
		tx.Where("employment ->> 'join_date' <= ?", filter.JoinDateTo)
	}
}

var sortColumns = map[string]string{
	"created_at":        "created_at",
	"updated_at":        "updated_at",
	"status":            "status",
	"employment_status": "employment_status",
	"version":           "version",
	"ess_enabled":       "ess_enabled",
}

var sortSections = map[string]string{
	models.SectionPersonal:         "personal",
	models.SectionEmployment:       "employment",
	models.SectionCompensation:     "compensation",
	models.SectionBankTax:          "bank_tax",
	models.SectionEmergencyAddress: "emergency_address",
}

var sortFieldRe = regexp.MustCompile(`^[a-z0-9_]+$`)

// SortExpression строит безопасное order by выражение: либо известная
// колонка, либо путь внутри секции вида employment.join_date.
// camelCase от клиента приводится к snake_case, неизвестное значение
// сводится к updated_at.
func SortExpression(sortBy, sortOrder string) string {
	direction := "desc"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "asc"
	}
	sortBy = helpers.ToSnakeCase(sortBy)
	if column, ok := sortColumns[sortBy]; ok {
		return fmt.Sprintf("%s %s", column, direction)
	}
	if section, field, found := strings.Cut(sortBy, "."); found {
		if column, ok := sortSections[section]; ok && sortFieldRe.MatchString(field) {
			return fmt.Sprintf("%s ->> '%s' %s", column, field, direction)
		}
	}
	return fmt.Sprintf("updated_at %s", direction)
}

var uniqueFieldColumns = map[string]string{
	models.SectionPersonal:   "personal",
	models.SectionEmployment: "employment",
}

func (i impl) ExistsByField(tenantID, fieldPath, value, excludeID string) (found bool, err error) {
	section, field, ok := strings.Cut(fieldPath, ".")
	if !ok {
		return false, errors.Errorf("неподдерживаемый путь поля: %s", fieldPath)
	}
	column, ok := uniqueFieldColumns[section]
	if !ok || !sortFieldRe.MatchString(field) {
		return false, errors.Errorf("неподдерживаемый путь поля: %s", fieldPath)
	}
	var exists bool
	tx := i.db.Model(&dbmodels.Employee{}).
		Select("count(*) > 0").
		Where("tenant_id = ?", tenantID).
		Where(fmt.Sprintf("%s ->> '%s' = ?", column, field), value)
	if excludeID != "" {
		tx.Where("id <> ?", excludeID)
	}
	err = tx.Find(&exists).Error
	return exists, err
}

func (i impl) DistinctTags(tenantID string) (tags []string, err error) {
	tags = []string{}
	err = i.db.Model(&dbmodels.Employee{}).
		Select("distinct unnest(tags)").
		Where("tenant_id = ?", tenantID).
		Order("1").
		Find(&tags).
		Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}
