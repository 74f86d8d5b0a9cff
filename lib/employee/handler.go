package employeehandler

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"hr-office-backend/db"
	masterdictprovider "hr-office-backend/lib/dicts/master"
	draftstore "hr-office-backend/lib/employee/draft-store"
	employeestore "hr-office-backend/lib/employee/store"
	"hr-office-backend/models"
	employeeapimodels "hr-office-backend/models/api/employee"
	dbmodels "hr-office-backend/models/db"
)

type Provider interface {
	SaveStepOne(tenantID, userID string, personal map[string]interface{}, draftID string) (employeeapimodels.StepSaveResult, error)
	SaveStep(tenantID, userID, draftID, sectionKey string, sectionPayload map[string]interface{}, stepNumber int, nextStep *int) (employeeapimodels.StepSaveResult, error)
	SaveDocuments(tenantID, userID, draftID string, documents []map[string]interface{}) (employeeapimodels.StepSaveResult, error)
	CompleteEmployee(tenantID, userID, draftID string) (employeeapimodels.CompleteResult, error)
	GetDraft(tenantID, draftID string) (*dbmodels.EmployeeDraft, error)
	ListDrafts(tenantID, userID string) ([]employeeapimodels.DraftListItem, error)
	DeleteDraft(tenantID, draftID string) error
	GetEmployee(tenantID, employeeID string) (*dbmodels.Employee, error)
	UpdateEmployee(tenantID, employeeID string, payload employeeapimodels.UpdateEmployeeData, actorID, etag string) (*dbmodels.Employee, error)
	UpdateEmployeeStep(tenantID, employeeID string, stepNumber int, sectionPayload map[string]interface{}, actorID, etag string) (*dbmodels.Employee, error)
	UpdateEmployeeStatus(tenantID, employeeID, statusValue, actorID, reason, effectiveDate, etag string) (*dbmodels.Employee, error)
	BulkAssignRole(tenantID string, data employeeapimodels.BulkAssignRoleData, actorID string) (employeeapimodels.BulkResult, error)
	BulkSuspend(tenantID string, data employeeapimodels.BulkSuspendData, actorID string) (employeeapimodels.BulkResult, error)
	BulkTerminate(tenantID string, data employeeapimodels.BulkTerminateData, actorID string) (employeeapimodels.BulkResult, error)
	BulkActivateEss(tenantID string, data employeeapimodels.BulkEssData, actorID string) (employeeapimodels.BulkResult, error)
	BulkAddTag(tenantID string, data employeeapimodels.BulkTagData, actorID string) (employeeapimodels.BulkResult, error)
	ValidateUnique(tenantID, fieldPath, value, excludeID string) (employeeapimodels.ValidateResult, error)
	ListEmployees(tenantID string, filter employeeapimodels.ListFilter) (employeeapimodels.ListResult, error)
	ExportEmployees(tenantID string, filter dbmodels.EmployeeFilter, limit int) (employeeapimodels.ExportResult, error)
	GetFilterOptions(tenantID string) (employeeapimodels.FilterOptions, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		draftStore: draftstore.NewInstance(db.DB),
		store:      employeestore.NewInstance(db.DB),
		runInTx: func(fn func(employees employeestore.Provider, drafts draftstore.Provider) error) error {
			return db.DB.Transaction(func(tx *gorm.DB) error {
				return fn(employeestore.NewInstance(tx), draftstore.NewInstance(tx))
			})
		},
	}
}

type impl struct {
	draftStore draftstore.Provider
	store      employeestore.Provider
	// runInTx выполняет fn над хранилищами, привязанными к одной транзакции
	runInTx func(fn func(employees employeestore.Provider, drafts draftstore.Provider) error) error
}

func (i impl) SaveStepOne(tenantID, userID string, personal map[string]interface{}, draftID string) (result employeeapimodels.StepSaveResult, err error) {
	sectionJSON, err := requireSection(personal, models.SectionPersonal)
	if err != nil {
		return result, err
	}
	var draft *dbmodels.EmployeeDraft
	if draftID != "" {
		draft, err = i.getMutableDraft(tenantID, draftID)
		if err != nil {
			return result, err
		}
	} else {
		draftID = generateDraftID()
		rec := dbmodels.EmployeeDraft{
			TenantID:      tenantID,
			DraftID:       draftID,
			Status:        models.DraftStatusInProgress,
			StepCompleted: 0,
			NextStep:      intPtr(1),
			History:       dbmodels.DraftHistory{},
			CreatedBy:     userID,
			UpdatedBy:     userID,
		}
		if _, err = i.draftStore.Create(rec); err != nil {
			return result, err
		}
		draft = &rec
	}

	stepCompleted := maxInt(draft.StepCompleted, 1)
	nextStep := intPtr(2)
	updMap := map[string]interface{}{
		"personal":       sectionJSON,
		"step_completed": stepCompleted,
		"next_step":      nextStep,
		"updated_by":     userID,
		"history":        appendHistory(draft.History, 1, userID, "Saved personal info"),
	}
	if err = i.draftStore.Update(tenantID, draftID, updMap); err != nil {
		return result, err
	}
	return employeeapimodels.StepSaveResult{
		DraftID:       draftID,
		StepCompleted: stepCompleted,
		NextStep:      nextStep,
		EmployeeID:    draft.EmployeeID,
	}, nil
}

func (i impl) SaveStep(tenantID, userID, draftID, sectionKey string, sectionPayload map[string]interface{}, stepNumber int, nextStep *int) (result employeeapimodels.StepSaveResult, err error) {
	sectionJSON, err := requireSection(sectionPayload, sectionKey)
	if err != nil {
		return result, err
	}
	draft, err := i.getMutableDraft(tenantID, draftID)
	if err != nil {
		return result, err
	}

	stepCompleted := maxInt(draft.StepCompleted, stepNumber)
	updMap := map[string]interface{}{
		sectionKey:       sectionJSON,
		"step_completed": stepCompleted,
		"next_step":      nextStep,
		"updated_by":     userID,
		"history":        appendHistory(draft.History, stepNumber, userID, fmt.Sprintf("Saved section %s", sectionKey)),
	}
	if err = i.draftStore.Update(tenantID, draftID, updMap); err != nil {
		return result, err
	}
	return employeeapimodels.StepSaveResult{
		DraftID:       draftID,
		StepCompleted: stepCompleted,
		NextStep:      nextStep,
	}, nil
}

func (i impl) SaveDocuments(tenantID, userID, draftID string, documents []map[string]interface{}) (result employeeapimodels.StepSaveResult, err error) {
	if len(documents) == 0 {
		return result, models.NewValidationError("documents must be a non-empty array",
			models.FieldDetail{Field: models.SectionDocuments, Message: "Provide at least one document"})
	}
	payload := map[string]interface{}{
		"documents": documents,
	}
	return i.SaveStep(tenantID, userID, draftID, models.SectionDocuments, payload, 5, intPtr(6))
}

func (i impl) CompleteEmployee(tenantID, userID, draftID string) (result employeeapimodels.CompleteResult, err error) {
	draft, err := i.getMutableDraft(tenantID, draftID)
	if err != nil {
		return result, err
	}
	if missing := draft.MissingSections(); len(missing) != 0 {
		details := make([]models.FieldDetail, 0, len(missing))
		for _, section := range missing {
			details = append(details, models.FieldDetail{Field: section, Message: "Section missing"})
		}
		return result, models.NewValidationError("All steps must be completed before final submission", details...)
	}

	etag := generateETag()
	rec := dbmodels.Employee{
		TenantID:         tenantID,
		DraftID:          draftID,
		Personal:         draft.Personal,
		Employment:       draft.Employment,
		Compensation:     draft.Compensation,
		BankTax:          draft.BankTax,
		Documents:        draft.Documents,
		EmergencyAddress: draft.EmergencyAddress,
		Status:           models.EmployeeStatusActive,
		EmploymentStatus: models.EmploymentStatusActive,
		Version:          1,
		ETag:             etag,
		Tags:             []string{},
		CreatedBy:        draft.CreatedBy,
		UpdatedBy:        userID,
	}

	var employeeID string
	now := time.Now()
	// Вставка сотрудника и перевод черновика в completed в одной транзакции:
	// повторная финализация проигрывает условие по статусу и откатывается.
	err = i.runInTx(func(employees employeestore.Provider, drafts draftstore.Provider) error {
		var txErr error
		employeeID, txErr = employees.Create(rec)
		if txErr != nil {
			return txErr
		}
		updMap := map[string]interface{}{
			"status":         models.DraftStatusCompleted,
			"employee_id":    employeeID,
			"completed_at":   now,
			"step_completed": 7,
			"next_step":      nil,
			"updated_by":     userID,
			"history":        appendHistory(draft.History, 7, userID, "Employee record created"),
		}
		completed, txErr := drafts.MarkCompleted(tenantID, draftID, updMap)
		if txErr != nil {
			return txErr
		}
		if !completed {
			return models.NewConflictError("Draft already completed")
		}
		return nil
	})
	if err != nil {
		return result, err
	}

	return employeeapimodels.CompleteResult{
		EmployeeID:   employeeID,
		EmployeeCode: dbmodels.SectionValue(draft.Employment, "employee_code"),
		WorkEmail:    dbmodels.SectionValue(draft.Employment, "work_email"),
		Status:       string(models.EmployeeStatusActive),
		ETag:         etag,
	}, nil
}

func (i impl) GetDraft(tenantID, draftID string) (*dbmodels.EmployeeDraft, error) {
	return i.getDraft(tenantID, draftID)
}

func (i impl) ListDrafts(tenantID, userID string) ([]employeeapimodels.DraftListItem, error) {
	list, err := i.draftStore.ListByCreator(tenantID, userID)
	if err != nil {
		return nil, err
	}
	result := make([]employeeapimodels.DraftListItem, 0, len(list))
	for _, rec := range list {
		result = append(result, employeeapimodels.DraftListItem{
			DraftID:       rec.DraftID,
			EmployeeName:  dbmodels.SectionValue(rec.Personal, "first_name"),
			StepCompleted: rec.StepCompleted,
			NextStep:      rec.NextStep,
			UpdatedAt:     rec.UpdatedAt,
		})
	}
	return result, nil
}

func (i impl) DeleteDraft(tenantID, draftID string) error {
	if _, err := i.getMutableDraft(tenantID, draftID); err != nil {
		return err
	}
	return i.draftStore.Delete(tenantID, draftID)
}

func (i impl) GetEmployee(tenantID, employeeID string) (*dbmodels.Employee, error) {
	return i.getEmployee(tenantID, employeeID)
}

func (i impl) UpdateEmployee(tenantID, employeeID string, payload employeeapimodels.UpdateEmployeeData, actorID, etag string) (*dbmodels.Employee, error) {
	if payload.IsEmpty() {
		return nil, models.NewBadRequestError("payload must be an object",
			models.FieldDetail{Field: "payload", Message: "payload must be an object"})
	}
	rec, err := i.getEmployee(tenantID, employeeID)
	if err != nil {
		return nil, err
	}
	if err = ensureETag(rec.ETag, etag); err != nil {
		return nil, err
	}

	updMap := map[string]interface{}{}
	addSectionUpdate(updMap, models.SectionPersonal, payload.Personal)
	addSectionUpdate(updMap, models.SectionEmployment, payload.Employment)
	addSectionUpdate(updMap, models.SectionCompensation, payload.Compensation)
	addSectionUpdate(updMap, models.SectionBankTax, payload.BankTax)
	addSectionUpdate(updMap, models.SectionEmergencyAddress, payload.EmergencyAddress)
	if len(payload.Documents) != 0 {
		docsJSON, err := marshalSection(map[string]interface{}{"documents": payload.Documents})
		if err != nil {
			return nil, err
		}
		updMap[models.SectionDocuments] = docsJSON
	}
	if payload.Status != "" {
		updMap["status"] = payload.Status
	}
	return i.applyGuardedUpdate(tenantID, employeeID, rec, actorID, updMap)
}

func (i impl) UpdateEmployeeStep(tenantID, employeeID string, stepNumber int, sectionPayload map[string]interface{}, actorID, etag string) (*dbmodels.Employee, error) {
	sectionKey, ok := models.StepSection[stepNumber]
	if !ok {
		return nil, models.NewBadRequestError("Invalid step number",
			models.FieldDetail{Field: "step", Message: "Step must be between 1 and 6"})
	}
	sectionJSON, err := requireSection(sectionPayload, sectionKey)
	if err != nil {
		return nil, err
	}
	rec, err := i.getEmployee(tenantID, employeeID)
	if err != nil {
		return nil, err
	}
	if err = ensureETag(rec.ETag, etag); err != nil {
		return nil, err
	}
	updMap := map[string]interface{}{
		sectionKey: sectionJSON,
	}
	return i.applyGuardedUpdate(tenantID, employeeID, rec, actorID, updMap)
}

func (i impl) UpdateEmployeeStatus(tenantID, employeeID, statusValue, actorID, reason, effectiveDate, etag string) (*dbmodels.Employee, error) {
	if statusValue == "" {
		return nil, models.NewValidationError("status is required",
			models.FieldDetail{Field: "status", Message: "Status is required"})
	}
	normalized := models.EmploymentStatus(strings.ToLower(statusValue))
	if !models.IsKnownEmploymentStatus(normalized) {
		return nil, models.NewValidationError("Invalid status value",
			models.FieldDetail{Field: "status", Message: "Status must be one of active, inactive, suspended, terminated"})
	}
	rec, err := i.getEmployee(tenantID, employeeID)
	if err != nil {
		return nil, err
	}
	// административная операция: предусловие проверяется, только если клиент
	// сам прислал токен
	if err = ensureETag(rec.ETag, etag); err != nil {
		return nil, err
	}
	updMap := map[string]interface{}{
		"status":                string(models.MapEmployeeStatus(normalized)),
		"employment_status":     string(normalized),
		"status_reason":         nullableString(reason),
		"status_effective_date": nullableString(effectiveDate),
	}
	return i.applyGuardedUpdate(tenantID, employeeID, rec, actorID, updMap)
}

// applyGuardedUpdate выполняет единственную условную запись: новая версия и
// etag применяются, только если сохранённый etag не изменился с момента
// чтения. Проигранная гонка не оставляет частичных изменений.
func (i impl) applyGuardedUpdate(tenantID, employeeID string, rec *dbmodels.Employee, actorID string, updMap map[string]interface{}) (*dbmodels.Employee, error) {
	updMap["version"] = rec.Version + 1
	updMap["etag"] = generateETag()
	updMap["updated_by"] = actorID
	matched, err := i.store.UpdateWithETag(tenantID, employeeID, rec.ETag, updMap)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, models.NewPreconditionError("Version mismatch. Refresh employee before updating")
	}
	return i.getEmployee(tenantID, employeeID)
}

func (i impl) BulkAssignRole(tenantID string, data employeeapimodels.BulkAssignRoleData, actorID string) (result employeeapimodels.BulkResult, err error) {
	ids, err := FilterValidIDs(data.EmployeeIDs)
	if err != nil {
		return result, err
	}
	updMap := map[string]interface{}{
		"permission_profile_id":   data.RoleID,
		"permission_profile_name": nullableString(data.RoleName),
		"updated_by":              actorID,
	}
	updated, err := i.store.BulkUpdate(tenantID, ids, updMap)
	if err != nil {
		return result, err
	}
	return employeeapimodels.BulkResult{Updated: updated}, nil
}

func (i impl) BulkSuspend(tenantID string, data employeeapimodels.BulkSuspendData, actorID string) (result employeeapimodels.BulkResult, err error) {
	ids, err := FilterValidIDs(data.EmployeeIDs)
	if err != nil {
		return result, err
	}
	updMap := map[string]interface{}{
		"status":                    string(models.EmployeeStatusInactive),
		"employment_status":         string(models.EmploymentStatusSuspended),
		"suspension_reason":         nullableString(data.Reason),
		"suspension_effective_date": nullableString(data.EffectiveDate),
		"updated_by":                actorID,
	}
	updated, err := i.store.BulkUpdate(tenantID, ids, updMap)
	if err != nil {
		return result, err
	}
	return employeeapimodels.BulkResult{Updated: updated}, nil
}

func (i impl) BulkTerminate(tenantID string, data employeeapimodels.BulkTerminateData, actorID string) (result employeeapimodels.BulkResult, err error) {
	ids, err := FilterValidIDs(data.EmployeeIDs)
	if err != nil {
		return result, err
	}
	updMap := map[string]interface{}{
		"status":             string(models.EmployeeStatusInactive),
		"employment_status":  string(models.EmploymentStatusTerminated),
		"termination_reason": nullableString(data.Reason),
		"termination_date":   nullableString(data.LastWorkingDay),
		"updated_by":         actorID,
	}
	updated, err := i.store.BulkUpdate(tenantID, ids, updMap)
	if err != nil {
		return result, err
	}
	return employeeapimodels.BulkResult{Updated: updated}, nil
}

func (i impl) BulkActivateEss(tenantID string, data employeeapimodels.BulkEssData, actorID string) (result employeeapimodels.BulkResult, err error) {
	ids, err := FilterValidIDs(data.EmployeeIDs)
	if err != nil {
		return result, err
	}
	enable := data.IsEnable()
	updMap := map[string]interface{}{
		"ess_enabled":      enable,
		"ess_activated_at": nil,
		"updated_by":       actorID,
	}
	if enable {
		updMap["ess_activated_at"] = time.Now()
	}
	updated, err := i.store.BulkUpdate(tenantID, ids, updMap)
	if err != nil {
		return result, err
	}
	return employeeapimodels.BulkResult{Updated: updated}, nil
}

func (i impl) BulkAddTag(tenantID string, data employeeapimodels.BulkTagData, actorID string) (result employeeapimodels.BulkResult, err error) {
	ids, err := FilterValidIDs(data.EmployeeIDs)
	if err != nil {
		return result, err
	}
	updMap := map[string]interface{}{
		"updated_by": actorID,
	}
	updated, err := i.store.BulkAddTag(tenantID, ids, strings.TrimSpace(data.Tag), updMap)
	if err != nil {
		return result, err
	}
	return employeeapimodels.BulkResult{Updated: updated}, nil
}

func (i impl) ValidateUnique(tenantID, fieldPath, value, excludeID string) (result employeeapimodels.ValidateResult, err error) {
	if value == "" {
		return result, models.NewValidationError("value query parameter is required",
			models.FieldDetail{Field: "value", Message: "Provide value to validate"})
	}
	if _, parseErr := uuid.Parse(excludeID); parseErr != nil {
		// нечитаемый exclude_id просто игнорируется
		excludeID = ""
	}
	exists, err := i.store.ExistsByField(tenantID, fieldPath, value, excludeID)
	if err != nil {
		return result, err
	}
	message := "Value is available"
	if exists {
		message = "Value already exists"
	}
	return employeeapimodels.ValidateResult{
		IsUnique: !exists,
		Message:  message,
	}, nil
}

func (i impl) ListEmployees(tenantID string, filter employeeapimodels.ListFilter) (result employeeapimodels.ListResult, err error) {
	page, limit := filter.GetPage()
	filter.Search = strings.TrimSpace(filter.Search)

	list, err := i.store.List(tenantID, filter.EmployeeFilter, page, limit)
	if err != nil {
		return result, err
	}
	total, err := i.store.Count(tenantID, filter.EmployeeFilter)
	if err != nil {
		return result, err
	}
	items := make([]employeeapimodels.EmployeeListItem, 0, len(list))
	for _, rec := range list {
		items = append(items, projectListItem(rec))
	}
	return employeeapimodels.ListResult{
		Items:          items,
		Page:           page,
		Limit:          limit,
		Total:          total,
		TotalPages:     (total + int64(limit) - 1) / int64(limit),
		FiltersApplied: filter.EmployeeFilter,
	}, nil
}

func (i impl) ExportEmployees(tenantID string, filter dbmodels.EmployeeFilter, limit int) (result employeeapimodels.ExportResult, err error) {
	list, err := i.store.Export(tenantID, filter, ClampExportLimit(limit))
	if err != nil {
		return result, err
	}
	rows := make([]employeeapimodels.ExportRow, 0, len(list))
	for _, rec := range list {
		rows = append(rows, projectExportRow(rec))
	}
	return employeeapimodels.ExportResult{
		Items: rows,
		Count: len(rows),
	}, nil
}

func (i impl) GetFilterOptions(tenantID string) (result employeeapimodels.FilterOptions, err error) {
	if result.Departments, err = masterdictprovider.Instance.Departments(tenantID); err != nil {
		return result, err
	}
	if result.Designations, err = masterdictprovider.Instance.Designations(tenantID); err != nil {
		return result, err
	}
	if result.Locations, err = masterdictprovider.Instance.Locations(tenantID); err != nil {
		return result, err
	}
	if result.Roles, err = masterdictprovider.Instance.Roles(tenantID); err != nil {
		return result, err
	}
	if result.Tags, err = i.store.DistinctTags(tenantID); err != nil {
		return result, err
	}
	result.Statuses = []employeeapimodels.StatusOption{
		{Value: "active", Label: "Active"},
		{Value: "inactive", Label: "Inactive"},
		{Value: "suspended", Label: "Suspended"},
		{Value: "terminated", Label: "Terminated"},
	}
	return result, nil
}

func (i impl) getDraft(tenantID, draftID string) (*dbmodels.EmployeeDraft, error) {
	if draftID == "" {
		return nil, models.NewValidationError("draft_id is required",
			models.FieldDetail{Field: "draft_id", Message: "Draft id is required"})
	}
	draft, err := i.draftStore.GetByDraftID(tenantID, draftID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, models.NewNotFoundError("Draft not found")
	}
	return draft, nil
}

func (i impl) getMutableDraft(tenantID, draftID string) (*dbmodels.EmployeeDraft, error) {
	draft, err := i.getDraft(tenantID, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Status == models.DraftStatusCompleted {
		return nil, models.NewConflictError("Draft already completed")
	}
	return draft, nil
}

func (i impl) getEmployee(tenantID, employeeID string) (*dbmodels.Employee, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, models.NewNotFoundError("Employee not found")
	}
	rec, err := i.store.GetByID(tenantID, employeeID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("Employee not found")
	}
	return rec, nil
}

// ensureETag сравнивает сохранённый токен с присланным клиентом.
// Пустой присланный токен пропускается, гонку чтение-запись в этом случае
// всё равно закрывает условная запись.
func ensureETag(current, provided string) error {
	if current != "" && provided != "" && current != provided {
		return models.NewPreconditionError("Version mismatch. Refresh employee before updating")
	}
	return nil
}

func requireSection(payload map[string]interface{}, field string) (datatypes.JSON, error) {
	if len(payload) == 0 {
		return nil, models.NewBadRequestError(fmt.Sprintf("%s must be an object", field),
			models.FieldDetail{Field: field, Message: fmt.Sprintf("%s must be an object", field)})
	}
	return marshalSection(payload)
}

func marshalSection(payload map[string]interface{}) (datatypes.JSON, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка сериализации секции")
	}
	return datatypes.JSON(raw), nil
}

func addSectionUpdate(updMap map[string]interface{}, sectionKey string, payload map[string]interface{}) {
	if len(payload) == 0 {
		return
	}
	if sectionJSON, err := marshalSection(payload); err == nil {
		updMap[sectionKey] = sectionJSON
	}
}

// FilterValidIDs отбрасывает нечитаемые идентификаторы; пустой результат -
// ошибка валидации до обращения к хранилищу.
func FilterValidIDs(employeeIDs []string) ([]string, error) {
	ids := make([]string, 0, len(employeeIDs))
	for _, id := range employeeIDs {
		if _, err := uuid.Parse(id); err != nil {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, models.NewValidationError("employee_ids must include at least one valid identifier",
			models.FieldDetail{Field: "employee_ids", Message: "Provide at least one valid employee id"})
	}
	return ids, nil
}

// ClampExportLimit ограничивает объём выгрузки диапазоном [1, 5000],
// значение по умолчанию 1000 строк.
func ClampExportLimit(limit int) int {
	if limit == 0 {
		return 1000
	}
	if limit > 5000 {
		return 5000
	}
	if limit < 1 {
		return 1
	}
	return limit
}

func projectListItem(rec dbmodels.Employee) employeeapimodels.EmployeeListItem {
	return employeeapimodels.EmployeeListItem{
		ID:               rec.ID,
		EmployeeCode:     dbmodels.SectionValue(rec.Employment, "employee_code"),
		Name:             rec.GetFullName(),
		Department:       dbmodels.SectionValue(rec.Employment, "department_id"),
		Designation:      dbmodels.SectionValue(rec.Employment, "designation"),
		ManagerID:        dbmodels.SectionValue(rec.Employment, "manager_id"),
		WorkLocationID:   dbmodels.SectionValue(rec.Employment, "work_location_id"),
		Status:           string(rec.Status),
		EmploymentStatus: string(rec.EmploymentStatus),
		Tags:             rec.Tags,
		EssEnabled:       rec.EssEnabled,
		WorkEmail:        dbmodels.SectionValue(rec.Employment, "work_email"),
		JoinDate:         dbmodels.SectionValue(rec.Employment, "join_date"),
		UpdatedAt:        rec.UpdatedAt.Format(time.RFC3339),
	}
}

func projectExportRow(rec dbmodels.Employee) employeeapimodels.ExportRow {
	return employeeapimodels.ExportRow{
		EmployeeCode:     dbmodels.SectionValue(rec.Employment, "employee_code"),
		FullName:         rec.GetFullName(),
		DepartmentID:     dbmodels.SectionValue(rec.Employment, "department_id"),
		Designation:      dbmodels.SectionValue(rec.Employment, "designation"),
		WorkEmail:        dbmodels.SectionValue(rec.Employment, "work_email"),
		PersonalEmail:    dbmodels.SectionValue(rec.Personal, "personal_email"),
		EmploymentType:   dbmodels.SectionValue(rec.Employment, "employment_type"),
		JoinDate:         dbmodels.SectionValue(rec.Employment, "join_date"),
		ManagerID:        dbmodels.SectionValue(rec.Employment, "manager_id"),
		Status:           string(rec.Status),
		EmploymentStatus: string(rec.EmploymentStatus),
		Tags:             rec.Tags,
		BankName:         dbmodels.SectionValue(rec.BankTax, "bank_name"),
		Ifsc:             dbmodels.SectionValue(rec.BankTax, "ifsc"),
	}
}

func appendHistory(history dbmodels.DraftHistory, step int, userID, details string) dbmodels.DraftHistory {
	return append(history, dbmodels.DraftHistoryEntry{
		Step:    step,
		By:      userID,
		At:      time.Now(),
		Details: details,
	})
}

func generateDraftID() string {
	return "draft_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

func generateETag() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func intPtr(value int) *int {
	return &value
}

func nullableString(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
