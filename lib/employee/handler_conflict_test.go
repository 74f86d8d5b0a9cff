package employeehandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	draftstore "hr-office-backend/lib/employee/draft-store"
	employeestore "hr-office-backend/lib/employee/store"
	"hr-office-backend/models"
	employeeapimodels "hr-office-backend/models/api/employee"
	dbmodels "hr-office-backend/models/db"
)

type fakeEmployeeStore struct {
	employeestore.Provider
	rec     *dbmodels.Employee
	matched bool
	updates []map[string]interface{}
	created []dbmodels.Employee
}

func (f *fakeEmployeeStore) GetByID(tenantID, id string) (*dbmodels.Employee, error) {
	return f.rec, nil
}

func (f *fakeEmployeeStore) UpdateWithETag(tenantID, id, expectedETag string, updMap map[string]interface{}) (bool, error) {
	f.updates = append(f.updates, updMap)
	return f.matched, nil
}

func (f *fakeEmployeeStore) Create(rec dbmodels.Employee) (string, error) {
	f.created = append(f.created, rec)
	return "6f0e2a61-1111-4000-8000-0000000000aa", nil
}

type fakeDraftStore struct {
	draftstore.Provider
	rec       *dbmodels.EmployeeDraft
	completed bool
	marks     int
}

func (f *fakeDraftStore) GetByDraftID(tenantID, draftID string) (*dbmodels.EmployeeDraft, error) {
	return f.rec, nil
}

func (f *fakeDraftStore) MarkCompleted(tenantID, draftID string, updMap map[string]interface{}) (bool, error) {
	f.marks++
	return f.completed, nil
}

func storedEmployee() *dbmodels.Employee {
	return &dbmodels.Employee{
		BaseModel: dbmodels.BaseModel{ID: "7a6f6f6e-0000-4000-8000-00000000aaaa"},
		TenantID:  "tenant-1",
		Status:    models.EmployeeStatusActive,
		Version:   3,
		ETag:      "a0b1c2d3a0b1c2d3a0b1c2d3a0b1c2d3",
	}
}

func fullDraft() *dbmodels.EmployeeDraft {
	section := datatypes.JSON(`{"filled":true}`)
	return &dbmodels.EmployeeDraft{
		TenantID:         "tenant-1",
		DraftID:          "draft_1a2b3c4d5e6f",
		Status:           models.DraftStatusInProgress,
		StepCompleted:    6,
		Personal:         section,
		Employment:       section,
		Compensation:     section,
		BankTax:          section,
		Documents:        section,
		EmergencyAddress: section,
		History:          dbmodels.DraftHistory{},
		CreatedBy:        "user-1",
	}
}

func TestUpdateEmployeeVersionGuard(t *testing.T) {
	payload := employeeapimodels.UpdateEmployeeData{Status: "inactive"}

	t.Run(`устаревший токен отклоняется до записи`, func(t *testing.T) {
		store := &fakeEmployeeStore{rec: storedEmployee()}
		h := impl{store: store}

		result, err := h.UpdateEmployee("tenant-1", store.rec.ID, payload, "user-2", "ffffffffffffffffffffffffffffffff")
		require.Nil(t, result)
		domainErr, ok := models.AsDomainError(err)
		require.True(t, ok)
		require.Equal(t, models.ErrCodePreconditionFailed, domainErr.Code)
		require.Equal(t, "Version mismatch. Refresh employee before updating", domainErr.Message)
		require.Empty(t, store.updates)
	})

	t.Run(`проигранная условная запись - 412, без повторных попыток`, func(t *testing.T) {
		store := &fakeEmployeeStore{rec: storedEmployee(), matched: false}
		h := impl{store: store}

		result, err := h.UpdateEmployee("tenant-1", store.rec.ID, payload, "user-2", store.rec.ETag)
		require.Nil(t, result)
		domainErr, ok := models.AsDomainError(err)
		require.True(t, ok)
		require.Equal(t, models.ErrCodePreconditionFailed, domainErr.Code)
		require.Len(t, store.updates, 1)
	})

	t.Run(`успешная запись двигает version и меняет etag`, func(t *testing.T) {
		store := &fakeEmployeeStore{rec: storedEmployee(), matched: true}
		h := impl{store: store}

		result, err := h.UpdateEmployee("tenant-1", store.rec.ID, payload, "user-2", "")
		require.Nil(t, err)
		require.NotNil(t, result)
		require.Len(t, store.updates, 1)
		updMap := store.updates[0]
		require.Equal(t, 4, updMap["version"])
		newETag, ok := updMap["etag"].(string)
		require.True(t, ok)
		require.Len(t, newETag, 32)
		require.NotEqual(t, store.rec.ETag, newETag)
		require.Equal(t, "user-2", updMap["updated_by"])
	})
}

func TestCompleteEmployeeGuards(t *testing.T) {
	t.Run(`повторная финализация откатывается по статусу черновика`, func(t *testing.T) {
		drafts := &fakeDraftStore{rec: fullDraft(), completed: false}
		employees := &fakeEmployeeStore{}
		h := impl{
			draftStore: drafts,
			runInTx: func(fn func(employees employeestore.Provider, drafts draftstore.Provider) error) error {
				return fn(employees, drafts)
			},
		}

		_, err := h.CompleteEmployee("tenant-1", "user-1", drafts.rec.DraftID)
		domainErr, ok := models.AsDomainError(err)
		require.True(t, ok)
		require.Equal(t, models.ErrCodeConflict, domainErr.Code)
		require.Equal(t, "Draft already completed", domainErr.Message)
		require.Equal(t, 1, drafts.marks)
	})

	t.Run(`завершённый черновик отклоняется без транзакции`, func(t *testing.T) {
		draft := fullDraft()
		draft.Status = models.DraftStatusCompleted
		drafts := &fakeDraftStore{rec: draft}
		h := impl{draftStore: drafts}

		_, err := h.CompleteEmployee("tenant-1", "user-1", draft.DraftID)
		domainErr, ok := models.AsDomainError(err)
		require.True(t, ok)
		require.Equal(t, models.ErrCodeConflict, domainErr.Code)
		require.Equal(t, 0, drafts.marks)
	})

	t.Run(`незаполненные секции перечисляются, сотрудник не создаётся`, func(t *testing.T) {
		draft := fullDraft()
		draft.Compensation = nil
		draft.Documents = datatypes.JSON(`{}`)
		drafts := &fakeDraftStore{rec: draft}
		employees := &fakeEmployeeStore{}
		h := impl{draftStore: drafts}

		_, err := h.CompleteEmployee("tenant-1", "user-1", draft.DraftID)
		domainErr, ok := models.AsDomainError(err)
		require.True(t, ok)
		require.Equal(t, models.ErrCodeValidationFailed, domainErr.Code)
		require.Equal(t, "All steps must be completed before final submission", domainErr.Message)
		require.Len(t, domainErr.Details, 2)
		require.Equal(t, models.SectionCompensation, domainErr.Details[0].Field)
		require.Equal(t, models.SectionDocuments, domainErr.Details[1].Field)
		require.Empty(t, employees.created)
		require.Equal(t, 0, drafts.marks)
	})

	t.Run(`успешная финализация помечает черновик и возвращает etag`, func(t *testing.T) {
		drafts := &fakeDraftStore{rec: fullDraft(), completed: true}
		employees := &fakeEmployeeStore{}
		h := impl{
			draftStore: drafts,
			runInTx: func(fn func(employees employeestore.Provider, drafts draftstore.Provider) error) error {
				return fn(employees, drafts)
			},
		}

		result, err := h.CompleteEmployee("tenant-1", "user-1", drafts.rec.DraftID)
		require.Nil(t, err)
		require.Equal(t, "6f0e2a61-1111-4000-8000-0000000000aa", result.EmployeeID)
		require.Equal(t, string(models.EmployeeStatusActive), result.Status)
		require.Len(t, result.ETag, 32)
		require.Equal(t, 1, drafts.marks)
		require.Len(t, employees.created, 1)
		require.Equal(t, 1, employees.created[0].Version)
	})
}
