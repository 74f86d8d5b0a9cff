package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

type DraftHistoryEntry struct {
	Step    int       `json:"step"`    // Номер шага
	By      string    `json:"by"`      // Кто сохранил
	At      time.Time `json:"at"`      // Когда
	Details string    `json:"details"` // Краткое описание
}

// DraftHistory - журнал сохранений черновика, только добавление в конец.
type DraftHistory []DraftHistoryEntry

func (h DraftHistory) Value() (driver.Value, error) {
	if h == nil {
		h = DraftHistory{}
	}
	valueString, err := json.Marshal(h)
	return string(valueString), err
}

func (h *DraftHistory) Scan(value any) error {
	if value == nil {
		*h = DraftHistory{}
		return nil
	}
	if err := json.Unmarshal(value.([]byte), &h); err != nil {
		return err
	}
	return nil
}
