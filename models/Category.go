package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Criterion is one judged dimension within a category, with its maximum
// awardable points.
type Criterion struct {
	Name     string  `json:"name"`
	MaxScore float64 `json:"maxScore"`
}

// CriterionList is stored as a JSONB column; order matters, it is the order
// the criteria appear on the scoring sheet.
type CriterionList []Criterion

// Value implements driver.Valuer for JSONB persistence
func (c CriterionList) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner for JSONB persistence
func (c *CriterionList) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("cannot scan %T into CriterionList", value)
	}
}

// Category represents a themed round of the competition, restricted to a
// gender ("Male", "Female" or "Both") and displayed in a fixed order.
type Category struct {
	ID        int           `gorm:"primaryKey" json:"id"`
	Name      string        `gorm:"type:varchar(100);not null" json:"name"`
	Gender    string        `gorm:"type:varchar(10);not null" json:"gender"`
	Order     int           `gorm:"column:display_order;not null" json:"order"`
	Criteria  CriterionList `gorm:"type:jsonb;not null" json:"criteria"`
	CreatedAt time.Time     `json:"created_at"`
}
