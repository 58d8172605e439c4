package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// CriteriaScores maps criterion name to awarded points, stored as a JSONB
// column.
type CriteriaScores map[string]float64

// Sum returns the arithmetic total of all awarded points.
func (s CriteriaScores) Sum() float64 {
	var total float64
	for _, points := range s {
		total += points
	}
	return total
}

// Value implements driver.Valuer for JSONB persistence
func (s CriteriaScores) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner for JSONB persistence
func (s *CriteriaScores) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into CriteriaScores", value)
	}
}

// Score represents one judge's judgment of one contestant in one category.
// The composite unique index enforces at most one score per
// (judge, contestant, category) triple; resubmissions update in place.
type Score struct {
	ID             int            `gorm:"primaryKey" json:"id"`
	JudgeID        int            `gorm:"not null;uniqueIndex:idx_scores_triple;column:judge_id" json:"judgeId"`
	ContestantID   int            `gorm:"not null;uniqueIndex:idx_scores_triple;column:contestant_id" json:"contestantId"`
	CategoryID     int            `gorm:"not null;uniqueIndex:idx_scores_triple;column:category_id" json:"categoryId"`
	CriteriaScores CriteriaScores `gorm:"type:jsonb;not null;column:criteria_scores" json:"criteriaScores"`
	TotalScore     float64        `gorm:"not null;column:total_score" json:"totalScore"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	Judge          *Judge         `gorm:"foreignKey:JudgeID" json:"-"`
	Contestant     *Contestant    `gorm:"foreignKey:ContestantID" json:"-"`
	Category       *Category      `gorm:"foreignKey:CategoryID" json:"-"`
}
