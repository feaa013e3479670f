package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// QuizDetail records the outcome of a single question in an attempt.
type QuizDetail struct {
	WordID    uint `json:"word_id"`
	IsCorrect bool `json:"is_correct"`
}

// QuizDetails is the ordered per-word outcome list, embedded in the attempt
// row as a JSON column so attempt creation stays a single-row write.
type QuizDetails []QuizDetail

// Value serializes the details for storage. Zero word ids are rejected
// here so a malformed payload can never reach the table.
func (d QuizDetails) Value() (driver.Value, error) {
	for i, detail := range d {
		if detail.WordID == 0 {
			return nil, fmt.Errorf("quiz details: entry %d has no word id", i)
		}
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (d *QuizDetails) Scan(value interface{}) error {
	if value == nil {
		*d = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("quiz details: cannot scan %T", value)
	}
}

// CorrectCount sums the is_correct flags.
func (d QuizDetails) CorrectCount() int {
	count := 0
	for _, detail := range d {
		if detail.IsCorrect {
			count++
		}
	}
	return count
}

// QuizAttempt is one completed quiz submission. Attempts are immutable
// after creation; they are only ever bulk-deleted when the owner changes
// native language or purges the account.
// swagger:model QuizAttempt
type QuizAttempt struct {
	ID         uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint        `gorm:"index;not null" json:"userId"`
	LanguageID uint        `gorm:"not null" json:"languageId"`
	CategoryID uint        `gorm:"not null" json:"categoryId"`
	Score      int         `gorm:"not null" json:"score"`
	Date       time.Time   `gorm:"not null" json:"date"`
	Details    QuizDetails `gorm:"type:json;not null" json:"details"`
}

func (QuizAttempt) TableName() string {
	return "quiz_results"
}
