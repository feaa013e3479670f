package model

// UserProgress is a materialized per-category summary, derived from the
// attempt history and recomputable from it at any time.
// swagger:model UserProgress
type UserProgress struct {
	ID            uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint `gorm:"uniqueIndex:idx_user_category;not null" json:"userId"`
	CategoryID    uint `gorm:"uniqueIndex:idx_user_category;not null" json:"categoryId"`
	LearnedWords  int  `gorm:"default:0" json:"learnedWords"`
	BestQuizScore int  `gorm:"default:0" json:"bestQuizScore"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
