package repository

import (
	"kettolingo_backend/internal/model"

	"gorm.io/gorm"
)

type QuizAttemptRepository struct {
	DB *gorm.DB
}

func NewQuizAttemptRepository(db *gorm.DB) *QuizAttemptRepository {
	return &QuizAttemptRepository{DB: db}
}

// BestForPair returns the highest-scoring attempt for one
// user/language/category pair. Ties resolve to the oldest attempt so the
// result is stable across calls. gorm.ErrRecordNotFound means the pair has
// no attempts yet.
func (r *QuizAttemptRepository) BestForPair(userID, languageID, categoryID uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.DB.
		Where("user_id = ? AND language_id = ? AND category_id = ?", userID, languageID, categoryID).
		Order("score DESC, id ASC").
		First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

// BestForCategory is BestForPair across all languages, used when
// reconciling the per-category summary table.
func (r *QuizAttemptRepository) BestForCategory(userID, categoryID uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.DB.
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Order("score DESC, id ASC").
		First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *QuizAttemptRepository) ByUser(userID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&attempts).Error
	return attempts, err
}

// UserIDsWithAttempts lists every user that has at least one recorded
// attempt.
func (r *QuizAttemptRepository) UserIDsWithAttempts() ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.QuizAttempt{}).Distinct("user_id").Pluck("user_id", &ids).Error
	return ids, err
}
