package repository

import (
	"kettolingo_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) ByUser(userID uint) ([]model.UserProgress, error) {
	var rows []model.UserProgress
	err := r.DB.Where("user_id = ?", userID).Order("category_id").Find(&rows).Error
	return rows, err
}

func (r *ProgressRepository) ByUserCategory(userID, categoryID uint) (*model.UserProgress, error) {
	var row model.UserProgress
	err := r.DB.Where("user_id = ? AND category_id = ?", userID, categoryID).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
