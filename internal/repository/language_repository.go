package repository

import (
	"kettolingo_backend/internal/model"

	"gorm.io/gorm"
)

type LanguageRepository struct {
	DB *gorm.DB
}

func NewLanguageRepository(db *gorm.DB) *LanguageRepository {
	return &LanguageRepository{DB: db}
}

func (r *LanguageRepository) All() ([]model.Language, error) {
	var languages []model.Language
	err := r.DB.Order("id").Find(&languages).Error
	return languages, err
}

func (r *LanguageRepository) FindByID(id uint) (*model.Language, error) {
	var language model.Language
	err := r.DB.First(&language, id).Error
	return &language, err
}
