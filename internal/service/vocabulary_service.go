package service

import (
	"errors"

	"kettolingo_backend/internal/model"
	"kettolingo_backend/internal/repository"
	"kettolingo_backend/internal/util"

	"gorm.io/gorm"
)

// VocabularyService is the read model over the seeded reference data:
// languages, categories and the words inside a category.
type VocabularyService struct {
	LanguageRepo *repository.LanguageRepository
	CategoryRepo *repository.CategoryRepository
	WordRepo     *repository.WordRepository
}

func NewVocabularyService(languageRepo *repository.LanguageRepository, categoryRepo *repository.CategoryRepository, wordRepo *repository.WordRepository) *VocabularyService {
	return &VocabularyService{
		LanguageRepo: languageRepo,
		CategoryRepo: categoryRepo,
		WordRepo:     wordRepo,
	}
}

func (s *VocabularyService) Languages() ([]model.Language, error) {
	return s.LanguageRepo.All()
}

func (s *VocabularyService) Categories() ([]model.Category, error) {
	return s.CategoryRepo.All()
}

// WordsByCategory returns the category's words. An unknown category is a
// not-found error; a known category without words returns an empty slice.
func (s *VocabularyService) WordsByCategory(categoryID uint) ([]model.Word, error) {
	if _, err := s.CategoryRepo.FindByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCategoryNotFound
		}
		return nil, err
	}
	return s.WordRepo.ByCategory(categoryID)
}
