package repository

import (
	"kettolingo_backend/internal/model"

	"gorm.io/gorm"
)

type WordRepository struct {
	DB *gorm.DB
}

func NewWordRepository(db *gorm.DB) *WordRepository {
	return &WordRepository{DB: db}
}

// ByCategory returns every word of the category. An empty result means the
// category has no content yet; it is not an error.
func (r *WordRepository) ByCategory(categoryID uint) ([]model.Word, error) {
	var words []model.Word
	err := r.DB.Where("category_id = ?", categoryID).Find(&words).Error
	return words, err
}

func (r *WordRepository) Create(word *model.Word) error {
	return r.DB.Create(word).Error
}

// SampleTranslations draws up to count translation values from the
// category, uniformly at random over the rows whose value differs from
// exclude. Fewer eligible rows than count yields a shorter list. Values are
// distinct by row, not by text; a vocabulary table with duplicate
// translations can produce repeated values.
func (r *WordRepository) SampleTranslations(categoryID uint, field model.TranslationField, exclude string, count int) ([]string, error) {
	column := field.Column()

	// MySQL and the sqlite test driver spell their random function
	// differently.
	random := "RAND()"
	if r.DB.Dialector.Name() == "sqlite" {
		random = "RANDOM()"
	}

	var values []string
	err := r.DB.Model(&model.Word{}).
		Where("category_id = ? AND "+column+" <> ?", categoryID, exclude).
		Order(random).
		Limit(count).
		Pluck(column, &values).Error
	return values, err
}
