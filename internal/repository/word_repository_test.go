package repository

import (
	"testing"

	"kettolingo_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordRepository_ByCategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewWordRepository(db)
	seedWords(t, db, animalWords())

	words, err := repo.ByCategory(2)
	require.NoError(t, err)
	assert.Len(t, words, 5)
	for _, word := range words {
		assert.Equal(t, uint(2), word.CategoryID)
	}
}

func TestWordRepository_ByCategoryEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewWordRepository(db)
	seedWords(t, db, animalWords())

	words, err := repo.ByCategory(7)
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestWordRepository_SampleTranslations(t *testing.T) {
	db := newTestDB(t)
	repo := NewWordRepository(db)
	seedWords(t, db, animalWords())

	for i := 0; i < 20; i++ {
		values, err := repo.SampleTranslations(2, model.FieldEnglish, "dog", 3)
		require.NoError(t, err)
		assert.Len(t, values, 3)
		assert.NotContains(t, values, "dog")
	}
}

func TestWordRepository_SampleTranslationsShortCategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewWordRepository(db)
	seedWords(t, db, animalWords()[:2])

	values, err := repo.SampleTranslations(2, model.FieldGerman, "Hund", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Katze"}, values)
}

func TestWordRepository_SampleTranslationsEmptyCategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewWordRepository(db)

	values, err := repo.SampleTranslations(9, model.FieldEnglish, "anything", 3)
	require.NoError(t, err)
	assert.Empty(t, values)
}
