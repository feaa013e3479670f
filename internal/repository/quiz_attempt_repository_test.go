package repository

import (
	"errors"
	"testing"
	"time"

	"kettolingo_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func recordAttempt(t *testing.T, db *gorm.DB, userID, languageID, categoryID uint, score int, details model.QuizDetails) *model.QuizAttempt {
	t.Helper()
	attempt := &model.QuizAttempt{
		UserID:     userID,
		LanguageID: languageID,
		CategoryID: categoryID,
		Score:      score,
		Date:       time.Now(),
		Details:    details,
	}
	require.NoError(t, db.Create(attempt).Error)
	return attempt
}

func TestQuizAttemptRepository_BestForPair(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuizAttemptRepository(db)

	details := model.QuizDetails{{WordID: 1, IsCorrect: true}}
	recordAttempt(t, db, 1, 3, 2, 40, details)
	top := recordAttempt(t, db, 1, 3, 2, 90, details)
	recordAttempt(t, db, 1, 3, 2, 70, details)
	// other pairs must not leak in
	recordAttempt(t, db, 1, 4, 2, 100, details)
	recordAttempt(t, db, 2, 3, 2, 100, details)

	best, err := repo.BestForPair(1, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, top.ID, best.ID)
	assert.Equal(t, 90, best.Score)
}

func TestQuizAttemptRepository_BestForPairTieBreaksToOldest(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuizAttemptRepository(db)

	details := model.QuizDetails{{WordID: 1, IsCorrect: true}}
	first := recordAttempt(t, db, 1, 3, 2, 80, details)
	recordAttempt(t, db, 1, 3, 2, 80, details)

	best, err := repo.BestForPair(1, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, first.ID, best.ID)
}

func TestQuizAttemptRepository_BestForPairNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuizAttemptRepository(db)

	_, err := repo.BestForPair(1, 3, 2)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestQuizAttemptRepository_BestForCategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuizAttemptRepository(db)

	details := model.QuizDetails{{WordID: 1, IsCorrect: false}}
	recordAttempt(t, db, 1, 3, 2, 60, details)
	top := recordAttempt(t, db, 1, 5, 2, 95, details)

	best, err := repo.BestForCategory(1, 2)
	require.NoError(t, err)
	assert.Equal(t, top.ID, best.ID)
}

func TestQuizAttemptRepository_UserIDsWithAttempts(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuizAttemptRepository(db)

	details := model.QuizDetails{{WordID: 1, IsCorrect: true}}
	recordAttempt(t, db, 1, 3, 2, 50, details)
	recordAttempt(t, db, 1, 3, 4, 50, details)
	recordAttempt(t, db, 5, 2, 1, 50, details)

	ids, err := repo.UserIDsWithAttempts()
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{1, 5}, ids)
}

func TestQuizAttemptRepository_DetailsSurviveRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuizAttemptRepository(db)

	details := model.QuizDetails{
		{WordID: 10, IsCorrect: true},
		{WordID: 11, IsCorrect: false},
	}
	recordAttempt(t, db, 1, 3, 2, 50, details)

	best, err := repo.BestForPair(1, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, details, best.Details)
	assert.Equal(t, 1, best.Details.CorrectCount())
}
