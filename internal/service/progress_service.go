package service

import (
	"errors"
	"fmt"

	"kettolingo_backend/internal/model"
	"kettolingo_backend/internal/repository"

	"gorm.io/gorm"
)

// ProgressService derives mastery summaries from the attempt history. It
// never mutates attempts; the only write path is the summary
// reconciliation job.
type ProgressService struct {
	LanguageRepo *repository.LanguageRepository
	CategoryRepo *repository.CategoryRepository
	AttemptRepo  *repository.QuizAttemptRepository
	ProgressRepo *repository.ProgressRepository
	DB           *gorm.DB
}

func NewProgressService(languageRepo *repository.LanguageRepository, categoryRepo *repository.CategoryRepository, attemptRepo *repository.QuizAttemptRepository, progressRepo *repository.ProgressRepository, db *gorm.DB) *ProgressService {
	return &ProgressService{
		LanguageRepo: languageRepo,
		CategoryRepo: categoryRepo,
		AttemptRepo:  attemptRepo,
		ProgressRepo: progressRepo,
		DB:           db,
	}
}

// Summary returns the materialized per-category rows for the user, one per
// category with at least one attempt.
func (s *ProgressService) Summary(userID uint) ([]model.UserProgress, error) {
	return s.ProgressRepo.ByUser(userID)
}

// ProgressFor walks the full languages x categories cross product and
// reports, for every pair the user has attempted, the accuracy of the
// best-scoring attempt as a "correct/total" string. Pairs without attempts
// are omitted rather than zero-filled. The scan is O(languages x
// categories x attempts), fine at reference cardinalities (6 x 10).
func (s *ProgressService) ProgressFor(userID uint) (map[string]map[string]string, error) {
	languages, err := s.LanguageRepo.All()
	if err != nil {
		return nil, err
	}
	categories, err := s.CategoryRepo.All()
	if err != nil {
		return nil, err
	}

	result := make(map[string]map[string]string)
	for _, language := range languages {
		for _, category := range categories {
			best, err := s.AttemptRepo.BestForPair(userID, language.ID, category.ID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}

			if result[language.Name] == nil {
				result[language.Name] = make(map[string]string)
			}
			result[language.Name][category.Name] = fmt.Sprintf("%d/%d", best.Details.CorrectCount(), len(best.Details))
		}
	}

	return result, nil
}

// Reconcile recomputes the user_progress summary table from the attempt
// history. The table is derived data; this repairs any drift (crashed
// writes, manual deletions) and removes rows whose attempts are gone.
// Returns the number of rows it had to correct.
func (s *ProgressService) Reconcile() (int, error) {
	userIDs, err := s.AttemptRepo.UserIDsWithAttempts()
	if err != nil {
		return 0, err
	}
	categories, err := s.CategoryRepo.All()
	if err != nil {
		return 0, err
	}

	corrected := 0
	for _, userID := range userIDs {
		for _, category := range categories {
			best, err := s.AttemptRepo.BestForCategory(userID, category.ID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			if err != nil {
				return corrected, err
			}

			changed, err := s.reconcilePair(userID, category.ID, best)
			if err != nil {
				return corrected, err
			}
			if changed {
				corrected++
			}
		}
	}

	return corrected, nil
}

func (s *ProgressService) reconcilePair(userID, categoryID uint, best *model.QuizAttempt) (bool, error) {
	changed := false
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var progress model.UserProgress
		err := tx.Where("user_id = ? AND category_id = ?", userID, categoryID).First(&progress).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			changed = true
			return tx.Create(&model.UserProgress{
				UserID:        userID,
				CategoryID:    categoryID,
				LearnedWords:  best.Details.CorrectCount(),
				BestQuizScore: best.Score,
			}).Error
		}
		if err != nil {
			return err
		}

		correct := best.Details.CorrectCount()
		if progress.BestQuizScore != best.Score || progress.LearnedWords != correct {
			changed = true
			progress.BestQuizScore = best.Score
			progress.LearnedWords = correct
			return tx.Save(&progress).Error
		}
		return nil
	})
	return changed, err
}
