package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"kettolingo_backend/internal/model"
	"kettolingo_backend/internal/repository"
	"kettolingo_backend/internal/util"

	"gorm.io/gorm"
)

// DistractorCount is the number of decoy options drawn per question.
const DistractorCount = 3

type QuizService struct {
	WordRepo    *repository.WordRepository
	AttemptRepo *repository.QuizAttemptRepository
	DB          *gorm.DB

	// rng overrides the shuffle source; tests seed it for reproducibility.
	rng *rand.Rand
}

func NewQuizService(wordRepo *repository.WordRepository, attemptRepo *repository.QuizAttemptRepository, db *gorm.DB) *QuizService {
	return &QuizService{
		WordRepo:    wordRepo,
		AttemptRepo: attemptRepo,
		DB:          db,
	}
}

// Generate builds one multiple-choice question per word in the category:
// the prompt is the word in the foreign (learned) language, the correct
// answer its native-language translation, and the decoys are sampled from
// other words of the same category. Both language ids are resolved up
// front; an invalid id fails the whole call rather than emitting partial
// questions. An empty category yields an empty slice, not an error.
func (s *QuizService) Generate(nativeID, foreignID interface{}, categoryID uint) ([]model.Question, error) {
	nativeField, err := model.ResolveField(nativeID)
	if err != nil {
		return nil, err
	}
	foreignField, err := model.ResolveField(foreignID)
	if err != nil {
		return nil, err
	}

	words, err := s.WordRepo.ByCategory(categoryID)
	if err != nil {
		return nil, err
	}

	rng := s.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	questions := make([]model.Question, 0, len(words))
	for _, word := range words {
		answer := word.Translation(nativeField)
		prompt := word.Translation(foreignField)
		if answer == "" || prompt == "" {
			return nil, fmt.Errorf("%w: word %d", util.ErrWordMissingTranslation, word.ID)
		}

		distractors, err := s.WordRepo.SampleTranslations(categoryID, nativeField, answer, DistractorCount)
		if err != nil {
			return nil, err
		}

		options := make([]string, 0, len(distractors)+1)
		options = append(options, distractors...)
		options = append(options, answer)
		rng.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})

		questions = append(questions, model.Question{
			WordID:        word.ID,
			Question:      prompt,
			CorrectAnswer: answer,
			Options:       options,
		})
	}

	return questions, nil
}

// Record persists one completed attempt. The attempt row, including its
// embedded details, and the per-category summary upsert are committed in a
// single transaction; the user row is locked FOR UPDATE so a concurrent
// native-language change cannot interleave with the write. The caller's
// score is trusted as graded.
func (s *QuizService) Record(userID uint, foreignID interface{}, categoryID uint, score int, details model.QuizDetails) (*model.QuizAttempt, error) {
	foreignLanguageID, _, err := model.ResolveLanguage(foreignID)
	if err != nil {
		return nil, err
	}

	attempt := &model.QuizAttempt{
		UserID:     userID,
		LanguageID: foreignLanguageID,
		CategoryID: categoryID,
		Score:      score,
		Date:       time.Now(),
		Details:    details,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := lockForUpdate(tx).First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrUserNotFound
			}
			return err
		}

		if err := tx.Create(attempt).Error; err != nil {
			return err
		}

		return upsertProgress(tx, userID, categoryID, score, details.CorrectCount())
	})
	if err != nil {
		return nil, err
	}

	return attempt, nil
}

// upsertProgress keeps the user_progress summary in step with the best
// attempt for the category. Callers must hold the user's row lock.
func upsertProgress(tx *gorm.DB, userID, categoryID uint, score, correct int) error {
	var progress model.UserProgress
	err := tx.Where("user_id = ? AND category_id = ?", userID, categoryID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(&model.UserProgress{
			UserID:        userID,
			CategoryID:    categoryID,
			LearnedWords:  correct,
			BestQuizScore: score,
		}).Error
	}
	if err != nil {
		return err
	}

	if score > progress.BestQuizScore {
		progress.BestQuizScore = score
		progress.LearnedWords = correct
		return tx.Save(&progress).Error
	}
	return nil
}
