package service

import (
	"errors"
	"strings"

	"kettolingo_backend/internal/model"
	"kettolingo_backend/internal/repository"
	"kettolingo_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
	DB       *gorm.DB
}

func NewUserService(userRepo *repository.UserRepository, db *gorm.DB) *UserService {
	return &UserService{
		UserRepo: userRepo,
		DB:       db,
	}
}

// ProfileUpdate carries the mutable profile fields; nil means unchanged.
type ProfileUpdate struct {
	Username         *string
	Email            *string
	NativeLanguageID *uint
}

// UpdateProfile applies the requested changes in one transaction. Changing
// the native language invalidates every recorded attempt, because the
// "correct answer" of each attempt was defined relative to the old native
// language: the profile write and the bulk delete of the user's attempts
// and progress rows commit together or not at all. The user row is locked
// FOR UPDATE for the duration, which serializes the change against
// concurrent attempt recording for the same user.
func (s *UserService) UpdateProfile(userID uint, update ProfileUpdate) (*model.User, error) {
	var updated model.User

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := lockForUpdate(tx).First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrUserNotFound
			}
			return err
		}

		if update.Username != nil {
			user.Username = *update.Username
		}
		if update.Email != nil {
			user.Email = *update.Email
		}

		languageChanged := false
		if update.NativeLanguageID != nil && *update.NativeLanguageID != user.NativeLanguageID {
			if _, err := model.ResolveField(*update.NativeLanguageID); err != nil {
				return err
			}
			user.NativeLanguageID = *update.NativeLanguageID
			languageChanged = true
		}

		if err := tx.Save(&user).Error; err != nil {
			return translateUniqueViolation(err)
		}

		if languageChanged {
			if err := tx.Where("user_id = ?", userID).Delete(&model.QuizAttempt{}).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", userID).Delete(&model.UserProgress{}).Error; err != nil {
				return err
			}
		}

		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *UserService) GetProfile(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) SetAvatar(userID uint, url string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}
	user.Avatar = url
	return s.UserRepo.Update(user)
}

// translateUniqueViolation maps driver duplicate-key errors onto the
// conflict sentinels. Both the MySQL driver and the sqlite test driver
// only expose the violation through the error text.
func translateUniqueViolation(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
		if strings.Contains(msg, "email") {
			return util.ErrEmailRegistered
		}
		return util.ErrUsernameTaken
	}
	return err
}
