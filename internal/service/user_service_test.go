package service

import (
	"testing"

	"kettolingo_backend/internal/model"
	"kettolingo_backend/internal/repository"
	"kettolingo_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(repository.NewUserRepository(db), db)
}

func uintPtr(v uint) *uint    { return &v }
func strPtr(v string) *string { return &v }

func TestUserService_UpdateProfileFields(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "anna", "anna@example.com", 1)
	svc := newUserService(db)

	updated, err := svc.UpdateProfile(user.ID, ProfileUpdate{
		Username: strPtr("anna2"),
		Email:    strPtr("anna2@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "anna2", updated.Username)
	assert.Equal(t, "anna2@example.com", updated.Email)
	assert.Equal(t, uint(1), updated.NativeLanguageID)
}

func TestUserService_NativeLanguageChangeDeletesHistory(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "anna", "anna@example.com", 1)
	other := createUser(t, db, "bela", "bela@example.com", 1)

	quiz := newQuizService(db)
	details := model.QuizDetails{{WordID: 1, IsCorrect: true}}
	_, err := quiz.Record(user.ID, 3, 2, 80, details)
	require.NoError(t, err)
	_, err = quiz.Record(user.ID, 4, 5, 60, details)
	require.NoError(t, err)
	_, err = quiz.Record(other.ID, 3, 2, 70, details)
	require.NoError(t, err)

	svc := newUserService(db)
	updated, err := svc.UpdateProfile(user.ID, ProfileUpdate{NativeLanguageID: uintPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, uint(2), updated.NativeLanguageID)

	var attempts int64
	require.NoError(t, db.Model(&model.QuizAttempt{}).Where("user_id = ?", user.ID).Count(&attempts).Error)
	assert.Zero(t, attempts)

	var progress int64
	require.NoError(t, db.Model(&model.UserProgress{}).Where("user_id = ?", user.ID).Count(&progress).Error)
	assert.Zero(t, progress)

	// other users keep their history
	require.NoError(t, db.Model(&model.QuizAttempt{}).Where("user_id = ?", other.ID).Count(&attempts).Error)
	assert.EqualValues(t, 1, attempts)
}

func TestUserService_SameNativeLanguageKeepsHistory(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "anna", "anna@example.com", 1)

	quiz := newQuizService(db)
	_, err := quiz.Record(user.ID, 3, 2, 80, model.QuizDetails{{WordID: 1, IsCorrect: true}})
	require.NoError(t, err)

	svc := newUserService(db)
	_, err = svc.UpdateProfile(user.ID, ProfileUpdate{NativeLanguageID: uintPtr(1)})
	require.NoError(t, err)

	var attempts int64
	require.NoError(t, db.Model(&model.QuizAttempt{}).Where("user_id = ?", user.ID).Count(&attempts).Error)
	assert.EqualValues(t, 1, attempts)
}

func TestUserService_UpdateProfileInvalidLanguage(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "anna", "anna@example.com", 1)
	svc := newUserService(db)

	_, err := svc.UpdateProfile(user.ID, ProfileUpdate{NativeLanguageID: uintPtr(42)})
	assert.ErrorIs(t, err, util.ErrInvalidLanguage)

	var reloaded model.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.Equal(t, uint(1), reloaded.NativeLanguageID)
}

func TestUserService_UpdateProfileUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	_, err := svc.UpdateProfile(999, ProfileUpdate{Username: strPtr("ghost")})
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestUserService_UpdateProfileDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	createUser(t, db, "anna", "anna@example.com", 1)
	user := createUser(t, db, "bela", "bela@example.com", 1)
	svc := newUserService(db)

	_, err := svc.UpdateProfile(user.ID, ProfileUpdate{Email: strPtr("anna@example.com")})
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestUserService_UpdateProfileDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	createUser(t, db, "anna", "anna@example.com", 1)
	user := createUser(t, db, "bela", "bela@example.com", 1)
	svc := newUserService(db)

	_, err := svc.UpdateProfile(user.ID, ProfileUpdate{Username: strPtr("anna")})
	assert.ErrorIs(t, err, util.ErrUsernameTaken)
}

func TestUserService_SetAvatar(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "anna", "anna@example.com", 1)
	svc := newUserService(db)

	require.NoError(t, svc.SetAvatar(user.ID, "/uploads/avatars/abc.png"))

	profile, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/avatars/abc.png", profile.Avatar)
}
