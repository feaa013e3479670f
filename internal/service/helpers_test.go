package service

import (
	"testing"
	"time"

	"kettolingo_backend/internal/config"
	"kettolingo_backend/internal/model"
	"kettolingo_backend/internal/repository"
	"kettolingo_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a second connection would see its own empty in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "unit-test-secret-key-0123456789abcdef",
			ExpireTime: time.Hour,
		},
	}
}

func createUser(t *testing.T, db *gorm.DB, username, email string, nativeLanguageID uint) *model.User {
	t.Helper()
	user := &model.User{
		Username:         username,
		Email:            email,
		Password:         "hashed",
		NativeLanguageID: nativeLanguageID,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedAnimalWords(t *testing.T, db *gorm.DB) []model.Word {
	t.Helper()
	words := []model.Word{
		{CategoryID: 2, English: "dog", Hungarian: "kutya", German: "Hund", Slovak: "pes", Czech: "pes", Italian: "cane"},
		{CategoryID: 2, English: "cat", Hungarian: "macska", German: "Katze", Slovak: "mačka", Czech: "kočka", Italian: "gatto"},
		{CategoryID: 2, English: "horse", Hungarian: "ló", German: "Pferd", Slovak: "kôň", Czech: "kůň", Italian: "cavallo"},
		{CategoryID: 2, English: "bird", Hungarian: "madár", German: "Vogel", Slovak: "vták", Czech: "pták", Italian: "uccello"},
		{CategoryID: 2, English: "fish", Hungarian: "hal", German: "Fisch", Slovak: "ryba", Czech: "ryba", Italian: "pesce"},
	}
	for i := range words {
		require.NoError(t, db.Create(&words[i]).Error)
	}
	return words
}

func newQuizService(db *gorm.DB) *QuizService {
	return NewQuizService(repository.NewWordRepository(db), repository.NewQuizAttemptRepository(db), db)
}

func newProgressService(db *gorm.DB) *ProgressService {
	return NewProgressService(
		repository.NewLanguageRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewQuizAttemptRepository(db),
		repository.NewProgressRepository(db),
		db,
	)
}
