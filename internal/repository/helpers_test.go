package repository

import (
	"testing"

	"kettolingo_backend/internal/model"
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

func seedWords(t *testing.T, db *gorm.DB, words []model.Word) {
	t.Helper()
	for i := range words {
		require.NoError(t, db.Create(&words[i]).Error)
	}
}

func animalWords() []model.Word {
	return []model.Word{
		{CategoryID: 2, English: "dog", Hungarian: "kutya", German: "Hund", Slovak: "pes", Czech: "pes", Italian: "cane"},
		{CategoryID: 2, English: "cat", Hungarian: "macska", German: "Katze", Slovak: "mačka", Czech: "kočka", Italian: "gatto"},
		{CategoryID: 2, English: "horse", Hungarian: "ló", German: "Pferd", Slovak: "kôň", Czech: "kůň", Italian: "cavallo"},
		{CategoryID: 2, English: "bird", Hungarian: "madár", German: "Vogel", Slovak: "vták", Czech: "pták", Italian: "uccello"},
		{CategoryID: 2, English: "fish", Hungarian: "hal", German: "Fisch", Slovak: "ryba", Czech: "ryba", Italian: "pesce"},
	}
}
