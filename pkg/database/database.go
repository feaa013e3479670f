package database

import (
	"fmt"
	"log"

	"kettolingo_backend/internal/config"
	"kettolingo_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

// Migrate runs AutoMigrate for every model and seeds the reference tables
// when they are empty. Languages and categories are immutable once seeded;
// their ids are load-bearing because the language-id -> translation-column
// table in internal/model is versioned against the seed order.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Language{},
		&model.Category{},
		&model.Word{},
		&model.QuizAttempt{},
		&model.UserProgress{},
	)
	if err != nil {
		return err
	}

	return seedReferenceData(db)
}

func seedReferenceData(db *gorm.DB) error {
	var langCount int64
	db.Model(&model.Language{}).Count(&langCount)
	if langCount == 0 {
		languages := []string{"English", "Hungarian", "German", "Slovak", "Czech", "Italian"}
		for i, name := range languages {
			lang := &model.Language{ID: uint(i + 1), Name: name}
			if err := db.Create(lang).Error; err != nil {
				return err
			}
		}
	}

	var catCount int64
	db.Model(&model.Category{}).Count(&catCount)
	if catCount == 0 {
		categories := []string{
			"Clothing", "Animals", "Family", "Colors", "Numbers",
			"Household", "Travel", "Restaurant", "Food", "Sport",
		}
		for i, name := range categories {
			cat := &model.Category{ID: uint(i + 1), Name: name}
			if err := db.Create(cat).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
