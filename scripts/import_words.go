// Bulk vocabulary import.
//
// Loads an xlsx workbook into the words table: one sheet per category,
// header row English|Hungarian|German|Slovak|Czech|Italian, one word per
// row. Categories are created when missing.
//
// Usage: go run scripts/import_words.go -file words.xlsx

package main

import (
	"flag"
	"log"

	"kettolingo_backend/internal/config"
	"kettolingo_backend/internal/importer"
	"kettolingo_backend/pkg/database"
	"kettolingo_backend/pkg/logger"
)

func main() {
	file := flag.String("file", "", "path to the xlsx workbook")
	flag.Parse()

	if *file == "" {
		log.Fatal("usage: go run scripts/import_words.go -file words.xlsx")
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	result, err := importer.New(db).ImportWorkbook(*file)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Printf("Import completed: %d words, %d new categories, %d rows skipped",
		result.WordsCreated, result.CategoriesCreated, result.Skipped)
	for _, msg := range result.Errors {
		log.Printf("  skipped: %s", msg)
	}
}
