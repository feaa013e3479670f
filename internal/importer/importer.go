package importer

import (
	"errors"
	"fmt"
	"strings"

	"kettolingo_backend/internal/model"
	"kettolingo_backend/internal/repository"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// expectedHeader is the required column order of every sheet, matching the
// translation columns of the words table.
var expectedHeader = []string{"English", "Hungarian", "German", "Slovak", "Czech", "Italian"}

// Result summarizes one import run.
type Result struct {
	CategoriesCreated int
	WordsCreated      int
	Skipped           int
	Errors            []string
}

// Importer loads vocabulary from an xlsx workbook: one sheet per category
// (the sheet name is the category name), a header row, then one word per
// row with one translation per column.
type Importer struct {
	DB           *gorm.DB
	CategoryRepo *repository.CategoryRepository
}

func New(db *gorm.DB) *Importer {
	return &Importer{
		DB:           db,
		CategoryRepo: repository.NewCategoryRepository(db),
	}
}

func (im *Importer) ImportWorkbook(path string) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	result := &Result{}
	for _, sheet := range f.GetSheetList() {
		if err := im.importSheet(f, sheet, result); err != nil {
			return result, err
		}
	}
	return result, nil
}

func (im *Importer) importSheet(f *excelize.File, sheet string, result *Result) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil
	}

	if err := checkHeader(rows[0]); err != nil {
		return fmt.Errorf("sheet %q: %w", sheet, err)
	}

	category, err := im.ensureCategory(sheet, result)
	if err != nil {
		return err
	}

	// Each sheet commits as one unit so a malformed row cannot leave a
	// half-imported category behind.
	return im.DB.Transaction(func(tx *gorm.DB) error {
		for i, row := range rows[1:] {
			if len(row) < len(expectedHeader) || blankRow(row) {
				result.Skipped++
				result.Errors = append(result.Errors, fmt.Sprintf("%s: row %d incomplete", sheet, i+2))
				continue
			}

			word := &model.Word{
				CategoryID: category.ID,
				English:    strings.TrimSpace(row[0]),
				Hungarian:  strings.TrimSpace(row[1]),
				German:     strings.TrimSpace(row[2]),
				Slovak:     strings.TrimSpace(row[3]),
				Czech:      strings.TrimSpace(row[4]),
				Italian:    strings.TrimSpace(row[5]),
			}
			if err := tx.Create(word).Error; err != nil {
				return fmt.Errorf("%s: row %d: %w", sheet, i+2, err)
			}
			result.WordsCreated++
		}
		return nil
	})
}

func (im *Importer) ensureCategory(name string, result *Result) (*model.Category, error) {
	category, err := im.CategoryRepo.FindByName(name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category = &model.Category{Name: name}
	if err := im.DB.Create(category).Error; err != nil {
		return nil, err
	}
	result.CategoriesCreated++
	return category, nil
}

func checkHeader(header []string) error {
	if len(header) < len(expectedHeader) {
		return fmt.Errorf("header has %d columns, want %d", len(header), len(expectedHeader))
	}
	for i, want := range expectedHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return fmt.Errorf("header column %d is %q, want %q", i+1, header[i], want)
		}
	}
	return nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
