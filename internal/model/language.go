package model

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidLanguage lives here (and is re-exported as
// ErrInvalidLanguage) so util can import model for jwt.go without an
// import cycle.
var ErrInvalidLanguage = errors.New("invalid language")

// Language is a static reference row, seeded once and never mutated.
// swagger:model Language
type Language struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;not null" json:"name"`
}

func (Language) TableName() string {
	return "languages"
}

// TranslationField identifies one translation column of the words table.
type TranslationField int

const (
	FieldEnglish TranslationField = iota + 1
	FieldHungarian
	FieldGerman
	FieldSlovak
	FieldCzech
	FieldItalian
)

// languageFields is the canonical language-id -> column mapping, versioned
// alongside the seeded languages table. It must stay the only copy of this
// table in the codebase; adding a Language row requires a Word column, an
// enum value and an entry here.
var languageFields = map[uint]TranslationField{
	1: FieldEnglish,
	2: FieldHungarian,
	3: FieldGerman,
	4: FieldSlovak,
	5: FieldCzech,
	6: FieldItalian,
}

// ResolveLanguage coerces a language identifier to its numeric id and
// translation column. Identifiers arrive as path params (string) or JSON
// numbers, so any integer-coercible value is accepted; anything else is an
// invalid language, never a panic.
func ResolveLanguage(id interface{}) (uint, TranslationField, error) {
	var numeric uint64
	switch v := id.(type) {
	case string:
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidLanguage, v)
		}
		numeric = n
	case float64:
		if v < 0 || v != float64(uint64(v)) {
			return 0, 0, fmt.Errorf("%w: %v", ErrInvalidLanguage, v)
		}
		numeric = uint64(v)
	case int:
		if v < 0 {
			return 0, 0, fmt.Errorf("%w: %d", ErrInvalidLanguage, v)
		}
		numeric = uint64(v)
	case int64:
		if v < 0 {
			return 0, 0, fmt.Errorf("%w: %d", ErrInvalidLanguage, v)
		}
		numeric = uint64(v)
	case uint:
		numeric = uint64(v)
	case uint64:
		numeric = v
	default:
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidLanguage, id)
	}

	field, ok := languageFields[uint(numeric)]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidLanguage, numeric)
	}
	return uint(numeric), field, nil
}

// ResolveField is ResolveLanguage for callers that only need the column.
func ResolveField(id interface{}) (TranslationField, error) {
	_, field, err := ResolveLanguage(id)
	return field, err
}

// Column returns the SQL column name for the field. The switch is
// exhaustive over the enum; query builders must take column names from
// here and never from request input.
func (f TranslationField) Column() string {
	switch f {
	case FieldEnglish:
		return "english"
	case FieldHungarian:
		return "hungarian"
	case FieldGerman:
		return "german"
	case FieldSlovak:
		return "slovak"
	case FieldCzech:
		return "czech"
	case FieldItalian:
		return "italian"
	}
	return ""
}
