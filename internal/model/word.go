package model

// Word carries one translation column per supported language. Every word
// belongs to exactly one category and is expected to have a non-empty value
// in every column; the quiz generator rejects words that do not.
// swagger:model Word
type Word struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID uint   `gorm:"index;not null" json:"categoryId"`
	English    string `gorm:"size:100" json:"english"`
	Hungarian  string `gorm:"size:100" json:"hungarian"`
	German     string `gorm:"size:100" json:"german"`
	Slovak     string `gorm:"size:100" json:"slovak"`
	Czech      string `gorm:"size:100" json:"czech"`
	Italian    string `gorm:"size:100" json:"italian"`
}

func (Word) TableName() string {
	return "words"
}

// Translation returns the value of the given translation column.
func (w *Word) Translation(f TranslationField) string {
	switch f {
	case FieldEnglish:
		return w.English
	case FieldHungarian:
		return w.Hungarian
	case FieldGerman:
		return w.German
	case FieldSlovak:
		return w.Slovak
	case FieldCzech:
		return w.Czech
	case FieldItalian:
		return w.Italian
	}
	return ""
}
