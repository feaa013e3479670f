package model_test

import (
	"testing"

	"kettolingo_backend/internal/model"
	"kettolingo_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLanguage_AcceptedForms(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		id    uint
		field model.TranslationField
	}{
		{"string path param", "3", 3, model.FieldGerman},
		{"json number", float64(2), 2, model.FieldHungarian},
		{"int", 6, 6, model.FieldItalian},
		{"uint", uint(1), 1, model.FieldEnglish},
		{"int64", int64(4), 4, model.FieldSlovak},
		{"uint64", uint64(5), 5, model.FieldCzech},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, field, err := model.ResolveLanguage(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.id, id)
			assert.Equal(t, tc.field, field)
		})
	}
}

func TestResolveLanguage_Rejected(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
	}{
		{"zero", 0},
		{"out of range", 7},
		{"out of range string", "42"},
		{"not a number", "german"},
		{"negative", -1},
		{"fractional json number", 2.5},
		{"negative json number", float64(-3)},
		{"unsupported type", true},
		{"nil", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := model.ResolveLanguage(tc.input)
			assert.ErrorIs(t, err, util.ErrInvalidLanguage)
		})
	}
}

func TestTranslationField_Column(t *testing.T) {
	want := map[model.TranslationField]string{
		model.FieldEnglish:   "english",
		model.FieldHungarian: "hungarian",
		model.FieldGerman:    "german",
		model.FieldSlovak:    "slovak",
		model.FieldCzech:     "czech",
		model.FieldItalian:   "italian",
	}
	for field, column := range want {
		assert.Equal(t, column, field.Column())
	}
	assert.Empty(t, model.TranslationField(0).Column())
}

func TestWord_Translation(t *testing.T) {
	word := model.Word{
		English:   "dog",
		Hungarian: "kutya",
		German:    "Hund",
		Slovak:    "pes",
		Czech:     "pes",
		Italian:   "cane",
	}

	assert.Equal(t, "dog", word.Translation(model.FieldEnglish))
	assert.Equal(t, "kutya", word.Translation(model.FieldHungarian))
	assert.Equal(t, "Hund", word.Translation(model.FieldGerman))
	assert.Equal(t, "cane", word.Translation(model.FieldItalian))
	assert.Empty(t, word.Translation(model.TranslationField(99)))
}
