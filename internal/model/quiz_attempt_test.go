package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizDetails_ValueAndScan(t *testing.T) {
	details := QuizDetails{
		{WordID: 1, IsCorrect: true},
		{WordID: 2, IsCorrect: false},
		{WordID: 3, IsCorrect: true},
	}

	value, err := details.Value()
	require.NoError(t, err)

	serialized, ok := value.(string)
	require.True(t, ok)
	assert.JSONEq(t, `[
		{"word_id":1,"is_correct":true},
		{"word_id":2,"is_correct":false},
		{"word_id":3,"is_correct":true}
	]`, serialized)

	var restored QuizDetails
	require.NoError(t, restored.Scan(serialized))
	assert.Equal(t, details, restored)

	var fromBytes QuizDetails
	require.NoError(t, fromBytes.Scan([]byte(serialized)))
	assert.Equal(t, details, fromBytes)
}

func TestQuizDetails_ValueRejectsMissingWordID(t *testing.T) {
	details := QuizDetails{
		{WordID: 1, IsCorrect: true},
		{WordID: 0, IsCorrect: false},
	}

	_, err := details.Value()
	assert.Error(t, err)
}

func TestQuizDetails_ScanNilAndBadInput(t *testing.T) {
	var details QuizDetails
	require.NoError(t, details.Scan(nil))
	assert.Nil(t, details)

	assert.Error(t, details.Scan(42))
	assert.Error(t, details.Scan("not json"))
}

func TestQuizDetails_CorrectCount(t *testing.T) {
	assert.Zero(t, QuizDetails{}.CorrectCount())
	assert.Equal(t, 2, QuizDetails{
		{WordID: 1, IsCorrect: true},
		{WordID: 2, IsCorrect: false},
		{WordID: 3, IsCorrect: true},
	}.CorrectCount())
}

func TestQuizDetail_JSONFieldNames(t *testing.T) {
	b, err := json.Marshal(QuizDetail{WordID: 7, IsCorrect: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"word_id":7,"is_correct":true}`, string(b))
}
