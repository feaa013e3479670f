package model

// Question is one generated multiple-choice question. Options holds the
// correct answer and up to three same-category distractors in shuffled
// order; it is shorter when the category has too few alternative values.
// swagger:model Question
type Question struct {
	WordID        uint     `json:"wordId"`
	Question      string   `json:"question"`
	CorrectAnswer string   `json:"correctAnswer"`
	Options       []string `json:"options"`
}
