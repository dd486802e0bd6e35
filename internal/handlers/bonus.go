package handlers

import (
	"net/http"

	"askboard/internal/bonus"
)

// NewBonusQuestionsHandler serves GET /bonus-questions with the built-in
// sample set.
func NewBonusQuestionsHandler(views *Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views.Render(w, r, "bonus-questions", map[string]any{"Questions": bonus.SampleQuestions})
	}
}
