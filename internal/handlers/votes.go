package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"askboard/internal/flash"
	"askboard/internal/services"
)

// VoteApplier shifts a vote counter by one in either direction.
type VoteApplier interface {
	Apply(ctx context.Context, kind services.VoteKind, id int64, direction services.VoteDirection) error
}

// NewQuestionVoteHandler serves POST /question/{id}/vote-up and
// /question/{id}/vote-down. Voting carries no login check: any visitor,
// anonymous included, may vote, and repeated votes keep counting.
func NewQuestionVoteHandler(votes VoteApplier, direction services.VoteDirection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			redirectFlash(w, r, "/", flash.SeverityWarning, "Question not found.")
			return
		}
		if err := votes.Apply(r.Context(), services.KindQuestion, id, direction); err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/list", http.StatusFound)
	}
}

// NewAnswerVoteHandler serves POST /answer/{id}/vote-up and
// /answer/{id}/vote-down, redirecting back to the parent question.
func NewAnswerVoteHandler(votes VoteApplier, answers AnswerGetter, direction services.VoteDirection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			redirectFlash(w, r, "/", flash.SeverityWarning, "Answer not found.")
			return
		}
		answer, err := answers.Get(r.Context(), id)
		if errors.Is(err, services.ErrAnswerNotFound) {
			redirectFlash(w, r, "/", flash.SeverityWarning, "Answer not found.")
			return
		}
		if err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		if err := votes.Apply(r.Context(), services.KindAnswer, id, direction); err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, fmt.Sprintf("/question/%d", answer.QuestionID), http.StatusFound)
	}
}
