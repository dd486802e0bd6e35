package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"askboard/internal/flash"
	"askboard/internal/services"
)

// QuestionCommenter posts comments on questions.
type QuestionCommenter interface {
	AddToQuestion(ctx context.Context, questionID, userID int64, message string) error
}

// AnswerCommenter posts comments on answers.
type AnswerCommenter interface {
	AddToAnswer(ctx context.Context, answerID, userID int64, message string) error
}

// NewQuestionCommentHandler serves GET and POST
// /question/{id}/new-comment. Requires login.
func NewQuestionCommentHandler(svc QuestionCommenter, views *Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := guard(w, r)
		if !ok {
			return
		}
		questionID, err := idParam(r, "id")
		if err != nil {
			redirectFlash(w, r, "/", flash.SeverityWarning, "Question not found.")
			return
		}

		if r.Method == http.MethodPost {
			if err := svc.AddToQuestion(r.Context(), questionID, id.UserID, r.FormValue("message")); err != nil {
				redirectFlash(w, r, "/", flash.SeverityDanger, "Could not save your comment.")
				return
			}
			http.Redirect(w, r, fmt.Sprintf("/question/%d", questionID), http.StatusFound)
			return
		}
		views.Render(w, r, "question-comment", map[string]any{"QuestionID": questionID})
	}
}

// NewAnswerCommentHandler serves GET and POST /answer/{id}/new-comment.
// Requires login.
func NewAnswerCommentHandler(svc AnswerCommenter, answers AnswerGetter, views *Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := guard(w, r)
		if !ok {
			return
		}
		answerID, err := idParam(r, "id")
		if err != nil {
			redirectFlash(w, r, "/", flash.SeverityWarning, "Answer not found.")
			return
		}
		answer, err := answers.Get(r.Context(), answerID)
		if errors.Is(err, services.ErrAnswerNotFound) {
			redirectFlash(w, r, "/", flash.SeverityWarning, "Answer not found.")
			return
		}
		if err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		if r.Method == http.MethodPost {
			if err := svc.AddToAnswer(r.Context(), answerID, id.UserID, r.FormValue("message")); err != nil {
				redirectFlash(w, r, "/", flash.SeverityDanger, "Could not save your comment.")
				return
			}
			http.Redirect(w, r, fmt.Sprintf("/question/%d", answer.QuestionID), http.StatusFound)
			return
		}
		views.Render(w, r, "answer-comment", map[string]any{"Answer": answer})
	}
}
