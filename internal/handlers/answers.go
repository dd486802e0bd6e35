package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"askboard/internal/flash"
	"askboard/internal/models"
	"askboard/internal/services"
)

// ImageSaver stores an uploaded image and returns the stored filename.
type ImageSaver interface {
	SaveImage(src io.ReadSeeker, filename string) (string, error)
}

// AnswerAdder posts answers under a question.
type AnswerAdder interface {
	Add(ctx context.Context, questionID, userID int64, message string, image *string) (int64, error)
}

// AnswerGetter reads a single answer.
type AnswerGetter interface {
	Get(ctx context.Context, id int64) (*models.Answer, error)
}

// AnswerEditor reads and rewrites an answer.
type AnswerEditor interface {
	Get(ctx context.Context, id int64) (*models.Answer, error)
	Edit(ctx context.Context, id int64, message string) error
}

// AnswerDeleter removes an answer and reports its parent question id.
type AnswerDeleter interface {
	Delete(ctx context.Context, id int64) (int64, error)
}

// saveOptionalImage stores the uploaded file from the named form field,
// if any. A rejected upload flashes a warning; the submission itself
// still goes through without an image.
func saveOptionalImage(w http.ResponseWriter, r *http.Request, storage ImageSaver, field string) *string {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil
	}
	defer file.Close()

	name, err := storage.SaveImage(file, header.Filename)
	if err != nil {
		flash.Add(w, r, flash.SeverityWarning, "The attached file was not saved; only images are supported.")
		return nil
	}
	return &name
}

// NewNewAnswerHandler serves GET and POST /question/{id}/new-answer.
// Requires login.
func NewNewAnswerHandler(svc AnswerAdder, storage ImageSaver, views *Views) http.HandlerFunc {
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
			if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
				redirectFlash(w, r, fmt.Sprintf("/question/%d", questionID), flash.SeverityDanger, "Could not read the submitted form.")
				return
			}
			image := saveOptionalImage(w, r, storage, "answer-image")
			if _, err := svc.Add(r.Context(), questionID, id.UserID, r.FormValue("message"), image); err != nil {
				redirectFlash(w, r, "/", flash.SeverityDanger, "Could not save your answer.")
				return
			}
			http.Redirect(w, r, fmt.Sprintf("/question/%d", questionID), http.StatusFound)
			return
		}
		views.Render(w, r, "new-answer", map[string]any{"QuestionID": questionID})
	}
}

// NewEditAnswerHandler serves GET and POST /answer/{id}/edit. Requires
// login.
func NewEditAnswerHandler(svc AnswerEditor, views *Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := guard(w, r); !ok {
			return
		}
		id, err := idParam(r, "id")
		if err != nil {
			redirectFlash(w, r, "/", flash.SeverityWarning, "Answer not found.")
			return
		}

		answer, err := svc.Get(r.Context(), id)
		if errors.Is(err, services.ErrAnswerNotFound) {
			redirectFlash(w, r, "/", flash.SeverityWarning, "Answer not found.")
			return
		}
		if err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		if r.Method == http.MethodPost {
			if err := svc.Edit(r.Context(), id, r.FormValue("message")); err != nil {
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			http.Redirect(w, r, fmt.Sprintf("/question/%d", answer.QuestionID), http.StatusFound)
			return
		}
		views.Render(w, r, "edit-answer", map[string]any{"Answer": answer})
	}
}

// NewDeleteAnswerHandler serves POST /answer/{id}/delete. The route
// carries no login check.
func NewDeleteAnswerHandler(svc AnswerDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			redirectFlash(w, r, "/", flash.SeverityWarning, "Answer not found.")
			return
		}
		questionID, err := svc.Delete(r.Context(), id)
		if errors.Is(err, services.ErrAnswerNotFound) {
			redirectFlash(w, r, "/", flash.SeverityWarning, "Answer not found.")
			return
		}
		if err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, fmt.Sprintf("/question/%d", questionID), http.StatusFound)
	}
}
