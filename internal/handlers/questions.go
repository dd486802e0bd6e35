package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"askboard/internal/flash"
	"askboard/internal/models"
	"askboard/internal/services"
)

// maxUploadBytes bounds multipart form parsing for image uploads.
const maxUploadBytes = 16 << 20

// LatestLister reads the questions shown on the landing page.
type LatestLister interface {
	Latest(ctx context.Context) ([]models.Question, error)
}

// QuestionSearcher searches questions by phrase.
type QuestionSearcher interface {
	Search(ctx context.Context, phrase string) ([]models.Question, error)
}

// QuestionLister lists questions with a sort key and direction.
type QuestionLister interface {
	List(ctx context.Context, orderBy, direction string) ([]models.Question, error)
}

// QuestionPager loads a full question thread.
type QuestionPager interface {
	Page(ctx context.Context, id int64) (*services.QuestionPage, error)
}

// QuestionAdder creates questions.
type QuestionAdder interface {
	Add(ctx context.Context, userID int64, title, message string, image *string) (int64, error)
}

// QuestionEditor reads and rewrites a question.
type QuestionEditor interface {
	Get(ctx context.Context, id int64) (*models.Question, error)
	Edit(ctx context.Context, id int64, title, message string) error
}

// QuestionDeleter removes a question and everything under it.
type QuestionDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// NewHomeHandler serves GET / with the five latest questions.
func NewHomeHandler(svc LatestLister, views *Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		questions, err := svc.Latest(r.Context())
		if err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		views.Render(w, r, "main-page", map[string]any{"Questions": questions})
	}
}

// NewSearchHandler serves GET /search?q=.
func NewSearchHandler(svc QuestionSearcher, views *Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		phrase := r.URL.Query().Get("q")
		questions, err := svc.Search(r.Context(), phrase)
		if err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		views.Render(w, r, "search", map[string]any{
			"Phrase":    phrase,
			"Questions": questions,
		})
	}
}

// NewListHandler serves GET /list?order_by=&order_direction=. Unknown
// sort parameters fall back to submission time, newest first.
func NewListHandler(svc QuestionLister, views *Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderBy := r.URL.Query().Get("order_by")
		direction := r.URL.Query().Get("order_direction")
		questions, err := svc.List(r.Context(), orderBy, direction)
		if err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		views.Render(w, r, "list", map[string]any{
			"Questions": questions,
			"OrderBy":   orderBy,
			"Direction": direction,
		})
	}
}

// NewQuestionPageHandler serves GET /question/{id}.
func NewQuestionPageHandler(svc QuestionPager, views *Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			redirectFlash(w, r, "/", flash.SeverityWarning, "Question not found.")
			return
		}
		page, err := svc.Page(r.Context(), id)
		if errors.Is(err, services.ErrQuestionNotFound) {
			redirectFlash(w, r, "/", flash.SeverityWarning, "Question not found.")
			return
		}
		if err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		views.Render(w, r, "question", map[string]any{
			"Question": page.Question,
			"Author":   page.Author,
			"Answers":  page.Answers,
			"Comments": page.Comments,
		})
	}
}

// NewAddQuestionHandler serves GET and POST /add-question. Requires login.
func NewAddQuestionHandler(svc QuestionAdder, storage ImageSaver, views *Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := guard(w, r)
		if !ok {
			return
		}

		if r.Method == http.MethodPost {
			if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
				redirectFlash(w, r, "/add-question", flash.SeverityDanger, "Could not read the submitted form.")
				return
			}
			image := saveOptionalImage(w, r, storage, "question-image")
			questionID, err := svc.Add(r.Context(), id.UserID, r.FormValue("title"), r.FormValue("message"), image)
			if err != nil {
				redirectFlash(w, r, "/", flash.SeverityDanger, "Could not save your question.")
				return
			}
			http.Redirect(w, r, fmt.Sprintf("/question/%d", questionID), http.StatusFound)
			return
		}
		views.Render(w, r, "add-question", nil)
	}
}

// NewEditQuestionHandler serves GET and POST /question/{id}/edit.
// Requires login.
func NewEditQuestionHandler(svc QuestionEditor, views *Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := guard(w, r); !ok {
			return
		}
		id, err := idParam(r, "id")
		if err != nil {
			redirectFlash(w, r, "/", flash.SeverityWarning, "Question not found.")
			return
		}

		if r.Method == http.MethodPost {
			err := svc.Edit(r.Context(), id, r.FormValue("title"), r.FormValue("message"))
			if errors.Is(err, services.ErrQuestionNotFound) {
				redirectFlash(w, r, "/", flash.SeverityWarning, "Question not found.")
				return
			}
			if err != nil {
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			http.Redirect(w, r, fmt.Sprintf("/question/%d", id), http.StatusFound)
			return
		}

		question, err := svc.Get(r.Context(), id)
		if errors.Is(err, services.ErrQuestionNotFound) {
			redirectFlash(w, r, "/", flash.SeverityWarning, "Question not found.")
			return
		}
		if err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		views.Render(w, r, "edit-question", map[string]any{"Question": question})
	}
}

// NewDeleteQuestionHandler serves POST /question/{id}/delete. The route
// carries no login check.
func NewDeleteQuestionHandler(svc QuestionDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			redirectFlash(w, r, "/", flash.SeverityWarning, "Question not found.")
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/list", http.StatusFound)
	}
}
