package handlers_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"askboard/internal/handlers"
	"askboard/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPager struct {
	page *services.QuestionPage
	err  error
}

func (s stubPager) Page(ctx context.Context, id int64) (*services.QuestionPage, error) {
	return s.page, s.err
}

type stubImageSaver struct{}

func (stubImageSaver) SaveImage(src io.ReadSeeker, filename string) (string, error) {
	return filename, nil
}

func multipartForm(t *testing.T, target string, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, target, &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return r
}

func TestAddQuestionHandler(t *testing.T) {
	t.Run("anonymous submission is blocked before the service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// No expectations on the adder: the gate must reject the
		// request before any write happens.
		adder := handlers.NewMockQuestionAdder(ctrl)
		h := handlers.NewAddQuestionHandler(adder, stubImageSaver{}, newTestViews(t))

		rec := httptest.NewRecorder()
		h(rec, multipartForm(t, "/add-question", map[string]string{
			"title":   "How do slices grow?",
			"message": "Details inside.",
		}))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.Contains(t, flashedTexts(t, rec), "You need to be logged in to access this page.")
	})

	t.Run("logged in submission redirects to the new question", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		adder := handlers.NewMockQuestionAdder(ctrl)
		adder.EXPECT().
			Add(gomock.Any(), int64(7), "How do slices grow?", "Details inside.", nil).
			Return(int64(42), nil)

		h := handlers.NewAddQuestionHandler(adder, stubImageSaver{}, newTestViews(t))

		rec := httptest.NewRecorder()
		req := multipartForm(t, "/add-question", map[string]string{
			"title":   "How do slices grow?",
			"message": "Details inside.",
		})
		h(rec, asUser(req, 7, "alice"))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/question/42", rec.Header().Get("Location"))
	})
}

func TestDeleteQuestionHandler(t *testing.T) {
	t.Run("anonymous delete goes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		deleter := handlers.NewMockQuestionDeleter(ctrl)
		deleter.EXPECT().Delete(gomock.Any(), int64(42)).Return(nil)

		router := chi.NewRouter()
		router.Post("/question/{id}/delete", handlers.NewDeleteQuestionHandler(deleter))

		// Deliberately no session: deletion, like voting, is open to
		// any visitor.
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/question/42/delete", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/list", rec.Header().Get("Location"))
	})
}

func TestQuestionPageHandler(t *testing.T) {
	t.Run("unknown question redirects home with a warning", func(t *testing.T) {
		h := handlers.NewQuestionPageHandler(stubPager{err: services.ErrQuestionNotFound}, newTestViews(t))

		router := chi.NewRouter()
		router.Get("/question/{id}", h)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/question/42", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.Contains(t, flashedTexts(t, rec), "Question not found.")
	})
}
