package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"askboard/internal/handlers"
	"askboard/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type stubProfiles struct {
	profile *services.UserProfile
	err     error
}

func (s stubProfiles) Profile(ctx context.Context, id int64) (*services.UserProfile, error) {
	return s.profile, s.err
}

func TestUserPageHandler(t *testing.T) {
	newRouter := func(svc handlers.ProfileReader) *chi.Mux {
		router := chi.NewRouter()
		router.Get("/user/{id}", handlers.NewUserPageHandler(svc, newTestViews(t)))
		return router
	}

	t.Run("anonymous visitor is turned away with the page's own wording", func(t *testing.T) {
		router := newRouter(stubProfiles{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user/7", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.Contains(t, flashedTexts(t, rec), "You can not access this page.")
	})

	t.Run("unknown user redirects home", func(t *testing.T) {
		router := newRouter(stubProfiles{err: services.ErrUserNotFound})

		rec := httptest.NewRecorder()
		req := asUser(httptest.NewRequest(http.MethodGet, "/user/7", nil), 3, "alice")
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.Contains(t, flashedTexts(t, rec), "User not found.")
	})
}
