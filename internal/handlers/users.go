package handlers

import (
	"context"
	"errors"
	"net/http"

	"askboard/internal/flash"
	"askboard/internal/models"
	"askboard/internal/services"
	"askboard/internal/session"
)

// UserLister reads all users with their activity counts.
type UserLister interface {
	List(ctx context.Context) ([]models.UserActivity, error)
}

// ProfileReader loads a user's profile page data.
type ProfileReader interface {
	Profile(ctx context.Context, id int64) (*services.UserProfile, error)
}

// NewUserListHandler serves GET /users.
func NewUserListHandler(svc UserLister, views *Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		views.Render(w, r, "users", map[string]any{"Users": users})
	}
}

// NewUserPageHandler serves GET /user/{id}. Requires login, with a
// wording of its own for the denial.
func NewUserPageHandler(svc ProfileReader, views *Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d := session.Authorize(session.FromContext(r.Context())); !d.OK {
			redirectFlash(w, r, "/", flash.SeverityWarning, "You can not access this page.")
			return
		}
		id, err := idParam(r, "id")
		if err != nil {
			redirectFlash(w, r, "/", flash.SeverityWarning, "User not found.")
			return
		}
		profile, err := svc.Profile(r.Context(), id)
		if errors.Is(err, services.ErrUserNotFound) {
			redirectFlash(w, r, "/", flash.SeverityWarning, "User not found.")
			return
		}
		if err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		views.Render(w, r, "user-page", map[string]any{
			"User":      profile.User,
			"Questions": profile.Questions,
			"Answers":   profile.Answers,
		})
	}
}
