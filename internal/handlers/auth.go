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

// Authenticator defines the interface the login handler needs.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
}

// Registerer defines the interface the registration handler needs.
type Registerer interface {
	Register(ctx context.Context, username, password string) error
}

// NewLoginHandler serves GET and POST /login.
func NewLoginHandler(svc Authenticator, sessions *session.Manager, views *Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			user, err := svc.Login(r.Context(), r.FormValue("username"), r.FormValue("user-password"))
			if err != nil {
				redirectFlash(w, r, "/login", flash.SeverityDanger, "Invalid login attempt")
				return
			}
			if err := sessions.Set(w, user.ID, user.Username); err != nil {
				redirectFlash(w, r, "/login", flash.SeverityDanger, "Invalid login attempt")
				return
			}
			redirectFlash(w, r, "/", flash.SeveritySuccess, "You were successfully logged in!")
			return
		}

		if session.FromContext(r.Context()).LoggedIn() {
			redirectFlash(w, r, "/", flash.SeverityWarning, "You are already logged in.")
			return
		}
		views.Render(w, r, "login", nil)
	}
}

// NewRegisterHandler serves GET and POST /register. A successful
// registration does not log the user in; they sign in separately.
func NewRegisterHandler(svc Registerer, views *Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if session.FromContext(r.Context()).LoggedIn() {
			redirectFlash(w, r, "/", flash.SeverityWarning, "You can not access this page, you are already logged in.")
			return
		}

		if r.Method == http.MethodPost {
			err := svc.Register(r.Context(), r.FormValue("username"), r.FormValue("password"))
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				flash.Add(w, r, flash.SeverityDanger, "This username already exist.")
				views.Render(w, r, "register", nil)
			case err != nil:
				redirectFlash(w, r, "/register", flash.SeverityDanger, "Registration failed, please try again.")
			default:
				http.Redirect(w, r, "/", http.StatusFound)
			}
			return
		}
		views.Render(w, r, "register", nil)
	}
}

// NewLogoutHandler serves GET /logout. Logging out while anonymous warns
// and changes nothing.
func NewLogoutHandler(sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !session.FromContext(r.Context()).LoggedIn() {
			redirectFlash(w, r, "/", flash.SeverityWarning, "You need to be logged in to access this page.")
			return
		}
		sessions.Clear(w)
		redirectFlash(w, r, "/", flash.SeveritySuccess, "You have been logged out.")
	}
}
