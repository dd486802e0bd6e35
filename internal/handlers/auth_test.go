package handlers_test

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"askboard/internal/flash"
	"askboard/internal/handlers"
	"askboard/internal/models"
	"askboard/internal/services"
	"askboard/internal/session"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testPages = `
{{define "alerts"}}{{range .Flashes}}[{{.Severity}}] {{.Text}} {{end}}{{end}}
{{define "login"}}{{template "alerts" .}}login page{{end}}
{{define "register"}}{{template "alerts" .}}register page{{end}}
{{define "main-page"}}{{template "alerts" .}}main page{{end}}
`

func newTestViews(t *testing.T) *handlers.Views {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "pages.html"), []byte(testPages), 0o644)
	require.NoError(t, err)

	views, err := handlers.NewViews(dir, zap.NewNop().Sugar())
	require.NoError(t, err)
	return views
}

func asUser(r *http.Request, userID int64, username string) *http.Request {
	id := session.Identity{UserID: userID, Username: username}
	return r.WithContext(session.NewContext(r.Context(), id))
}

// flashedTexts decodes the flash cookie set on the recorded response.
func flashedTexts(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name != "askboard_flash" || c.Value == "" {
			continue
		}
		payload, err := base64.RawURLEncoding.DecodeString(c.Value)
		require.NoError(t, err)
		var msgs []flash.Message
		require.NoError(t, json.Unmarshal(payload, &msgs))
		texts := make([]string, 0, len(msgs))
		for _, m := range msgs {
			texts = append(texts, m.Text)
		}
		return texts
	}
	return nil
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

func postForm(target string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestLoginHandler(t *testing.T) {
	t.Run("successful login sets the session cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auth := handlers.NewMockAuthenticator(ctrl)
		auth.EXPECT().
			Login(gomock.Any(), "alice", "s3cret").
			Return(&models.User{ID: 7, Username: "alice"}, nil)

		sessions := session.NewManager("test-secret", time.Hour)
		h := handlers.NewLoginHandler(auth, sessions, newTestViews(t))

		rec := httptest.NewRecorder()
		h(rec, postForm("/login", url.Values{
			"username":      {"alice"},
			"user-password": {"s3cret"},
		}))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		require.NotNil(t, sessionCookie(rec))
		assert.NotEmpty(t, sessionCookie(rec).Value)
		assert.Contains(t, flashedTexts(t, rec), "You were successfully logged in!")
	})

	t.Run("bad credentials redirect back to the login page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auth := handlers.NewMockAuthenticator(ctrl)
		auth.EXPECT().
			Login(gomock.Any(), "alice", "wrong").
			Return(nil, services.ErrInvalidCredentials)

		sessions := session.NewManager("test-secret", time.Hour)
		h := handlers.NewLoginHandler(auth, sessions, newTestViews(t))

		rec := httptest.NewRecorder()
		h(rec, postForm("/login", url.Values{
			"username":      {"alice"},
			"user-password": {"wrong"},
		}))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
		assert.Nil(t, sessionCookie(rec))
		assert.Contains(t, flashedTexts(t, rec), "Invalid login attempt")
	})

	t.Run("visiting the form while logged in redirects home", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auth := handlers.NewMockAuthenticator(ctrl)
		sessions := session.NewManager("test-secret", time.Hour)
		h := handlers.NewLoginHandler(auth, sessions, newTestViews(t))

		rec := httptest.NewRecorder()
		h(rec, asUser(httptest.NewRequest(http.MethodGet, "/login", nil), 7, "alice"))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.Contains(t, flashedTexts(t, rec), "You are already logged in.")
	})

	t.Run("anonymous visitor gets the form", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auth := handlers.NewMockAuthenticator(ctrl)
		sessions := session.NewManager("test-secret", time.Hour)
		h := handlers.NewLoginHandler(auth, sessions, newTestViews(t))

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "login page")
	})
}

func TestRegisterHandler(t *testing.T) {
	t.Run("duplicate username re-renders the form", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reg := handlers.NewMockRegisterer(ctrl)
		reg.EXPECT().
			Register(gomock.Any(), "alice", "s3cret").
			Return(services.ErrUserAlreadyExists)

		h := handlers.NewRegisterHandler(reg, newTestViews(t))

		rec := httptest.NewRecorder()
		h(rec, postForm("/register", url.Values{
			"username": {"alice"},
			"password": {"s3cret"},
		}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "register page")
		// The error must be visible on this very page, not deferred to
		// the next one.
		assert.Contains(t, rec.Body.String(), "[danger] This username already exist.")
		assert.Empty(t, flashedTexts(t, rec))
	})

	t.Run("successful registration redirects home without a session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reg := handlers.NewMockRegisterer(ctrl)
		reg.EXPECT().
			Register(gomock.Any(), "bob", "pw").
			Return(nil)

		h := handlers.NewRegisterHandler(reg, newTestViews(t))

		rec := httptest.NewRecorder()
		h(rec, postForm("/register", url.Values{
			"username": {"bob"},
			"password": {"pw"},
		}))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.Nil(t, sessionCookie(rec))
	})

	t.Run("logged in users are bounced off the form", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reg := handlers.NewMockRegisterer(ctrl)
		h := handlers.NewRegisterHandler(reg, newTestViews(t))

		rec := httptest.NewRecorder()
		h(rec, asUser(httptest.NewRequest(http.MethodGet, "/register", nil), 7, "alice"))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})
}

func TestLogoutHandler(t *testing.T) {
	sessions := session.NewManager("test-secret", time.Hour)
	h := handlers.NewLogoutHandler(sessions)

	t.Run("logged in user is logged out", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h(rec, asUser(httptest.NewRequest(http.MethodGet, "/logout", nil), 7, "alice"))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		require.NotNil(t, sessionCookie(rec))
		assert.Empty(t, sessionCookie(rec).Value)
		assert.Contains(t, flashedTexts(t, rec), "You have been logged out.")
	})

	t.Run("anonymous logout warns and changes nothing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/logout", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.Nil(t, sessionCookie(rec))
		assert.Contains(t, flashedTexts(t, rec), "You need to be logged in to access this page.")
	})
}
