package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie set on successful login.
const CookieName = "askboard_session"

// Identity is the request-scoped identity resolved from the session cookie.
// The zero value is an anonymous visitor.
type Identity struct {
	UserID   int64
	Username string
}

// LoggedIn reports whether the identity belongs to an authenticated user.
func (id Identity) LoggedIn() bool {
	return id.UserID != 0 && id.Username != ""
}

// Manager signs and verifies session cookies. The cookie value is a JWT
// (HS256) carrying the user id and username, keyed by the server secret.
type Manager struct {
	secret []byte
	exp    time.Duration
}

// NewManager creates a session manager with the given signing secret and
// session lifetime.
func NewManager(secret string, exp time.Duration) *Manager {
	return &Manager{secret: []byte(secret), exp: exp}
}

// Set attaches a session cookie for the given user to the response.
func (m *Manager) Set(w http.ResponseWriter, userID int64, username string) error {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(m.exp).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  now.Add(m.exp),
	})
	return nil
}

// Clear expires the session cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
	})
}

// Identity resolves the identity carried by the request's session cookie.
// A missing, expired, malformed or tampered cookie yields the anonymous
// identity; resolution never fails the request.
func (m *Manager) Identity(r *http.Request) Identity {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return Identity{}
	}

	token, err := jwt.Parse(c.Value, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return Identity{}
	}
	username, ok := claims["username"].(string)
	if !ok {
		return Identity{}
	}

	return Identity{UserID: int64(userID), Username: username}
}

type ctxKey struct{}

// NewContext stores the identity in the context.
func NewContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the identity stored by the middleware, or the
// anonymous identity when none was resolved.
func FromContext(ctx context.Context) Identity {
	id, _ := ctx.Value(ctxKey{}).(Identity)
	return id
}
