package services

import (
	"context"
	"errors"
	"time"

	"askboard/internal/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// HashPassword produces a salted, cost-factored digest of the plaintext.
// The salt is randomized per call, so equal inputs yield distinct digests.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether the plaintext matches the digest. Any
// failure, including a malformed digest, counts as "not verified".
func VerifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash string, registered time.Time) (int64, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	log    *zap.SugaredLogger
}

func NewAuthService(reader UserReader, writer UserWriter, log *zap.SugaredLogger) *AuthService {
	return &AuthService{reader: reader, writer: writer, log: log}
}

// Register creates a new user. The username must not collide with an
// existing one (case-sensitive exact match). Registration does not log
// the user in; the session stays anonymous.
func (svc *AuthService) Register(ctx context.Context, username, password string) error {
	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		svc.log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if existing != nil {
		svc.log.Infow("duplicate username at registration", "username", username)
		return ErrUserAlreadyExists
	}

	digest, err := HashPassword(password)
	if err != nil {
		svc.log.Errorw("failed to hash password", "err", err)
		return err
	}

	if _, err := svc.writer.Save(ctx, username, digest, time.Now()); err != nil {
		svc.log.Errorw("failed to save user", "err", err)
		return err
	}
	return nil
}

// Login checks the credentials and returns the matching user. An unknown
// username and a wrong password are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		svc.log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil || !VerifyPassword(password, user.PasswordHash) {
		svc.log.Infow("invalid login attempt", "username", username)
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
