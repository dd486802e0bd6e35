package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"askboard/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// UserRepository persists and reads user records.
type UserRepository struct {
	db  *sqlx.DB
	log *zap.SugaredLogger
}

func NewUserRepository(db *sqlx.DB, log *zap.SugaredLogger) *UserRepository {
	return &UserRepository{db: db, log: log}
}

// GetByUsername returns the user with the exact (case-sensitive) username,
// or nil when no such user exists.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `
		SELECT id, username, password_hash, registration_date
		FROM users
		WHERE username = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, username)
	r.log.Debugw("query", "sql", collapse(query), "args", []any{username}, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user with the given id, or nil when absent.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `
		SELECT id, username, password_hash, registration_date
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	r.log.Debugw("query", "sql", collapse(query), "args", []any{id}, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Save inserts a new user and returns its id.
func (r *UserRepository) Save(ctx context.Context, username, passwordHash string, registered time.Time) (int64, error) {
	const query = `
		INSERT INTO users (username, password_hash, registration_date)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query, username, passwordHash, registered)
	r.log.Debugw("query", "sql", collapse(query), "args", []any{username, registered}, "error", err)
	return id, err
}

// ListWithCounts returns every user together with the number of questions,
// answers and comments they authored. Counts are computed on read so they
// always reflect cascade deletes.
func (r *UserRepository) ListWithCounts(ctx context.Context) ([]models.UserActivity, error) {
	const query = `
		SELECT u.id, u.username, u.password_hash, u.registration_date,
		       (SELECT COUNT(*) FROM question q WHERE q.user_id = u.id) AS question_count,
		       (SELECT COUNT(*) FROM answer a WHERE a.user_id = u.id) AS answer_count,
		       (SELECT COUNT(*) FROM comment c WHERE c.user_id = u.id) AS comment_count
		FROM users u
		ORDER BY u.registration_date
	`

	var users []models.UserActivity
	err := r.db.SelectContext(ctx, &users, query)
	r.log.Debugw("query", "sql", collapse(query), "rows", len(users), "error", err)
	return users, err
}

// GetWithCounts returns a single user with authored-content counts, or nil
// when absent.
func (r *UserRepository) GetWithCounts(ctx context.Context, id int64) (*models.UserActivity, error) {
	const query = `
		SELECT u.id, u.username, u.password_hash, u.registration_date,
		       (SELECT COUNT(*) FROM question q WHERE q.user_id = u.id) AS question_count,
		       (SELECT COUNT(*) FROM answer a WHERE a.user_id = u.id) AS answer_count,
		       (SELECT COUNT(*) FROM comment c WHERE c.user_id = u.id) AS comment_count
		FROM users u
		WHERE u.id = $1
	`

	var user models.UserActivity
	err := r.db.GetContext(ctx, &user, query, id)
	r.log.Debugw("query", "sql", collapse(query), "args", []any{id}, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// collapse folds a multi-line query into one line for logging.
func collapse(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
