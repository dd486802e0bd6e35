package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"askboard/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// AnswerRepository persists and reads answer records.
type AnswerRepository struct {
	db  *sqlx.DB
	log *zap.SugaredLogger
}

func NewAnswerRepository(db *sqlx.DB, log *zap.SugaredLogger) *AnswerRepository {
	return &AnswerRepository{db: db, log: log}
}

const answerColumns = `id, question_id, user_id, submission_time, vote_number, message, image`

// ForQuestion returns the answers under a question, oldest first.
func (r *AnswerRepository) ForQuestion(ctx context.Context, questionID int64) ([]models.Answer, error) {
	query := fmt.Sprintf(`SELECT %s FROM answer WHERE question_id = $1 ORDER BY submission_time`, answerColumns)

	var answers []models.Answer
	err := r.db.SelectContext(ctx, &answers, query, questionID)
	r.log.Debugw("query", "sql", collapse(query), "args", []any{questionID}, "rows", len(answers), "error", err)
	return answers, err
}

// GetByID returns the answer with the given id, or nil when absent.
func (r *AnswerRepository) GetByID(ctx context.Context, id int64) (*models.Answer, error) {
	query := fmt.Sprintf(`SELECT %s FROM answer WHERE id = $1`, answerColumns)

	var answer models.Answer
	err := r.db.GetContext(ctx, &answer, query, id)
	r.log.Debugw("query", "sql", collapse(query), "args", []any{id}, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

// ByUser returns the answers authored by a user, newest first.
func (r *AnswerRepository) ByUser(ctx context.Context, userID int64) ([]models.Answer, error) {
	query := fmt.Sprintf(`SELECT %s FROM answer WHERE user_id = $1 ORDER BY submission_time DESC`, answerColumns)

	var answers []models.Answer
	err := r.db.SelectContext(ctx, &answers, query, userID)
	r.log.Debugw("query", "sql", collapse(query), "args", []any{userID}, "rows", len(answers), "error", err)
	return answers, err
}

// Save inserts a new answer and returns its id.
func (r *AnswerRepository) Save(ctx context.Context, questionID, userID int64, message string, image *string, submitted time.Time) (int64, error) {
	const query = `
		INSERT INTO answer (question_id, user_id, submission_time, message, image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query, questionID, userID, submitted, message, image)
	r.log.Debugw("query", "sql", collapse(query), "args", []any{questionID, userID}, "error", err)
	return id, err
}

// Update rewrites the message of an answer.
func (r *AnswerRepository) Update(ctx context.Context, id int64, message string) error {
	const query = `UPDATE answer SET message = $1 WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, message, id)
	r.log.Debugw("query", "sql", collapse(query), "args", []any{id}, "error", err)
	return err
}

// Delete removes an answer. Its comments go with it via ON DELETE CASCADE.
func (r *AnswerRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM answer WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	r.log.Debugw("query", "sql", collapse(query), "args", []any{id}, "error", err)
	return err
}

// AddVote shifts the vote counter by delta in a single atomic update.
func (r *AnswerRepository) AddVote(ctx context.Context, id int64, delta int) error {
	const query = `UPDATE answer SET vote_number = vote_number + $1 WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, delta, id)
	r.log.Debugw("query", "sql", collapse(query), "args", []any{delta, id}, "error", err)
	return err
}
