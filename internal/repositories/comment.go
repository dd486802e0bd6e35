package repositories

import (
	"context"
	"time"

	"askboard/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// CommentRepository persists and reads comment records.
type CommentRepository struct {
	db  *sqlx.DB
	log *zap.SugaredLogger
}

func NewCommentRepository(db *sqlx.DB, log *zap.SugaredLogger) *CommentRepository {
	return &CommentRepository{db: db, log: log}
}

// ForQuestionThread returns every comment on the question itself and on
// any of its answers, oldest first.
func (r *CommentRepository) ForQuestionThread(ctx context.Context, questionID int64) ([]models.Comment, error) {
	const query = `
		SELECT c.id, c.question_id, c.answer_id, c.user_id, c.message, c.submission_time, c.edited_count
		FROM comment c
		LEFT JOIN answer a ON c.answer_id = a.id
		WHERE c.question_id = $1 OR a.question_id = $1
		ORDER BY c.submission_time
	`

	var comments []models.Comment
	err := r.db.SelectContext(ctx, &comments, query, questionID)
	r.log.Debugw("query", "sql", collapse(query), "args", []any{questionID}, "rows", len(comments), "error", err)
	return comments, err
}

// SaveForQuestion inserts a comment attached to a question.
func (r *CommentRepository) SaveForQuestion(ctx context.Context, questionID, userID int64, message string, submitted time.Time) error {
	const query = `
		INSERT INTO comment (question_id, user_id, message, submission_time, edited_count)
		VALUES ($1, $2, $3, $4, 0)
	`

	_, err := r.db.ExecContext(ctx, query, questionID, userID, message, submitted)
	r.log.Debugw("query", "sql", collapse(query), "args", []any{questionID, userID}, "error", err)
	return err
}

// SaveForAnswer inserts a comment attached to an answer.
func (r *CommentRepository) SaveForAnswer(ctx context.Context, answerID, userID int64, message string, submitted time.Time) error {
	const query = `
		INSERT INTO comment (answer_id, user_id, message, submission_time, edited_count)
		VALUES ($1, $2, $3, $4, 0)
	`

	_, err := r.db.ExecContext(ctx, query, answerID, userID, message, submitted)
	r.log.Debugw("query", "sql", collapse(query), "args", []any{answerID, userID}, "error", err)
	return err
}
