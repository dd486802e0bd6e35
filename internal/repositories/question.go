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

// Sort keys accepted by List. Anything else falls back to the default
// ordering (submission_time DESC). The whitelist keeps user input out of
// the SQL text.
var questionSortColumns = map[string]string{
	"submission_time": "submission_time",
	"title":           "title",
	"message":         "message",
	"vote_number":     "vote_number",
	"view_number":     "view_number",
}

// QuestionRepository persists and reads question records.
type QuestionRepository struct {
	db  *sqlx.DB
	log *zap.SugaredLogger
}

func NewQuestionRepository(db *sqlx.DB, log *zap.SugaredLogger) *QuestionRepository {
	return &QuestionRepository{db: db, log: log}
}

const questionColumns = `id, user_id, submission_time, view_number, vote_number, title, message, image`

// List returns all questions ordered by the given key and direction.
// Unrecognized keys or directions fall back to submission_time DESC.
func (r *QuestionRepository) List(ctx context.Context, orderBy, direction string) ([]models.Question, error) {
	column, ok := questionSortColumns[orderBy]
	dir := "DESC"
	if !ok {
		column = "submission_time"
	} else if direction == "asc" {
		dir = "ASC"
	} else if direction != "desc" && direction != "" {
		column = "submission_time"
	}

	query := fmt.Sprintf(`SELECT %s FROM question ORDER BY %s %s`, questionColumns, column, dir)

	var questions []models.Question
	err := r.db.SelectContext(ctx, &questions, query)
	r.log.Debugw("query", "sql", collapse(query), "rows", len(questions), "error", err)
	return questions, err
}

// Latest returns the n most recently submitted questions.
func (r *QuestionRepository) Latest(ctx context.Context, n int) ([]models.Question, error) {
	query := fmt.Sprintf(`SELECT %s FROM question ORDER BY submission_time DESC LIMIT $1`, questionColumns)

	var questions []models.Question
	err := r.db.SelectContext(ctx, &questions, query, n)
	r.log.Debugw("query", "sql", collapse(query), "args", []any{n}, "error", err)
	return questions, err
}

// Search returns questions whose title or message contains the phrase,
// case-insensitively, newest first.
func (r *QuestionRepository) Search(ctx context.Context, phrase string) ([]models.Question, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM question
		WHERE title ILIKE '%%' || $1 || '%%' OR message ILIKE '%%' || $1 || '%%'
		ORDER BY submission_time DESC`, questionColumns)

	var questions []models.Question
	err := r.db.SelectContext(ctx, &questions, query, phrase)
	r.log.Debugw("query", "sql", collapse(query), "args", []any{phrase}, "rows", len(questions), "error", err)
	return questions, err
}

// GetByID returns the question with the given id, or nil when absent.
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	query := fmt.Sprintf(`SELECT %s FROM question WHERE id = $1`, questionColumns)

	var question models.Question
	err := r.db.GetContext(ctx, &question, query, id)
	r.log.Debugw("query", "sql", collapse(query), "args", []any{id}, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// ByUser returns the questions authored by a user, newest first.
func (r *QuestionRepository) ByUser(ctx context.Context, userID int64) ([]models.Question, error) {
	query := fmt.Sprintf(`SELECT %s FROM question WHERE user_id = $1 ORDER BY submission_time DESC`, questionColumns)

	var questions []models.Question
	err := r.db.SelectContext(ctx, &questions, query, userID)
	r.log.Debugw("query", "sql", collapse(query), "args", []any{userID}, "rows", len(questions), "error", err)
	return questions, err
}

// Save inserts a new question and returns its id.
func (r *QuestionRepository) Save(ctx context.Context, userID int64, title, message string, image *string, submitted time.Time) (int64, error) {
	const query = `
		INSERT INTO question (user_id, submission_time, title, message, image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query, userID, submitted, title, message, image)
	r.log.Debugw("query", "sql", collapse(query), "args", []any{userID, title}, "error", err)
	return id, err
}

// Update rewrites the title and message of a question.
func (r *QuestionRepository) Update(ctx context.Context, id int64, title, message string) error {
	const query = `UPDATE question SET title = $1, message = $2 WHERE id = $3`

	_, err := r.db.ExecContext(ctx, query, title, message, id)
	r.log.Debugw("query", "sql", collapse(query), "args", []any{title, id}, "error", err)
	return err
}

// Delete removes a question. Answers and comments underneath it are
// removed by the ON DELETE CASCADE foreign keys.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM question WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	r.log.Debugw("query", "sql", collapse(query), "args", []any{id}, "error", err)
	return err
}

// AddVote shifts the vote counter by delta in a single atomic update, so
// concurrent votes never lose an increment.
func (r *QuestionRepository) AddVote(ctx context.Context, id int64, delta int) error {
	const query = `UPDATE question SET vote_number = vote_number + $1 WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, delta, id)
	r.log.Debugw("query", "sql", collapse(query), "args", []any{delta, id}, "error", err)
	return err
}

// IncrementViews bumps the view counter of a question.
func (r *QuestionRepository) IncrementViews(ctx context.Context, id int64) error {
	const query = `UPDATE question SET view_number = view_number + 1 WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	r.log.Debugw("query", "sql", collapse(query), "args", []any{id}, "error", err)
	return err
}
