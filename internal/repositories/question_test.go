package repositories_test

import (
	"context"
	"testing"
	"time"

	"askboard/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func questionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "submission_time", "view_number", "vote_number", "title", "message", "image",
	})
}

func TestQuestionRepository_List_DefaultOrdering(t *testing.T) {
	tests := []struct {
		name      string
		orderBy   string
		direction string
	}{
		{name: "empty key", orderBy: "", direction: ""},
		{name: "unknown key", orderBy: "invalid_key", direction: "desc"},
		{name: "unknown direction", orderBy: "title", direction: "sideways"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := repositories.NewQuestionRepository(db, zap.NewNop().Sugar())

			mock.ExpectQuery(`SELECT .+ FROM question ORDER BY submission_time DESC`).
				WillReturnRows(questionRows().
					AddRow(1, 1, time.Now(), 0, 0, "newest", "m", nil).
					AddRow(2, 1, time.Now().Add(-time.Hour), 0, 0, "older", "m", nil))

			questions, err := repo.List(context.Background(), tt.orderBy, tt.direction)
			assert.NoError(t, err)
			assert.Len(t, questions, 2)
			assert.Equal(t, "newest", questions[0].Title)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestQuestionRepository_List_KnownKeyAscending(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewQuestionRepository(db, zap.NewNop().Sugar())

	mock.ExpectQuery(`SELECT .+ FROM question ORDER BY vote_number ASC`).
		WillReturnRows(questionRows())

	_, err := repo.List(context.Background(), "vote_number", "asc")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_Search(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewQuestionRepository(db, zap.NewNop().Sugar())

	mock.ExpectQuery(`(?s)SELECT .+ FROM question\s+WHERE title ILIKE .+ OR message ILIKE .+`).
		WithArgs("flask").
		WillReturnRows(questionRows().
			AddRow(3, 1, time.Now(), 0, 0, "about flask", "m", nil))

	questions, err := repo.Search(context.Background(), "flask")
	assert.NoError(t, err)
	assert.Len(t, questions, 1)
	assert.Equal(t, "about flask", questions[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_Search_NoMatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewQuestionRepository(db, zap.NewNop().Sugar())

	mock.ExpectQuery(`(?s)SELECT .+ FROM question\s+WHERE title ILIKE`).
		WithArgs("nothing-here").
		WillReturnRows(questionRows())

	questions, err := repo.Search(context.Background(), "nothing-here")
	assert.NoError(t, err)
	assert.Empty(t, questions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewQuestionRepository(db, zap.NewNop().Sugar())

	mock.ExpectQuery(`SELECT .+ FROM question WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(questionRows())

	question, err := repo.GetByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, question)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_AddVote_AtomicIncrement(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewQuestionRepository(db, zap.NewNop().Sugar())

	mock.ExpectExec(`UPDATE question SET vote_number = vote_number \+ \$1 WHERE id = \$2`).
		WithArgs(1, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE question SET vote_number = vote_number \+ \$1 WHERE id = \$2`).
		WithArgs(-1, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.AddVote(context.Background(), 5, 1))
	assert.NoError(t, repo.AddVote(context.Background(), 5, -1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_Delete_SingleStatementCascade(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewQuestionRepository(db, zap.NewNop().Sugar())

	// One DELETE only; answers and comments fall via foreign keys.
	mock.ExpectExec(`DELETE FROM question WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewQuestionRepository(db, zap.NewNop().Sugar())

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO question`).
		WithArgs(int64(1), now, "title", "message", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	id, err := repo.Save(context.Background(), 1, "title", "message", nil, now)
	assert.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}
