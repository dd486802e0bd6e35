package repositories_test

import (
	"context"
	"testing"
	"time"

	"askboard/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func answerRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "question_id", "user_id", "submission_time", "vote_number", "message", "image",
	})
}

func TestAnswerRepository_ForQuestion(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewAnswerRepository(db, zap.NewNop().Sugar())

	mock.ExpectQuery(`SELECT .+ FROM answer WHERE question_id = \$1 ORDER BY submission_time`).
		WithArgs(int64(5)).
		WillReturnRows(answerRows().
			AddRow(1, 5, 2, time.Now(), 0, "first answer", nil).
			AddRow(2, 5, 3, time.Now(), 0, "second answer", nil))

	answers, err := repo.ForQuestion(context.Background(), 5)
	assert.NoError(t, err)
	assert.Len(t, answers, 2)
	assert.Equal(t, int64(5), answers[0].QuestionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnswerRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewAnswerRepository(db, zap.NewNop().Sugar())

	mock.ExpectQuery(`SELECT .+ FROM answer WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(answerRows())

	answer, err := repo.GetByID(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, answer)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnswerRepository_AddVote_AtomicIncrement(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewAnswerRepository(db, zap.NewNop().Sugar())

	mock.ExpectExec(`UPDATE answer SET vote_number = vote_number \+ \$1 WHERE id = \$2`).
		WithArgs(-1, int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.AddVote(context.Background(), 9, -1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnswerRepository_Delete_SingleStatementCascade(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewAnswerRepository(db, zap.NewNop().Sugar())

	mock.ExpectExec(`DELETE FROM answer WHERE id = \$1`).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}
