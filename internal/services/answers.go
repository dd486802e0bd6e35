package services

import (
	"context"
	"errors"
	"time"

	"askboard/internal/models"

	"go.uber.org/zap"
)

var ErrAnswerNotFound = errors.New("answer not found")

// AnswerStore defines the answer persistence operations the service
// relies on.
type AnswerStore interface {
	GetByID(ctx context.Context, id int64) (*models.Answer, error)
	Save(ctx context.Context, questionID, userID int64, message string, image *string, submitted time.Time) (int64, error)
	Update(ctx context.Context, id int64, message string) error
	Delete(ctx context.Context, id int64) error
}

// AnswerService covers the answer lifecycle.
type AnswerService struct {
	answers AnswerStore
	log     *zap.SugaredLogger
}

func NewAnswerService(answers AnswerStore, log *zap.SugaredLogger) *AnswerService {
	return &AnswerService{answers: answers, log: log}
}

// Get returns the answer with the given id.
func (svc *AnswerService) Get(ctx context.Context, id int64) (*models.Answer, error) {
	answer, err := svc.answers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if answer == nil {
		return nil, ErrAnswerNotFound
	}
	return answer, nil
}

// Add posts an answer under a question and returns its id.
func (svc *AnswerService) Add(ctx context.Context, questionID, userID int64, message string, image *string) (int64, error) {
	return svc.answers.Save(ctx, questionID, userID, message, image, time.Now())
}

// Edit rewrites the message of an existing answer.
func (svc *AnswerService) Edit(ctx context.Context, id int64, message string) error {
	answer, err := svc.answers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if answer == nil {
		return ErrAnswerNotFound
	}
	return svc.answers.Update(ctx, id, message)
}

// Delete removes an answer and returns the id of the question it belonged
// to, so the caller can redirect back to the thread. Comments under the
// answer are removed by the cascading foreign key.
func (svc *AnswerService) Delete(ctx context.Context, id int64) (int64, error) {
	answer, err := svc.answers.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if answer == nil {
		return 0, ErrAnswerNotFound
	}
	if err := svc.answers.Delete(ctx, id); err != nil {
		return 0, err
	}
	return answer.QuestionID, nil
}
