package services

import (
	"context"
	"errors"

	"askboard/internal/models"

	"go.uber.org/zap"
)

var ErrUserNotFound = errors.New("user not found")

// UserActivityReader reads users together with their activity counts.
type UserActivityReader interface {
	ListWithCounts(ctx context.Context) ([]models.UserActivity, error)
	GetWithCounts(ctx context.Context, id int64) (*models.UserActivity, error)
}

// QuestionsByUser reads the questions a user authored.
type QuestionsByUser interface {
	ByUser(ctx context.Context, userID int64) ([]models.Question, error)
}

// AnswersByUser reads the answers a user authored.
type AnswersByUser interface {
	ByUser(ctx context.Context, userID int64) ([]models.Answer, error)
}

// UserProfile is everything the user page renders.
type UserProfile struct {
	User      models.UserActivity
	Questions []models.Question
	Answers   []models.Answer
}

// UserService covers the user list and profile pages.
type UserService struct {
	users     UserActivityReader
	questions QuestionsByUser
	answers   AnswersByUser
	log       *zap.SugaredLogger
}

func NewUserService(users UserActivityReader, questions QuestionsByUser, answers AnswersByUser, log *zap.SugaredLogger) *UserService {
	return &UserService{users: users, questions: questions, answers: answers, log: log}
}

// List returns all users with their authored-content counts.
func (svc *UserService) List(ctx context.Context) ([]models.UserActivity, error) {
	return svc.users.ListWithCounts(ctx)
}

// Profile returns a user's counts and authored content.
func (svc *UserService) Profile(ctx context.Context, id int64) (*UserProfile, error) {
	user, err := svc.users.GetWithCounts(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	questions, err := svc.questions.ByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	answers, err := svc.answers.ByUser(ctx, id)
	if err != nil {
		return nil, err
	}

	return &UserProfile{User: *user, Questions: questions, Answers: answers}, nil
}
