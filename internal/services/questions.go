package services

import (
	"context"
	"errors"
	"time"

	"askboard/internal/models"

	"go.uber.org/zap"
)

var ErrQuestionNotFound = errors.New("question not found")

// QuestionStore defines the question persistence operations the service
// relies on.
type QuestionStore interface {
	List(ctx context.Context, orderBy, direction string) ([]models.Question, error)
	Latest(ctx context.Context, n int) ([]models.Question, error)
	Search(ctx context.Context, phrase string) ([]models.Question, error)
	GetByID(ctx context.Context, id int64) (*models.Question, error)
	Save(ctx context.Context, userID int64, title, message string, image *string, submitted time.Time) (int64, error)
	Update(ctx context.Context, id int64, title, message string) error
	Delete(ctx context.Context, id int64) error
	IncrementViews(ctx context.Context, id int64) error
}

// AnswerLister reads the answers under a question.
type AnswerLister interface {
	ForQuestion(ctx context.Context, questionID int64) ([]models.Answer, error)
}

// CommentLister reads every comment in a question's thread.
type CommentLister interface {
	ForQuestionThread(ctx context.Context, questionID int64) ([]models.Comment, error)
}

// AuthorReader resolves a question's author for display.
type AuthorReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// QuestionPage is everything the question detail view renders.
type QuestionPage struct {
	Question models.Question
	Author   string
	Answers  []models.Answer
	Comments []models.Comment
}

// QuestionService covers listing, searching and the question lifecycle.
type QuestionService struct {
	questions QuestionStore
	answers   AnswerLister
	comments  CommentLister
	users     AuthorReader
	log       *zap.SugaredLogger
}

func NewQuestionService(questions QuestionStore, answers AnswerLister, comments CommentLister, users AuthorReader, log *zap.SugaredLogger) *QuestionService {
	return &QuestionService{
		questions: questions,
		answers:   answers,
		comments:  comments,
		users:     users,
		log:       log,
	}
}

// List returns all questions; unknown sort keys or directions fall back
// to submission time, newest first.
func (svc *QuestionService) List(ctx context.Context, orderBy, direction string) ([]models.Question, error) {
	return svc.questions.List(ctx, orderBy, direction)
}

// Latest returns the five most recent questions for the landing page.
func (svc *QuestionService) Latest(ctx context.Context) ([]models.Question, error) {
	return svc.questions.Latest(ctx, 5)
}

// Search returns questions matching the phrase in title or message.
func (svc *QuestionService) Search(ctx context.Context, phrase string) ([]models.Question, error) {
	return svc.questions.Search(ctx, phrase)
}

// Page loads the full question thread and counts the view.
func (svc *QuestionService) Page(ctx context.Context, id int64) (*QuestionPage, error) {
	question, err := svc.questions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	if err := svc.questions.IncrementViews(ctx, id); err != nil {
		svc.log.Errorw("failed to count view", "question_id", id, "err", err)
	}

	author, err := svc.users.GetByID(ctx, question.UserID)
	if err != nil {
		return nil, err
	}
	authorName := ""
	if author != nil {
		authorName = author.Username
	}

	answers, err := svc.answers.ForQuestion(ctx, id)
	if err != nil {
		return nil, err
	}
	comments, err := svc.comments.ForQuestionThread(ctx, id)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Question: *question,
		Author:   authorName,
		Answers:  answers,
		Comments: comments,
	}, nil
}

// Get returns a question without side effects, for edit forms.
func (svc *QuestionService) Get(ctx context.Context, id int64) (*models.Question, error) {
	question, err := svc.questions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}
	return question, nil
}

// Add creates a question and returns its id.
func (svc *QuestionService) Add(ctx context.Context, userID int64, title, message string, image *string) (int64, error) {
	return svc.questions.Save(ctx, userID, title, message, image, time.Now())
}

// Edit rewrites the title and message of an existing question.
func (svc *QuestionService) Edit(ctx context.Context, id int64, title, message string) error {
	question, err := svc.questions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if question == nil {
		return ErrQuestionNotFound
	}
	return svc.questions.Update(ctx, id, title, message)
}

// Delete removes a question and, through the datastore's cascading
// foreign keys, all its answers and comments.
func (svc *QuestionService) Delete(ctx context.Context, id int64) error {
	return svc.questions.Delete(ctx, id)
}
