package services

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// CommentWriter persists new comments.
type CommentWriter interface {
	SaveForQuestion(ctx context.Context, questionID, userID int64, message string, submitted time.Time) error
	SaveForAnswer(ctx context.Context, answerID, userID int64, message string, submitted time.Time) error
}

// CommentService posts comments on questions and answers.
type CommentService struct {
	comments CommentWriter
	log      *zap.SugaredLogger
}

func NewCommentService(comments CommentWriter, log *zap.SugaredLogger) *CommentService {
	return &CommentService{comments: comments, log: log}
}

// AddToQuestion posts a comment on a question.
func (svc *CommentService) AddToQuestion(ctx context.Context, questionID, userID int64, message string) error {
	return svc.comments.SaveForQuestion(ctx, questionID, userID, message, time.Now())
}

// AddToAnswer posts a comment on an answer.
func (svc *CommentService) AddToAnswer(ctx context.Context, answerID, userID int64, message string) error {
	return svc.comments.SaveForAnswer(ctx, answerID, userID, message, time.Now())
}
