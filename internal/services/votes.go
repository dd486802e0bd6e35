package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// VoteKind selects the entity a vote applies to.
type VoteKind string

// VoteDirection selects the sign of a vote.
type VoteDirection string

const (
	KindQuestion VoteKind = "question"
	KindAnswer   VoteKind = "answer"

	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

// QuestionVoter shifts a question's vote counter.
type QuestionVoter interface {
	AddVote(ctx context.Context, id int64, delta int) error
}

// AnswerVoter shifts an answer's vote counter.
type AnswerVoter interface {
	AddVote(ctx context.Context, id int64, delta int) error
}

// VoteService applies bounded increments to vote counters. There is no
// per-user ledger and no idempotence: every call shifts the counter, and
// anonymous visitors may vote.
type VoteService struct {
	questions QuestionVoter
	answers   AnswerVoter
	log       *zap.SugaredLogger
}

func NewVoteService(questions QuestionVoter, answers AnswerVoter, log *zap.SugaredLogger) *VoteService {
	return &VoteService{questions: questions, answers: answers, log: log}
}

// Apply adds +1 (up) or -1 (down) to the vote counter of the given entity.
func (svc *VoteService) Apply(ctx context.Context, kind VoteKind, id int64, direction VoteDirection) error {
	var delta int
	switch direction {
	case VoteUp:
		delta = 1
	case VoteDown:
		delta = -1
	default:
		return fmt.Errorf("unknown vote direction %q", direction)
	}

	switch kind {
	case KindQuestion:
		return svc.questions.AddVote(ctx, id, delta)
	case KindAnswer:
		return svc.answers.AddVote(ctx, id, delta)
	default:
		return fmt.Errorf("unknown vote kind %q", kind)
	}
}
