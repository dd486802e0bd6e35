package models

import "time"

// Comment represents a comment on either a question or an answer.
// Exactly one of QuestionID and AnswerID is set.
type Comment struct {
	ID             int64     `db:"id"`
	QuestionID     *int64    `db:"question_id"`
	AnswerID       *int64    `db:"answer_id"`
	UserID         int64     `db:"user_id"`
	Message        string    `db:"message"`
	SubmissionTime time.Time `db:"submission_time"`
	EditedCount    int       `db:"edited_count"`
}

// OnAnswer reports whether the comment is attached to the given answer.
func (c Comment) OnAnswer(answerID int64) bool {
	return c.AnswerID != nil && *c.AnswerID == answerID
}
