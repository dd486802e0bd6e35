package models

import "time"

// Answer represents an answer record in the database.
type Answer struct {
	ID             int64     `db:"id"`
	QuestionID     int64     `db:"question_id"`
	UserID         int64     `db:"user_id"`
	SubmissionTime time.Time `db:"submission_time"`
	VoteNumber     int       `db:"vote_number"`
	Message        string    `db:"message"`
	Image          *string   `db:"image"`
}
