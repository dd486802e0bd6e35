package models

import "time"

// Question represents a question record in the database.
type Question struct {
	ID             int64     `db:"id"`
	UserID         int64     `db:"user_id"`
	SubmissionTime time.Time `db:"submission_time"`
	ViewNumber     int       `db:"view_number"`
	VoteNumber     int       `db:"vote_number"`
	Title          string    `db:"title"`
	Message        string    `db:"message"`
	Image          *string   `db:"image"`
}
