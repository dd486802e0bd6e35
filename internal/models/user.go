package models

import "time"

// User represents a user record in the database.
type User struct {
	ID               int64     `db:"id"`
	Username         string    `db:"username"`
	PasswordHash     string    `db:"password_hash"`
	RegistrationDate time.Time `db:"registration_date"`
}

// UserActivity is a user together with authored-content counts,
// recomputed on read so cascade deletes are always reflected.
type UserActivity struct {
	User
	QuestionCount int `db:"question_count"`
	AnswerCount   int `db:"answer_count"`
	CommentCount  int `db:"comment_count"`
}
