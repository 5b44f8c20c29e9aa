package domain

import "time"

// AnonymousUserID is the acting identity used for submissions
// that arrive without a session.
const AnonymousUserID int64 = 1

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
