package domain

import "time"

type ID string

// User is one registered account. All fields are immutable after creation.
type User struct {
	ID           ID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
