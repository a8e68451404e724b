package domain

import "time"

// User is the domain model for registered accounts. PasswordHash never leaves
// the service layer and is excluded from every response body.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
