package users

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account. PasswordHash is empty for Google-only accounts.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         string
	PictureURL   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
