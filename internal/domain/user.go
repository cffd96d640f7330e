package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity-provider view of an application user.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	CreatedAt time.Time
}

// DisplayName returns the username, falling back to the email.
func (u User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}
