package auth

import "github.com/google/uuid"

// Identity is the actor described by a validated token.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Email    string
}
