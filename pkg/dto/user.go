package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserCreate is the payload for registering a user.
type UserCreate struct {
	ID       uuid.UUID
	Username string
	Email    string
	Password string // already hashed by the service layer
}

// UserRead is the read-optimized user shape handed to the auth layer and
// API responses; it never carries the password hash.
type UserRead struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
