package domain

import "time"

type User struct {
	ID                int64
	Username          string `validate:"required,max=50"`
	Email             string `validate:"required,email,max=255"`
	EncryptedPassword string `validate:"required"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// PublicProfile is the outward-facing slice of a user record. The
// encrypted password never leaves the domain through it.
type PublicProfile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u *User) Profile() PublicProfile {
	return PublicProfile{Username: u.Username, Email: u.Email}
}
