package model

import "time"

// Session is a signed-in admin. AccessToken is the remote store's user token
// and is empty for the SQL backend.
type Session struct {
	ID          string
	Email       string
	AccessToken string
	ExpiresAt   time.Time
}

type AdminUser struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
