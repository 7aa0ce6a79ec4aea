package models

import "time"

// User is the database row shape for the users table.
type User struct {
	UserID                 int64      `db:"id"`
	Email                  string     `db:"email"`
	PasswordHash           string     `db:"password_hash"`
	FirstName              string     `db:"first_name"`
	LastName               string     `db:"last_name"`
	AuthProvider           *string    `db:"auth_provider"`
	ProviderUserID         *string    `db:"provider_user_id"`
	RefreshTokenHash       *string    `db:"refresh_token_hash"`
	RefreshTokenExpiryTime *time.Time `db:"refresh_token_expiry_time"`
	CreatedAt              time.Time  `db:"created_at"`
}
