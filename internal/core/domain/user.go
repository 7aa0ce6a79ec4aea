package domain

import "time"

// User represents a user of the application in the domain.
// Users are the root of every ownership chain: a user owns budgets through
// the budget membership relation, and everything else hangs off a budget.
type User struct {
	UserID       int64  `json:"userID"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`

	// OAuth provider linkage; empty for password accounts
	AuthProvider   string `json:"-"`
	ProviderUserID string `json:"-"`

	// Refresh token state
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}

// GoogleUserInfo holds the profile fields returned by Google's userinfo endpoint.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
}
