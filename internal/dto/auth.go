package dto

// --- Auth DTOs ---

// RegisterRequest defines data for creating a new user account.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// LoginRequest defines login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the access token; the refresh token travels in an
// http-only cookie.
type LoginResponse struct {
	Token string `json:"token"`
}

// RefreshTokenResponse carries the replacement access token after a refresh.
type RefreshTokenResponse struct {
	Token string `json:"token"`
}

// ExchangeCodeRequest defines the JSON body for the Google code exchange endpoint.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
