package dto

// LoginRequest represents the login payload. The username is the
// student's email address.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"thaina@gmail.com"`
	Password string `json:"password" binding:"required" example:"password"`
}

// TokenResponse represents an issued access token
type TokenResponse struct {
	AccessToken string `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIs..."`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"3600"` // Seconds until expiry
}
