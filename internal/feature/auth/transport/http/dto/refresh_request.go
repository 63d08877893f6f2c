package dto

// RefreshReq represents the request for token refresh.
type RefreshReq struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutReq carries the refresh token to revoke. It may be empty.
type LogoutReq struct {
	RefreshToken string `json:"refreshToken"`
}

// TokenRes represents the response for a successful token refresh.
type TokenRes struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
