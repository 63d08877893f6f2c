package dto

import (
	"time"

	"youthcup_backend/internal/domain/entity"
)

// UserRes is the public projection of a user. It never carries the password.
type UserRes struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthRes is returned by signup and login.
type AuthRes struct {
	User         UserRes `json:"user"`
	AccessToken  string  `json:"accessToken"`
	RefreshToken string  `json:"refreshToken"`
}

// NewUserRes projects u.
func NewUserRes(u *entity.User) UserRes {
	return UserRes{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role), CreatedAt: u.CreatedAt}
}
