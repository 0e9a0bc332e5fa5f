package auth

import "nextassist/internal/domain"

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url"`
	Company   string `json:"company"`
	Bio       string `json:"bio"`
}

type SessionResponse struct {
	User        *domain.User `json:"user"`
	AccessToken string       `json:"access_token"`
}
