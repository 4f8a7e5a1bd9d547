package dto

import (
	"github.com/hugohenrick/academia-backoffice/internal/domain/user"
)

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse representa a resposta de login com o token JWT
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// ToLoginResponse converte o usuário autenticado em resposta de login
func ToLoginResponse(token string, u *user.User) LoginResponse {
	return LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        ToUserResponse(u),
	}
}
