package dto

import (
	"time"

	"github.com/GlebRadaev/digimon/internal/domain"
)

type CreateUserRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50" example:"ash"`
	Email    string `json:"email" validate:"required,email,max=255" example:"ash@example.com"`
	Password string `json:"password" validate:"required,min=8,max=72" example:"pikachu123"`
}

type UpdateUserRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50" example:"ash"`
	Email    string `json:"email" validate:"required,email,max=255" example:"ash@example.com"`
}

type UserResponseDTO struct {
	ID        int       `json:"id" example:"1"`
	Username  string    `json:"username" example:"ash"`
	Email     string    `json:"email" example:"ash@example.com"`
	CreatedAt time.Time `json:"created_at" example:"2024-11-02T16:09:57Z"`
}

func NewUserResponse(u *domain.User) UserResponseDTO {
	return UserResponseDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
