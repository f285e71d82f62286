package dto

type LoginRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50" example:"ash"`
	Password string `json:"password" validate:"required,min=8,max=72" example:"pikachu123"`
}

type TokenResponseDTO struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"Bearer"`
}
