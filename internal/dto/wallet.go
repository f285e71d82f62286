package dto

import (
	"github.com/GlebRadaev/digimon/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateWalletRequestDTO struct {
	Balance *decimal.Decimal `json:"balance,omitempty" validate:"omitempty,nonnegative,money" swaggertype:"number" example:"100"`
}

type WalletResponseDTO struct {
	ID      int             `json:"id" example:"1"`
	Balance decimal.Decimal `json:"balance" swaggertype:"number" example:"70"`
	UserID  int             `json:"user_id" example:"1"`
}

func NewWalletResponse(w *domain.Wallet) WalletResponseDTO {
	return WalletResponseDTO{
		ID:      w.ID,
		Balance: w.Balance,
		UserID:  w.UserID,
	}
}
