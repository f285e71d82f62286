package dto

import (
	"time"

	"github.com/GlebRadaev/digimon/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateTransactionRequestDTO struct {
	ItemID int              `json:"item_id" validate:"required,gt=0" example:"1"`
	Amount *decimal.Decimal `json:"amount,omitempty" validate:"omitempty,nonnegative,money" swaggertype:"number" example:"30"`
}

type TransactionResponseDTO struct {
	ID              int             `json:"id" example:"1"`
	Amount          decimal.Decimal `json:"amount" swaggertype:"number" example:"30"`
	ItemID          int             `json:"item_id" example:"1"`
	UserID          int             `json:"user_id" example:"1"`
	MerchantID      int             `json:"merchant_id" example:"1"`
	TransactionDate time.Time       `json:"transaction_date" example:"2024-11-02T16:09:57Z"`
}

func NewTransactionResponse(t *domain.Transaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		ID:              t.ID,
		Amount:          t.Amount,
		ItemID:          t.ItemID,
		UserID:          t.UserID,
		MerchantID:      t.MerchantID,
		TransactionDate: t.TransactionDate,
	}
}
