package dto

import (
	"github.com/GlebRadaev/digimon/internal/domain"
	"github.com/shopspring/decimal"
)

type ItemRequestDTO struct {
	Name        string           `json:"name" validate:"required,max=255" example:"Potion"`
	Description string           `json:"description" validate:"max=1000" example:"Restores 20 HP"`
	Price       *decimal.Decimal `json:"price" validate:"required,nonnegative,money" swaggertype:"number" example:"30"`
	MerchantID  int              `json:"merchant_id" validate:"required,gt=0" example:"1"`
}

type ItemResponseDTO struct {
	ID          int             `json:"id" example:"1"`
	Name        string          `json:"name" example:"Potion"`
	Description string          `json:"description" example:"Restores 20 HP"`
	Price       decimal.Decimal `json:"price" swaggertype:"number" example:"30"`
	MerchantID  int             `json:"merchant_id" example:"1"`
	UserID      int             `json:"user_id" example:"1"`
}

func (d ItemRequestDTO) ToDomain() domain.Item {
	item := domain.Item{
		Name:        d.Name,
		Description: d.Description,
		MerchantID:  d.MerchantID,
	}
	if d.Price != nil {
		item.Price = *d.Price
	}
	return item
}

func NewItemResponse(i *domain.Item) ItemResponseDTO {
	return ItemResponseDTO{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		MerchantID:  i.MerchantID,
		UserID:      i.UserID,
	}
}
