package dto

import "github.com/GlebRadaev/digimon/internal/domain"

type MerchantRequestDTO struct {
	Name        string `json:"name" validate:"required,max=255" example:"Poke Mart"`
	Description string `json:"description" validate:"max=1000" example:"Potions and balls"`
	TaxID       string `json:"tax_id" validate:"required,max=32" example:"7707083893"`
}

type MerchantResponseDTO struct {
	ID          int    `json:"id" example:"1"`
	Name        string `json:"name" example:"Poke Mart"`
	Description string `json:"description" example:"Potions and balls"`
	TaxID       string `json:"tax_id" example:"7707083893"`
	UserID      int    `json:"user_id" example:"1"`
}

func (d MerchantRequestDTO) ToDomain() domain.Merchant {
	return domain.Merchant{
		Name:        d.Name,
		Description: d.Description,
		TaxID:       d.TaxID,
	}
}

func NewMerchantResponse(m *domain.Merchant) MerchantResponseDTO {
	return MerchantResponseDTO{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		TaxID:       m.TaxID,
		UserID:      m.UserID,
	}
}
