package dto

import (
	"github.com/GlebRadaev/digimon/internal/domain"
	"github.com/shopspring/decimal"
)

func init() {
	// Money goes over the wire as a JSON number.
	decimal.MarshalJSONWithoutQuotes = true
}

type PageResponseDTO[T any] struct {
	Items       []T `json:"items"`
	Page        int `json:"page" example:"1"`
	PageCount   int `json:"page_count" example:"3"`
	SizePerPage int `json:"size_per_page" example:"50"`
}

// NewPageResponse converts a domain page, always emitting a non-nil items array.
func NewPageResponse[E any, T any](p *domain.Page[E], convert func(*E) T) PageResponseDTO[T] {
	items := make([]T, 0, len(p.Items))
	for i := range p.Items {
		items = append(items, convert(&p.Items[i]))
	}
	return PageResponseDTO[T]{
		Items:       items,
		Page:        p.Page,
		PageCount:   p.PageCount,
		SizePerPage: p.SizePerPage,
	}
}
