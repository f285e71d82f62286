// Package paginate implements the fixed-size offset pagination used by every listing.
package paginate

import (
	"context"
	"fmt"
	"math"

	"github.com/GlebRadaev/digimon/internal/domain"
)

const SizePerPage = 50

// MaxPage is the last page whose offset fits in an int.
const MaxPage = math.MaxInt / SizePerPage

// Normalize clamps page numbers into [1, MaxPage].
func Normalize(page int) int {
	switch {
	case page < 1:
		return 1
	case page > MaxPage:
		return MaxPage
	}
	return page
}

func Offset(page int) int {
	return (Normalize(page) - 1) * SizePerPage
}

// PageCount is ceil(total / SizePerPage), zero for an empty listing.
func PageCount(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + SizePerPage - 1) / SizePerPage
}

type CountFunc func(ctx context.Context) (int, error)

type ListFunc[T any] func(ctx context.Context, limit, offset int) ([]T, error)

// Fetch loads one normalized page of a listing and its page count.
func Fetch[T any](ctx context.Context, page int, count CountFunc, list ListFunc[T]) (*domain.Page[T], error) {
	page = Normalize(page)
	total, err := count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}
	items, err := list(ctx, SizePerPage, Offset(page))
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	return &domain.Page[T]{
		Items:       items,
		Page:        page,
		PageCount:   PageCount(total),
		SizePerPage: SizePerPage,
	}, nil
}
