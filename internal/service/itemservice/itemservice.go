package itemservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/digimon/internal/domain"
	"github.com/GlebRadaev/digimon/pkg/paginate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=itemservice.go -destination=mock_itemservice.go -package=itemservice

type ItemRepo interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	FindByID(ctx context.Context, id int) (*domain.Item, error)
	List(ctx context.Context, limit, offset int) ([]domain.Item, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, item *domain.Item) (*domain.Item, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type MerchantRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Merchant, error)
}

var (
	ErrItemNotFound     = fmt.Errorf("item %w", domain.ErrNotFound)
	ErrMerchantNotFound = fmt.Errorf("merchant %w", domain.ErrNotFound)
)

type Service struct {
	itemRepo     ItemRepo
	merchantRepo MerchantRepo
}

func New(itemRepo ItemRepo, merchantRepo MerchantRepo) *Service {
	return &Service{
		itemRepo:     itemRepo,
		merchantRepo: merchantRepo,
	}
}

func (s *Service) ensureMerchant(ctx context.Context, merchantID int) error {
	merchant, err := s.merchantRepo.FindByID(ctx, merchantID)
	if err != nil {
		return err
	}
	if merchant == nil {
		return ErrMerchantNotFound
	}
	return nil
}

// CreateItem stores an item owned by userID under an existing merchant.
func (s *Service) CreateItem(ctx context.Context, userID int, item domain.Item) (*domain.Item, error) {
	if err := s.ensureMerchant(ctx, item.MerchantID); err != nil {
		return nil, err
	}
	item.UserID = userID
	created, err := s.itemRepo.Create(ctx, &item)
	if err != nil {
		return nil, err
	}
	zap.L().Info("item created", zap.Int("id", created.ID), zap.Int("merchant_id", created.MerchantID))
	return created, nil
}

func (s *Service) GetItem(ctx context.Context, id int) (*domain.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (s *Service) ListItems(ctx context.Context, page int) (*domain.Page[domain.Item], error) {
	return paginate.Fetch[domain.Item](ctx, page, s.itemRepo.Count, s.itemRepo.List)
}

func (s *Service) UpdateItem(ctx context.Context, id int, item domain.Item) (*domain.Item, error) {
	if err := s.ensureMerchant(ctx, item.MerchantID); err != nil {
		return nil, err
	}
	item.ID = id
	updated, err := s.itemRepo.Update(ctx, &item)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrItemNotFound
	}
	return updated, nil
}

func (s *Service) DeleteItem(ctx context.Context, id int) error {
	deleted, err := s.itemRepo.Delete(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrReferenced) {
			zap.L().Error("failed to delete item", zap.Int("id", id), zap.Error(err))
		}
		return err
	}
	if !deleted {
		return ErrItemNotFound
	}
	return nil
}
