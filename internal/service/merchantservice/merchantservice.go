package merchantservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/digimon/internal/domain"
	"github.com/GlebRadaev/digimon/pkg/paginate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=merchantservice.go -destination=mock_merchantservice.go -package=merchantservice

type Repo interface {
	Create(ctx context.Context, merchant *domain.Merchant) (*domain.Merchant, error)
	FindByID(ctx context.Context, id int) (*domain.Merchant, error)
	List(ctx context.Context, limit, offset int) ([]domain.Merchant, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, merchant *domain.Merchant) (*domain.Merchant, error)
	Delete(ctx context.Context, id int) (bool, error)
}

var ErrMerchantNotFound = fmt.Errorf("merchant %w", domain.ErrNotFound)

type Service struct {
	merchantRepo Repo
}

func New(repo Repo) *Service {
	return &Service{
		merchantRepo: repo,
	}
}

// CreateMerchant stores a merchant owned by userID.
func (s *Service) CreateMerchant(ctx context.Context, userID int, merchant domain.Merchant) (*domain.Merchant, error) {
	merchant.UserID = userID
	created, err := s.merchantRepo.Create(ctx, &merchant)
	if err != nil {
		return nil, err
	}
	zap.L().Info("merchant created", zap.Int("id", created.ID), zap.Int("user_id", userID))
	return created, nil
}

func (s *Service) GetMerchant(ctx context.Context, id int) (*domain.Merchant, error) {
	merchant, err := s.merchantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, ErrMerchantNotFound
	}
	return merchant, nil
}

func (s *Service) ListMerchants(ctx context.Context, page int) (*domain.Page[domain.Merchant], error) {
	return paginate.Fetch[domain.Merchant](ctx, page, s.merchantRepo.Count, s.merchantRepo.List)
}

func (s *Service) UpdateMerchant(ctx context.Context, id int, merchant domain.Merchant) (*domain.Merchant, error) {
	merchant.ID = id
	updated, err := s.merchantRepo.Update(ctx, &merchant)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrMerchantNotFound
	}
	return updated, nil
}

func (s *Service) DeleteMerchant(ctx context.Context, id int) error {
	deleted, err := s.merchantRepo.Delete(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrReferenced) {
			zap.L().Error("failed to delete merchant", zap.Int("id", id), zap.Error(err))
		}
		return err
	}
	if !deleted {
		return ErrMerchantNotFound
	}
	return nil
}
