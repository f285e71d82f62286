package walletservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/digimon/internal/domain"
	"github.com/GlebRadaev/digimon/internal/pg"
	"github.com/GlebRadaev/digimon/pkg/paginate"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=walletservice.go -destination=mock_walletservice.go -package=walletservice

type Repo interface {
	Create(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error)
	FindByID(ctx context.Context, id int) (*domain.Wallet, error)
	FindByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
	List(ctx context.Context, limit, offset int) ([]domain.Wallet, error)
	Count(ctx context.Context) (int, error)
	AddBalance(ctx context.Context, userID int, delta decimal.Decimal) (*domain.Wallet, error)
	DeleteByUserID(ctx context.Context, userID int) (bool, error)
}

var (
	ErrWalletNotFound    = fmt.Errorf("wallet %w", domain.ErrNotFound)
	ErrInsufficientFunds = domain.ErrInsufficientFunds
)

type Service struct {
	walletRepo Repo
	txManager  pg.TXManager
}

func New(walletRepo Repo, txManager pg.TXManager) *Service {
	return &Service{
		walletRepo: walletRepo,
		txManager:  txManager,
	}
}

// CreateWallet opens the single wallet a user may have.
func (s *Service) CreateWallet(ctx context.Context, userID int, balance decimal.Decimal) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.Create(ctx, &domain.Wallet{Balance: balance, UserID: userID})
	if err != nil {
		return nil, err
	}
	zap.L().Info("wallet created", zap.Int("id", wallet.ID), zap.Int("user_id", userID))
	return wallet, nil
}

func (s *Service) GetWallet(ctx context.Context, id int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	return wallet, nil
}

func (s *Service) GetUserWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	return wallet, nil
}

func (s *Service) ListWallets(ctx context.Context, page int) (*domain.Page[domain.Wallet], error) {
	return paginate.Fetch[domain.Wallet](ctx, page, s.walletRepo.Count, s.walletRepo.List)
}

// AddBalance applies a signed delta to the user's wallet. A delta that would
// drive the balance below zero fails with ErrInsufficientFunds.
func (s *Service) AddBalance(ctx context.Context, userID int, delta decimal.Decimal) (*domain.Wallet, error) {
	var wallet *domain.Wallet
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.walletRepo.FindByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if current == nil {
			return ErrWalletNotFound
		}
		wallet, err = s.walletRepo.AddBalance(ctx, userID, delta)
		if err != nil {
			return err
		}
		if wallet == nil {
			return ErrInsufficientFunds
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("wallet balance changed",
		zap.Int("user_id", userID),
		zap.String("delta", delta.String()),
		zap.String("balance", wallet.Balance.String()),
	)
	return wallet, nil
}

func (s *Service) DeleteUserWallet(ctx context.Context, userID int) error {
	deleted, err := s.walletRepo.DeleteByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrWalletNotFound
	}
	return nil
}
