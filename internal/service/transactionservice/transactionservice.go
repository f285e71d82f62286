package transactionservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/digimon/internal/domain"
	"github.com/GlebRadaev/digimon/internal/pg"
	"github.com/GlebRadaev/digimon/pkg/paginate"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=transactionservice.go -destination=mock_transactionservice.go -package=transactionservice

type TransactionRepo interface {
	Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
	FindByID(ctx context.Context, id int) (*domain.Transaction, error)
	List(ctx context.Context, limit, offset int) ([]domain.Transaction, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type WalletRepo interface {
	FindByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
	Debit(ctx context.Context, walletID int, amount decimal.Decimal) (*domain.Wallet, error)
}

type ItemRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Item, error)
}

var (
	ErrTransactionNotFound = fmt.Errorf("transaction %w", domain.ErrNotFound)
	ErrWalletNotFound      = fmt.Errorf("wallet %w", domain.ErrNotFound)
	ErrItemNotFound        = fmt.Errorf("item %w", domain.ErrNotFound)
	ErrInsufficientFunds   = domain.ErrInsufficientFunds
)

type Service struct {
	transactionRepo TransactionRepo
	walletRepo      WalletRepo
	itemRepo        ItemRepo
	txManager       pg.TXManager
}

func New(transactionRepo TransactionRepo, walletRepo WalletRepo, itemRepo ItemRepo, txManager pg.TXManager) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		walletRepo:      walletRepo,
		itemRepo:        itemRepo,
		txManager:       txManager,
	}
}

// CreateTransaction buys one item for userID. The wallet is debited by the item
// price and the purchase is recorded in the same database transaction, so either
// both happen or neither does. amount is stored as given; nil records the price.
func (s *Service) CreateTransaction(ctx context.Context, userID, itemID int, amount *decimal.Decimal) (*domain.Transaction, error) {
	var transaction *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.walletRepo.FindByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if wallet == nil {
			return ErrWalletNotFound
		}

		item, err := s.itemRepo.FindByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return ErrItemNotFound
		}

		// The balance check and the write are one conditional UPDATE.
		debited, err := s.walletRepo.Debit(ctx, wallet.ID, item.Price)
		if err != nil {
			return err
		}
		if debited == nil {
			// Zero rows also means the wallet vanished after the lookup.
			wallet, err = s.walletRepo.FindByUserID(ctx, userID)
			if err != nil {
				return err
			}
			if wallet == nil {
				return ErrWalletNotFound
			}
			zap.L().Info("purchase rejected",
				zap.Int("user_id", userID),
				zap.Int("item_id", itemID),
				zap.String("price", item.Price.String()),
			)
			return ErrInsufficientFunds
		}

		recorded := item.Price
		if amount != nil {
			recorded = *amount
		}
		transaction, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			Amount:     recorded,
			ItemID:     item.ID,
			UserID:     userID,
			MerchantID: item.MerchantID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("purchase completed",
		zap.Int("transaction_id", transaction.ID),
		zap.Int("user_id", userID),
		zap.Int("item_id", itemID),
	)
	return transaction, nil
}

func (s *Service) GetTransaction(ctx context.Context, id int) (*domain.Transaction, error) {
	transaction, err := s.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, ErrTransactionNotFound
	}
	return transaction, nil
}

func (s *Service) ListTransactions(ctx context.Context, page int) (*domain.Page[domain.Transaction], error) {
	return paginate.Fetch[domain.Transaction](ctx, page, s.transactionRepo.Count, s.transactionRepo.List)
}

// DeleteTransaction removes the record only. It does not refund the wallet.
func (s *Service) DeleteTransaction(ctx context.Context, id int) error {
	deleted, err := s.transactionRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTransactionNotFound
	}
	return nil
}
