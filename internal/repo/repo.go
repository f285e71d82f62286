package repo

import (
	"github.com/GlebRadaev/digimon/internal/pg"
	itemrepo "github.com/GlebRadaev/digimon/internal/repo/item-repo"
	merchantrepo "github.com/GlebRadaev/digimon/internal/repo/merchant-repo"
	transactionrepo "github.com/GlebRadaev/digimon/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/digimon/internal/repo/user-repo"
	walletrepo "github.com/GlebRadaev/digimon/internal/repo/wallet-repo"
	"github.com/GlebRadaev/digimon/internal/service/itemservice"
	"github.com/GlebRadaev/digimon/internal/service/merchantservice"
	"github.com/GlebRadaev/digimon/internal/service/transactionservice"
	"github.com/GlebRadaev/digimon/internal/service/userservice"
	"github.com/GlebRadaev/digimon/internal/service/walletservice"
)

// WalletRepo serves both wallet management and purchases.
type WalletRepo interface {
	walletservice.Repo
	transactionservice.WalletRepo
}

type Repositories struct {
	UserRepo        userservice.Repo
	MerchantRepo    merchantservice.Repo
	ItemRepo        itemservice.ItemRepo
	WalletRepo      WalletRepo
	TransactionRepo transactionservice.TransactionRepo
	TxManager       pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		MerchantRepo:    merchantrepo.New(conn),
		ItemRepo:        itemrepo.New(conn),
		WalletRepo:      walletrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		TxManager:       txManager,
	}
}
