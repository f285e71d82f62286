package service

import (
	"time"

	"github.com/GlebRadaev/digimon/internal/handlers/auth"
	"github.com/GlebRadaev/digimon/internal/handlers/items"
	"github.com/GlebRadaev/digimon/internal/handlers/merchants"
	"github.com/GlebRadaev/digimon/internal/handlers/transactions"
	"github.com/GlebRadaev/digimon/internal/handlers/users"
	"github.com/GlebRadaev/digimon/internal/handlers/wallets"

	pkgauth "github.com/GlebRadaev/digimon/pkg/auth"

	"github.com/GlebRadaev/digimon/internal/repo"
	authservice "github.com/GlebRadaev/digimon/internal/service/authservice"
	itemservice "github.com/GlebRadaev/digimon/internal/service/itemservice"
	merchantservice "github.com/GlebRadaev/digimon/internal/service/merchantservice"
	transactionservice "github.com/GlebRadaev/digimon/internal/service/transactionservice"
	userservice "github.com/GlebRadaev/digimon/internal/service/userservice"
	walletservice "github.com/GlebRadaev/digimon/internal/service/walletservice"
)

type Services struct {
	AuthService        auth.Service
	UserService        users.Service
	MerchantService    merchants.Service
	ItemService        items.Service
	WalletService      wallets.Service
	TransactionService transactions.Service
}

func New(repo *repo.Repositories, hash pkgauth.HashServiceInterface, tokens pkgauth.JWTServiceInterface, tokenTTL time.Duration) *Services {
	return &Services{
		AuthService:     authservice.New(repo.UserRepo, hash, tokens, tokenTTL),
		UserService:     userservice.New(repo.UserRepo, hash),
		MerchantService: merchantservice.New(repo.MerchantRepo),
		ItemService:     itemservice.New(repo.ItemRepo, repo.MerchantRepo),
		WalletService:   walletservice.New(repo.WalletRepo, repo.TxManager),
		TransactionService: transactionservice.New(
			repo.TransactionRepo,
			repo.WalletRepo,
			repo.ItemRepo,
			repo.TxManager,
		),
	}
}
