package handlers

import (
	"net/http"
	"time"

	_ "github.com/GlebRadaev/digimon/docs"
	"github.com/GlebRadaev/digimon/internal/config"
	authhandlers "github.com/GlebRadaev/digimon/internal/handlers/auth"
	itemhandlers "github.com/GlebRadaev/digimon/internal/handlers/items"
	merchanthandlers "github.com/GlebRadaev/digimon/internal/handlers/merchants"
	transactionhandlers "github.com/GlebRadaev/digimon/internal/handlers/transactions"
	userhandlers "github.com/GlebRadaev/digimon/internal/handlers/users"
	wallethandlers "github.com/GlebRadaev/digimon/internal/handlers/wallets"
	"github.com/GlebRadaev/digimon/internal/service"
	"github.com/GlebRadaev/digimon/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	ListUsers(w http.ResponseWriter, r *http.Request)
	CreateUser(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
}

type MerchantHandler interface {
	ListMerchants(w http.ResponseWriter, r *http.Request)
	CreateMerchant(w http.ResponseWriter, r *http.Request)
	GetMerchant(w http.ResponseWriter, r *http.Request)
	UpdateMerchant(w http.ResponseWriter, r *http.Request)
	DeleteMerchant(w http.ResponseWriter, r *http.Request)
}

type ItemHandler interface {
	ListItems(w http.ResponseWriter, r *http.Request)
	CreateItem(w http.ResponseWriter, r *http.Request)
	GetItem(w http.ResponseWriter, r *http.Request)
	UpdateItem(w http.ResponseWriter, r *http.Request)
	DeleteItem(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	ListWallets(w http.ResponseWriter, r *http.Request)
	GetMyWallet(w http.ResponseWriter, r *http.Request)
	GetWallet(w http.ResponseWriter, r *http.Request)
	AddBalance(w http.ResponseWriter, r *http.Request)
	CreateWallet(w http.ResponseWriter, r *http.Request)
	DeleteMyWallet(w http.ResponseWriter, r *http.Request)
}

type TransactionHandler interface {
	ListTransactions(w http.ResponseWriter, r *http.Request)
	CreateTransaction(w http.ResponseWriter, r *http.Request)
	GetTransaction(w http.ResponseWriter, r *http.Request)
	DeleteTransaction(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	UserHandler        UserHandler
	MerchantHandler    MerchantHandler
	ItemHandler        ItemHandler
	WalletHandler      WalletHandler
	TransactionHandler TransactionHandler

	tokens         auth.JWTServiceInterface
	requestTimeout time.Duration
	allowedOrigins []string
}

func New(s *service.Services, tokens auth.JWTServiceInterface, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		UserHandler:        userhandlers.New(s.UserService),
		MerchantHandler:    merchanthandlers.New(s.MerchantService),
		ItemHandler:        itemhandlers.New(s.ItemService),
		WalletHandler:      wallethandlers.New(s.WalletService),
		TransactionHandler: transactionhandlers.New(s.TransactionService),

		tokens:         tokens,
		requestTimeout: cfg.RequestTimeout,
		allowedOrigins: cfg.AllowedOrigins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins: h.allowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		}),
	)
	if h.requestTimeout > 0 {
		r.Use(middleware.Timeout(h.requestTimeout))
	}

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Post("/auth/login", h.AuthHandler.Login)

	// reads and registration are public
	r.Get("/users", h.UserHandler.ListUsers)
	r.Post("/users", h.UserHandler.CreateUser)
	r.Get("/users/{id}", h.UserHandler.GetUser)
	r.Get("/merchants", h.MerchantHandler.ListMerchants)
	r.Get("/merchants/{id}", h.MerchantHandler.GetMerchant)
	r.Get("/items", h.ItemHandler.ListItems)
	r.Get("/items/{id}", h.ItemHandler.GetItem)
	r.Get("/wallets", h.WalletHandler.ListWallets)
	r.Get("/wallets/{id}", h.WalletHandler.GetWallet)
	r.Get("/transactions", h.TransactionHandler.ListTransactions)
	r.Get("/transactions/{id}", h.TransactionHandler.GetTransaction)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.tokens))

		r.Put("/users/{id}", h.UserHandler.UpdateUser)
		r.Delete("/users/{id}", h.UserHandler.DeleteUser)
		r.Post("/merchants", h.MerchantHandler.CreateMerchant)
		r.Put("/merchants/{id}", h.MerchantHandler.UpdateMerchant)
		r.Delete("/merchants/{id}", h.MerchantHandler.DeleteMerchant)
		r.Post("/items", h.ItemHandler.CreateItem)
		r.Put("/items/{id}", h.ItemHandler.UpdateItem)
		r.Delete("/items/{id}", h.ItemHandler.DeleteItem)
		r.Post("/wallets", h.WalletHandler.CreateWallet)
		r.Get("/wallets/me", h.WalletHandler.GetMyWallet)
		r.Delete("/wallets/me", h.WalletHandler.DeleteMyWallet)
		r.Put("/wallets/balance/{amount}", h.WalletHandler.AddBalance)
		r.Post("/transactions", h.TransactionHandler.CreateTransaction)
		r.Delete("/transactions/{id}", h.TransactionHandler.DeleteTransaction)
	})

	return r
}
