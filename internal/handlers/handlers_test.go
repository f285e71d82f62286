package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/digimon/internal/config"
	"github.com/GlebRadaev/digimon/internal/handlers/auth"
	"github.com/GlebRadaev/digimon/internal/handlers/items"
	"github.com/GlebRadaev/digimon/internal/handlers/merchants"
	"github.com/GlebRadaev/digimon/internal/handlers/transactions"
	"github.com/GlebRadaev/digimon/internal/handlers/users"
	"github.com/GlebRadaev/digimon/internal/handlers/wallets"
	"github.com/GlebRadaev/digimon/internal/service"
	pkgauth "github.com/GlebRadaev/digimon/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:        auth.NewMockService(ctrl),
		UserService:        users.NewMockService(ctrl),
		MerchantService:    merchants.NewMockService(ctrl),
		ItemService:        items.NewMockService(ctrl),
		WalletService:      wallets.NewMockService(ctrl),
		TransactionService: transactions.NewMockService(ctrl),
	}

	h := New(services, pkgauth.NewMockJWTServiceInterface(ctrl), &config.Config{RequestTimeout: time.Second})
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.Equal(t, time.Second, h.requestTimeout)
}

func newRouter(t *testing.T) (chi.Router, *pkgauth.MockJWTServiceInterface, *MockWalletHandler) {
	ctrl := gomock.NewController(t)

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockUserHandler := NewMockUserHandler(ctrl)
	mockMerchantHandler := NewMockMerchantHandler(ctrl)
	mockItemHandler := NewMockItemHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockTransactionHandler := NewMockTransactionHandler(ctrl)
	tokens := pkgauth.NewMockJWTServiceInterface(ctrl)

	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().ListUsers(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().CreateUser(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().GetUser(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().DeleteUser(gomock.Any(), gomock.Any()).AnyTimes()
	mockMerchantHandler.EXPECT().ListMerchants(gomock.Any(), gomock.Any()).AnyTimes()
	mockMerchantHandler.EXPECT().CreateMerchant(gomock.Any(), gomock.Any()).AnyTimes()
	mockMerchantHandler.EXPECT().GetMerchant(gomock.Any(), gomock.Any()).AnyTimes()
	mockMerchantHandler.EXPECT().UpdateMerchant(gomock.Any(), gomock.Any()).AnyTimes()
	mockMerchantHandler.EXPECT().DeleteMerchant(gomock.Any(), gomock.Any()).AnyTimes()
	mockItemHandler.EXPECT().ListItems(gomock.Any(), gomock.Any()).AnyTimes()
	mockItemHandler.EXPECT().CreateItem(gomock.Any(), gomock.Any()).AnyTimes()
	mockItemHandler.EXPECT().GetItem(gomock.Any(), gomock.Any()).AnyTimes()
	mockItemHandler.EXPECT().UpdateItem(gomock.Any(), gomock.Any()).AnyTimes()
	mockItemHandler.EXPECT().DeleteItem(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().ListWallets(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().CreateWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().AddBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().DeleteMyWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransactionHandler.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransactionHandler.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransactionHandler.EXPECT().GetTransaction(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransactionHandler.EXPECT().DeleteTransaction(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:        mockAuthHandler,
		UserHandler:        mockUserHandler,
		MerchantHandler:    mockMerchantHandler,
		ItemHandler:        mockItemHandler,
		WalletHandler:      mockWalletHandler,
		TransactionHandler: mockTransactionHandler,
		tokens:             tokens,
		allowedOrigins:     []string{"*"},
	}

	router := chi.NewRouter()
	h.InitRoutes(router)
	return router, tokens, mockWalletHandler
}

func TestInitRoutes(t *testing.T) {
	router, _, wallet := newRouter(t)
	wallet.EXPECT().GetMyWallet(gomock.Any(), gomock.Any()).Times(0)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/auth/login", http.StatusOK},
		{"GET", "/users", http.StatusOK},
		{"POST", "/users", http.StatusOK},
		{"GET", "/users/1", http.StatusOK},
		{"PUT", "/users/1", http.StatusUnauthorized},
		{"DELETE", "/users/1", http.StatusUnauthorized},
		{"GET", "/merchants", http.StatusOK},
		{"GET", "/merchants/1", http.StatusOK},
		{"POST", "/merchants", http.StatusUnauthorized},
		{"PUT", "/merchants/1", http.StatusUnauthorized},
		{"DELETE", "/merchants/1", http.StatusUnauthorized},
		{"GET", "/items", http.StatusOK},
		{"GET", "/items/1", http.StatusOK},
		{"POST", "/items", http.StatusUnauthorized},
		{"PUT", "/items/1", http.StatusUnauthorized},
		{"DELETE", "/items/1", http.StatusUnauthorized},
		{"GET", "/wallets", http.StatusOK},
		{"GET", "/wallets/1", http.StatusOK},
		{"GET", "/wallets/me", http.StatusUnauthorized},
		{"POST", "/wallets", http.StatusUnauthorized},
		{"PUT", "/wallets/balance/10", http.StatusUnauthorized},
		{"DELETE", "/wallets/me", http.StatusUnauthorized},
		{"GET", "/transactions", http.StatusOK},
		{"GET", "/transactions/1", http.StatusOK},
		{"POST", "/transactions", http.StatusUnauthorized},
		{"DELETE", "/transactions/1", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestInitRoutes_Authenticated(t *testing.T) {
	router, tokens, wallet := newRouter(t)
	tokens.EXPECT().ValidateToken("good").Return(&pkgauth.Claims{UserID: 1}, nil).Times(2)
	wallet.EXPECT().GetMyWallet(gomock.Any(), gomock.Any()).
		Do(func(_ http.ResponseWriter, r *http.Request) {
			id, ok := pkgauth.UserID(r.Context())
			assert.True(t, ok)
			assert.Equal(t, 1, id)
		})

	for _, target := range []string{"/wallets/me", "/transactions"} {
		method := http.MethodGet
		if target == "/transactions" {
			method = http.MethodPost
		}
		req := httptest.NewRequest(method, target, nil)
		req.Header.Set("Authorization", "Bearer good")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, target)
	}
}
