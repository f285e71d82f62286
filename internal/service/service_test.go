package service

import (
	"testing"
	"time"

	"github.com/GlebRadaev/digimon/internal/pg"
	"github.com/GlebRadaev/digimon/internal/repo"
	"github.com/GlebRadaev/digimon/internal/service/authservice"
	"github.com/GlebRadaev/digimon/internal/service/transactionservice"
	"github.com/GlebRadaev/digimon/internal/service/walletservice"
	"github.com/GlebRadaev/digimon/pkg/auth"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB, pg.NewMockTXManager(ctrl))
	services := New(repos, auth.NewMockHashServiceInterface(ctrl), auth.NewMockJWTServiceInterface(ctrl), time.Hour)

	assert.IsType(t, &authservice.Service{}, services.AuthService)
	assert.NotNil(t, services.UserService)
	assert.NotNil(t, services.MerchantService)
	assert.NotNil(t, services.ItemService)
	assert.IsType(t, &walletservice.Service{}, services.WalletService)
	assert.IsType(t, &transactionservice.Service{}, services.TransactionService)
}
