package itemservice

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/GlebRadaev/digimon/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockItemRepo, *MockMerchantRepo) {
	ctrl := gomock.NewController(t)
	itemRepo := NewMockItemRepo(ctrl)
	merchantRepo := NewMockMerchantRepo(ctrl)
	return New(itemRepo, merchantRepo), itemRepo, merchantRepo
}

func TestCreateItem(t *testing.T) {
	service, itemRepo, merchantRepo := NewMock(t)
	price := decimal.NewFromInt(30)
	payload := domain.Item{Name: "Potion", Price: price, MerchantID: 2}

	tests := []struct {
		name          string
		prepareMock   func()
		expected      *domain.Item
		expectedError error
	}{
		{
			name: "Item created",
			prepareMock: func() {
				merchantRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.Merchant{ID: 2}, nil)
				itemRepo.EXPECT().Create(gomock.Any(), &domain.Item{Name: "Potion", Price: price, MerchantID: 2, UserID: 1}).
					Return(&domain.Item{ID: 7, Name: "Potion", Price: price, MerchantID: 2, UserID: 1}, nil)
			},
			expected: &domain.Item{ID: 7, Name: "Potion", Price: price, MerchantID: 2, UserID: 1},
		},
		{
			name: "Merchant missing",
			prepareMock: func() {
				merchantRepo.EXPECT().FindByID(gomock.Any(), 2).Return(nil, nil)
			},
			expectedError: ErrMerchantNotFound,
		},
		{
			name: "Merchant lookup fails",
			prepareMock: func() {
				merchantRepo.EXPECT().FindByID(gomock.Any(), 2).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name: "Merchant deleted between check and insert",
			prepareMock: func() {
				merchantRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.Merchant{ID: 2}, nil)
				itemRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("merchant or owner: %w", domain.ErrInvalidReference))
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			item, err := service.CreateItem(context.Background(), 1, payload)
			if tt.expectedError != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedError, domain.ErrNotFound) {
					assert.ErrorIs(t, err, tt.expectedError)
				} else {
					assert.EqualError(t, err, tt.expectedError.Error())
				}
				assert.Nil(t, item)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, item)
		})
	}
}

func TestGetItem(t *testing.T) {
	service, itemRepo, _ := NewMock(t)

	itemRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.Item{ID: 7}, nil)
	item, err := service.GetItem(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, 7, item.ID)

	itemRepo.EXPECT().FindByID(gomock.Any(), 8).Return(nil, nil)
	_, err = service.GetItem(context.Background(), 8)
	assert.EqualError(t, err, "item not found")
}

func TestListItems(t *testing.T) {
	service, itemRepo, _ := NewMock(t)

	itemRepo.EXPECT().Count(gomock.Any()).Return(0, nil)
	itemRepo.EXPECT().List(gomock.Any(), 50, 50).Return([]domain.Item{}, nil)
	page, err := service.ListItems(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, 0, page.PageCount)
	assert.Equal(t, 2, page.Page)
	assert.Empty(t, page.Items)

	itemRepo.EXPECT().Count(gomock.Any()).Return(3, nil)
	itemRepo.EXPECT().List(gomock.Any(), 50, 0).Return(nil, errors.New("db error"))
	_, err = service.ListItems(context.Background(), 1)
	assert.Error(t, err)
}

func TestUpdateItem(t *testing.T) {
	service, itemRepo, merchantRepo := NewMock(t)
	price := decimal.NewFromInt(45)

	merchantRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.Merchant{ID: 2}, nil)
	itemRepo.EXPECT().Update(gomock.Any(), &domain.Item{ID: 7, Name: "Super Potion", Price: price, MerchantID: 2}).
		Return(&domain.Item{ID: 7, Name: "Super Potion", Price: price, MerchantID: 2, UserID: 1}, nil)
	item, err := service.UpdateItem(context.Background(), 7, domain.Item{Name: "Super Potion", Price: price, MerchantID: 2})
	assert.NoError(t, err)
	assert.Equal(t, "Super Potion", item.Name)

	merchantRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.Merchant{ID: 2}, nil)
	itemRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, nil)
	_, err = service.UpdateItem(context.Background(), 8, domain.Item{Name: "Super Potion", Price: price, MerchantID: 2})
	assert.ErrorIs(t, err, ErrItemNotFound)

	merchantRepo.EXPECT().FindByID(gomock.Any(), 3).Return(nil, nil)
	_, err = service.UpdateItem(context.Background(), 7, domain.Item{Name: "Super Potion", Price: price, MerchantID: 3})
	assert.ErrorIs(t, err, ErrMerchantNotFound)
}

func TestDeleteItem(t *testing.T) {
	service, itemRepo, _ := NewMock(t)

	itemRepo.EXPECT().Delete(gomock.Any(), 7).Return(true, nil)
	assert.NoError(t, service.DeleteItem(context.Background(), 7))

	itemRepo.EXPECT().Delete(gomock.Any(), 7).Return(false, nil)
	assert.ErrorIs(t, service.DeleteItem(context.Background(), 7), ErrItemNotFound)

	itemRepo.EXPECT().Delete(gomock.Any(), 7).Return(false, fmt.Errorf("item %w", domain.ErrReferenced))
	assert.ErrorIs(t, service.DeleteItem(context.Background(), 7), domain.ErrReferenced)
}
