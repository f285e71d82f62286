package items

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/digimon/internal/domain"
	"github.com/GlebRadaev/digimon/internal/service/itemservice"
	"github.com/GlebRadaev/digimon/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ItemHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListItemsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListItems(gomock.Any(), 1).Return(&domain.Page[domain.Item]{
		Items:       []domain.Item{{ID: 1, Name: "Potion", Price: decimal.RequireFromString("30.50"), MerchantID: 2, UserID: 3}},
		Page:        1,
		PageCount:   1,
		SizePerPage: 50,
	}, nil)

	w := httptest.NewRecorder()
	handler.ListItems(w, httptest.NewRequest(http.MethodGet, "/items", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[{"id":1,"name":"Potion","description":"","price":30.5,"merchant_id":2,"user_id":3}],"page":1,"page_count":1,"size_per_page":50}`, w.Body.String())
}

func TestCreateItemHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Created",
			body: `{"name":"Potion","description":"Restores 20 HP","price":30,"merchant_id":2}`,
			prepareMock: func() {
				service.EXPECT().CreateItem(gomock.Any(), 3, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int, item domain.Item) (*domain.Item, error) {
						assert.Equal(t, "Potion", item.Name)
						assert.True(t, item.Price.Equal(decimal.NewFromInt(30)))
						assert.Equal(t, 2, item.MerchantID)
						item.ID, item.UserID = 1, 3
						return &item, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown merchant",
			body: `{"name":"Potion","price":30,"merchant_id":9}`,
			prepareMock: func() {
				service.EXPECT().CreateItem(gomock.Any(), 3, gomock.Any()).Return(nil, itemservice.ErrMerchantNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Negative price",
			body:         `{"name":"Potion","price":-1,"merchant_id":2}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Missing price",
			body:         `{"name":"Potion","merchant_id":2}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/items", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 3))
			w := httptest.NewRecorder()
			handler.CreateItem(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetItemHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetItem(gomock.Any(), 1).
		Return(&domain.Item{ID: 1, Name: "Potion", Price: decimal.NewFromInt(30), MerchantID: 2, UserID: 3}, nil)
	w := httptest.NewRecorder()
	handler.GetItem(w, withID(httptest.NewRequest(http.MethodGet, "/items/1", nil), "1"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Potion","description":"","price":30,"merchant_id":2,"user_id":3}`, w.Body.String())

	service.EXPECT().GetItem(gomock.Any(), 2).Return(nil, itemservice.ErrItemNotFound)
	w = httptest.NewRecorder()
	handler.GetItem(w, withID(httptest.NewRequest(http.MethodGet, "/items/2", nil), "2"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"item not found"}`, w.Body.String())
}

func TestUpdateItemHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().UpdateItem(gomock.Any(), 1, gomock.Any()).Return(nil, itemservice.ErrItemNotFound)
	body := bytes.NewBufferString(`{"name":"Potion","price":25,"merchant_id":2}`)
	w := httptest.NewRecorder()
	handler.UpdateItem(w, withID(httptest.NewRequest(http.MethodPut, "/items/1", body), "1"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	handler.UpdateItem(w, withID(httptest.NewRequest(http.MethodPut, "/items/1", bytes.NewBufferString(`{}`)), "1"))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDeleteItemHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().DeleteItem(gomock.Any(), 1).Return(nil)
	w := httptest.NewRecorder()
	handler.DeleteItem(w, withID(httptest.NewRequest(http.MethodDelete, "/items/1", nil), "1"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"delete success"}`, w.Body.String())
}
