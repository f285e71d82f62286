package merchants

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/digimon/internal/domain"
	"github.com/GlebRadaev/digimon/internal/service/merchantservice"
	"github.com/GlebRadaev/digimon/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*MerchantHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withUser(r *http.Request, userID int) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, userID))
}

var pokeMart = domain.Merchant{Name: "Poke Mart", Description: "Potions", TaxID: "7707083893"}

func TestListMerchantsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListMerchants(gomock.Any(), 2).Return(&domain.Page[domain.Merchant]{
		Items:       []domain.Merchant{{ID: 51, Name: "Poke Mart", TaxID: "7707083893", UserID: 1}},
		Page:        2,
		PageCount:   2,
		SizePerPage: 50,
	}, nil)

	w := httptest.NewRecorder()
	handler.ListMerchants(w, httptest.NewRequest(http.MethodGet, "/merchants?page=2", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[{"id":51,"name":"Poke Mart","description":"","tax_id":"7707083893","user_id":1}],"page":2,"page_count":2,"size_per_page":50}`, w.Body.String())
}

func TestCreateMerchantHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		userID       int
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name:   "Created for caller",
			body:   `{"name":"Poke Mart","description":"Potions","tax_id":"7707083893"}`,
			userID: 1,
			prepareMock: func() {
				service.EXPECT().CreateMerchant(gomock.Any(), 1, pokeMart).
					Return(&domain.Merchant{ID: 1, Name: "Poke Mart", Description: "Potions", TaxID: "7707083893", UserID: 1}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":1,"name":"Poke Mart","description":"Potions","tax_id":"7707083893","user_id":1}`,
		},
		{
			name:         "Anonymous caller",
			body:         `{"name":"Poke Mart","tax_id":"7707083893"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Missing tax id",
			body:         `{"name":"Poke Mart"}`,
			userID:       1,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:   "Service error",
			body:   `{"name":"Poke Mart","description":"Potions","tax_id":"7707083893"}`,
			userID: 1,
			prepareMock: func() {
				service.EXPECT().CreateMerchant(gomock.Any(), 1, pokeMart).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"detail":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/merchants", bytes.NewBufferString(tt.body))
			if tt.userID != 0 {
				r = withUser(r, tt.userID)
			}
			w := httptest.NewRecorder()
			handler.CreateMerchant(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestGetMerchantHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetMerchant(gomock.Any(), 3).Return(nil, merchantservice.ErrMerchantNotFound)
	w := httptest.NewRecorder()
	handler.GetMerchant(w, withID(httptest.NewRequest(http.MethodGet, "/merchants/3", nil), "3"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"merchant not found"}`, w.Body.String())

	w = httptest.NewRecorder()
	handler.GetMerchant(w, withID(httptest.NewRequest(http.MethodGet, "/merchants/0", nil), "0"))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpdateMerchantHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Updated",
			prepareMock: func() {
				service.EXPECT().UpdateMerchant(gomock.Any(), 1, pokeMart).
					Return(&domain.Merchant{ID: 1, Name: "Poke Mart", Description: "Potions", TaxID: "7707083893", UserID: 1}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown merchant",
			prepareMock: func() {
				service.EXPECT().UpdateMerchant(gomock.Any(), 1, pokeMart).Return(nil, merchantservice.ErrMerchantNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			body := bytes.NewBufferString(`{"name":"Poke Mart","description":"Potions","tax_id":"7707083893"}`)
			w := httptest.NewRecorder()
			handler.UpdateMerchant(w, withID(httptest.NewRequest(http.MethodPut, "/merchants/1", body), "1"))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestDeleteMerchantHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "Deleted", expectedCode: http.StatusOK},
		{name: "Unknown merchant", err: merchantservice.ErrMerchantNotFound, expectedCode: http.StatusNotFound},
		{name: "Still referenced", err: domain.ErrReferenced, expectedCode: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service.EXPECT().DeleteMerchant(gomock.Any(), 5).Return(tt.err)
			w := httptest.NewRecorder()
			handler.DeleteMerchant(w, withID(httptest.NewRequest(http.MethodDelete, "/merchants/5", nil), "5"))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
