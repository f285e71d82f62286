package transactions

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/digimon/internal/domain"
	"github.com/GlebRadaev/digimon/internal/dto"
	"github.com/GlebRadaev/digimon/internal/handlers/httperr"
	"github.com/GlebRadaev/digimon/pkg/auth"
	"github.com/GlebRadaev/digimon/pkg/utils"
	"github.com/GlebRadaev/digimon/pkg/validate"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=transactions.go -destination=mock_transactions.go -package=transactions

type Service interface {
	CreateTransaction(ctx context.Context, userID, itemID int, amount *decimal.Decimal) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, id int) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, page int) (*domain.Page[domain.Transaction], error)
	DeleteTransaction(ctx context.Context, id int) error
}

type TransactionHandler struct {
	transactionService Service
}

func New(transactionService Service) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// ListTransactions godoc
//
//	@Summary	List transactions
//	@Tags		Transactions
//	@Produce	json
//	@Param		page	query		int	false	"Page number"	default(1)
//	@Success	200		{object}	dto.PageResponseDTO[dto.TransactionResponseDTO]
//	@Failure	422		{object}	utils.Response	"Invalid page"
//	@Router		/transactions [get]
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	page, ok := validate.Page(w, r)
	if !ok {
		return
	}
	transactions, err := h.transactionService.ListTransactions(r.Context(), page)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPageResponse(transactions, dto.NewTransactionResponse))
}

// CreateTransaction godoc
//
//	@Summary		Buy an item
//	@Description	Debits the item price from the caller's wallet and records the purchase atomically.
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateTransactionRequestDTO	true	"Purchase"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Not enough money"
//	@Failure		401		{object}	utils.Response	"Not authenticated"
//	@Failure		404		{object}	utils.Response	"Wallet or item not found"
//	@Failure		422		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/transactions [post]
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	var req dto.CreateTransactionRequestDTO
	if !validate.DecodeRequest(w, r, &req) {
		return
	}
	transaction, err := h.transactionService.CreateTransaction(r.Context(), userID, req.ItemID, req.Amount)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionResponse(transaction))
}

// GetTransaction godoc
//
//	@Summary	Get a transaction
//	@Tags		Transactions
//	@Produce	json
//	@Param		id	path		int	true	"Transaction ID"
//	@Success	200	{object}	dto.TransactionResponseDTO
//	@Failure	404	{object}	utils.Response	"Transaction not found"
//	@Router		/transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := validate.PathID(w, r)
	if !ok {
		return
	}
	transaction, err := h.transactionService.GetTransaction(r.Context(), id)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionResponse(transaction))
}

// DeleteTransaction godoc
//
//	@Summary		Delete a transaction record
//	@Description	Removes the record only. The wallet is not refunded.
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Transaction ID"
//	@Success		200	{object}	utils.MessageResponse
//	@Failure		404	{object}	utils.Response	"Transaction not found"
//	@Router			/transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := validate.PathID(w, r)
	if !ok {
		return
	}
	if err := h.transactionService.DeleteTransaction(r.Context(), id); err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.MessageResponse{Message: utils.DeleteSuccess})
}
