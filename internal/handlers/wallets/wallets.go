package wallets

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/digimon/internal/domain"
	"github.com/GlebRadaev/digimon/internal/dto"
	"github.com/GlebRadaev/digimon/internal/handlers/httperr"
	"github.com/GlebRadaev/digimon/pkg/auth"
	"github.com/GlebRadaev/digimon/pkg/utils"
	"github.com/GlebRadaev/digimon/pkg/validate"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=wallets.go -destination=mock_wallets.go -package=wallets

type Service interface {
	CreateWallet(ctx context.Context, userID int, balance decimal.Decimal) (*domain.Wallet, error)
	GetWallet(ctx context.Context, id int) (*domain.Wallet, error)
	GetUserWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	ListWallets(ctx context.Context, page int) (*domain.Page[domain.Wallet], error)
	AddBalance(ctx context.Context, userID int, delta decimal.Decimal) (*domain.Wallet, error)
	DeleteUserWallet(ctx context.Context, userID int) error
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// ListWallets godoc
//
//	@Summary	List wallets
//	@Tags		Wallets
//	@Produce	json
//	@Param		page	query		int	false	"Page number"	default(1)
//	@Success	200		{object}	dto.PageResponseDTO[dto.WalletResponseDTO]
//	@Failure	422		{object}	utils.Response	"Invalid page"
//	@Router		/wallets [get]
func (h *WalletHandler) ListWallets(w http.ResponseWriter, r *http.Request) {
	page, ok := validate.Page(w, r)
	if !ok {
		return
	}
	wallets, err := h.walletService.ListWallets(r.Context(), page)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPageResponse(wallets, dto.NewWalletResponse))
}

// GetMyWallet godoc
//
//	@Summary	Get the caller's wallet
//	@Tags		Wallets
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.WalletResponseDTO
//	@Failure	401	{object}	utils.Response	"Not authenticated"
//	@Failure	404	{object}	utils.Response	"Wallet not found"
//	@Router		/wallets/me [get]
func (h *WalletHandler) GetMyWallet(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	wallet, err := h.walletService.GetUserWallet(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWalletResponse(wallet))
}

// GetWallet godoc
//
//	@Summary	Get a wallet
//	@Tags		Wallets
//	@Produce	json
//	@Param		id	path		int	true	"Wallet ID"
//	@Success	200	{object}	dto.WalletResponseDTO
//	@Failure	404	{object}	utils.Response	"Wallet not found"
//	@Router		/wallets/{id} [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	id, ok := validate.PathID(w, r)
	if !ok {
		return
	}
	wallet, err := h.walletService.GetWallet(r.Context(), id)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWalletResponse(wallet))
}

// AddBalance godoc
//
//	@Summary		Adjust the caller's balance
//	@Description	Adds amount to the caller's wallet. A negative amount withdraws, but never below zero.
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Produce		json
//	@Param			amount	path		number	true	"Amount to add"
//	@Success		200		{object}	dto.WalletResponseDTO
//	@Failure		400		{object}	utils.Response	"Not enough money"
//	@Failure		401		{object}	utils.Response	"Not authenticated"
//	@Failure		404		{object}	utils.Response	"Wallet not found"
//	@Failure		422		{object}	utils.Response	"Invalid amount"
//	@Router			/wallets/balance/{amount} [put]
func (h *WalletHandler) AddBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	raw := chi.URLParam(r, "amount")
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		utils.RespondWithValidationError(w, map[string]string{"amount": "amount must be a number, got \"" + raw + "\""})
		return
	}
	if !validate.Money(amount) {
		utils.RespondWithValidationError(w, map[string]string{"amount": validate.MoneyMessage})
		return
	}
	wallet, err := h.walletService.AddBalance(r.Context(), userID, amount)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWalletResponse(wallet))
}

// CreateWallet godoc
//
//	@Summary		Create the caller's wallet
//	@Description	Each user holds at most one wallet. The balance defaults to zero.
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateWalletRequestDTO	false	"Opening balance"
//	@Success		200		{object}	dto.WalletResponseDTO
//	@Failure		401		{object}	utils.Response	"Not authenticated"
//	@Failure		409		{object}	utils.Response	"Wallet already exists"
//	@Failure		422		{object}	utils.Response	"Invalid request body"
//	@Router			/wallets [post]
func (h *WalletHandler) CreateWallet(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	var req dto.CreateWalletRequestDTO
	if r.ContentLength != 0 && !validate.DecodeRequest(w, r, &req) {
		return
	}
	balance := decimal.Zero
	if req.Balance != nil {
		balance = *req.Balance
	}
	wallet, err := h.walletService.CreateWallet(r.Context(), userID, balance)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWalletResponse(wallet))
}

// DeleteMyWallet godoc
//
//	@Summary	Delete the caller's wallet
//	@Tags		Wallets
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	utils.MessageResponse
//	@Failure	401	{object}	utils.Response	"Not authenticated"
//	@Failure	404	{object}	utils.Response	"Wallet not found"
//	@Router		/wallets/me [delete]
func (h *WalletHandler) DeleteMyWallet(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	if err := h.walletService.DeleteUserWallet(r.Context(), userID); err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.MessageResponse{Message: utils.DeleteSuccess})
}
