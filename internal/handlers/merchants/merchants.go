package merchants

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/digimon/internal/domain"
	"github.com/GlebRadaev/digimon/internal/dto"
	"github.com/GlebRadaev/digimon/internal/handlers/httperr"
	"github.com/GlebRadaev/digimon/pkg/auth"
	"github.com/GlebRadaev/digimon/pkg/utils"
	"github.com/GlebRadaev/digimon/pkg/validate"
)

//go:generate mockgen -source=merchants.go -destination=mock_merchants.go -package=merchants

type Service interface {
	CreateMerchant(ctx context.Context, userID int, merchant domain.Merchant) (*domain.Merchant, error)
	GetMerchant(ctx context.Context, id int) (*domain.Merchant, error)
	ListMerchants(ctx context.Context, page int) (*domain.Page[domain.Merchant], error)
	UpdateMerchant(ctx context.Context, id int, merchant domain.Merchant) (*domain.Merchant, error)
	DeleteMerchant(ctx context.Context, id int) error
}

type MerchantHandler struct {
	merchantService Service
}

func New(merchantService Service) *MerchantHandler {
	return &MerchantHandler{
		merchantService: merchantService,
	}
}

// ListMerchants godoc
//
//	@Summary	List merchants
//	@Tags		Merchants
//	@Produce	json
//	@Param		page	query		int	false	"Page number"	default(1)
//	@Success	200		{object}	dto.PageResponseDTO[dto.MerchantResponseDTO]
//	@Failure	422		{object}	utils.Response	"Invalid page"
//	@Router		/merchants [get]
func (h *MerchantHandler) ListMerchants(w http.ResponseWriter, r *http.Request) {
	page, ok := validate.Page(w, r)
	if !ok {
		return
	}
	merchants, err := h.merchantService.ListMerchants(r.Context(), page)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPageResponse(merchants, dto.NewMerchantResponse))
}

// CreateMerchant godoc
//
//	@Summary		Create a merchant
//	@Description	The merchant is owned by the authenticated user
//	@Tags			Merchants
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.MerchantRequestDTO	true	"Merchant"
//	@Success		200		{object}	dto.MerchantResponseDTO
//	@Failure		401		{object}	utils.Response	"Not authenticated"
//	@Failure		422		{object}	utils.Response	"Invalid request body"
//	@Router			/merchants [post]
func (h *MerchantHandler) CreateMerchant(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	var req dto.MerchantRequestDTO
	if !validate.DecodeRequest(w, r, &req) {
		return
	}
	merchant, err := h.merchantService.CreateMerchant(r.Context(), userID, req.ToDomain())
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMerchantResponse(merchant))
}

// GetMerchant godoc
//
//	@Summary	Get a merchant
//	@Tags		Merchants
//	@Produce	json
//	@Param		id	path		int	true	"Merchant ID"
//	@Success	200	{object}	dto.MerchantResponseDTO
//	@Failure	404	{object}	utils.Response	"Merchant not found"
//	@Router		/merchants/{id} [get]
func (h *MerchantHandler) GetMerchant(w http.ResponseWriter, r *http.Request) {
	id, ok := validate.PathID(w, r)
	if !ok {
		return
	}
	merchant, err := h.merchantService.GetMerchant(r.Context(), id)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMerchantResponse(merchant))
}

// UpdateMerchant godoc
//
//	@Summary	Update a merchant
//	@Tags		Merchants
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Merchant ID"
//	@Param		request	body		dto.MerchantRequestDTO	true	"Merchant"
//	@Success	200		{object}	dto.MerchantResponseDTO
//	@Failure	404		{object}	utils.Response	"Merchant not found"
//	@Failure	422		{object}	utils.Response	"Invalid request"
//	@Router		/merchants/{id} [put]
func (h *MerchantHandler) UpdateMerchant(w http.ResponseWriter, r *http.Request) {
	id, ok := validate.PathID(w, r)
	if !ok {
		return
	}
	var req dto.MerchantRequestDTO
	if !validate.DecodeRequest(w, r, &req) {
		return
	}
	merchant, err := h.merchantService.UpdateMerchant(r.Context(), id, req.ToDomain())
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMerchantResponse(merchant))
}

// DeleteMerchant godoc
//
//	@Summary	Delete a merchant
//	@Tags		Merchants
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Merchant ID"
//	@Success	200	{object}	utils.MessageResponse
//	@Failure	404	{object}	utils.Response	"Merchant not found"
//	@Failure	409	{object}	utils.Response	"Merchant still has items"
//	@Router		/merchants/{id} [delete]
func (h *MerchantHandler) DeleteMerchant(w http.ResponseWriter, r *http.Request) {
	id, ok := validate.PathID(w, r)
	if !ok {
		return
	}
	if err := h.merchantService.DeleteMerchant(r.Context(), id); err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.MessageResponse{Message: utils.DeleteSuccess})
}
