package items

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

//go:generate mockgen -source=items.go -destination=mock_items.go -package=items

type Service interface {
	CreateItem(ctx context.Context, userID int, item domain.Item) (*domain.Item, error)
	GetItem(ctx context.Context, id int) (*domain.Item, error)
	ListItems(ctx context.Context, page int) (*domain.Page[domain.Item], error)
	UpdateItem(ctx context.Context, id int, item domain.Item) (*domain.Item, error)
	DeleteItem(ctx context.Context, id int) error
}

type ItemHandler struct {
	itemService Service
}

func New(itemService Service) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
	}
}

// ListItems godoc
//
//	@Summary	List items
//	@Tags		Items
//	@Produce	json
//	@Param		page	query		int	false	"Page number"	default(1)
//	@Success	200		{object}	dto.PageResponseDTO[dto.ItemResponseDTO]
//	@Failure	422		{object}	utils.Response	"Invalid page"
//	@Router		/items [get]
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	page, ok := validate.Page(w, r)
	if !ok {
		return
	}
	items, err := h.itemService.ListItems(r.Context(), page)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPageResponse(items, dto.NewItemResponse))
}

// CreateItem godoc
//
//	@Summary		Create an item
//	@Description	The item is listed by the authenticated user under an existing merchant
//	@Tags			Items
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ItemRequestDTO	true	"Item"
//	@Success		200		{object}	dto.ItemResponseDTO
//	@Failure		401		{object}	utils.Response	"Not authenticated"
//	@Failure		404		{object}	utils.Response	"Merchant not found"
//	@Failure		422		{object}	utils.Response	"Invalid request body"
//	@Router			/items [post]
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	var req dto.ItemRequestDTO
	if !validate.DecodeRequest(w, r, &req) {
		return
	}
	item, err := h.itemService.CreateItem(r.Context(), userID, req.ToDomain())
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewItemResponse(item))
}

// GetItem godoc
//
//	@Summary	Get an item
//	@Tags		Items
//	@Produce	json
//	@Param		id	path		int	true	"Item ID"
//	@Success	200	{object}	dto.ItemResponseDTO
//	@Failure	404	{object}	utils.Response	"Item not found"
//	@Router		/items/{id} [get]
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := validate.PathID(w, r)
	if !ok {
		return
	}
	item, err := h.itemService.GetItem(r.Context(), id)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewItemResponse(item))
}

// UpdateItem godoc
//
//	@Summary	Update an item
//	@Tags		Items
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Item ID"
//	@Param		request	body		dto.ItemRequestDTO	true	"Item"
//	@Success	200		{object}	dto.ItemResponseDTO
//	@Failure	404		{object}	utils.Response	"Item or merchant not found"
//	@Failure	422		{object}	utils.Response	"Invalid request"
//	@Router		/items/{id} [put]
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := validate.PathID(w, r)
	if !ok {
		return
	}
	var req dto.ItemRequestDTO
	if !validate.DecodeRequest(w, r, &req) {
		return
	}
	item, err := h.itemService.UpdateItem(r.Context(), id, req.ToDomain())
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewItemResponse(item))
}

// DeleteItem godoc
//
//	@Summary	Delete an item
//	@Tags		Items
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Item ID"
//	@Success	200	{object}	utils.MessageResponse
//	@Failure	404	{object}	utils.Response	"Item not found"
//	@Failure	409	{object}	utils.Response	"Item has transactions"
//	@Router		/items/{id} [delete]
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := validate.PathID(w, r)
	if !ok {
		return
	}
	if err := h.itemService.DeleteItem(r.Context(), id); err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.MessageResponse{Message: utils.DeleteSuccess})
}
