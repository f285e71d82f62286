package users

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/digimon/internal/domain"
	"github.com/GlebRadaev/digimon/internal/dto"
	"github.com/GlebRadaev/digimon/internal/handlers/httperr"
	"github.com/GlebRadaev/digimon/pkg/utils"
	"github.com/GlebRadaev/digimon/pkg/validate"
)

//go:generate mockgen -source=users.go -destination=mock_users.go -package=users

type Service interface {
	CreateUser(ctx context.Context, username, email, password string) (*domain.User, error)
	GetUser(ctx context.Context, id int) (*domain.User, error)
	ListUsers(ctx context.Context, page int) (*domain.Page[domain.User], error)
	UpdateUser(ctx context.Context, id int, username, email string) (*domain.User, error)
	DeleteUser(ctx context.Context, id int) error
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers godoc
//
//	@Summary	List users
//	@Tags		Users
//	@Produce	json
//	@Param		page	query		int	false	"Page number"	default(1)
//	@Success	200		{object}	dto.PageResponseDTO[dto.UserResponseDTO]
//	@Failure	422		{object}	utils.Response	"Invalid page"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, ok := validate.Page(w, r)
	if !ok {
		return
	}
	users, err := h.userService.ListUsers(r.Context(), page)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPageResponse(users, dto.NewUserResponse))
}

// CreateUser godoc
//
//	@Summary		Register a new user
//	@Description	Create a user account. The password is stored as a bcrypt hash.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateUserRequestDTO	true	"Registration payload"
//	@Success		200		{object}	dto.UserResponseDTO
//	@Failure		409		{object}	utils.Response	"Username or email taken"
//	@Failure		422		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/users [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequestDTO
	if !validate.DecodeRequest(w, r, &req) {
		return
	}
	user, err := h.userService.CreateUser(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserResponse(user))
}

// GetUser godoc
//
//	@Summary	Get a user
//	@Tags		Users
//	@Produce	json
//	@Param		id	path		int	true	"User ID"
//	@Success	200	{object}	dto.UserResponseDTO
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Failure	422	{object}	utils.Response	"Invalid id"
//	@Router		/users/{id} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := validate.PathID(w, r)
	if !ok {
		return
	}
	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserResponse(user))
}

// UpdateUser godoc
//
//	@Summary	Update a user
//	@Tags		Users
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"User ID"
//	@Param		request	body		dto.UpdateUserRequestDTO	true	"New username and email"
//	@Success	200		{object}	dto.UserResponseDTO
//	@Failure	401		{object}	utils.Response	"Not authenticated"
//	@Failure	404		{object}	utils.Response	"User not found"
//	@Failure	409		{object}	utils.Response	"Username or email taken"
//	@Failure	422		{object}	utils.Response	"Invalid request"
//	@Router		/users/{id} [put]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := validate.PathID(w, r)
	if !ok {
		return
	}
	var req dto.UpdateUserRequestDTO
	if !validate.DecodeRequest(w, r, &req) {
		return
	}
	user, err := h.userService.UpdateUser(r.Context(), id, req.Username, req.Email)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserResponse(user))
}

// DeleteUser godoc
//
//	@Summary	Delete a user
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"User ID"
//	@Success	200	{object}	utils.MessageResponse
//	@Failure	401	{object}	utils.Response	"Not authenticated"
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Failure	409	{object}	utils.Response	"User still owns records"
//	@Router		/users/{id} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := validate.PathID(w, r)
	if !ok {
		return
	}
	if err := h.userService.DeleteUser(r.Context(), id); err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.MessageResponse{Message: utils.DeleteSuccess})
}
