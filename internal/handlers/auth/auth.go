package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/digimon/internal/domain"
	"github.com/GlebRadaev/digimon/internal/dto"
	"github.com/GlebRadaev/digimon/internal/handlers/httperr"
	"github.com/GlebRadaev/digimon/internal/service/authservice"
	pkgauth "github.com/GlebRadaev/digimon/pkg/auth"
	"github.com/GlebRadaev/digimon/pkg/utils"
	"github.com/GlebRadaev/digimon/pkg/validate"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth

type Service interface {
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	GenerateToken(userID int) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Exchange username and password for a bearer token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.TokenResponseDTO
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		422		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if !validate.DecodeRequest(w, r, &req) {
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			w.Header().Set("WWW-Authenticate", pkgauth.TokenType)
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
			return
		}
		httperr.Respond(w, r, err)
		return
	}
	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TokenResponseDTO{
		AccessToken: token,
		TokenType:   pkgauth.TokenType,
	})
}
