// Package httperr maps domain errors onto HTTP replies.
package httperr

import (
	"errors"
	"net/http"

	"github.com/GlebRadaev/digimon/internal/domain"
	"github.com/GlebRadaev/digimon/pkg/utils"
	"go.uber.org/zap"
)

const internalDetail = "internal server error"

func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrReferenced):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err with its mapped status. Unknown errors are logged and
// reported without their text.
func Respond(w http.ResponseWriter, r *http.Request, err error) {
	code := Status(err)
	if code == http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		utils.RespondWithError(w, code, internalDetail)
		return
	}
	utils.RespondWithError(w, code, err.Error())
}
