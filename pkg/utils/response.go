package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Response is the body of every error reply.
type Response struct {
	Detail string            `json:"detail" example:"item not found"`
	Errors map[string]string `json:"errors,omitempty"`
}

const DeleteSuccess = "delete success"

// MessageResponse acknowledges operations that return no record.
type MessageResponse struct {
	Message string `json:"message" example:"delete success"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, detail string) {
	RespondWithJSON(w, code, Response{Detail: detail})
}

func RespondWithValidationError(w http.ResponseWriter, fields map[string]string) {
	RespondWithJSON(w, http.StatusUnprocessableEntity, Response{
		Detail: "validation failed",
		Errors: fields,
	})
}
