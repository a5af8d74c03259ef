package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/angel1410/score-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Error: message})
}

// respondError maps the core error taxonomy onto HTTP statuses. Validation
// messages are safe to echo; everything else is logged with its stage context
// and reported generically so query text and schema names never leak.
func respondError(w http.ResponseWriter, logger *zap.Logger, stage string, err error) {
	if ve, ok := domain.AsValidation(err); ok {
		writeError(w, http.StatusBadRequest, ve.Message)
		return
	}
	if errors.Is(err, domain.ErrElectorNotFound) {
		writeError(w, http.StatusNotFound, "Elector no encontrado")
		return
	}
	if errors.Is(err, domain.ErrUsuarioNotFound) {
		writeError(w, http.StatusNotFound, "Usuario no encontrado")
		return
	}
	logger.Error("Request failed",
		zap.String("stage", stage),
		zap.Error(err),
	)
	writeError(w, http.StatusInternalServerError, "Error interno del servidor")
}

func readBodyJSON(r *http.Request, maxBytes int64, out any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBytes))
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}
