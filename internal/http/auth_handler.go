package httpapi

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/angel1410/score-backend/internal/service"
)

// AuthHandler serves POST /api/login.
type AuthHandler struct {
	auth   *service.AuthService
	logger *zap.Logger
}

func NewAuthHandler(auth *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

type loginRequest struct {
	Cedula   int64  `json:"cedula"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo de solicitud inválido")
		return
	}

	resp, err := h.auth.Login(r.Context(), req.Cedula, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Credenciales inválidas")
			return
		}
		respondError(w, h.logger, "login", err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
