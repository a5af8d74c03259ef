package httpapi

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/angel1410/score-backend/internal/domain"
	"github.com/angel1410/score-backend/internal/service"
)

// UsersHandler serves the account management endpoints under /api/usuarios.
type UsersHandler struct {
	users  *service.UserService
	logger *zap.Logger
}

func NewUsersHandler(users *service.UserService, logger *zap.Logger) *UsersHandler {
	return &UsersHandler{users: users, logger: logger}
}

// Collection handles GET (list) and POST (create) on /api/usuarios.
func (h *UsersHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		users, err := h.users.List(r.Context())
		if err != nil {
			respondError(w, h.logger, "usuarios_list", err)
			return
		}
		writeJSON(w, http.StatusOK, users)
	case http.MethodPost:
		var req domain.UsuarioCreate
		if err := readBodyJSON(r, 1<<20, &req); err != nil {
			writeError(w, http.StatusBadRequest, "cuerpo de solicitud inválido")
			return
		}
		created, err := h.users.Create(r.Context(), req)
		if err != nil {
			respondError(w, h.logger, "usuarios_create", err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// Item handles PUT /api/usuarios/{id} and PUT /api/usuarios/{id}/bloquear.
func (h *UsersHandler) Item(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/usuarios/")
	parts := strings.Split(rest, "/")

	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id inválido")
		return
	}

	switch {
	case len(parts) == 1:
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var req domain.UsuarioUpdate
		if err := readBodyJSON(r, 1<<20, &req); err != nil {
			writeError(w, http.StatusBadRequest, "cuerpo de solicitud inválido")
			return
		}
		updated, err := h.users.Update(r.Context(), id, req)
		if err != nil {
			respondError(w, h.logger, "usuarios_update", err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	case len(parts) == 2 && parts[1] == "bloquear":
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		updated, err := h.users.ToggleBloqueo(r.Context(), id)
		if err != nil {
			respondError(w, h.logger, "usuarios_bloquear", err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

type importResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Import handles POST /api/usuarios/carga-masiva (multipart CSV/XLSX upload).
func (h *UsersHandler) Import(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(service.MaxImportSize); err != nil {
		writeError(w, http.StatusBadRequest, "No se recibió archivo")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No se recibió archivo")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, service.MaxImportSize+1))
	if err != nil {
		respondError(w, h.logger, "usuarios_import_read", err)
		return
	}

	count, err := h.users.Import(r.Context(), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		respondError(w, h.logger, "usuarios_import", err)
		return
	}

	writeJSON(w, http.StatusOK, importResponse{
		Success: true,
		Message: strconv.Itoa(count) + " usuarios cargados exitosamente",
	})
}
