package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/angel1410/score-backend/internal/domain"
	"github.com/angel1410/score-backend/internal/service"
)

// ElectorHandler serves the registry read endpoints: aggregated lookup,
// multi-field search, movement history and the legacy names-only lookup.
type ElectorHandler struct {
	electors *service.ElectorService
	logger   *zap.Logger
}

func NewElectorHandler(electors *service.ElectorService, logger *zap.Logger) *ElectorHandler {
	return &ElectorHandler{electors: electors, logger: logger}
}

// GetElector handles GET /api/re/elector?nacionalidad=V&cedula=28524669.
func (h *ElectorHandler) GetElector(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	nacionalidad := q.Get("nacionalidad")
	cedula, err := strconv.ParseInt(q.Get("cedula"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "cedula inválida")
		return
	}

	elector, err := h.electors.Lookup(r.Context(), nacionalidad, cedula, service.AllSections)
	if err != nil {
		respondError(w, h.logger, "elector_lookup", err)
		return
	}
	writeJSON(w, http.StatusOK, elector)
}

// SearchElectors handles GET /api/re/electores/buscar with any subset of the
// optional filters as query parameters.
func (h *ElectorHandler) SearchElectors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filters := domain.SearchFilters{
		Nacionalidad:    q.Get("nacionalidad"),
		FechaNacimiento: q.Get("fecha_nacimiento"),
		PrimerNombre:    q.Get("primer_nombre"),
		SegundoNombre:   q.Get("segundo_nombre"),
		PrimerApellido:  q.Get("primer_apellido"),
		SegundoApellido: q.Get("segundo_apellido"),
		CodigoCentro:    q.Get("codigo_centro"),
	}
	if raw := q.Get("cedula"); raw != "" {
		cedula, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "cedula inválida")
			return
		}
		filters.Cedula = &cedula
	}

	results, err := h.electors.Search(r.Context(), filters)
	if err != nil {
		respondError(w, h.logger, "elector_search", err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// GetMovimientos handles GET /api/get-movimientos-re/{nacionalidad}/{cedula}.
func (h *ElectorHandler) GetMovimientos(w http.ResponseWriter, r *http.Request) {
	nacionalidad, cedula, ok := identityKeyFromPath(r.URL.Path, "/api/get-movimientos-re/")
	if !ok {
		writeError(w, http.StatusBadRequest, "ruta inválida")
		return
	}

	movements, err := h.electors.Movements(r.Context(), nacionalidad, cedula)
	if err != nil {
		respondError(w, h.logger, "movement_lookup", err)
		return
	}
	writeJSON(w, http.StatusOK, movements)
}

// legacyPerson is the reduced projection of the legacy AC endpoint.
type legacyPerson struct {
	Nacionalidad    string  `json:"nacionalidad"`
	Cedula          int64   `json:"cedula"`
	PrimerApellido  *string `json:"primer_apellido"`
	SegundoApellido *string `json:"segundo_apellido"`
	PrimerNombre    *string `json:"primer_nombre"`
	SegundoNombre   *string `json:"segundo_nombre"`
}

// GetPersonAC handles GET /api/ac/{nacionalidad}/{cedula}, the historical
// names-only lookup. Same assembler, empty section set.
func (h *ElectorHandler) GetPersonAC(w http.ResponseWriter, r *http.Request) {
	nacionalidad, cedula, ok := identityKeyFromPath(r.URL.Path, "/api/ac/")
	if !ok {
		writeError(w, http.StatusBadRequest, "ruta inválida")
		return
	}

	elector, err := h.electors.Lookup(r.Context(), nacionalidad, cedula, 0)
	if err != nil {
		respondError(w, h.logger, "ac_lookup", err)
		return
	}

	writeJSON(w, http.StatusOK, legacyPerson{
		Nacionalidad:    elector.Nacionalidad,
		Cedula:          elector.Cedula,
		PrimerApellido:  elector.PrimerApellido,
		SegundoApellido: elector.SegundoApellido,
		PrimerNombre:    elector.PrimerNombre,
		SegundoNombre:   elector.SegundoNombre,
	})
}

func identityKeyFromPath(path, prefix string) (string, int64, bool) {
	rest := strings.TrimPrefix(path, prefix)
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", 0, false
	}
	cedula, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", 0, false
	}
	return parts[0], cedula, true
}
