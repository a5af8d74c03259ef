package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/angel1410/score-backend/internal/domain"
	"github.com/angel1410/score-backend/internal/repository"
	"github.com/angel1410/score-backend/internal/service"
)

type stubRegistryRepo struct {
	person    *repository.PersonRow
	roll      *repository.RollRow
	geo       *repository.GeographyRow
	role      *repository.StationRoleRow
	personErr error

	searchResults []domain.SearchResult
	searchErr     error
	movements     []domain.Movement
}

func (s *stubRegistryRepo) GetPerson(ctx context.Context, nacionalidad string, cedula int64) (*repository.PersonRow, error) {
	if s.personErr != nil {
		return nil, s.personErr
	}
	return s.person, nil
}

func (s *stubRegistryRepo) GetRollEntry(ctx context.Context, nacionalidad string, cedula int64) (*repository.RollRow, error) {
	return s.roll, nil
}

func (s *stubRegistryRepo) GetGeography(ctx context.Context, codCentro, codEstado, codMunicipio, codParroquia int64) (*repository.GeographyRow, error) {
	return s.geo, nil
}

func (s *stubRegistryRepo) GetStationRole(ctx context.Context, nacionalidad string, cedula int64) (*repository.StationRoleRow, error) {
	return s.role, nil
}

func (s *stubRegistryRepo) SearchElectors(ctx context.Context, filters domain.SearchFilters) ([]domain.SearchResult, error) {
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.searchResults, nil
}

func (s *stubRegistryRepo) ListMovements(ctx context.Context, nacionalidad string, cedula int64) ([]domain.Movement, error) {
	return s.movements, nil
}

func sp(s string) *string { return &s }

func newElectorRouter(repo repository.RegistryRepository) *Router {
	logger := zap.NewNop()
	router := NewRouter(logger)
	router.RegisterElectorRoutes(NewElectorHandler(service.NewElectorService(repo, logger), logger))
	return router
}

func TestGetElector_FrozenJSONContract(t *testing.T) {
	repo := &stubRegistryRepo{
		person: &repository.PersonRow{
			PrimerApellido: sp("PEREZ"),
			PrimerNombre:   sp("MARIA"),
		},
	}
	router := newElectorRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/re/elector?nacionalidad=v&cedula=28524669", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	for _, key := range []string{
		"nacionalidad", "cedula", "fecha_nacimiento",
		"primer_nombre", "segundo_nombre", "primer_apellido", "segundo_apellido",
		"codigo_objecion", "descripcion_objecion",
		"fecha_ultimo_evento", "edad_ultimo_evento",
		"numero_mesa", "numero_pagina", "numero_renglon",
		"codigo_centro", "estado", "municipio", "parroquia",
		"nombre_centro", "direccion_centro",
		"miembro_mesa_numero_mesa", "miembro_mesa_cargo",
		"miembro_mesa_centro_capacitacion", "miembro_mesa_nombre_centro_capacitacion",
		"miembro_mesa_fecha_inicio_capacitacion", "miembro_mesa_fecha_culminacion_capacitacion",
		"miembro_mesa_horario_capacitacion", "miembro_mesa_direccion_centro_capacitacion",
	} {
		assert.Contains(t, body, key)
	}

	// Normalized key echo plus sentinels for the missing role.
	assert.JSONEq(t, `"V"`, string(body["nacionalidad"]))
	assert.JSONEq(t, `28524669`, string(body["cedula"]))
	assert.JSONEq(t, `0`, string(body["miembro_mesa_numero_mesa"]))
	assert.JSONEq(t, `"No aplica"`, string(body["miembro_mesa_cargo"]))
	assert.JSONEq(t, `"0"`, string(body["miembro_mesa_centro_capacitacion"]))
}

func TestGetElector_NotFound(t *testing.T) {
	repo := &stubRegistryRepo{personErr: domain.ErrElectorNotFound}
	router := newElectorRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/re/elector?nacionalidad=V&cedula=1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Elector no encontrado"}`, rec.Body.String())
}

func TestGetElector_InvalidNationality(t *testing.T) {
	router := newElectorRouter(&stubRegistryRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/re/elector?nacionalidad=X&cedula=1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetElector_NonNumericCedula(t *testing.T) {
	router := newElectorRouter(&stubRegistryRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/re/elector?nacionalidad=V&cedula=abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetElector_InternalErrorIsGeneric(t *testing.T) {
	repo := &stubRegistryRepo{personErr: assert.AnError}
	router := newElectorRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/re/elector?nacionalidad=V&cedula=1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Error interno del servidor"}`, rec.Body.String())
}

func TestGetElector_MethodNotAllowed(t *testing.T) {
	router := newElectorRouter(&stubRegistryRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/re/elector", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSearchElectors_EmptyResultIsEmptyArray(t *testing.T) {
	router := newElectorRouter(&stubRegistryRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/re/electores/buscar?primer_apellido=PEREZ", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestSearchElectors_NoFilters(t *testing.T) {
	repo := &stubRegistryRepo{
		searchErr: domain.NewValidationError(domain.NoFilterProvided,
			"debe indicar al menos un filtro de búsqueda"),
	}
	router := newElectorRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/re/electores/buscar", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"debe indicar al menos un filtro de búsqueda"}`, rec.Body.String())
}

func TestGetMovimientos(t *testing.T) {
	repo := &stubRegistryRepo{
		movements: []domain.Movement{{
			Cierre:                202407,
			NombreCorto:           sp("JUL-2024"),
			IDLote:                15,
			DescripcionMovimiento: "CAMBIO DE RESIDENCIA",
			DescripcionStatus:     "PROCESADO",
			FechaProcesoMov:       "2024-07-01",
		}},
	}
	router := newElectorRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/get-movimientos-re/V/28524669", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// Movement history keeps its historical uppercase keys.
	assert.JSONEq(t, `[{
		"CIERRE": 202407,
		"NOMBRE_CORTO": "JUL-2024",
		"ID_LOTE": 15,
		"DESCRIPCION_MOVIMIENTO": "CAMBIO DE RESIDENCIA",
		"DESCRIPCION_STATUS": "PROCESADO",
		"FECHA_PROCESO_MOV": "2024-07-01"
	}]`, rec.Body.String())
}

func TestGetMovimientos_BadPath(t *testing.T) {
	router := newElectorRouter(&stubRegistryRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/get-movimientos-re/V/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPersonAC_ReducedProjection(t *testing.T) {
	repo := &stubRegistryRepo{
		person: &repository.PersonRow{
			PrimerApellido:  sp("PEREZ"),
			SegundoApellido: sp("GOMEZ"),
			PrimerNombre:    sp("MARIA"),
		},
	}
	router := newElectorRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/ac/V/28524669", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"nacionalidad": "V",
		"cedula": 28524669,
		"primer_apellido": "PEREZ",
		"segundo_apellido": "GOMEZ",
		"primer_nombre": "MARIA",
		"segundo_nombre": null
	}`, rec.Body.String())
}
