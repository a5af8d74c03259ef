package repository

import (
	"context"

	"github.com/angel1410/score-backend/internal/domain"
)

// PersonRow is the raw identity + objection row. Fields carry the source
// encodings untouched; normalization happens in the service layer.
type PersonRow struct {
	PrimerApellido      *string
	SegundoApellido     *string
	PrimerNombre        *string
	SegundoNombre       *string
	FechaNacimiento     *string // raw digit string, YYYYMMDD order
	StatusObjecion      *int64
	DescripcionObjecion *string
}

// RollRow is the raw ballot-roll assignment row.
type RollRow struct {
	NumeroMesa    *int64
	NumeroPagina  *int64
	NumeroRenglon *int64
	EdadAlEvento  *int64
	FechaEvento   *string // timestamp text, truncated to date by the caller
	CodEstado     *int64
	CodMunicipio  *int64
	CodParroquia  *int64
	CodCentro     *int64
}

// GeographyRow is the raw geographic-view row for one voting center.
type GeographyRow struct {
	DesEstado       *string
	DesMunicipio    *string
	DesParroquia    *string
	NombreCentro    *string
	DireccionCentro *string
}

// StationRoleRow is the raw polling-station staff assignment row.
type StationRoleRow struct {
	Mesa               *int64
	DescripcionCargo   *string
	CentroCap          *string
	NombreCentroCap    *string
	TallerDesde        *string // DDMMYYYY
	TallerHasta        *string // DDMMYYYY
	Horario            *string // concatenated digit string
	DireccionCentroCap *string
}

// RegistryRepository reads the disjoint electoral sources. No source enforces
// referential integrity against another; the identity key is advisory.
//
// Absence of a matching row is reported as (nil, nil) for roll, geography and
// station role, and as domain.ErrElectorNotFound for the person row. Any
// other error is a query failure and must propagate.
type RegistryRepository interface {
	GetPerson(ctx context.Context, nacionalidad string, cedula int64) (*PersonRow, error)
	GetRollEntry(ctx context.Context, nacionalidad string, cedula int64) (*RollRow, error)
	GetGeography(ctx context.Context, codCentro, codEstado, codMunicipio, codParroquia int64) (*GeographyRow, error)
	GetStationRole(ctx context.Context, nacionalidad string, cedula int64) (*StationRoleRow, error)
	SearchElectors(ctx context.Context, filters domain.SearchFilters) ([]domain.SearchResult, error)
	ListMovements(ctx context.Context, nacionalidad string, cedula int64) ([]domain.Movement, error)
}
