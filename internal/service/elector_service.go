package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/angel1410/score-backend/internal/domain"
	"github.com/angel1410/score-backend/internal/normalize"
	"github.com/angel1410/score-backend/internal/repository"
)

// Section selects which optional parts of the aggregated record a caller
// wants resolved. Historical endpoints exposed several field sets; one
// assembler serves them all instead of parallel code paths.
type Section uint8

const (
	SectionRoll Section = 1 << iota
	SectionGeography
	SectionRole
)

// AllSections is the full front-end record.
const AllSections = SectionRoll | SectionGeography | SectionRole

const cedulaMax = 99_999_999

// ElectorService aggregates the disjoint registry sources into one
// normalized record per identity key.
type ElectorService struct {
	repo   repository.RegistryRepository
	logger *zap.Logger
}

func NewElectorService(repo repository.RegistryRepository, logger *zap.Logger) *ElectorService {
	return &ElectorService{repo: repo, logger: logger}
}

// ValidateIdentityKey normalizes and checks a raw identity key. The raw
// nationality keeps the legacy leniency: trimmed, upper-cased, first
// character only, defaulting to "V" when empty.
func ValidateIdentityKey(rawNacionalidad string, cedula int64) (string, error) {
	nac := strings.ToUpper(strings.TrimSpace(rawNacionalidad))
	nacionalidad := "V"
	if nac != "" {
		nacionalidad = string([]rune(nac)[0])
	}

	if nacionalidad != "V" && nacionalidad != "E" {
		return "", domain.NewValidationError(domain.InvalidNationality, "nacionalidad debe ser V o E")
	}
	if cedula <= 0 || cedula > cedulaMax {
		return "", domain.NewValidationError(domain.InvalidIdentifier, "cedula inválida")
	}
	return nacionalidad, nil
}

// Lookup resolves one identity key into the aggregated elector record.
//
// The identity lookup is the hard failure path: no person record means
// domain.ErrElectorNotFound. Everything after it is best-effort on absence —
// a missing roll entry, a dangling geographic code set or a missing station
// role leave their sections absent or sentineled — but any query failure
// propagates. Roll and role lookups are mutually independent and run
// concurrently; merge order stays roll before role regardless of completion.
func (s *ElectorService) Lookup(ctx context.Context, rawNacionalidad string, cedula int64, sections Section) (*domain.Elector, error) {
	nacionalidad, err := ValidateIdentityKey(rawNacionalidad, cedula)
	if err != nil {
		return nil, err
	}

	// The input key is echoed verbatim regardless of downstream results.
	resp := &domain.Elector{
		Nacionalidad: nacionalidad,
		Cedula:       cedula,
	}

	person, err := s.repo.GetPerson(ctx, nacionalidad, cedula)
	if err != nil {
		if err == domain.ErrElectorNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("identity lookup: %w", err)
	}
	s.mergePerson(resp, person)

	var roll *repository.RollRow
	var role *repository.StationRoleRow

	g, gctx := errgroup.WithContext(ctx)
	if sections&SectionRoll != 0 {
		g.Go(func() error {
			r, err := s.repo.GetRollEntry(gctx, nacionalidad, cedula)
			if err != nil {
				return fmt.Errorf("roll lookup: %w", err)
			}
			roll = r
			return nil
		})
	}
	if sections&SectionRole != 0 {
		g.Go(func() error {
			r, err := s.repo.GetStationRole(gctx, nacionalidad, cedula)
			if err != nil {
				return fmt.Errorf("role lookup: %w", err)
			}
			role = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if roll != nil {
		s.mergeRoll(resp, roll)
	}

	if sections&SectionGeography != 0 && roll != nil &&
		roll.CodEstado != nil && roll.CodMunicipio != nil && roll.CodParroquia != nil && roll.CodCentro != nil {
		geo, err := s.repo.GetGeography(ctx, *roll.CodCentro, *roll.CodEstado, *roll.CodMunicipio, *roll.CodParroquia)
		if err != nil {
			return nil, fmt.Errorf("geography lookup: %w", err)
		}
		if geo != nil {
			s.mergeGeography(resp, roll, geo)
		}
	}

	if sections&SectionRole != 0 {
		resp.ApplyStationRoleSentinels()
		if role != nil {
			s.mergeStationRole(resp, role)
		}
	}

	return resp, nil
}

// Search runs the validated multi-field search. An empty result set is a
// valid empty success, distinct from a not-found lookup.
func (s *ElectorService) Search(ctx context.Context, filters domain.SearchFilters) ([]domain.SearchResult, error) {
	results, err := s.repo.SearchElectors(ctx, filters)
	if err != nil {
		if _, ok := domain.AsValidation(err); ok {
			return nil, err
		}
		return nil, fmt.Errorf("elector search: %w", err)
	}
	if results == nil {
		results = []domain.SearchResult{}
	}
	return results, nil
}

// Movements lists the registry movement history for one identity key.
func (s *ElectorService) Movements(ctx context.Context, rawNacionalidad string, cedula int64) ([]domain.Movement, error) {
	nacionalidad, err := ValidateIdentityKey(rawNacionalidad, cedula)
	if err != nil {
		return nil, err
	}
	movements, err := s.repo.ListMovements(ctx, nacionalidad, cedula)
	if err != nil {
		return nil, fmt.Errorf("movement lookup: %w", err)
	}
	if movements == nil {
		movements = []domain.Movement{}
	}
	return movements, nil
}

func (s *ElectorService) mergePerson(resp *domain.Elector, p *repository.PersonRow) {
	resp.PrimerApellido = p.PrimerApellido
	resp.SegundoApellido = p.SegundoApellido
	resp.PrimerNombre = p.PrimerNombre
	resp.SegundoNombre = p.SegundoNombre

	if p.FechaNacimiento != nil {
		if iso, ok := normalize.DecodeLegacyDate(*p.FechaNacimiento); ok {
			resp.FechaNacimiento = &iso
		}
	}

	if p.StatusObjecion != nil {
		code := strconv.FormatInt(*p.StatusObjecion, 10)
		resp.CodigoObjecion = &code
	}
	resp.DescripcionObjecion = p.DescripcionObjecion
}

func (s *ElectorService) mergeRoll(resp *domain.Elector, r *repository.RollRow) {
	resp.NumeroMesa = r.NumeroMesa
	resp.NumeroPagina = r.NumeroPagina
	resp.NumeroRenglon = r.NumeroRenglon
	resp.EdadUltimoEvento = r.EdadAlEvento

	if r.FechaEvento != nil {
		fe := *r.FechaEvento
		if len(fe) > 10 {
			fe = fe[:10]
		}
		resp.FechaUltimoEvento = &fe
	}

	if r.CodCentro != nil {
		padded := normalize.PadFixedWidth(*r.CodCentro, 9)
		resp.CodigoCentro = &padded
	}
}

func (s *ElectorService) mergeGeography(resp *domain.Elector, roll *repository.RollRow, geo *repository.GeographyRow) {
	estado := normalize.FormatGeoLocation(*roll.CodEstado, geo.DesEstado)
	municipio := normalize.FormatGeoLocation(*roll.CodMunicipio, geo.DesMunicipio)
	parroquia := normalize.FormatGeoLocation(*roll.CodParroquia, geo.DesParroquia)
	resp.Estado = &estado
	resp.Municipio = &municipio
	resp.Parroquia = &parroquia
	resp.NombreCentro = geo.NombreCentro
	resp.DireccionCentro = geo.DireccionCentro
}

func (s *ElectorService) mergeStationRole(resp *domain.Elector, r *repository.StationRoleRow) {
	mesa := int64(0)
	if r.Mesa != nil {
		mesa = *r.Mesa
	}
	resp.MiembroMesaNumeroMesa = &mesa

	resp.MiembroMesaCargo = r.DescripcionCargo

	centroCap := "0"
	if r.CentroCap != nil {
		centroCap = *r.CentroCap
	}
	resp.MiembroMesaCentroCapacitacion = &centroCap

	resp.MiembroMesaNombreCentroCapacitacion = r.NombreCentroCap

	resp.MiembroMesaFechaInicioCapacitacion = decodeTrainingDate(r.TallerDesde)
	resp.MiembroMesaFechaCulminacionCapacitacion = decodeTrainingDate(r.TallerHasta)

	horario := domain.NoAplica
	if r.Horario != nil {
		if h, ok := normalize.FormatSchedule(*r.Horario); ok {
			horario = h
		}
	}
	resp.MiembroMesaHorarioCapacitacion = &horario

	resp.MiembroMesaDireccionCentroCapacitacion = r.DireccionCentroCap
}

func decodeTrainingDate(raw *string) *string {
	out := domain.NoAplica
	if raw != nil {
		if d, ok := normalize.DecodeEuropeanDate(*raw); ok {
			out = d
		}
	}
	return &out
}
