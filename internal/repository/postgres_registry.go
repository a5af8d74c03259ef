package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/angel1410/score-backend/internal/domain"
)

// PostgresRegistryRepository reads the legacy registry sources.
type PostgresRegistryRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresRegistryRepository(db *sql.DB, logger *zap.Logger) *PostgresRegistryRepository {
	return &PostgresRegistryRepository{db: db, logger: logger}
}

var _ RegistryRepository = (*PostgresRegistryRepository)(nil)

// GetPerson looks up the primary person record with its objection status.
// The objection join is outer: a person row with no matching objection row
// still resolves, with the objection fields nil. The source is assumed unique
// on the key; if it is not, the first row wins.
func (r *PostgresRegistryRepository) GetPerson(ctx context.Context, nacionalidad string, cedula int64) (*PersonRow, error) {
	query := `
		SELECT
			ac.primer_apellido,
			ac.segundo_apellido,
			ac.primer_nombre,
			ac.segundo_nombre,
			ac.fecha_nacimiento_4,
			ac.status_objecion,
			obj.descripcion
		FROM re.ac ac
		LEFT JOIN re.objecion obj ON ac.status_objecion = obj.status
		WHERE ac.nacionalidad = $1
		  AND ac.cedula = $2
	`

	var row PersonRow
	var primerApellido, segundoApellido, primerNombre, segundoNombre sql.NullString
	var fechaNacimiento, descripcion sql.NullString
	var statusObjecion sql.NullInt64

	err := r.db.QueryRowContext(ctx, query, nacionalidad, cedula).Scan(
		&primerApellido,
		&segundoApellido,
		&primerNombre,
		&segundoNombre,
		&fechaNacimiento,
		&statusObjecion,
		&descripcion,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrElectorNotFound
		}
		return nil, fmt.Errorf("failed to query person: %w", err)
	}

	row.PrimerApellido = nullStr(primerApellido)
	row.SegundoApellido = nullStr(segundoApellido)
	row.PrimerNombre = nullStr(primerNombre)
	row.SegundoNombre = nullStr(segundoNombre)
	row.FechaNacimiento = nullStr(fechaNacimiento)
	row.StatusObjecion = nullInt(statusObjecion)
	row.DescripcionObjecion = nullStr(descripcion)

	return &row, nil
}

// GetRollEntry looks up the current ballot-roll assignment. At most one
// active entry per person is assumed; absence is (nil, nil).
func (r *PostgresRegistryRepository) GetRollEntry(ctx context.Context, nacionalidad string, cedula int64) (*RollRow, error) {
	query := `
		SELECT
			nu_mesa,
			nu_pagina,
			nu_renglon,
			nu_edad_al_evento,
			fe_evento,
			cod_estado,
			cod_municipio,
			cod_parroquia,
			nu_centro
		FROM instrumentos.cuaderno_actual2
		WHERE co_nacionalidad = $1
		  AND nu_cedula = $2
	`

	var row RollRow
	var mesa, pagina, renglon, edad sql.NullInt64
	var fecha sql.NullString
	var codEstado, codMunicipio, codParroquia, codCentro sql.NullInt64

	err := r.db.QueryRowContext(ctx, query, nacionalidad, cedula).Scan(
		&mesa,
		&pagina,
		&renglon,
		&edad,
		&fecha,
		&codEstado,
		&codMunicipio,
		&codParroquia,
		&codCentro,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query roll entry: %w", err)
	}

	row.NumeroMesa = nullInt(mesa)
	row.NumeroPagina = nullInt(pagina)
	row.NumeroRenglon = nullInt(renglon)
	row.EdadAlEvento = nullInt(edad)
	row.FechaEvento = nullStr(fecha)
	row.CodEstado = nullInt(codEstado)
	row.CodMunicipio = nullInt(codMunicipio)
	row.CodParroquia = nullInt(codParroquia)
	row.CodCentro = nullInt(codCentro)

	return &row, nil
}

// GetGeography resolves the four geographic codes against the voting-center
// geographic view. A dangling code set is tolerated: no match is (nil, nil).
func (r *PostgresRegistryRepository) GetGeography(ctx context.Context, codCentro, codEstado, codMunicipio, codParroquia int64) (*GeographyRow, error) {
	query := `
		SELECT
			des_estado,
			des_municipio,
			des_parroquia,
			nombre,
			direccion
		FROM re.v_centro_votacion_geografico
		WHERE codigo_nuevo  = $1
		  AND cod_estado    = $2
		  AND cod_municipio = $3
		  AND cod_parroquia = $4
	`

	var row GeographyRow
	var desEstado, desMunicipio, desParroquia, nombre, direccion sql.NullString

	err := r.db.QueryRowContext(ctx, query, codCentro, codEstado, codMunicipio, codParroquia).Scan(
		&desEstado,
		&desMunicipio,
		&desParroquia,
		&nombre,
		&direccion,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query geographic view: %w", err)
	}

	row.DesEstado = nullStr(desEstado)
	row.DesMunicipio = nullStr(desMunicipio)
	row.DesParroquia = nullStr(desParroquia)
	row.NombreCentro = nullStr(nombre)
	row.DireccionCentro = nullStr(direccion)

	return &row, nil
}

// GetStationRole looks up the active polling-station staff assignment across
// the role/type/training-center reference tables. Absence is (nil, nil); the
// service substitutes the "No aplica" sentinels.
func (r *PostgresRegistryRepository) GetStationRole(ctx context.Context, nacionalidad string, cedula int64) (*StationRoleRow, error) {
	query := `
		SELECT
			miembro.mesa,
			cargo_miembro.descripcion_cargo,
			miembro.centrocap,
			c_capacitacion.nombre,
			miembro.tallerdesde,
			miembro.tallerhasta,
			miembro.horario,
			c_capacitacion.direccion
		FROM re.miembros_oes miembro,
		     re.cargos_miembros_oes cargo_miembro,
		     re.tipos_oes t_oes,
		     mc.centro_capacitacion c_capacitacion
		WHERE t_oes.tipo_oes = cargo_miembro.tipo_oes
		  AND cargo_miembro.tipo_oes = miembro.timioes
		  AND miembro.cargo = cargo_miembro.cod_cargo
		  AND miembro.centrocap = c_capacitacion.codigo
		  AND miembro.nac = $1
		  AND miembro.cedula = $2
	`

	var row StationRoleRow
	var mesa sql.NullInt64
	var cargo, centroCap, nombre, desde, hasta, horario, direccion sql.NullString

	err := r.db.QueryRowContext(ctx, query, nacionalidad, cedula).Scan(
		&mesa,
		&cargo,
		&centroCap,
		&nombre,
		&desde,
		&hasta,
		&horario,
		&direccion,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query station role: %w", err)
	}

	row.Mesa = nullInt(mesa)
	row.DescripcionCargo = nullStr(cargo)
	row.CentroCap = nullStr(centroCap)
	row.NombreCentroCap = nullStr(nombre)
	row.TallerDesde = nullStr(desde)
	row.TallerHasta = nullStr(hasta)
	row.Horario = nullStr(horario)
	row.DireccionCentroCap = nullStr(direccion)

	return &row, nil
}

// ListMovements returns the registry movement history for one identity key,
// newest cierre first.
func (r *PostgresRegistryRepository) ListMovements(ctx context.Context, nacionalidad string, cedula int64) ([]domain.Movement, error) {
	query := `
		SELECT
			t.cierre,
			c.nombre_corto,
			t.id_lote,
			tm.descripcion AS descripcion_movimiento,
			spm.descripcion AS descripcion_status,
			t.fecha_proceso_mov
		FROM re.movimiento t
		LEFT JOIN re.cierre c ON t.cierre = c.codigo
		LEFT JOIN re.tipo_movimiento tm ON t.tipo_movimiento = tm.tipo_movimiento
		LEFT JOIN re.status_proceso_mov spm ON t.status_proceso_mov = spm.codigo
		WHERE t.nacionalidad = $1
		  AND t.cedula_number = $2
		ORDER BY t.cierre DESC
	`

	rows, err := r.db.QueryContext(ctx, query, nacionalidad, cedula)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements: %w", err)
	}
	defer rows.Close()

	var movements []domain.Movement
	for rows.Next() {
		var m domain.Movement
		var nombreCorto sql.NullString
		if err := rows.Scan(
			&m.Cierre,
			&nombreCorto,
			&m.IDLote,
			&m.DescripcionMovimiento,
			&m.DescripcionStatus,
			&m.FechaProcesoMov,
		); err != nil {
			return nil, fmt.Errorf("failed to scan movement: %w", err)
		}
		m.NombreCorto = nullStr(nombreCorto)
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate movements: %w", err)
	}

	return movements, nil
}

func nullStr(v sql.NullString) *string {
	if v.Valid {
		s := v.String
		return &s
	}
	return nil
}

func nullInt(v sql.NullInt64) *int64 {
	if v.Valid {
		n := v.Int64
		return &n
	}
	return nil
}
