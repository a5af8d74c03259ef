package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/angel1410/score-backend/internal/domain"
)

// SearchElectors runs the multi-field search against the denormalized view.
// The view keeps birth dates in ISO form and center codes as 9-digit text, so
// rows are projected as stored.
func (r *PostgresRegistryRepository) SearchElectors(ctx context.Context, filters domain.SearchFilters) ([]domain.SearchResult, error) {
	predicates, args, err := BuildElectorSearch(filters)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT
			nacionalidad,
			cedula,
			primer_nombre,
			segundo_nombre,
			primer_apellido,
			segundo_apellido,
			fecha_nacimiento,
			codigo_centro
		FROM re.v_elector_busqueda
		WHERE 1=1
		  %s
		ORDER BY cedula
	`, predicates)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query elector search: %w", err)
	}
	defer rows.Close()

	var results []domain.SearchResult
	for rows.Next() {
		var res domain.SearchResult
		var primerNombre, segundoNombre, primerApellido, segundoApellido sql.NullString
		var fechaNacimiento, codigoCentro sql.NullString
		if err := rows.Scan(
			&res.Nacionalidad,
			&res.Cedula,
			&primerNombre,
			&segundoNombre,
			&primerApellido,
			&segundoApellido,
			&fechaNacimiento,
			&codigoCentro,
		); err != nil {
			return nil, fmt.Errorf("failed to scan elector search row: %w", err)
		}
		res.PrimerNombre = nullStr(primerNombre)
		res.SegundoNombre = nullStr(segundoNombre)
		res.PrimerApellido = nullStr(primerApellido)
		res.SegundoApellido = nullStr(segundoApellido)
		res.FechaNacimiento = nullStr(fechaNacimiento)
		res.CodigoCentro = nullStr(codigoCentro)
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate elector search rows: %w", err)
	}

	return results, nil
}
