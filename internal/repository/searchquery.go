package repository

import (
	"fmt"
	"strings"

	"github.com/angel1410/score-backend/internal/domain"
	"github.com/angel1410/score-backend/internal/normalize"
)

// cedulaMax mirrors the national ID range enforced everywhere else.
const cedulaMax = 99_999_999

// BuildElectorSearch turns an optional filter set into validated predicate
// fragments plus positional bindings for the denormalized search view.
//
// Rules apply in a fixed order and each accepted filter contributes exactly
// one fragment and one binding:
//
//  1. all fields absent/blank is a NoFilterProvided validation error;
//  2. nationality is trimmed and upper-cased, kept only when it is exactly
//     "V" or "E", silently dropped otherwise;
//  3. an out-of-range cedula is an InvalidIdentifier validation error, never
//     a silent drop;
//  4. a birth date that does not normalize is an InvalidDate validation error;
//  5. name filters compare by case-insensitive equality;
//  6. the voting-center code compares as text, untransformed.
func BuildElectorSearch(f domain.SearchFilters) (string, []interface{}, error) {
	if !hasAnyFilter(f) {
		return "", nil, domain.NewValidationError(domain.NoFilterProvided,
			"debe indicar al menos un filtro de búsqueda")
	}

	var fragments []string
	var args []interface{}

	bind := func(column string, value interface{}) {
		args = append(args, value)
		fragments = append(fragments, fmt.Sprintf("AND %s = $%d", column, len(args)))
	}

	nacionalidad := strings.ToUpper(strings.TrimSpace(f.Nacionalidad))
	if nacionalidad == "V" || nacionalidad == "E" {
		bind("nacionalidad", nacionalidad)
	}

	if f.Cedula != nil {
		if *f.Cedula < 1 || *f.Cedula > cedulaMax {
			return "", nil, domain.NewValidationError(domain.InvalidIdentifier,
				"cedula inválida")
		}
		bind("cedula", *f.Cedula)
	}

	if strings.TrimSpace(f.FechaNacimiento) != "" {
		iso, ok := normalize.NormalizeCalendarDate(f.FechaNacimiento)
		if !ok {
			return "", nil, domain.NewValidationError(domain.InvalidDate,
				"fecha_nacimiento inválida")
		}
		bind("fecha_nacimiento", iso)
	}

	nameColumns := []struct {
		column string
		value  string
	}{
		{"primer_nombre", f.PrimerNombre},
		{"segundo_nombre", f.SegundoNombre},
		{"primer_apellido", f.PrimerApellido},
		{"segundo_apellido", f.SegundoApellido},
	}
	for _, nc := range nameColumns {
		v := strings.ToUpper(strings.TrimSpace(nc.value))
		if v == "" {
			continue
		}
		args = append(args, v)
		fragments = append(fragments, fmt.Sprintf("AND UPPER(%s) = $%d", nc.column, len(args)))
	}

	if strings.TrimSpace(f.CodigoCentro) != "" {
		bind("codigo_centro", f.CodigoCentro)
	}

	return strings.Join(fragments, "\n\t\t  "), args, nil
}

func hasAnyFilter(f domain.SearchFilters) bool {
	if f.Cedula != nil {
		return true
	}
	for _, s := range []string{
		f.Nacionalidad,
		f.FechaNacimiento,
		f.PrimerNombre,
		f.SegundoNombre,
		f.PrimerApellido,
		f.SegundoApellido,
		f.CodigoCentro,
	} {
		if strings.TrimSpace(s) != "" {
			return true
		}
	}
	return false
}
