package domain

// Elector is the aggregated, front-end-ready record for one identity key.
// JSON key names are a frozen contract with the existing front end; the
// miembro_mesa_* block is always populated, with sentinel values when the
// person has no polling-station role (see ApplyStationRoleSentinels).
type Elector struct {
	// Section 1: identity + objection
	Nacionalidad        string  `json:"nacionalidad"`
	Cedula              int64   `json:"cedula"`
	FechaNacimiento     *string `json:"fecha_nacimiento"` // YYYY-MM-DD
	PrimerNombre        *string `json:"primer_nombre"`
	SegundoNombre       *string `json:"segundo_nombre"`
	PrimerApellido      *string `json:"primer_apellido"`
	SegundoApellido     *string `json:"segundo_apellido"`
	CodigoObjecion      *string `json:"codigo_objecion"`
	DescripcionObjecion *string `json:"descripcion_objecion"`

	// Section 2: roll entry + geography
	FechaUltimoEvento *string `json:"fecha_ultimo_evento"` // YYYY-MM-DD
	EdadUltimoEvento  *int64  `json:"edad_ultimo_evento"`
	NumeroMesa        *int64  `json:"numero_mesa"`
	NumeroPagina      *int64  `json:"numero_pagina"`
	NumeroRenglon     *int64  `json:"numero_renglon"`

	CodigoCentro    *string `json:"codigo_centro"` // always 9 digits
	Estado          *string `json:"estado"`
	Municipio       *string `json:"municipio"`
	Parroquia       *string `json:"parroquia"`
	NombreCentro    *string `json:"nombre_centro"`
	DireccionCentro *string `json:"direccion_centro"`

	// Section 3: polling-station role
	MiembroMesaNumeroMesa                  *int64  `json:"miembro_mesa_numero_mesa"`
	MiembroMesaCargo                       *string `json:"miembro_mesa_cargo"`
	MiembroMesaCentroCapacitacion          *string `json:"miembro_mesa_centro_capacitacion"`
	MiembroMesaNombreCentroCapacitacion    *string `json:"miembro_mesa_nombre_centro_capacitacion"`
	MiembroMesaFechaInicioCapacitacion     *string `json:"miembro_mesa_fecha_inicio_capacitacion"`
	MiembroMesaFechaCulminacionCapacitacion *string `json:"miembro_mesa_fecha_culminacion_capacitacion"`
	MiembroMesaHorarioCapacitacion         *string `json:"miembro_mesa_horario_capacitacion"`
	MiembroMesaDireccionCentroCapacitacion *string `json:"miembro_mesa_direccion_centro_capacitacion"`
}

// NoAplica is the textual sentinel for "not applicable" station-role fields.
// The front end never branches on null for section 3, so every field gets a
// fixed placeholder instead.
const NoAplica = "No aplica"

// ApplyStationRoleSentinels fills section 3 with its documented sentinel
// values: station number 0, training-center code "0", text fields "No aplica".
func (e *Elector) ApplyStationRoleSentinels() {
	zero := int64(0)
	cero := "0"
	na := NoAplica
	e.MiembroMesaNumeroMesa = &zero
	e.MiembroMesaCargo = &na
	e.MiembroMesaCentroCapacitacion = &cero
	e.MiembroMesaNombreCentroCapacitacion = strPtr(NoAplica)
	e.MiembroMesaFechaInicioCapacitacion = strPtr(NoAplica)
	e.MiembroMesaFechaCulminacionCapacitacion = strPtr(NoAplica)
	e.MiembroMesaHorarioCapacitacion = strPtr(NoAplica)
	e.MiembroMesaDireccionCentroCapacitacion = strPtr(NoAplica)
}

func strPtr(s string) *string { return &s }

// SearchFilters is the caller-supplied optional filter set for the
// denormalized elector search. Empty strings and nil mean "not filtered".
type SearchFilters struct {
	Nacionalidad    string `json:"nacionalidad"`
	Cedula          *int64 `json:"cedula"`
	FechaNacimiento string `json:"fecha_nacimiento"`
	PrimerNombre    string `json:"primer_nombre"`
	SegundoNombre   string `json:"segundo_nombre"`
	PrimerApellido  string `json:"primer_apellido"`
	SegundoApellido string `json:"segundo_apellido"`
	CodigoCentro    string `json:"codigo_centro"`
}

// SearchResult is one row of the elector search projection.
type SearchResult struct {
	Nacionalidad    string  `json:"nacionalidad"`
	Cedula          int64   `json:"cedula"`
	PrimerNombre    *string `json:"primer_nombre"`
	SegundoNombre   *string `json:"segundo_nombre"`
	PrimerApellido  *string `json:"primer_apellido"`
	SegundoApellido *string `json:"segundo_apellido"`
	FechaNacimiento *string `json:"fecha_nacimiento"`
	CodigoCentro    *string `json:"codigo_centro"`
}

// Movement is one row of the registry movement history. Uppercase keys match
// the historical serialization the front end consumes.
type Movement struct {
	Cierre                int64   `json:"CIERRE"`
	NombreCorto           *string `json:"NOMBRE_CORTO"`
	IDLote                int64   `json:"ID_LOTE"`
	DescripcionMovimiento string  `json:"DESCRIPCION_MOVIMIENTO"`
	DescripcionStatus     string  `json:"DESCRIPCION_STATUS"`
	FechaProcesoMov       string  `json:"FECHA_PROCESO_MOV"`
}
