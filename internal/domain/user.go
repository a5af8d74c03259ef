package domain

// Usuario is an application account (accounts store, not registry data).
type Usuario struct {
	ID           int64  `json:"id"`
	Nacionalidad string `json:"nacionalidad"`
	Cedula       int64  `json:"cedula"`
	Nombre       string `json:"nombre"`
	Apellido     string `json:"apellido"`
	Login        string `json:"login"`
	Password     string `json:"password"` // SHA-256 hex, never plaintext
	Activo       int    `json:"activo"`
	Expired      int    `json:"expired"`
}

// UsuarioCreate is the payload for creating one account, also the row shape
// produced by bulk CSV/XLSX import.
type UsuarioCreate struct {
	Nacionalidad string `json:"nacionalidad"`
	Cedula       int64  `json:"cedula"`
	Nombre       string `json:"nombre"`
	Apellido     string `json:"apellido"`
	Login        string `json:"login"`
	Password     string `json:"password"`
	Activo       int    `json:"activo"`
	Expired      int    `json:"expired"`
}

// UsuarioUpdate carries the editable account fields. A blank password keeps
// the stored hash.
type UsuarioUpdate struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Activo   int    `json:"activo"`
	Expired  int    `json:"expired"`
}
