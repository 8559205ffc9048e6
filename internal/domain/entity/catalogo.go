package entity

// Entidades de referencia del catálogo (datos maestros servidos por el backend).
// Comparten la forma {id, nombre, descripcion, activa}; se modelan como tipos
// separados para que un id de marca no se mezcle con uno de categoría.

// Marca fabricante del vehículo.
type Marca struct {
	ID            int64  `json:"id"`
	Nombre        string `json:"nombre"`
	Descripcion   string `json:"descripcion,omitempty"`
	Activa        bool   `json:"activa,omitempty"`
	FechaCreacion string `json:"fechaCreacion,omitempty"`
}

// CategoriaAuto carrocería (SEDAN, PICKUP, ...).
type CategoriaAuto struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Activa      bool   `json:"activa,omitempty"`
}

// Combustible tipo de combustible.
type Combustible struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Activa      bool   `json:"activa,omitempty"`
}

// Transmision tipo de transmisión.
type Transmision struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Activa      bool   `json:"activa,omitempty"`
}

// Nombres de condición reconocidos.
const (
	CondicionNuevo = "NUEVO"
	CondicionUsado = "USADO"
)

// CondicionAuto condición del vehículo (NUEVO o USADO).
type CondicionAuto struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Activa      bool   `json:"activa,omitempty"`
}

// Concesionario referencia opcional al concesionario que ofrece el auto.
type Concesionario struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
}
