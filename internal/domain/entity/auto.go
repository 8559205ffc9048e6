package entity

import "github.com/shopspring/decimal"

// MaxImagenesAuto tope de imágenes por auto en el formulario de administración.
const MaxImagenesAuto = 5

// Auto representa un vehículo del catálogo tal como lo sirve el backend.
// Las referencias (marca, combustible, ...) llegan embebidas como objeto.
type Auto struct {
	ID                 int64           `json:"id"`
	Marca              *Marca          `json:"marca"`
	Modelo             string          `json:"modelo"`
	Anio               int             `json:"anio"`
	Precio             decimal.Decimal `json:"precio"`
	Color              string          `json:"color"`
	Kilometraje        int             `json:"kilometraje"`
	Combustible        *Combustible    `json:"combustible"`
	Transmision        *Transmision    `json:"transmision"`
	Categoria          *CategoriaAuto  `json:"categoria"`
	Condicion          *CondicionAuto  `json:"condicion"`
	Descripcion        string          `json:"descripcion"`
	Disponible         bool            `json:"disponible"`
	Imagenes           []string        `json:"imagenes"`
	Concesionario      *Concesionario  `json:"concesionario,omitempty"`
	FechaCreacion      string          `json:"fechaCreacion,omitempty"`
	FechaActualizacion string          `json:"fechaActualizacion,omitempty"`
}

// EsNuevo indica si la condición del auto es NUEVO.
func (a Auto) EsNuevo() bool {
	return a.Condicion != nil && a.Condicion.Nombre == CondicionNuevo
}

// MarcaID devuelve el id de la marca o 0 si no viene embebida.
func (a Auto) MarcaID() int64 {
	if a.Marca == nil {
		return 0
	}
	return a.Marca.ID
}

// CategoriaID devuelve el id de la categoría o 0.
func (a Auto) CategoriaID() int64 {
	if a.Categoria == nil {
		return 0
	}
	return a.Categoria.ID
}

// CombustibleID devuelve el id del combustible o 0.
func (a Auto) CombustibleID() int64 {
	if a.Combustible == nil {
		return 0
	}
	return a.Combustible.ID
}

// TransmisionID devuelve el id de la transmisión o 0.
func (a Auto) TransmisionID() int64 {
	if a.Transmision == nil {
		return 0
	}
	return a.Transmision.ID
}

// CondicionID devuelve el id de la condición o 0.
func (a Auto) CondicionID() int64 {
	if a.Condicion == nil {
		return 0
	}
	return a.Condicion.ID
}
