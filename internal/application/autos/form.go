package autos

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventadeautos-cli/internal/domain"
	"github.com/tu-usuario/ventadeautos-cli/internal/domain/entity"
)

// AutoRequest cuerpo de creación/edición de un auto (coincide con el DTO del
// backend: referencias por id, no embebidas).
type AutoRequest struct {
	MarcaID       int64           `json:"marcaId"`
	Modelo        string          `json:"modelo"`
	Anio          int             `json:"anio"`
	Precio        decimal.Decimal `json:"precio"`
	Color         string          `json:"color"`
	Kilometraje   int             `json:"kilometraje"`
	CombustibleID int64           `json:"combustibleId,omitempty"`
	TransmisionID int64           `json:"transmisionId,omitempty"`
	CategoriaID   int64           `json:"categoriaId,omitempty"`
	CondicionID   int64           `json:"condicionId,omitempty"`
	Descripcion   string          `json:"descripcion"`
	Disponible    bool            `json:"disponible"`
	Imagenes      []string        `json:"imagenes"`
}

// Validar verifica el formulario ANTES de cualquier llamada de red y devuelve
// errores con campo y mensaje específicos. La regla condición/kilometraje es
// regla dura de dominio: aplica igual en creación y edición.
func (r *AutoRequest) Validar(condiciones []entity.CondicionAuto) error {
	if r.MarcaID == 0 {
		return domain.NuevaValidacion("marca", "por favor selecciona una marca")
	}
	if strings.TrimSpace(r.Modelo) == "" {
		return domain.NuevaValidacion("modelo", "el modelo es obligatorio")
	}
	anioMax := time.Now().Year() + 1
	if r.Anio < 1900 || r.Anio > anioMax {
		return domain.NuevaValidacion("anio", "el año debe estar entre 1900 y el año próximo")
	}
	if !r.Precio.IsPositive() {
		return domain.NuevaValidacion("precio", "el precio debe ser mayor a 0")
	}
	if strings.TrimSpace(r.Color) == "" {
		return domain.NuevaValidacion("color", "el color es obligatorio")
	}
	if r.Kilometraje < 0 {
		return domain.NuevaValidacion("kilometraje", "el kilometraje no puede ser negativo")
	}
	if strings.TrimSpace(r.Descripcion) == "" {
		return domain.NuevaValidacion("descripcion", "la descripción es obligatoria")
	}

	if nombre := nombreCondicion(condiciones, r.CondicionID); nombre != "" {
		switch nombre {
		case entity.CondicionNuevo:
			if r.Kilometraje > 0 {
				return domain.NuevaValidacion("kilometraje", "un auto NUEVO no puede tener kilometraje mayor a 0")
			}
		case entity.CondicionUsado:
			if r.Kilometraje == 0 {
				return domain.NuevaValidacion("kilometraje", "un auto USADO debe tener kilometraje mayor a 0")
			}
		}
	}

	r.Imagenes = podarImagenes(r.Imagenes)
	if len(r.Imagenes) > entity.MaxImagenesAuto {
		return domain.NuevaValidacion("imagenes", "máximo 5 imágenes por auto")
	}
	return nil
}

// nombreCondicion resuelve el nombre de la condición por id dentro del
// catálogo cargado; devuelve "" si el id no está.
func nombreCondicion(condiciones []entity.CondicionAuto, id int64) string {
	for _, c := range condiciones {
		if c.ID == id {
			return strings.ToUpper(strings.TrimSpace(c.Nombre))
		}
	}
	return ""
}

// podarImagenes descarta entradas vacías conservando el orden.
func podarImagenes(imagenes []string) []string {
	limpias := make([]string, 0, len(imagenes))
	for _, img := range imagenes {
		if strings.TrimSpace(img) != "" {
			limpias = append(limpias, img)
		}
	}
	return limpias
}
