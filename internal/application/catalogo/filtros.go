package catalogo

import (
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tu-usuario/ventadeautos-cli/internal/domain/entity"
)

// Vista modo de visualización del catálogo para administradores. Reemplaza al
// filtro plano de disponibilidad cuando el caller es admin.
type Vista string

// Modos de vista admin.
const (
	VistaDisponibles Vista = "disponibles"
	VistaVendidos    Vista = "vendidos"
	VistaTodos       Vista = "todos"
)

// Filtros es el conjunto de criterios de una instancia de listado. Los facets
// de valor único guardan el id como string: cadena vacía = sin filtro (todo
// coincide para ese facet). Los criterios activos se combinan con AND lógico.
type Filtros struct {
	Condicion   string
	Marca       string
	Categoria   string
	Combustible string
	Transmision string

	PrecioMin *decimal.Decimal
	PrecioMax *decimal.Decimal
	AnioMin   *int
	AnioMax   *int
	// KilometrajeMax es tope superior únicamente; no hay piso de kilometraje.
	KilometrajeMax *int

	Busqueda string

	// Admin indica que el caller es administrador: la visibilidad pasa a
	// gobernarse por Vista en lugar del filtro plano de disponibilidad.
	Admin bool
	Vista Vista
}

// NuevosFiltros devuelve un conjunto de criterios vacío (estado por defecto
// de cada instancia de componente).
func NuevosFiltros() *Filtros {
	return &Filtros{}
}

// DesdeQuery pre-siembra condicion/marca/categoria desde parámetros de
// navegación (ej. /autos?marca=3&condicion=1).
func (f *Filtros) DesdeQuery(q url.Values) {
	if v := q.Get("condicion"); v != "" {
		f.Condicion = v
	}
	if v := q.Get("marca"); v != "" {
		f.Marca = v
	}
	if v := q.Get("categoria"); v != "" {
		f.Categoria = v
	}
}

// Limpiar restablece todos los criterios a su valor vacío. La vista admin no
// es un criterio y se conserva.
func (f *Filtros) Limpiar() {
	vista, admin := f.Vista, f.Admin
	*f = Filtros{Vista: vista, Admin: admin}
}

// toggle aplica la semántica on/off de los facets de valor único: seleccionar
// el id ya activo lo desactiva (no es multi-select).
func toggle(campo *string, id int64) {
	v := strconv.FormatInt(id, 10)
	if *campo == v {
		*campo = ""
	} else {
		*campo = v
	}
}

// ToggleCondicion activa/desactiva el filtro de condición.
func (f *Filtros) ToggleCondicion(id int64) { toggle(&f.Condicion, id) }

// ToggleMarca activa/desactiva el filtro de marca.
func (f *Filtros) ToggleMarca(id int64) { toggle(&f.Marca, id) }

// ToggleCategoria activa/desactiva el filtro de categoría.
func (f *Filtros) ToggleCategoria(id int64) { toggle(&f.Categoria, id) }

// ToggleTransmision activa/desactiva el filtro de transmisión.
func (f *Filtros) ToggleTransmision(id int64) { toggle(&f.Transmision, id) }

// SetRangoPrecio fija el rango de precio (bordes inclusivos, nil = sin borde).
func (f *Filtros) SetRangoPrecio(min, max *decimal.Decimal) {
	f.PrecioMin, f.PrecioMax = min, max
}

// SetRangoAnio fija el rango de año (bordes inclusivos, nil = sin borde).
func (f *Filtros) SetRangoAnio(min, max *int) {
	f.AnioMin, f.AnioMax = min, max
}

// SetKilometrajeMax fija el tope de kilometraje (nil = sin tope).
func (f *Filtros) SetKilometrajeMax(max *int) {
	f.KilometrajeMax = max
}

// Aplicar filtra la lista completa con los criterios vigentes. Es pura y
// estable: devuelve un subconjunto en el orden de entrada, nunca agrega
// elementos. Ids de facet inexistentes en la lista producen cero resultados,
// no error.
func (f *Filtros) Aplicar(autos []entity.Auto) []entity.Auto {
	resultado := make([]entity.Auto, 0, len(autos))
	for _, a := range autos {
		if f.visible(a) && f.coincide(a) {
			resultado = append(resultado, a)
		}
	}
	return resultado
}

// visible aplica la regla de disponibilidad: clientes solo ven disponibles,
// sin importar el resto de criterios; admins usan el modo de vista.
func (f *Filtros) visible(a entity.Auto) bool {
	if !f.Admin {
		return a.Disponible
	}
	switch f.Vista {
	case VistaDisponibles:
		return a.Disponible
	case VistaVendidos:
		return !a.Disponible
	default: // VistaTodos o sin fijar
		return true
	}
}

// coincide evalúa el AND de todos los criterios no vacíos contra un auto.
// Los facets comparan por id de referencia, nunca por nombre.
func (f *Filtros) coincide(a entity.Auto) bool {
	if f.Condicion != "" && strconv.FormatInt(a.CondicionID(), 10) != f.Condicion {
		return false
	}
	if f.Marca != "" && strconv.FormatInt(a.MarcaID(), 10) != f.Marca {
		return false
	}
	if f.Categoria != "" && strconv.FormatInt(a.CategoriaID(), 10) != f.Categoria {
		return false
	}
	if f.Combustible != "" && strconv.FormatInt(a.CombustibleID(), 10) != f.Combustible {
		return false
	}
	if f.Transmision != "" && strconv.FormatInt(a.TransmisionID(), 10) != f.Transmision {
		return false
	}
	if f.PrecioMin != nil && a.Precio.Cmp(*f.PrecioMin) < 0 {
		return false
	}
	if f.PrecioMax != nil && a.Precio.Cmp(*f.PrecioMax) > 0 {
		return false
	}
	if f.AnioMin != nil && a.Anio < *f.AnioMin {
		return false
	}
	if f.AnioMax != nil && a.Anio > *f.AnioMax {
		return false
	}
	if f.KilometrajeMax != nil && a.Kilometraje > *f.KilometrajeMax {
		return false
	}
	if f.Busqueda != "" && !coincideBusqueda(a, f.Busqueda) {
		return false
	}
	return true
}

// coincideBusqueda búsqueda textual por subcadena sobre marca, modelo y color,
// insensible a mayúsculas y acentos ("citroen" encuentra "Citroën").
func coincideBusqueda(a entity.Auto, termino string) bool {
	t := plegar(strings.TrimSpace(termino))
	marca := ""
	if a.Marca != nil {
		marca = plegar(a.Marca.Nombre)
	}
	return strings.Contains(marca, t) ||
		strings.Contains(plegar(a.Modelo), t) ||
		strings.Contains(plegar(a.Color), t)
}

var quitarAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// plegar normaliza un texto para comparación: sin acentos y en minúsculas.
func plegar(s string) string {
	out, _, err := transform.String(quitarAcentos, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Contadores por facet
//
// Los contadores reflejan cardinalidad de facet individual: cuentan autos que
// cumplen la regla de visibilidad Y ese valor de facet, ignorando el resto de
// los facets activos. Así la UI puede mostrar "(12)" junto a una marca aunque
// haya otros tres filtros aplicados.
// ──────────────────────────────────────────────────────────────────────────────

func (f *Filtros) contar(autos []entity.Auto, pred func(entity.Auto) bool) int {
	n := 0
	for _, a := range autos {
		if f.visible(a) && pred(a) {
			n++
		}
	}
	return n
}

// ContarPorMarca cuenta autos visibles de la marca dada.
func (f *Filtros) ContarPorMarca(autos []entity.Auto, marcaID int64) int {
	return f.contar(autos, func(a entity.Auto) bool { return a.MarcaID() == marcaID })
}

// ContarPorCategoria cuenta autos visibles de la categoría dada.
func (f *Filtros) ContarPorCategoria(autos []entity.Auto, categoriaID int64) int {
	return f.contar(autos, func(a entity.Auto) bool { return a.CategoriaID() == categoriaID })
}

// ContarPorCondicion cuenta autos visibles de la condición dada.
func (f *Filtros) ContarPorCondicion(autos []entity.Auto, condicionID int64) int {
	return f.contar(autos, func(a entity.Auto) bool { return a.CondicionID() == condicionID })
}

// ContarPorTransmision cuenta autos visibles de la transmisión dada.
func (f *Filtros) ContarPorTransmision(autos []entity.Auto, transmisionID int64) int {
	return f.contar(autos, func(a entity.Auto) bool { return a.TransmisionID() == transmisionID })
}

// ContarPorPrecio cuenta autos visibles dentro del rango de precio (inclusivo; nil = sin borde).
func (f *Filtros) ContarPorPrecio(autos []entity.Auto, min, max *decimal.Decimal) int {
	return f.contar(autos, func(a entity.Auto) bool {
		if min != nil && a.Precio.Cmp(*min) < 0 {
			return false
		}
		if max != nil && a.Precio.Cmp(*max) > 0 {
			return false
		}
		return true
	})
}

// ContarPorAnio cuenta autos visibles dentro del rango de año (inclusivo).
func (f *Filtros) ContarPorAnio(autos []entity.Auto, min, max int) int {
	return f.contar(autos, func(a entity.Auto) bool { return a.Anio >= min && a.Anio <= max })
}

// ContarPorKilometraje cuenta autos visibles dentro del rango de kilometraje
// (min inclusivo, max inclusivo; max nil = sin tope).
func (f *Filtros) ContarPorKilometraje(autos []entity.Auto, min int, max *int) int {
	return f.contar(autos, func(a entity.Auto) bool {
		if a.Kilometraje < min {
			return false
		}
		if max != nil && a.Kilometraje > *max {
			return false
		}
		return true
	})
}
