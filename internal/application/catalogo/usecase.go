package catalogo

import (
	"context"

	"github.com/tu-usuario/ventadeautos-cli/internal/domain/entity"
	"github.com/tu-usuario/ventadeautos-cli/pkg/logger"
)

// Referencias agrupa los cinco catálogos de facets para renderizar la UI de
// filtros. Un catálogo que no pudo cargarse queda nil (la UI omite ese bloque).
type Referencias struct {
	Marcas        []entity.Marca
	Categorias    []entity.CategoriaAuto
	Combustibles  []entity.Combustible
	Transmisiones []entity.Transmision
	Condiciones   []entity.CondicionAuto
}

// UseCase es el anfitrión del motor de filtros: decide qué conjunto base pedir
// según el rol de la sesión y carga los datos de referencia.
type UseCase struct {
	api      AutosAPI
	sesiones Sesiones
	log      *logger.Logger
}

// NewUseCase construye el caso de uso del catálogo.
func NewUseCase(api AutosAPI, sesiones Sesiones, log *logger.Logger) *UseCase {
	return &UseCase{api: api, sesiones: sesiones, log: log}
}

// Cargar trae el conjunto base de autos: el catálogo completo para un admin,
// solo disponibles para el resto. La autorización real la aplica el backend.
func (uc *UseCase) Cargar(ctx context.Context) ([]entity.Auto, error) {
	if uc.sesiones.IsAdmin() {
		return uc.api.ListarTodos(ctx)
	}
	return uc.api.ListarDisponibles(ctx)
}

// FiltrosIniciales devuelve criterios vacíos con el alcance de visibilidad
// que corresponde al rol actual.
func (uc *UseCase) FiltrosIniciales() *Filtros {
	f := NuevosFiltros()
	f.Admin = uc.sesiones.IsAdmin()
	return f
}

// Opciones carga los catálogos de referencia. Cada catálogo que falla se
// registra y se continúa con los demás, como hace la pantalla original.
func (uc *UseCase) Opciones(ctx context.Context) *Referencias {
	ref := &Referencias{}
	var err error

	if ref.Marcas, err = uc.api.Marcas(ctx); err != nil {
		uc.log.Error().Err(err).Msg("error cargando marcas")
	}
	if ref.Categorias, err = uc.api.Categorias(ctx); err != nil {
		uc.log.Error().Err(err).Msg("error cargando categorías")
	}
	if ref.Combustibles, err = uc.api.Combustibles(ctx); err != nil {
		uc.log.Error().Err(err).Msg("error cargando combustibles")
	}
	if ref.Transmisiones, err = uc.api.Transmisiones(ctx); err != nil {
		uc.log.Error().Err(err).Msg("error cargando transmisiones")
	}
	if ref.Condiciones, err = uc.api.Condiciones(ctx); err != nil {
		uc.log.Error().Err(err).Msg("error cargando condiciones")
	}
	return ref
}

// Detalle trae un auto puntual.
func (uc *UseCase) Detalle(ctx context.Context, id int64) (*entity.Auto, error) {
	return uc.api.Obtener(ctx, id)
}
