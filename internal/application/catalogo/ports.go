package catalogo

import (
	"context"

	"github.com/tu-usuario/ventadeautos-cli/internal/domain/entity"
)

// AutosAPI puerto hacia los endpoints de catálogo del backend.
type AutosAPI interface {
	// ListarDisponibles GET /autos?disponibles=true (catálogo visible al cliente).
	ListarDisponibles(ctx context.Context) ([]entity.Auto, error)
	// ListarTodos GET /autos?admin=true (catálogo completo, incluye vendidos).
	ListarTodos(ctx context.Context) ([]entity.Auto, error)
	// Obtener GET /autos/{id}.
	Obtener(ctx context.Context, id int64) (*entity.Auto, error)

	Marcas(ctx context.Context) ([]entity.Marca, error)
	Categorias(ctx context.Context) ([]entity.CategoriaAuto, error)
	Combustibles(ctx context.Context) ([]entity.Combustible, error)
	Transmisiones(ctx context.Context) ([]entity.Transmision, error)
	Condiciones(ctx context.Context) ([]entity.CondicionAuto, error)
}

// Sesiones es lo mínimo que el catálogo necesita saber de la sesión.
type Sesiones interface {
	IsAdmin() bool
}
