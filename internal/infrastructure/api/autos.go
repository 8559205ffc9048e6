package api

import (
	"context"
	"fmt"

	"github.com/tu-usuario/ventadeautos-cli/internal/application/autos"
	"github.com/tu-usuario/ventadeautos-cli/internal/domain/entity"
)

// AutosAPI adaptador de los endpoints de catálogo y administración de autos
// (puertos catalogo.AutosAPI y autos.AdminAPI).
type AutosAPI struct {
	c *Client
}

// NewAutosAPI construye el adaptador de autos.
func NewAutosAPI(c *Client) *AutosAPI {
	return &AutosAPI{c: c}
}

// ListarDisponibles GET /autos?disponibles=true.
func (a *AutosAPI) ListarDisponibles(ctx context.Context) ([]entity.Auto, error) {
	var lista []entity.Auto
	if err := a.c.get(ctx, "autos?disponibles=true", &lista); err != nil {
		return nil, err
	}
	return lista, nil
}

// ListarTodos GET /autos?admin=true (catálogo completo).
func (a *AutosAPI) ListarTodos(ctx context.Context) ([]entity.Auto, error) {
	var lista []entity.Auto
	if err := a.c.get(ctx, "autos?admin=true", &lista); err != nil {
		return nil, err
	}
	return lista, nil
}

// Obtener GET /autos/{id}.
func (a *AutosAPI) Obtener(ctx context.Context, id int64) (*entity.Auto, error) {
	var auto entity.Auto
	if err := a.c.get(ctx, fmt.Sprintf("autos/%d", id), &auto); err != nil {
		return nil, err
	}
	return &auto, nil
}

// Marcas GET /autos/marcas.
func (a *AutosAPI) Marcas(ctx context.Context) ([]entity.Marca, error) {
	var lista []entity.Marca
	if err := a.c.get(ctx, "autos/marcas", &lista); err != nil {
		return nil, err
	}
	return lista, nil
}

// Categorias GET /autos/categorias.
func (a *AutosAPI) Categorias(ctx context.Context) ([]entity.CategoriaAuto, error) {
	var lista []entity.CategoriaAuto
	if err := a.c.get(ctx, "autos/categorias", &lista); err != nil {
		return nil, err
	}
	return lista, nil
}

// Combustibles GET /autos/combustibles.
func (a *AutosAPI) Combustibles(ctx context.Context) ([]entity.Combustible, error) {
	var lista []entity.Combustible
	if err := a.c.get(ctx, "autos/combustibles", &lista); err != nil {
		return nil, err
	}
	return lista, nil
}

// Transmisiones GET /autos/transmisiones.
func (a *AutosAPI) Transmisiones(ctx context.Context) ([]entity.Transmision, error) {
	var lista []entity.Transmision
	if err := a.c.get(ctx, "autos/transmisiones", &lista); err != nil {
		return nil, err
	}
	return lista, nil
}

// Condiciones GET /autos/condiciones.
func (a *AutosAPI) Condiciones(ctx context.Context) ([]entity.CondicionAuto, error) {
	var lista []entity.CondicionAuto
	if err := a.c.get(ctx, "autos/condiciones", &lista); err != nil {
		return nil, err
	}
	return lista, nil
}

// Crear POST /autos (admin).
func (a *AutosAPI) Crear(ctx context.Context, req autos.AutoRequest) (*entity.Auto, error) {
	var auto entity.Auto
	if err := a.c.post(ctx, "autos", req, &auto); err != nil {
		return nil, err
	}
	return &auto, nil
}

// Actualizar PUT /autos/{id} (admin).
func (a *AutosAPI) Actualizar(ctx context.Context, id int64, req autos.AutoRequest) (*entity.Auto, error) {
	var auto entity.Auto
	if err := a.c.put(ctx, fmt.Sprintf("autos/%d", id), req, &auto); err != nil {
		return nil, err
	}
	return &auto, nil
}

// Eliminar DELETE /autos/{id} (admin).
func (a *AutosAPI) Eliminar(ctx context.Context, id int64) error {
	return a.c.delete(ctx, fmt.Sprintf("autos/%d", id))
}

// CambiarDisponibilidad PUT /autos/admin/{id}/disponibilidad?disponible=... (admin).
func (a *AutosAPI) CambiarDisponibilidad(ctx context.Context, id int64, disponible bool) (*entity.Auto, error) {
	var auto entity.Auto
	path := fmt.Sprintf("autos/admin/%d/disponibilidad?disponible=%t", id, disponible)
	if err := a.c.put(ctx, path, struct{}{}, &auto); err != nil {
		return nil, err
	}
	return &auto, nil
}
