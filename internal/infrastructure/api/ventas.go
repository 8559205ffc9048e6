package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tu-usuario/ventadeautos-cli/internal/domain/entity"
)

// VentasAPI adaptador de los endpoints de ventas (puerto ventas.API).
type VentasAPI struct {
	c *Client
}

// NewVentasAPI construye el adaptador de ventas.
func NewVentasAPI(c *Client) *VentasAPI {
	return &VentasAPI{c: c}
}

// Contactar POST /ventas/contactar.
func (a *VentasAPI) Contactar(ctx context.Context, sol entity.SolicitudVenta) error {
	return a.c.post(ctx, "ventas/contactar", sol, nil)
}

// MisSolicitudes GET /ventas/mis-solicitudes.
func (a *VentasAPI) MisSolicitudes(ctx context.Context) ([]entity.Venta, error) {
	var lista []entity.Venta
	if err := a.c.get(ctx, "ventas/mis-solicitudes", &lista); err != nil {
		return nil, err
	}
	return lista, nil
}

// ListarTodas GET /ventas/admin/todas.
func (a *VentasAPI) ListarTodas(ctx context.Context) ([]entity.Venta, error) {
	var lista []entity.Venta
	if err := a.c.get(ctx, "ventas/admin/todas", &lista); err != nil {
		return nil, err
	}
	return lista, nil
}

// ListarPorEstado GET /ventas/admin/estado/{estado}.
func (a *VentasAPI) ListarPorEstado(ctx context.Context, estado string) ([]entity.Venta, error) {
	var lista []entity.Venta
	if err := a.c.get(ctx, "ventas/admin/estado/"+url.PathEscape(estado), &lista); err != nil {
		return nil, err
	}
	return lista, nil
}

// ActualizarEstado PUT /ventas/admin/{id}/estado.
func (a *VentasAPI) ActualizarEstado(ctx context.Context, id int64, estado string) (*entity.Venta, error) {
	var venta entity.Venta
	body := struct {
		Estado string `json:"estado"`
	}{Estado: estado}
	if err := a.c.put(ctx, fmt.Sprintf("ventas/admin/%d/estado", id), body, &venta); err != nil {
		return nil, err
	}
	return &venta, nil
}
