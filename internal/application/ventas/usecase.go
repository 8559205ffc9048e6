package ventas

import (
	"context"

	"github.com/tu-usuario/ventadeautos-cli/internal/domain"
	"github.com/tu-usuario/ventadeautos-cli/internal/domain/entity"
	"github.com/tu-usuario/ventadeautos-cli/pkg/logger"
)

// API puerto hacia los endpoints de ventas.
type API interface {
	// Contactar POST /ventas/contactar (cliente autenticado).
	Contactar(ctx context.Context, sol entity.SolicitudVenta) error
	// MisSolicitudes GET /ventas/mis-solicitudes.
	MisSolicitudes(ctx context.Context) ([]entity.Venta, error)

	// Endpoints de administración.
	ListarTodas(ctx context.Context) ([]entity.Venta, error)
	ListarPorEstado(ctx context.Context, estado string) ([]entity.Venta, error)
	// ActualizarEstado PUT /ventas/admin/{id}/estado.
	ActualizarEstado(ctx context.Context, id int64, estado string) (*entity.Venta, error)
}

// Sesiones gate de rol para las operaciones de administración.
type Sesiones interface {
	IsAdmin() bool
	IsLoggedIn() bool
}

// UseCase solicitudes de compra del cliente y gestión de ventas del admin.
type UseCase struct {
	api      API
	sesiones Sesiones
	log      *logger.Logger
}

// NewUseCase construye el caso de uso de ventas.
func NewUseCase(api API, sesiones Sesiones, log *logger.Logger) *UseCase {
	return &UseCase{api: api, sesiones: sesiones, log: log}
}

// Contactar registra la intención de compra de un cliente autenticado.
func (uc *UseCase) Contactar(ctx context.Context, sol entity.SolicitudVenta) error {
	if !uc.sesiones.IsLoggedIn() {
		return domain.ErrNoAutorizado
	}
	return uc.api.Contactar(ctx, sol)
}

// MisSolicitudes lista las solicitudes del cliente autenticado.
func (uc *UseCase) MisSolicitudes(ctx context.Context) ([]entity.Venta, error) {
	if !uc.sesiones.IsLoggedIn() {
		return nil, domain.ErrNoAutorizado
	}
	return uc.api.MisSolicitudes(ctx)
}

// ListarTodas trae todas las ventas (admin).
func (uc *UseCase) ListarTodas(ctx context.Context) ([]entity.Venta, error) {
	if !uc.sesiones.IsAdmin() {
		return nil, domain.ErrSoloAdmin
	}
	return uc.api.ListarTodas(ctx)
}

// ListarPorEstado trae las ventas en el estado dado (admin).
func (uc *UseCase) ListarPorEstado(ctx context.Context, estado string) ([]entity.Venta, error) {
	if !uc.sesiones.IsAdmin() {
		return nil, domain.ErrSoloAdmin
	}
	if !entity.EstadoVentaValido(estado) {
		return nil, domain.ErrEstadoInvalido
	}
	return uc.api.ListarPorEstado(ctx, estado)
}

// ActualizarEstado transiciona una venta dentro del vocabulario cerrado.
// Cuando una venta se finaliza, el backend marca el auto como no disponible;
// el cliente solo refleja ese efecto al recargar.
func (uc *UseCase) ActualizarEstado(ctx context.Context, id int64, estado string) (*entity.Venta, error) {
	if !uc.sesiones.IsAdmin() {
		return nil, domain.ErrSoloAdmin
	}
	if !entity.EstadoVentaValido(estado) {
		return nil, domain.ErrEstadoInvalido
	}
	venta, err := uc.api.ActualizarEstado(ctx, id, estado)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("venta_id", id).Str("estado", estado).Msg("estado de venta actualizado")
	return venta, nil
}
