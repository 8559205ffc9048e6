package autos

import (
	"context"

	"github.com/tu-usuario/ventadeautos-cli/internal/domain"
	"github.com/tu-usuario/ventadeautos-cli/internal/domain/entity"
	"github.com/tu-usuario/ventadeautos-cli/pkg/logger"
)

// AdminAPI puerto hacia los endpoints de administración de autos.
type AdminAPI interface {
	Crear(ctx context.Context, req AutoRequest) (*entity.Auto, error)
	Actualizar(ctx context.Context, id int64, req AutoRequest) (*entity.Auto, error)
	Eliminar(ctx context.Context, id int64) error
	// CambiarDisponibilidad PUT /autos/admin/{id}/disponibilidad?disponible=...
	CambiarDisponibilidad(ctx context.Context, id int64, disponible bool) (*entity.Auto, error)
	Condiciones(ctx context.Context) ([]entity.CondicionAuto, error)
}

// Sesiones lo que el caso de uso necesita saber de la sesión.
type Sesiones interface {
	IsAdmin() bool
}

// UseCase operaciones de inventario del administrador. El gate de rol aquí es
// cortesía de UX (fallar rápido); el backend vuelve a autorizar.
type UseCase struct {
	api      AdminAPI
	sesiones Sesiones
	log      *logger.Logger
}

// NewUseCase construye el caso de uso de administración de autos.
func NewUseCase(api AdminAPI, sesiones Sesiones, log *logger.Logger) *UseCase {
	return &UseCase{api: api, sesiones: sesiones, log: log}
}

// Crear valida el formulario y crea el auto. La validación corre antes de
// tocar la red.
func (uc *UseCase) Crear(ctx context.Context, req AutoRequest) (*entity.Auto, error) {
	if !uc.sesiones.IsAdmin() {
		return nil, domain.ErrSoloAdmin
	}
	condiciones, err := uc.api.Condiciones(ctx)
	if err != nil {
		return nil, err
	}
	if err := req.Validar(condiciones); err != nil {
		return nil, err
	}
	auto, err := uc.api.Crear(ctx, req)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("auto_id", auto.ID).Str("modelo", auto.Modelo).Msg("auto creado")
	return auto, nil
}

// Actualizar valida y actualiza un auto existente. La regla condición vs
// kilometraje aplica también aquí, no solo en creación.
func (uc *UseCase) Actualizar(ctx context.Context, id int64, req AutoRequest) (*entity.Auto, error) {
	if !uc.sesiones.IsAdmin() {
		return nil, domain.ErrSoloAdmin
	}
	condiciones, err := uc.api.Condiciones(ctx)
	if err != nil {
		return nil, err
	}
	if err := req.Validar(condiciones); err != nil {
		return nil, err
	}
	auto, err := uc.api.Actualizar(ctx, id, req)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("auto_id", id).Msg("auto actualizado")
	return auto, nil
}

// Eliminar borra un auto del inventario.
func (uc *UseCase) Eliminar(ctx context.Context, id int64) error {
	if !uc.sesiones.IsAdmin() {
		return domain.ErrSoloAdmin
	}
	if err := uc.api.Eliminar(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Int64("auto_id", id).Msg("auto eliminado")
	return nil
}

// CambiarDisponibilidad marca un auto como disponible o vendido.
func (uc *UseCase) CambiarDisponibilidad(ctx context.Context, id int64, disponible bool) (*entity.Auto, error) {
	if !uc.sesiones.IsAdmin() {
		return nil, domain.ErrSoloAdmin
	}
	return uc.api.CambiarDisponibilidad(ctx, id, disponible)
}

// Reactivar vuelve a publicar un auto vendido (disponible = true).
func (uc *UseCase) Reactivar(ctx context.Context, id int64) (*entity.Auto, error) {
	return uc.CambiarDisponibilidad(ctx, id, true)
}
