package usuarios

import (
	"context"

	"github.com/tu-usuario/ventadeautos-cli/internal/domain"
	"github.com/tu-usuario/ventadeautos-cli/internal/domain/entity"
	"github.com/tu-usuario/ventadeautos-cli/pkg/logger"
)

// API puerto hacia los endpoints de administración de cuentas.
type API interface {
	Listar(ctx context.Context) ([]entity.Usuario, error)
	CambiarEstado(ctx context.Context, usuarioID int64, activo bool) (*entity.Usuario, error)
	Eliminar(ctx context.Context, usuarioID int64) error
}

// Sesiones gate de rol.
type Sesiones interface {
	IsAdmin() bool
}

// UseCase gestión de cuentas de usuario por el administrador.
type UseCase struct {
	api      API
	sesiones Sesiones
	log      *logger.Logger
}

// NewUseCase construye el caso de uso de usuarios.
func NewUseCase(api API, sesiones Sesiones, log *logger.Logger) *UseCase {
	return &UseCase{api: api, sesiones: sesiones, log: log}
}

// Listar trae todas las cuentas (admin).
func (uc *UseCase) Listar(ctx context.Context) ([]entity.Usuario, error) {
	if !uc.sesiones.IsAdmin() {
		return nil, domain.ErrSoloAdmin
	}
	return uc.api.Listar(ctx)
}

// CambiarEstado activa o desactiva una cuenta (admin).
func (uc *UseCase) CambiarEstado(ctx context.Context, usuarioID int64, activo bool) (*entity.Usuario, error) {
	if !uc.sesiones.IsAdmin() {
		return nil, domain.ErrSoloAdmin
	}
	usuario, err := uc.api.CambiarEstado(ctx, usuarioID, activo)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("usuario_id", usuarioID).Bool("activo", activo).Msg("estado de cuenta actualizado")
	return usuario, nil
}

// Eliminar borra una cuenta (admin).
func (uc *UseCase) Eliminar(ctx context.Context, usuarioID int64) error {
	if !uc.sesiones.IsAdmin() {
		return domain.ErrSoloAdmin
	}
	if err := uc.api.Eliminar(ctx, usuarioID); err != nil {
		return err
	}
	uc.log.Info().Int64("usuario_id", usuarioID).Msg("cuenta eliminada")
	return nil
}
