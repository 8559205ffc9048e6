package api

import (
	"context"
	"fmt"

	"github.com/tu-usuario/ventadeautos-cli/internal/application/session"
	"github.com/tu-usuario/ventadeautos-cli/internal/domain/entity"
)

// UsuariosAPI adaptador de los endpoints de usuarios (puerto
// session.UsuariosAPI más operaciones de administración de cuentas).
type UsuariosAPI struct {
	c *Client
}

// NewUsuariosAPI construye el adaptador de usuarios.
func NewUsuariosAPI(c *Client) *UsuariosAPI {
	return &UsuariosAPI{c: c}
}

// ActualizarPerfil PUT /usuarios/{id}.
func (u *UsuariosAPI) ActualizarPerfil(ctx context.Context, usuarioID int64, cambios session.PerfilCambios) (*entity.Usuario, error) {
	var usuario entity.Usuario
	if err := u.c.put(ctx, fmt.Sprintf("usuarios/%d", usuarioID), cambios, &usuario); err != nil {
		return nil, err
	}
	return &usuario, nil
}

// Listar GET /usuarios (admin).
func (u *UsuariosAPI) Listar(ctx context.Context) ([]entity.Usuario, error) {
	var lista []entity.Usuario
	if err := u.c.get(ctx, "usuarios", &lista); err != nil {
		return nil, err
	}
	return lista, nil
}

// CambiarEstado PUT /usuarios/{id}/estado (admin): activa o desactiva la cuenta.
func (u *UsuariosAPI) CambiarEstado(ctx context.Context, usuarioID int64, activo bool) (*entity.Usuario, error) {
	var usuario entity.Usuario
	body := struct {
		Activo bool `json:"activo"`
	}{Activo: activo}
	if err := u.c.put(ctx, fmt.Sprintf("usuarios/%d/estado", usuarioID), body, &usuario); err != nil {
		return nil, err
	}
	return &usuario, nil
}

// Eliminar DELETE /usuarios/{id} (admin).
func (u *UsuariosAPI) Eliminar(ctx context.Context, usuarioID int64) error {
	return u.c.delete(ctx, fmt.Sprintf("usuarios/%d", usuarioID))
}
