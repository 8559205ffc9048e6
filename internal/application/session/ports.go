package session

import (
	"context"

	"github.com/tu-usuario/ventadeautos-cli/internal/domain/entity"
)

// Credenciales entrada de login. El password se consume en la llamada y no se
// retiene en ningún lado (esquema bearer-token-only).
type Credenciales struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRespuesta cuerpo de respuesta de POST /auth/login. Rol puede llegar
// como objeto o como string legacy; entity.Rol normaliza al deserializar.
type LoginRespuesta struct {
	ID      int64      `json:"id"`
	Email   string     `json:"email"`
	Nombre  string     `json:"nombre"`
	Rol     entity.Rol `json:"rol"`
	Activo  bool       `json:"activo"`
	Token   string     `json:"token"`
	Mensaje string     `json:"mensaje,omitempty"`
}

// PerfilCambios campos editables del perfil. El rol no se cambia por esta vía.
type PerfilCambios struct {
	Nombre    string `json:"nombre,omitempty"`
	Apellido  string `json:"apellido,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

// AuthAPI puerto hacia el endpoint de autenticación del backend.
type AuthAPI interface {
	Login(ctx context.Context, cred Credenciales) (*LoginRespuesta, error)
}

// UsuariosAPI puerto hacia los endpoints de usuario que consume el manager.
type UsuariosAPI interface {
	ActualizarPerfil(ctx context.Context, usuarioID int64, cambios PerfilCambios) (*entity.Usuario, error)
}
