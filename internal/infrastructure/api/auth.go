package api

import (
	"context"

	"github.com/tu-usuario/ventadeautos-cli/internal/application/session"
)

// AuthAPI adaptador del endpoint de autenticación (puerto session.AuthAPI).
type AuthAPI struct {
	c *Client
}

// NewAuthAPI construye el adaptador de auth.
func NewAuthAPI(c *Client) *AuthAPI {
	return &AuthAPI{c: c}
}

// Login POST /auth/login. El cuerpo de respuesta trae id, email, nombre, rol
// (objeto o string legacy), activo y token.
func (a *AuthAPI) Login(ctx context.Context, cred session.Credenciales) (*session.LoginRespuesta, error) {
	var resp session.LoginRespuesta
	if err := a.c.post(ctx, "auth/login", cred, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
