package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventadeautos-cli/internal/application/session"
	"github.com/tu-usuario/ventadeautos-cli/pkg/logger"
)

// Un admin autenticado activa la ruta sin redirección.
func TestGuardAdmin_AdminPermitido(t *testing.T) {
	m := nuevoManager(t, &storeFake{}, &authFake{cuerpo: cuerpoLoginAdmin})
	_, err := m.Login(context.Background(), session.Credenciales{Email: "admin@autos.test", Password: "x"})
	require.NoError(t, err)

	d := session.NewGuardAdmin(m).Autorizar("/admin/autos")
	assert.True(t, d.Permitida)
	assert.Empty(t, d.RedirigirA)
}

// Un visitante anónimo se redirige al login admin con la ruta original como
// returnUrl.
func TestGuardAdmin_AnonimoRedirigido(t *testing.T) {
	m := nuevoManager(t, &storeFake{}, &authFake{})

	d := session.NewGuardAdmin(m).Autorizar("/admin/ventas")
	assert.False(t, d.Permitida)
	assert.Equal(t, "/admin/login?returnUrl=%2Fadmin%2Fventas", d.RedirigirA)
}

// Un cliente autenticado tampoco entra a zona admin, y el rechazo barre su
// sesión persistida.
func TestGuardAdmin_ClienteRechazadoYBarrido(t *testing.T) {
	store := &storeFake{}
	m := session.NewManager(store, &authFake{cuerpo: cuerpoLoginCliente}, &usuariosFake{}, logger.Nop())
	_, err := m.Login(context.Background(), session.Credenciales{Email: "cliente@autos.test", Password: "x"})
	require.NoError(t, err)
	require.NotNil(t, store.reg)

	d := session.NewGuardAdmin(m).Autorizar("/admin/contactos")

	assert.False(t, d.Permitida)
	assert.Contains(t, d.RedirigirA, "returnUrl=")
	assert.False(t, m.IsLoggedIn(), "el rechazo debe cerrar la sesión no autorizada")
	assert.Nil(t, store.reg, "no deben quedar artefactos de sesión persistidos")
}
