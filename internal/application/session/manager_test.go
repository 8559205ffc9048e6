package session_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventadeautos-cli/internal/application/session"
	"github.com/tu-usuario/ventadeautos-cli/internal/domain"
	"github.com/tu-usuario/ventadeautos-cli/internal/domain/entity"
	"github.com/tu-usuario/ventadeautos-cli/internal/domain/repository"
	"github.com/tu-usuario/ventadeautos-cli/pkg/logger"
	"github.com/tu-usuario/ventadeautos-cli/pkg/token"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// storeFake guarda el registro en memoria y cuenta las limpiezas.
type storeFake struct {
	reg       *repository.RegistroSesion
	cargarErr error
	limpiezas int
}

func (s *storeFake) Cargar() (*repository.RegistroSesion, error) {
	if s.cargarErr != nil {
		return nil, s.cargarErr
	}
	return s.reg, nil
}

func (s *storeFake) Guardar(reg repository.RegistroSesion) error {
	copia := reg
	s.reg = &copia
	return nil
}

func (s *storeFake) Limpiar() error {
	s.reg = nil
	s.limpiezas++
	return nil
}

// authFake responde el login con un cuerpo JSON fijo, ejercitando la misma
// deserialización que el backend real (incluida la coerción de rol).
type authFake struct {
	cuerpo string
	err    error
}

func (a *authFake) Login(ctx context.Context, cred session.Credenciales) (*session.LoginRespuesta, error) {
	if a.err != nil {
		return nil, a.err
	}
	var resp session.LoginRespuesta
	if err := json.Unmarshal([]byte(a.cuerpo), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type usuariosFake struct {
	respuesta *entity.Usuario
	err       error
}

func (u *usuariosFake) ActualizarPerfil(ctx context.Context, usuarioID int64, cambios session.PerfilCambios) (*entity.Usuario, error) {
	if u.err != nil {
		return nil, u.err
	}
	return u.respuesta, nil
}

const (
	cuerpoLoginAdmin = `{
		"id": 1, "email": "admin@autos.test", "nombre": "Admin", "activo": true,
		"rol": {"id": 1, "nombre": "ADMIN", "descripcion": "Administrador", "activa": true},
		"token": "tok-admin"
	}`
	cuerpoLoginCliente = `{
		"id": 2, "email": "cliente@autos.test", "nombre": "Clara", "activo": true,
		"rol": {"id": 2, "nombre": "CLIENTE"},
		"token": "tok-cliente"
	}`
	// Backend legacy: rol como string plano.
	cuerpoLoginRolString = `{
		"id": 3, "email": "legacy@autos.test", "nombre": "Luis", "activo": true,
		"rol": "ADMIN",
		"token": "tok-legacy"
	}`
	cuerpoLoginSinToken = `{
		"id": 4, "email": "sin@autos.test", "nombre": "Nadie",
		"rol": {"nombre": "CLIENTE"}
	}`
)

func nuevoManager(t *testing.T, store *storeFake, auth *authFake) *session.Manager {
	t.Helper()
	return session.NewManager(store, auth, &usuariosFake{}, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Login / Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Admin_ActivaPredicados(t *testing.T) {
	store := &storeFake{}
	m := nuevoManager(t, store, &authFake{cuerpo: cuerpoLoginAdmin})

	u, err := m.Login(context.Background(), session.Credenciales{Email: "admin@autos.test", Password: "x"})
	require.NoError(t, err)

	assert.True(t, m.IsLoggedIn())
	assert.True(t, m.IsAdmin())
	assert.False(t, m.IsCliente())
	assert.Equal(t, "tok-admin", m.Token())
	assert.Equal(t, "Admin", u.Nombre)

	// El trío persiste como unidad.
	require.NotNil(t, store.reg)
	assert.Equal(t, "tok-admin", store.reg.Token)
	assert.Equal(t, "ADMIN", store.reg.Rol)
}

func TestLogin_Cliente_NoEsAdmin(t *testing.T) {
	m := nuevoManager(t, &storeFake{}, &authFake{cuerpo: cuerpoLoginCliente})

	_, err := m.Login(context.Background(), session.Credenciales{Email: "cliente@autos.test", Password: "x"})
	require.NoError(t, err)

	assert.True(t, m.IsLoggedIn())
	assert.True(t, m.IsCliente())
	assert.False(t, m.IsAdmin())
}

// Un backend legacy que manda el rol como string plano debe producir los mismos
// predicados que la forma objeto.
func TestLogin_RolComoString_SeCoerce(t *testing.T) {
	m := nuevoManager(t, &storeFake{}, &authFake{cuerpo: cuerpoLoginRolString})

	u, err := m.Login(context.Background(), session.Credenciales{Email: "legacy@autos.test", Password: "x"})
	require.NoError(t, err)

	assert.True(t, m.IsAdmin(), "rol string ADMIN debe coercerse al objeto canónico")
	assert.Equal(t, "ADMIN", u.Rol.Nombre)
}

// Cualquier fallo (red, credenciales, backend caído) se reporta con el mismo
// error genérico: el detalle no se filtra al caller.
func TestLogin_FalloDeRed_ErrorGenerico(t *testing.T) {
	m := nuevoManager(t, &storeFake{}, &authFake{err: errors.New("connection refused")})

	_, err := m.Login(context.Background(), session.Credenciales{Email: "x@x", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)
	assert.False(t, m.IsLoggedIn())
}

// Una respuesta 200 sin token también es un login fallido.
func TestLogin_RespuestaSinToken_EsFallo(t *testing.T) {
	store := &storeFake{}
	m := nuevoManager(t, store, &authFake{cuerpo: cuerpoLoginSinToken})

	_, err := m.Login(context.Background(), session.Credenciales{Email: "sin@autos.test", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)
	assert.False(t, m.IsLoggedIn())
	assert.Nil(t, store.reg, "no debe persistirse nada de un login fallido")
}

func TestLogout_LimpiaEstadoYPersistencia(t *testing.T) {
	store := &storeFake{}
	m := nuevoManager(t, store, &authFake{cuerpo: cuerpoLoginAdmin})
	_, err := m.Login(context.Background(), session.Credenciales{Email: "admin@autos.test", Password: "x"})
	require.NoError(t, err)

	m.Logout()

	assert.False(t, m.IsLoggedIn())
	assert.False(t, m.IsAdmin())
	assert.Empty(t, m.Token())
	assert.Nil(t, m.CurrentUser())
	assert.Nil(t, store.reg, "el trío persistido debe eliminarse en logout")
}

// Logout sobre sesión ya anónima es inocuo.
func TestLogout_Idempotente(t *testing.T) {
	m := nuevoManager(t, &storeFake{}, &authFake{})
	m.Logout()
	m.Logout()
	assert.False(t, m.IsLoggedIn())
}

// ──────────────────────────────────────────────────────────────────────────────
// Restauración al construir
// ──────────────────────────────────────────────────────────────────────────────

func registroValido(t *testing.T, rol string) *repository.RegistroSesion {
	t.Helper()
	raw, err := json.Marshal(entity.Usuario{
		ID: 7, Email: "resto@autos.test", Nombre: "Rita",
		Rol: entity.Rol{Nombre: rol}, Activo: true,
	})
	require.NoError(t, err)
	return &repository.RegistroSesion{Token: "tok-restaurado", Rol: rol, Usuario: raw}
}

func TestRestaurar_SesionPersistida(t *testing.T) {
	store := &storeFake{reg: registroValido(t, "ADMIN")}
	m := nuevoManager(t, store, &authFake{})

	assert.True(t, m.IsLoggedIn(), "la sesión guardada debe restaurarse al construir")
	assert.True(t, m.IsAdmin())
	assert.Equal(t, "tok-restaurado", m.Token())
}

func TestRestaurar_SinRegistro_Anonimo(t *testing.T) {
	m := nuevoManager(t, &storeFake{}, &authFake{})
	assert.False(t, m.IsLoggedIn())
	assert.Nil(t, m.CurrentUser())
}

// Un registro corrupto se purga y el estado inicial queda anónimo.
func TestRestaurar_RegistroCorrupto_SePurga(t *testing.T) {
	store := &storeFake{cargarErr: domain.ErrSesionCorrupta}
	m := nuevoManager(t, store, &authFake{})

	assert.False(t, m.IsLoggedIn())
	assert.Equal(t, 1, store.limpiezas, "el registro corrupto debe purgarse")
}

// Si el snapshot de usuario no trae rol pero el token persistido tiene el
// claim, el rol se rellena desde el token (decodificación local, sin red).
func TestRestaurar_RolDesdeClaimDelToken(t *testing.T) {
	tok, err := token.Generate("secreto-de-test", "7", "resto@autos.test", "ADMIN", "ventadeautos-test", 60)
	require.NoError(t, err)

	raw, err := json.Marshal(map[string]any{
		"id": 7, "email": "resto@autos.test", "nombre": "Rita", "activo": true,
	})
	require.NoError(t, err)

	store := &storeFake{reg: &repository.RegistroSesion{Token: tok, Usuario: raw}}
	m := nuevoManager(t, store, &authFake{})

	assert.True(t, m.IsAdmin(), "el rol debe recuperarse del claim del token")
}

// El campo rol legacy del registro gana sobre un snapshot sin rol.
func TestRestaurar_RolLegacyDelRegistro(t *testing.T) {
	raw, err := json.Marshal(map[string]any{"id": 7, "email": "resto@autos.test"})
	require.NoError(t, err)

	store := &storeFake{reg: &repository.RegistroSesion{Token: "opaco", Rol: "CLIENTE", Usuario: raw}}
	m := nuevoManager(t, store, &authFake{})

	assert.True(t, m.IsCliente())
}

// ──────────────────────────────────────────────────────────────────────────────
// Perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestActualizarPerfil_SinSesion_NoAutorizado(t *testing.T) {
	m := nuevoManager(t, &storeFake{}, &authFake{})
	_, err := m.ActualizarPerfil(context.Background(), session.PerfilCambios{Nombre: "Otro"})
	assert.ErrorIs(t, err, domain.ErrNoAutorizado)
}

func TestActualizarPerfil_FusionaYConservaRol(t *testing.T) {
	store := &storeFake{}
	usrs := &usuariosFake{respuesta: &entity.Usuario{Nombre: "Admin Editado", Telefono: "1122334455"}}
	m := session.NewManager(store, &authFake{cuerpo: cuerpoLoginAdmin}, usrs, logger.Nop())
	_, err := m.Login(context.Background(), session.Credenciales{Email: "admin@autos.test", Password: "x"})
	require.NoError(t, err)

	u, err := m.ActualizarPerfil(context.Background(), session.PerfilCambios{Nombre: "Admin Editado"})
	require.NoError(t, err)

	assert.Equal(t, "Admin Editado", u.Nombre)
	assert.Equal(t, "1122334455", u.Telefono)
	assert.Equal(t, "admin@autos.test", u.Email, "campo no devuelto conserva el valor previo")
	assert.True(t, m.IsAdmin(), "el rol nunca cambia por la vía del perfil")

	require.NotNil(t, store.reg)
	assert.Equal(t, "tok-admin", store.reg.Token, "el token vigente se re-persiste con el perfil")
}

// CurrentUser devuelve una copia: mutarla no afecta el estado interno.
func TestCurrentUser_DevuelveCopia(t *testing.T) {
	m := nuevoManager(t, &storeFake{}, &authFake{cuerpo: cuerpoLoginAdmin})
	_, err := m.Login(context.Background(), session.Credenciales{Email: "admin@autos.test", Password: "x"})
	require.NoError(t, err)

	copia := m.CurrentUser()
	copia.Rol.Nombre = "CLIENTE"

	assert.True(t, m.IsAdmin(), "mutar la copia no debe degradar la sesión")
}

// ──────────────────────────────────────────────────────────────────────────────
// Suscripciones
// ──────────────────────────────────────────────────────────────────────────────

func TestSuscribir_RecibeSnapshotsDeTransiciones(t *testing.T) {
	m := nuevoManager(t, &storeFake{}, &authFake{cuerpo: cuerpoLoginAdmin})
	ch, cancelar := m.Suscribir()
	defer cancelar()

	_, err := m.Login(context.Background(), session.Credenciales{Email: "admin@autos.test", Password: "x"})
	require.NoError(t, err)

	snap := <-ch
	require.NotNil(t, snap)
	assert.Equal(t, "admin@autos.test", snap.Email)

	m.Logout()
	assert.Nil(t, <-ch, "el logout publica el snapshot nulo")
}

// Si el consumidor no drena, un snapshot nuevo reemplaza al viejo en vez de
// bloquear al publicador.
func TestSuscribir_PublicadorNuncaBloquea(t *testing.T) {
	m := nuevoManager(t, &storeFake{}, &authFake{cuerpo: cuerpoLoginAdmin})
	ch, cancelar := m.Suscribir()
	defer cancelar()

	_, err := m.Login(context.Background(), session.Credenciales{Email: "admin@autos.test", Password: "x"})
	require.NoError(t, err)
	m.Logout() // segundo snapshot sin que nadie drenara el primero

	assert.Nil(t, <-ch, "debe entregarse el snapshot más reciente (nil por logout)")
}

func TestSuscribir_CancelarEsIdempotente(t *testing.T) {
	m := nuevoManager(t, &storeFake{}, &authFake{cuerpo: cuerpoLoginAdmin})
	ch, cancelar := m.Suscribir()

	cancelar()
	cancelar() // segunda llamada no debe entrar en pánico

	_, abierto := <-ch
	assert.False(t, abierto, "el canal debe quedar cerrado tras cancelar")

	// Las transiciones posteriores no deben tocar al suscriptor cancelado.
	_, err := m.Login(context.Background(), session.Credenciales{Email: "admin@autos.test", Password: "x"})
	require.NoError(t, err)
}
