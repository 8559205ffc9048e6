package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/tu-usuario/ventadeautos-cli/internal/domain"
	"github.com/tu-usuario/ventadeautos-cli/internal/domain/entity"
	"github.com/tu-usuario/ventadeautos-cli/internal/domain/repository"
	"github.com/tu-usuario/ventadeautos-cli/pkg/logger"
	"github.com/tu-usuario/ventadeautos-cli/pkg/token"
)

// Manager es la única fuente de verdad de "quién está logueado y con qué rol".
// Toda mutación pasa por Login/Logout/ActualizarPerfil (disciplina de escritor
// único); los consumidores leen predicados o se suscriben a snapshots.
//
// Estados: ANONYMOUS ↔ AUTHENTICATED_CLIENTE / AUTHENTICATED_ADMIN.
type Manager struct {
	store repository.SessionStore
	auth  AuthAPI
	usrs  UsuariosAPI
	log   *logger.Logger

	mu      sync.RWMutex
	actual  *entity.Usuario
	token   string
	subs    map[int]chan *entity.Usuario
	nextSub int
}

// NewManager construye el manager y restaura la sesión persistida de forma
// síncrona. Un registro malformado se purga y el estado inicial queda anónimo.
func NewManager(store repository.SessionStore, auth AuthAPI, usrs UsuariosAPI, log *logger.Logger) *Manager {
	m := &Manager{
		store: store,
		auth:  auth,
		usrs:  usrs,
		log:   log,
		subs:  make(map[int]chan *entity.Usuario),
	}
	m.restaurar()
	return m
}

// restaurar carga el trío persistido. Tolerancia: rol como string legacy se
// coerce en entity.Rol; si falta el rol pero el token trae claim de rol, se
// rellena desde ahí (decodificación local, sin validar contra el servidor).
func (m *Manager) restaurar() {
	reg, err := m.store.Cargar()
	if err != nil {
		if errors.Is(err, domain.ErrSesionCorrupta) {
			m.log.Warn().Err(err).Msg("sesión persistida corrupta, purgando")
			if perr := m.store.Limpiar(); perr != nil {
				m.log.Error().Err(perr).Msg("no se pudo purgar la sesión corrupta")
			}
		} else {
			m.log.Error().Err(err).Msg("no se pudo leer la sesión persistida")
		}
		return
	}
	if reg == nil {
		return // sin sesión guardada: anónimo
	}

	var usuario entity.Usuario
	if err := json.Unmarshal(reg.Usuario, &usuario); err != nil {
		m.log.Warn().Err(err).Msg("snapshot de usuario ilegible, purgando sesión")
		if perr := m.store.Limpiar(); perr != nil {
			m.log.Error().Err(perr).Msg("no se pudo purgar la sesión corrupta")
		}
		return
	}
	if usuario.Rol.Nombre == "" {
		usuario.Rol.Nombre = reg.Rol
	}
	if usuario.Rol.Nombre == "" {
		if claims, err := token.DecodeUnverified(reg.Token); err == nil {
			usuario.Rol.Nombre = claims.Role
		}
	}

	m.actual = &usuario
	m.token = reg.Token
	m.log.Debug().Str("email", usuario.Email).Str("rol", usuario.Rol.Nombre).Msg("sesión restaurada")
}

// Login autentica contra el backend y, si hay éxito, construye la sesión,
// la persiste y publica el snapshot. Cualquier fallo (red, credenciales,
// respuesta sin token) se reporta como ErrCredencialesInvalidas: el detalle
// del backend se registra pero no se filtra a la UI.
func (m *Manager) Login(ctx context.Context, cred Credenciales) (*entity.Usuario, error) {
	resp, err := m.auth.Login(ctx, cred)
	if err != nil {
		m.log.Warn().Err(err).Str("email", cred.Email).Msg("login fallido")
		return nil, domain.ErrCredencialesInvalidas
	}
	if resp.Token == "" {
		m.log.Warn().Str("email", cred.Email).Msg("respuesta de login sin token")
		return nil, domain.ErrCredencialesInvalidas
	}

	usuario := &entity.Usuario{
		ID:     resp.ID,
		Email:  resp.Email,
		Nombre: resp.Nombre,
		Rol:    resp.Rol,
		Activo: resp.Activo,
	}

	if err := m.persistir(usuario, resp.Token); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.actual = usuario
	m.token = resp.Token
	m.mu.Unlock()

	m.log.Info().Str("email", usuario.Email).Str("rol", usuario.Rol.Nombre).Msg("login exitoso")
	m.publicar()
	return usuario.Clone(), nil
}

// Logout limpia el estado en memoria y el trío persistido, y publica el
// snapshot nulo. No navega: el caller decide a dónde redirigir.
func (m *Manager) Logout() {
	if err := m.store.Limpiar(); err != nil {
		m.log.Error().Err(err).Msg("no se pudo limpiar la sesión persistida")
	}
	m.mu.Lock()
	m.actual = nil
	m.token = ""
	m.mu.Unlock()

	m.log.Info().Msg("sesión cerrada")
	m.publicar()
}

// ActualizarPerfil envía los cambios al backend y fusiona la respuesta en la
// sesión. El rol nunca cambia por esta vía: se conserva el vigente.
func (m *Manager) ActualizarPerfil(ctx context.Context, cambios PerfilCambios) (*entity.Usuario, error) {
	m.mu.RLock()
	actual := m.actual
	tok := m.token
	m.mu.RUnlock()
	if actual == nil {
		return nil, domain.ErrNoAutorizado
	}

	actualizado, err := m.usrs.ActualizarPerfil(ctx, actual.ID, cambios)
	if err != nil {
		return nil, err
	}

	fusion := actual.Clone()
	fusion.Nombre = elegir(actualizado.Nombre, fusion.Nombre)
	fusion.Apellido = elegir(actualizado.Apellido, fusion.Apellido)
	fusion.Telefono = elegir(actualizado.Telefono, fusion.Telefono)
	fusion.Direccion = elegir(actualizado.Direccion, fusion.Direccion)
	fusion.Email = elegir(actualizado.Email, fusion.Email)
	// Rol intacto: el perfil no cambia autorizaciones.

	if err := m.persistir(fusion, tok); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.actual = fusion
	m.mu.Unlock()

	m.log.Info().Str("email", fusion.Email).Msg("perfil actualizado")
	m.publicar()
	return fusion.Clone(), nil
}

func elegir(nuevo, previo string) string {
	if nuevo != "" {
		return nuevo
	}
	return previo
}

// persistir escribe el trío completo (token, rol, usuario) como unidad.
func (m *Manager) persistir(u *entity.Usuario, tok string) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return m.store.Guardar(repository.RegistroSesion{
		Token:   tok,
		Rol:     u.Rol.Nombre,
		Usuario: raw,
	})
}

// IsLoggedIn indica si hay sesión activa. Sin efectos secundarios.
func (m *Manager) IsLoggedIn() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.actual != nil
}

// IsAdmin indica si la sesión actual pertenece a un administrador.
func (m *Manager) IsAdmin() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.actual != nil && m.actual.Rol.EsAdmin()
}

// IsCliente indica si la sesión actual pertenece a un cliente final.
func (m *Manager) IsCliente() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.actual != nil && m.actual.Rol.EsCliente()
}

// CurrentUser devuelve una copia del usuario actual, o nil si no hay sesión.
func (m *Manager) CurrentUser() *entity.Usuario {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.actual.Clone()
}

// Token devuelve el token vigente ("" si anónimo). Lo consume el cliente HTTP
// para el header Authorization.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// Suscribir registra un observador de cambios de sesión. Devuelve un canal que
// recibe el snapshot tras cada transición (nil en logout) y una función de
// cancelación que el consumidor DEBE invocar al destruirse: la vida de la
// suscripción no puede exceder la del consumidor.
func (m *Manager) Suscribir() (<-chan *entity.Usuario, func()) {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	ch := make(chan *entity.Usuario, 1)
	m.subs[id] = ch
	m.mu.Unlock()

	var once sync.Once
	cancelar := func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			m.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancelar
}

// publicar entrega el snapshot vigente a todos los suscriptores sin bloquear:
// si un canal está lleno se descarta el snapshot viejo y se entrega el nuevo.
func (m *Manager) publicar() {
	m.mu.RLock()
	snap := m.actual.Clone()
	for _, ch := range m.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
	m.mu.RUnlock()
}
