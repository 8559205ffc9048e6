package session

import "net/url"

// RutaAdminLogin vista de login de administración a la que redirige el guard.
const RutaAdminLogin = "/admin/login"

// Decision resultado de evaluar un guard: o se permite la activación, o se
// redirige conservando la ruta original como returnUrl para volver tras login.
type Decision struct {
	Permitida  bool
	RedirigirA string
}

// GuardAdmin protege las rutas con prefijo de administración: exige sesión
// activa con rol ADMIN.
type GuardAdmin struct {
	sesiones *Manager
}

// NewGuardAdmin construye el guard sobre el manager de sesión.
func NewGuardAdmin(sesiones *Manager) *GuardAdmin {
	return &GuardAdmin{sesiones: sesiones}
}

// Autorizar verifica AUTHENTICATED_ADMIN para la ruta solicitada. En caso de
// rechazo barre cualquier residuo de sesión persistida (evita fugas entre
// cuentas) y devuelve la redirección al login admin con returnUrl.
func (g *GuardAdmin) Autorizar(ruta string) Decision {
	if g.sesiones.IsLoggedIn() && g.sesiones.IsAdmin() {
		return Decision{Permitida: true}
	}

	// Barrido: al salir de zona admin sin autorización no deben quedar
	// artefactos de sesión de otra cuenta.
	g.sesiones.Logout()

	q := url.Values{}
	q.Set("returnUrl", ruta)
	return Decision{RedirigirA: RutaAdminLogin + "?" + q.Encode()}
}
