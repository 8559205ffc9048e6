package entity

// Usuario representa la identidad autenticada que el cliente mantiene en sesión.
// Nunca guarda la contraseña: el esquema es bearer-token-only.
type Usuario struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido,omitempty"`
	DNI       string `json:"dni,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Direccion string `json:"direccion,omitempty"`
	Rol       Rol    `json:"rol"`
	Activo    bool   `json:"activo"`
}

// Clone devuelve una copia del usuario para publicar snapshots inmutables.
func (u *Usuario) Clone() *Usuario {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
