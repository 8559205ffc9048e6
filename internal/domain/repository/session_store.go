package repository

import "encoding/json"

// RegistroSesion es el trío persistido de una sesión: token, nombre de rol y
// snapshot serializado del usuario. Se escribe y se borra siempre completo;
// ningún componente toca una clave suelta.
type RegistroSesion struct {
	Token   string          `json:"token"`
	Rol     string          `json:"rol"`
	Usuario json.RawMessage `json:"usuario"`
}

// SessionStore define el puerto de almacenamiento durable de sesión.
// Guardar y Limpiar son atómicos respecto al trío completo.
type SessionStore interface {
	// Cargar devuelve el registro persistido, o nil si no hay sesión guardada.
	Cargar() (*RegistroSesion, error)
	// Guardar reemplaza el registro completo.
	Guardar(reg RegistroSesion) error
	// Limpiar elimina el registro. Es idempotente.
	Limpiar() error
}
