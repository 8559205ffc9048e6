package entity

import "encoding/json"

// Nombres válidos de rol.
const (
	RolAdmin   = "ADMIN"
	RolCliente = "CLIENTE"
)

// Rol representa el rol de un usuario. El backend moderno lo devuelve como
// objeto {id, nombre, descripcion, activa}; registros legacy lo guardaban como
// string plano. La coerción ocurre aquí, en la frontera de deserialización,
// nunca en los puntos de consumo.
type Rol struct {
	ID          int64  `json:"id,omitempty"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Activa      bool   `json:"activa,omitempty"`
}

// UnmarshalJSON acepta tanto la forma objeto como la forma string legacy
// ("ADMIN") y normaliza a la representación canónica.
func (r *Rol) UnmarshalJSON(data []byte) error {
	var nombre string
	if err := json.Unmarshal(data, &nombre); err == nil {
		*r = Rol{Nombre: nombre}
		return nil
	}

	type rolJSON Rol // evita recursión
	var obj rolJSON
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*r = Rol(obj)
	return nil
}

// EsAdmin indica si el rol corresponde a un administrador.
func (r Rol) EsAdmin() bool { return r.Nombre == RolAdmin }

// EsCliente indica si el rol corresponde a un cliente final.
func (r Rol) EsCliente() bool { return r.Nombre == RolCliente }
