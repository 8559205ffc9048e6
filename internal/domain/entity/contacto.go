package entity

// Estados por los que transita un contacto/lead. Vocabulario cerrado del
// backend; el cliente lo trata como datos de referencia opacos pero rechaza
// nombres fuera del conjunto antes de llamar a la red.
const (
	EstadoContactoPendiente       = "PENDIENTE"
	EstadoContactoEnProceso       = "EN_PROCESO"
	EstadoContactoVentaFinalizada = "VENTA_FINALIZADA"
	EstadoContactoCancelado       = "CANCELADO"
)

// EstadosContacto conjunto válido de estados de un lead.
var EstadosContacto = []string{
	EstadoContactoPendiente,
	EstadoContactoEnProceso,
	EstadoContactoVentaFinalizada,
	EstadoContactoCancelado,
}

// EstadoContactoValido indica si el nombre pertenece al vocabulario.
func EstadoContactoValido(nombre string) bool {
	for _, e := range EstadosContacto {
		if e == nombre {
			return true
		}
	}
	return false
}

// ContactRequest datos de una consulta pública enviada por un visitante.
// Referencia la genera el cliente para correlacionar el envío.
type ContactRequest struct {
	Nombre     string `json:"nombre"`
	DNI        string `json:"dni,omitempty"`
	Email      string `json:"email"`
	Telefono   string `json:"telefono"`
	Asunto     string `json:"asunto"`
	Mensaje    string `json:"mensaje"`
	AutoID     int64  `json:"autoId,omitempty"`
	Referencia string `json:"referencia,omitempty"`
}

// ContactoAuto resumen del auto asociado a un contacto, tal como lo devuelve el backend.
type ContactoAuto struct {
	ID     int64  `json:"id"`
	Marca  *Marca `json:"marca,omitempty"`
	Modelo string `json:"modelo"`
	Anio   int    `json:"anio"`
}

// Contacto un lead registrado en el backend (vista de administración).
type Contacto struct {
	ID            int64         `json:"id"`
	Nombre        string        `json:"nombre"`
	DNI           string        `json:"dni,omitempty"`
	Email         string        `json:"email"`
	Telefono      string        `json:"telefono"`
	Asunto        string        `json:"asunto"`
	Mensaje       string        `json:"mensaje"`
	Leido         bool          `json:"leido"`
	Respondido    bool          `json:"respondido"`
	Estado        string        `json:"estado,omitempty"`
	FechaCreacion string        `json:"fechaCreacion,omitempty"`
	Auto          *ContactoAuto `json:"auto,omitempty"`
}
