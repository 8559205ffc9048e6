package entity

import "github.com/shopspring/decimal"

// Estados por los que transita una venta.
const (
	EstadoVentaPendiente  = "PENDIENTE"
	EstadoVentaFinalizado = "FINALIZADO"
	EstadoVentaCancelado  = "CANCELADO"
)

// EstadosVenta conjunto válido de estados de una venta.
var EstadosVenta = []string{
	EstadoVentaPendiente,
	EstadoVentaFinalizado,
	EstadoVentaCancelado,
}

// EstadoVentaValido indica si el nombre pertenece al vocabulario.
func EstadoVentaValido(nombre string) bool {
	for _, e := range EstadosVenta {
		if e == nombre {
			return true
		}
	}
	return false
}

// Venta registro de una solicitud de compra, aplanado por el backend
// (incluye datos del cliente y del auto para renderizar sin joins).
type Venta struct {
	ID int64 `json:"id"`

	ClienteNombre    string `json:"clienteNombre"`
	ClienteApellidos string `json:"clienteApellidos,omitempty"`
	ClienteDNI       string `json:"clienteDni,omitempty"`
	ClienteTelefono  string `json:"clienteTelefono,omitempty"`
	ClienteDireccion string `json:"clienteDireccion,omitempty"`

	AutoID          int64           `json:"autoId"`
	AutoMarca       string          `json:"autoMarca"`
	MarcaID         int64           `json:"marcaId,omitempty"`
	AutoModelo      string          `json:"autoModelo"`
	AutoAnio        int             `json:"autoAnio"`
	AutoPrecio      decimal.Decimal `json:"autoPrecio"`
	AutoColor       string          `json:"autoColor,omitempty"`
	AutoKilometraje int             `json:"autoKilometraje,omitempty"`
	AutoCombustible string          `json:"autoCombustible,omitempty"`
	AutoTransmision string          `json:"autoTransmision,omitempty"`
	AutoCategoria   string          `json:"autoCategoria,omitempty"`
	AutoCondicion   string          `json:"autoCondicion,omitempty"`
	AutoImagenes    []string        `json:"autoImagenes,omitempty"`

	Estado             string `json:"estado"`
	FechaSolicitud     string `json:"fechaSolicitud,omitempty"`
	FechaActualizacion string `json:"fechaActualizacion,omitempty"`
}

// SolicitudVenta datos con los que un cliente contacta al vendedor por un auto.
type SolicitudVenta struct {
	Nombres   string `json:"nombres"`
	Apellidos string `json:"apellidos"`
	DNI       string `json:"dni"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
	AutoID    int64  `json:"autoId"`
}
