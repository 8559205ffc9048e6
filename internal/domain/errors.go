package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNoEncontrado          = errors.New("recurso no encontrado")
	ErrCredencialesInvalidas = errors.New("credenciales incorrectas")
	ErrNoAutorizado          = errors.New("no autorizado")
	ErrAccesoDenegado        = errors.New("acceso denegado")
	ErrSoloAdmin             = errors.New("solo administradores pueden realizar esta operación")
	ErrSesionCorrupta        = errors.New("sesión persistida ilegible")
	ErrServidor              = errors.New("error del servidor")
	ErrEstadoInvalido        = errors.New("estado no reconocido")
)

// ErrorValidacion error de validación de formulario, con campo y mensaje
// específicos para mostrar en línea antes de cualquier llamada de red.
type ErrorValidacion struct {
	Campo   string
	Mensaje string
}

func (e *ErrorValidacion) Error() string {
	return fmt.Sprintf("%s: %s", e.Campo, e.Mensaje)
}

// NuevaValidacion construye un ErrorValidacion.
func NuevaValidacion(campo, mensaje string) *ErrorValidacion {
	return &ErrorValidacion{Campo: campo, Mensaje: mensaje}
}

// EsValidacion indica si err es (o envuelve) un error de validación.
func EsValidacion(err error) bool {
	var ev *ErrorValidacion
	return errors.As(err, &ev)
}
