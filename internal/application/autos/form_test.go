package autos_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventadeautos-cli/internal/application/autos"
	"github.com/tu-usuario/ventadeautos-cli/internal/domain"
	"github.com/tu-usuario/ventadeautos-cli/internal/domain/entity"
)

var condicionesPrueba = []entity.CondicionAuto{
	{ID: 1, Nombre: "NUEVO"},
	{ID: 2, Nombre: "USADO"},
}

// formularioValido arma un request usado que pasa todas las validaciones.
func formularioValido() autos.AutoRequest {
	return autos.AutoRequest{
		MarcaID:     1,
		Modelo:      "Corolla",
		Anio:        2020,
		Precio:      decimal.NewFromInt(18000),
		Color:       "Blanco",
		Kilometraje: 54000,
		CondicionID: 2,
		Descripcion: "Muy buen estado",
	}
}

func campoInvalido(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	var v *domain.ErrorValidacion
	require.ErrorAs(t, err, &v, "la validación debe reportar campo y mensaje")
	return v.Campo
}

func TestValidar_FormularioCompleto_OK(t *testing.T) {
	req := formularioValido()
	assert.NoError(t, req.Validar(condicionesPrueba))
}

func TestValidar_CamposObligatorios(t *testing.T) {
	casos := []struct {
		nombre string
		mutar  func(*autos.AutoRequest)
		campo  string
	}{
		{"sin marca", func(r *autos.AutoRequest) { r.MarcaID = 0 }, "marca"},
		{"sin modelo", func(r *autos.AutoRequest) { r.Modelo = "   " }, "modelo"},
		{"sin color", func(r *autos.AutoRequest) { r.Color = "" }, "color"},
		{"sin descripción", func(r *autos.AutoRequest) { r.Descripcion = "" }, "descripcion"},
		{"precio cero", func(r *autos.AutoRequest) { r.Precio = decimal.Zero }, "precio"},
		{"precio negativo", func(r *autos.AutoRequest) { r.Precio = decimal.NewFromInt(-5) }, "precio"},
		{"año fuera de rango", func(r *autos.AutoRequest) { r.Anio = 1899 }, "anio"},
		{"año futuro lejano", func(r *autos.AutoRequest) { r.Anio = time.Now().Year() + 2 }, "anio"},
		{"kilometraje negativo", func(r *autos.AutoRequest) { r.Kilometraje = -1 }, "kilometraje"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			req := formularioValido()
			c.mutar(&req)
			assert.Equal(t, c.campo, campoInvalido(t, req.Validar(condicionesPrueba)))
		})
	}
}

// El año próximo es válido (modelos del año entrante).
func TestValidar_AnioProximo_OK(t *testing.T) {
	req := formularioValido()
	req.Anio = time.Now().Year() + 1
	assert.NoError(t, req.Validar(condicionesPrueba))
}

// ──────────────────────────────────────────────────────────────────────────────
// Regla condición vs kilometraje
// ──────────────────────────────────────────────────────────────────────────────

// Un USADO con 0 km se rechaza con el mensaje específico, sin tocar la red.
func TestValidar_UsadoSinKilometraje_Rechazado(t *testing.T) {
	req := formularioValido()
	req.CondicionID = 2
	req.Kilometraje = 0

	err := req.Validar(condicionesPrueba)
	require.Error(t, err)
	var v *domain.ErrorValidacion
	require.ErrorAs(t, err, &v)
	assert.Equal(t, "kilometraje", v.Campo)
	assert.Equal(t, "un auto USADO debe tener kilometraje mayor a 0", v.Mensaje)
}

func TestValidar_NuevoConKilometraje_Rechazado(t *testing.T) {
	req := formularioValido()
	req.CondicionID = 1
	req.Kilometraje = 12

	err := req.Validar(condicionesPrueba)
	require.Error(t, err)
	var v *domain.ErrorValidacion
	require.ErrorAs(t, err, &v)
	assert.Equal(t, "un auto NUEVO no puede tener kilometraje mayor a 0", v.Mensaje)
}

func TestValidar_NuevoCeroKm_OK(t *testing.T) {
	req := formularioValido()
	req.CondicionID = 1
	req.Kilometraje = 0
	assert.NoError(t, req.Validar(condicionesPrueba))
}

// Un id de condición que no está en el catálogo no dispara la regla: el
// backend decidirá qué hacer con él.
func TestValidar_CondicionDesconocida_NoAplicaRegla(t *testing.T) {
	req := formularioValido()
	req.CondicionID = 99
	req.Kilometraje = 0
	assert.NoError(t, req.Validar(condicionesPrueba))
}

// La comparación del nombre de condición tolera espacios y minúsculas.
func TestValidar_NombreCondicionNormalizado(t *testing.T) {
	condiciones := []entity.CondicionAuto{{ID: 2, Nombre: " usado "}}
	req := formularioValido()
	req.Kilometraje = 0

	err := req.Validar(condiciones)
	require.Error(t, err, "la regla USADO debe aplicar aunque el nombre venga sucio")
}

// ──────────────────────────────────────────────────────────────────────────────
// Imágenes
// ──────────────────────────────────────────────────────────────────────────────

// Las entradas vacías se podan antes de contar contra el tope.
func TestValidar_PodaImagenesVacias(t *testing.T) {
	req := formularioValido()
	req.Imagenes = []string{"a.jpg", "", "  ", "b.jpg", "", "c.jpg", "d.jpg", "e.jpg"}

	require.NoError(t, req.Validar(condicionesPrueba))
	assert.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg"}, req.Imagenes)
}

func TestValidar_MasDeCincoImagenes_Rechazado(t *testing.T) {
	req := formularioValido()
	req.Imagenes = []string{"1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg", "6.jpg"}

	err := req.Validar(condicionesPrueba)
	require.Error(t, err)
	var v *domain.ErrorValidacion
	require.ErrorAs(t, err, &v)
	assert.Equal(t, "imagenes", v.Campo)
}
