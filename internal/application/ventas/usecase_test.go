package ventas_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventadeautos-cli/internal/application/ventas"
	"github.com/tu-usuario/ventadeautos-cli/internal/domain"
	"github.com/tu-usuario/ventadeautos-cli/internal/domain/entity"
	"github.com/tu-usuario/ventadeautos-cli/pkg/logger"
)

type apiFake struct {
	solicitudes []entity.SolicitudVenta
	estados     []string
}

func (a *apiFake) Contactar(ctx context.Context, sol entity.SolicitudVenta) error {
	a.solicitudes = append(a.solicitudes, sol)
	return nil
}

func (a *apiFake) MisSolicitudes(ctx context.Context) ([]entity.Venta, error) {
	return []entity.Venta{{ID: 1, Estado: entity.EstadoVentaPendiente}}, nil
}

func (a *apiFake) ListarTodas(ctx context.Context) ([]entity.Venta, error) {
	return []entity.Venta{{ID: 1}, {ID: 2}}, nil
}

func (a *apiFake) ListarPorEstado(ctx context.Context, estado string) ([]entity.Venta, error) {
	return []entity.Venta{{ID: 3, Estado: estado}}, nil
}

func (a *apiFake) ActualizarEstado(ctx context.Context, id int64, estado string) (*entity.Venta, error) {
	a.estados = append(a.estados, estado)
	return &entity.Venta{ID: id, Estado: estado}, nil
}

type sesionesFake struct{ logueado, admin bool }

func (s sesionesFake) IsLoggedIn() bool { return s.logueado }
func (s sesionesFake) IsAdmin() bool    { return s.admin }

func nuevoUseCase(api *apiFake, logueado, admin bool) *ventas.UseCase {
	return ventas.NewUseCase(api, sesionesFake{logueado: logueado, admin: admin}, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Lado cliente
// ──────────────────────────────────────────────────────────────────────────────

func TestContactar_RequiereSesion(t *testing.T) {
	uc := nuevoUseCase(&apiFake{}, false, false)
	err := uc.Contactar(context.Background(), entity.SolicitudVenta{AutoID: 1})
	assert.ErrorIs(t, err, domain.ErrNoAutorizado)
}

func TestContactar_ClienteLogueado_OK(t *testing.T) {
	api := &apiFake{}
	uc := nuevoUseCase(api, true, false)

	sol := entity.SolicitudVenta{Nombres: "Juan", Apellidos: "Pérez", AutoID: 7}
	require.NoError(t, uc.Contactar(context.Background(), sol))
	require.Len(t, api.solicitudes, 1)
	assert.Equal(t, int64(7), api.solicitudes[0].AutoID)
}

func TestMisSolicitudes_RequiereSesion(t *testing.T) {
	uc := nuevoUseCase(&apiFake{}, false, false)
	_, err := uc.MisSolicitudes(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoAutorizado)

	uc = nuevoUseCase(&apiFake{}, true, false)
	lista, err := uc.MisSolicitudes(context.Background())
	require.NoError(t, err)
	assert.Len(t, lista, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lado administración
// ──────────────────────────────────────────────────────────────────────────────

// Un cliente logueado no alcanza: la administración exige rol ADMIN.
func TestAdmin_ClienteRechazado(t *testing.T) {
	uc := nuevoUseCase(&apiFake{}, true, false)
	ctx := context.Background()

	_, err := uc.ListarTodas(ctx)
	assert.ErrorIs(t, err, domain.ErrSoloAdmin)
	_, err = uc.ListarPorEstado(ctx, entity.EstadoVentaPendiente)
	assert.ErrorIs(t, err, domain.ErrSoloAdmin)
	_, err = uc.ActualizarEstado(ctx, 1, entity.EstadoVentaFinalizado)
	assert.ErrorIs(t, err, domain.ErrSoloAdmin)
}

func TestActualizarEstado_VocabularioCerrado(t *testing.T) {
	api := &apiFake{}
	uc := nuevoUseCase(api, true, true)

	for _, estado := range entity.EstadosVenta {
		_, err := uc.ActualizarEstado(context.Background(), 1, estado)
		assert.NoError(t, err, "estado %s pertenece al vocabulario", estado)
	}

	_, err := uc.ActualizarEstado(context.Background(), 1, "VENTA_FINALIZADA")
	assert.ErrorIs(t, err, domain.ErrEstadoInvalido,
		"VENTA_FINALIZADA es vocabulario de contactos, no de ventas")
	assert.Len(t, api.estados, len(entity.EstadosVenta))
}

func TestListarPorEstado_ValidaAntesDeRed(t *testing.T) {
	uc := nuevoUseCase(&apiFake{}, true, true)

	_, err := uc.ListarPorEstado(context.Background(), "CUALQUIERA")
	assert.ErrorIs(t, err, domain.ErrEstadoInvalido)

	lista, err := uc.ListarPorEstado(context.Background(), entity.EstadoVentaCancelado)
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoVentaCancelado, lista[0].Estado)
}
