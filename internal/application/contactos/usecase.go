package contactos

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/tu-usuario/ventadeautos-cli/internal/domain"
	"github.com/tu-usuario/ventadeautos-cli/internal/domain/entity"
	"github.com/tu-usuario/ventadeautos-cli/pkg/logger"
)

// API puerto hacia los endpoints de contactos/leads.
type API interface {
	// Enviar POST /contact/enviar (público, sin autenticación).
	Enviar(ctx context.Context, req entity.ContactRequest) error

	// Endpoints de administración.
	ListarTodos(ctx context.Context) ([]entity.Contacto, error)
	ListarNoLeidos(ctx context.Context) ([]entity.Contacto, error)
	Obtener(ctx context.Context, id int64) (*entity.Contacto, error)
	// MarcarLeido PUT /contact/admin/{id}/marcar-leido; el backend mueve el
	// estado a EN_PROCESO.
	MarcarLeido(ctx context.Context, id int64) (*entity.Contacto, error)
	MarcarRespondido(ctx context.Context, id int64) (*entity.Contacto, error)
	CambiarEstado(ctx context.Context, id int64, estado string) (*entity.Contacto, error)
	Eliminar(ctx context.Context, id int64) error
}

// Sesiones gate de rol para las operaciones de administración.
type Sesiones interface {
	IsAdmin() bool
}

var telefonoRe = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// UseCase consultas de visitantes y gestión de leads del administrador.
type UseCase struct {
	api      API
	sesiones Sesiones
	log      *logger.Logger
}

// NewUseCase construye el caso de uso de contactos.
func NewUseCase(api API, sesiones Sesiones, log *logger.Logger) *UseCase {
	return &UseCase{api: api, sesiones: sesiones, log: log}
}

// Enviar valida la consulta y la envía. La validación (teléfono incluido)
// corre antes de cualquier llamada de red; a cada envío se le asigna una
// referencia generada por el cliente para correlación.
func (uc *UseCase) Enviar(ctx context.Context, req entity.ContactRequest) error {
	if err := validar(&req); err != nil {
		return err
	}
	if req.Referencia == "" {
		req.Referencia = uuid.New().String()
	}
	if err := uc.api.Enviar(ctx, req); err != nil {
		return err
	}
	uc.log.Info().Str("referencia", req.Referencia).Int64("auto_id", req.AutoID).Msg("contacto enviado")
	return nil
}

// EnviarYContactar es la continuación en dos pasos: guarda el contacto y SOLO
// si el guardado tuvo éxito construye el deep link de mensajería para abrir la
// conversación. El segundo paso jamás corre si el primero falló.
func (uc *UseCase) EnviarYContactar(ctx context.Context, req entity.ContactRequest, telefonoVendedor string) (string, error) {
	if err := uc.Enviar(ctx, req); err != nil {
		return "", err
	}
	return DeepLinkWhatsApp(telefonoVendedor, req), nil
}

// DeepLinkWhatsApp arma el enlace wa.me con un mensaje pre-armado sobre el auto.
func DeepLinkWhatsApp(telefono string, req entity.ContactRequest) string {
	tel := strings.TrimPrefix(strings.TrimSpace(telefono), "+")
	texto := "Hola, soy " + req.Nombre + ". " + req.Mensaje
	q := url.Values{}
	q.Set("text", texto)
	return "https://wa.me/" + tel + "?" + q.Encode()
}

func validar(req *entity.ContactRequest) error {
	if strings.TrimSpace(req.Nombre) == "" {
		return domain.NuevaValidacion("nombre", "el nombre es obligatorio")
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@") {
		return domain.NuevaValidacion("email", "el email no es válido")
	}
	tel := strings.ReplaceAll(strings.TrimSpace(req.Telefono), " ", "")
	if !telefonoRe.MatchString(tel) {
		return domain.NuevaValidacion("telefono", "el teléfono debe tener entre 7 y 15 dígitos")
	}
	req.Telefono = tel
	if strings.TrimSpace(req.Mensaje) == "" {
		return domain.NuevaValidacion("mensaje", "el mensaje es obligatorio")
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Operaciones de administración
// ──────────────────────────────────────────────────────────────────────────────

// ListarTodos trae todos los leads (admin).
func (uc *UseCase) ListarTodos(ctx context.Context) ([]entity.Contacto, error) {
	if !uc.sesiones.IsAdmin() {
		return nil, domain.ErrSoloAdmin
	}
	return uc.api.ListarTodos(ctx)
}

// ListarNoLeidos trae los leads pendientes de lectura (admin).
func (uc *UseCase) ListarNoLeidos(ctx context.Context) ([]entity.Contacto, error) {
	if !uc.sesiones.IsAdmin() {
		return nil, domain.ErrSoloAdmin
	}
	return uc.api.ListarNoLeidos(ctx)
}

// MarcarLeido marca un lead como leído; el backend lo pasa a EN_PROCESO.
func (uc *UseCase) MarcarLeido(ctx context.Context, id int64) (*entity.Contacto, error) {
	if !uc.sesiones.IsAdmin() {
		return nil, domain.ErrSoloAdmin
	}
	return uc.api.MarcarLeido(ctx, id)
}

// MarcarRespondido marca un lead como respondido.
func (uc *UseCase) MarcarRespondido(ctx context.Context, id int64) (*entity.Contacto, error) {
	if !uc.sesiones.IsAdmin() {
		return nil, domain.ErrSoloAdmin
	}
	return uc.api.MarcarRespondido(ctx, id)
}

// CambiarEstado transiciona el estado del lead dentro del vocabulario cerrado.
func (uc *UseCase) CambiarEstado(ctx context.Context, id int64, estado string) (*entity.Contacto, error) {
	if !uc.sesiones.IsAdmin() {
		return nil, domain.ErrSoloAdmin
	}
	if !entity.EstadoContactoValido(estado) {
		return nil, domain.ErrEstadoInvalido
	}
	contacto, err := uc.api.CambiarEstado(ctx, id, estado)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("contacto_id", id).Str("estado", estado).Msg("estado de contacto actualizado")
	return contacto, nil
}

// Eliminar borra un lead.
func (uc *UseCase) Eliminar(ctx context.Context, id int64) error {
	if !uc.sesiones.IsAdmin() {
		return domain.ErrSoloAdmin
	}
	return uc.api.Eliminar(ctx, id)
}
