package api

import (
	"context"
	"fmt"

	"github.com/tu-usuario/ventadeautos-cli/internal/domain/entity"
)

// ContactosAPI adaptador de los endpoints de contactos/leads (puerto contactos.API).
type ContactosAPI struct {
	c *Client
}

// NewContactosAPI construye el adaptador de contactos.
func NewContactosAPI(c *Client) *ContactosAPI {
	return &ContactosAPI{c: c}
}

// Enviar POST /contact/enviar (público).
func (a *ContactosAPI) Enviar(ctx context.Context, req entity.ContactRequest) error {
	return a.c.post(ctx, "contact/enviar", req, nil)
}

// ListarTodos GET /contact/admin/todos.
func (a *ContactosAPI) ListarTodos(ctx context.Context) ([]entity.Contacto, error) {
	var lista []entity.Contacto
	if err := a.c.get(ctx, "contact/admin/todos", &lista); err != nil {
		return nil, err
	}
	return lista, nil
}

// ListarNoLeidos GET /contact/admin/no-leidos.
func (a *ContactosAPI) ListarNoLeidos(ctx context.Context) ([]entity.Contacto, error) {
	var lista []entity.Contacto
	if err := a.c.get(ctx, "contact/admin/no-leidos", &lista); err != nil {
		return nil, err
	}
	return lista, nil
}

// Obtener GET /contact/admin/{id}.
func (a *ContactosAPI) Obtener(ctx context.Context, id int64) (*entity.Contacto, error) {
	var contacto entity.Contacto
	if err := a.c.get(ctx, fmt.Sprintf("contact/admin/%d", id), &contacto); err != nil {
		return nil, err
	}
	return &contacto, nil
}

// MarcarLeido PUT /contact/admin/{id}/marcar-leido.
func (a *ContactosAPI) MarcarLeido(ctx context.Context, id int64) (*entity.Contacto, error) {
	var contacto entity.Contacto
	if err := a.c.put(ctx, fmt.Sprintf("contact/admin/%d/marcar-leido", id), struct{}{}, &contacto); err != nil {
		return nil, err
	}
	return &contacto, nil
}

// MarcarRespondido PUT /contact/admin/{id}/marcar-respondido.
func (a *ContactosAPI) MarcarRespondido(ctx context.Context, id int64) (*entity.Contacto, error) {
	var contacto entity.Contacto
	if err := a.c.put(ctx, fmt.Sprintf("contact/admin/%d/marcar-respondido", id), struct{}{}, &contacto); err != nil {
		return nil, err
	}
	return &contacto, nil
}

// CambiarEstado PUT /contact/admin/{id}/estado.
func (a *ContactosAPI) CambiarEstado(ctx context.Context, id int64, estado string) (*entity.Contacto, error) {
	var contacto entity.Contacto
	body := struct {
		Estado string `json:"estado"`
	}{Estado: estado}
	if err := a.c.put(ctx, fmt.Sprintf("contact/admin/%d/estado", id), body, &contacto); err != nil {
		return nil, err
	}
	return &contacto, nil
}

// Eliminar DELETE /contact/admin/{id}.
func (a *ContactosAPI) Eliminar(ctx context.Context, id int64) error {
	return a.c.delete(ctx, fmt.Sprintf("contact/admin/%d", id))
}
