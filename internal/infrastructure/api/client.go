package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tu-usuario/ventadeautos-cli/internal/domain"
	"github.com/tu-usuario/ventadeautos-cli/pkg/logger"
)

// TokenSource provee el token vigente ("" si no hay sesión). Lo implementa el
// manager de sesión; el cliente HTTP no guarda credenciales propias.
type TokenSource func() string

// Client cliente REST del backend ventadeautos. JSON en ambos sentidos y
// header Authorization: Bearer cuando hay token. No reintenta: las
// operaciones fallan o completan según la capa de red, y la cancelación viene
// del context del caller.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
	log     *logger.Logger
}

// NewClient construye el cliente. baseURL incluye el prefijo /api.
func NewClient(baseURL string, timeout time.Duration, token TokenSource, log *logger.Logger) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		token:   token,
		log:     log,
	}
}

// errorPayload forma del cuerpo de error del backend. Según el endpoint llega
// "message" o "mensaje"; se extrae el que esté presente.
type errorPayload struct {
	Message string `json:"message"`
	Mensaje string `json:"mensaje"`
	Error   string `json:"error"`
}

func (p errorPayload) texto() string {
	switch {
	case p.Message != "":
		return p.Message
	case p.Mensaje != "":
		return p.Mensaje
	default:
		return p.Error
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do ejecuta la petición y decodifica la respuesta en out (out nil descarta el
// cuerpo). Errores HTTP se mapean a errores de dominio con el mejor mensaje
// disponible del payload del servidor.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar petición: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+strings.TrimLeft(path, "/"), reader)
	if err != nil {
		return fmt.Errorf("construir petición: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrServidor, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.mapearError(resp, method, path)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificar respuesta de %s: %w", path, err)
	}
	return nil
}

func (c *Client) mapearError(resp *http.Response, method, path string) error {
	var payload errorPayload
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	_ = json.Unmarshal(data, &payload)

	detalle := payload.texto()
	c.log.Warn().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("detalle", detalle).
		Msg("respuesta de error del backend")

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return domain.ErrNoAutorizado
	case http.StatusForbidden:
		return domain.ErrAccesoDenegado
	case http.StatusNotFound:
		return domain.ErrNoEncontrado
	}
	if detalle == "" {
		detalle = fmt.Sprintf("respuesta HTTP %d", resp.StatusCode)
	}
	return fmt.Errorf("%w: %s", domain.ErrServidor, detalle)
}
