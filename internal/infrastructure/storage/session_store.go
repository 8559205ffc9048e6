package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tu-usuario/ventadeautos-cli/internal/domain"
	"github.com/tu-usuario/ventadeautos-cli/internal/domain/repository"
)

// FileSessionStore persiste el trío de sesión en un único archivo JSON.
// El reemplazo vía archivo temporal + rename garantiza que nunca quede un
// trío parcial en disco, ni siquiera ante un corte a mitad de escritura.
type FileSessionStore struct {
	path string
}

// NewFileSessionStore crea el store apuntando a path (ej. ~/.ventadeautos/session.json).
func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{path: path}
}

// Cargar lee el registro persistido. Devuelve (nil, nil) si no existe archivo.
// Un archivo ilegible se reporta como domain.ErrSesionCorrupta; el caller
// decide purgarlo.
func (s *FileSessionStore) Cargar() (*repository.RegistroSesion, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	var reg repository.RegistroSesion
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSesionCorrupta, err)
	}
	if reg.Token == "" {
		// Sin token no hay sesión: tratar como registro corrupto/parcial.
		return nil, domain.ErrSesionCorrupta
	}
	return &reg, nil
}

// Guardar escribe el registro completo de forma atómica (tmp + rename) con
// permisos 0600: el archivo contiene un token de acceso.
func (s *FileSessionStore) Guardar(reg repository.RegistroSesion) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("crear directorio de sesión: %w", err)
	}
	data, err := json.Marshal(reg)
	if err != nil {
		return fmt.Errorf("serializar sesión: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "session-*.tmp")
	if err != nil {
		return fmt.Errorf("crear archivo temporal: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("permisos de sesión: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("escribir sesión: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar archivo temporal: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("reemplazar sesión: %w", err)
	}
	return nil
}

// Limpiar elimina el archivo de sesión. No es error que no exista.
func (s *FileSessionStore) Limpiar() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("eliminar sesión: %w", err)
	}
	return nil
}
