package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del cliente (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
	Log     LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig configuración del backend REST que consume el cliente.
type APIConfig struct {
	// BaseURL incluye el prefijo /api, ej. http://localhost:8080/api
	BaseURL string
	Timeout time.Duration
}

// SessionConfig ubicación del almacenamiento durable de sesión.
type SessionConfig struct {
	// Dir directorio donde se persiste session.json. Vacío = ~/.ventadeautos
	Dir string
}

// LogConfig nivel de log.
type LogConfig struct {
	Level string
}

// Path devuelve la ruta del archivo de sesión, resolviendo el directorio por defecto.
func (c SessionConfig) Path() string {
	dir := c.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dir = filepath.Join(home, ".ventadeautos")
	}
	return filepath.Join(dir, "session.json")
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo .env).
// Las env vars tienen prioridad. Nombres esperados: VENTAUTOS_API_URL, VENTAUTOS_SESSION_DIR, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env en el directorio actual
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "VENTAUTOS_ENV", "development"),
			Name: getString(v, "VENTAUTOS_APP_NAME", "ventadeautos-cli"),
		},
		API: APIConfig{
			BaseURL: strings.TrimRight(getString(v, "VENTAUTOS_API_URL", "http://localhost:8080/api"), "/"),
			Timeout: time.Duration(getInt(v, "VENTAUTOS_API_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Session: SessionConfig{
			Dir: getString(v, "VENTAUTOS_SESSION_DIR", ""),
		},
		Log: LogConfig{
			Level: getString(v, "VENTAUTOS_LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		if s := v.GetString(key); s != "" {
			return s
		}
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		if n := v.GetInt(key); n != 0 {
			return n
		}
	}
	return def
}
