package main

import (
	"os"

	"github.com/tu-usuario/ventadeautos-cli/internal/application/autos"
	"github.com/tu-usuario/ventadeautos-cli/internal/application/catalogo"
	"github.com/tu-usuario/ventadeautos-cli/internal/application/contactos"
	"github.com/tu-usuario/ventadeautos-cli/internal/application/session"
	"github.com/tu-usuario/ventadeautos-cli/internal/application/usuarios"
	"github.com/tu-usuario/ventadeautos-cli/internal/application/ventas"
	"github.com/tu-usuario/ventadeautos-cli/internal/infrastructure/api"
	"github.com/tu-usuario/ventadeautos-cli/internal/infrastructure/storage"
	"github.com/tu-usuario/ventadeautos-cli/pkg/config"
	"github.com/tu-usuario/ventadeautos-cli/pkg/logger"
)

// app agrupa los casos de uso cableados para los comandos.
type app struct {
	log      *logger.Logger
	sesiones *session.Manager
	guard    *session.GuardAdmin

	catalogo  *catalogo.UseCase
	autos     *autos.UseCase
	contactos *contactos.UseCase
	ventas    *ventas.UseCase
	usuarios  *usuarios.UseCase
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})

	store := storage.NewFileSessionStore(cfg.Session.Path())

	// El manager necesita el cliente HTTP para loguear y el cliente necesita
	// el token del manager: el TokenSource captura la variable por cierre.
	var sesiones *session.Manager
	cliente := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, func() string {
		if sesiones == nil {
			return ""
		}
		return sesiones.Token()
	}, log)

	authAPI := api.NewAuthAPI(cliente)
	autosAPI := api.NewAutosAPI(cliente)
	usuariosAPI := api.NewUsuariosAPI(cliente)
	contactosAPI := api.NewContactosAPI(cliente)
	ventasAPI := api.NewVentasAPI(cliente)

	sesiones = session.NewManager(store, authAPI, usuariosAPI, log)

	a := &app{
		log:       log,
		sesiones:  sesiones,
		guard:     session.NewGuardAdmin(sesiones),
		catalogo:  catalogo.NewUseCase(autosAPI, sesiones, log),
		autos:     autos.NewUseCase(autosAPI, sesiones, log),
		contactos: contactos.NewUseCase(contactosAPI, sesiones, log),
		ventas:    ventas.NewUseCase(ventasAPI, sesiones, log),
		usuarios:  usuarios.NewUseCase(usuariosAPI, sesiones, log),
	}

	if err := newRootCmd(a).Execute(); err != nil {
		os.Exit(1)
	}
}
