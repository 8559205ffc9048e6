package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tu-usuario/ventadeautos-cli/internal/application/autos"
	"github.com/tu-usuario/ventadeautos-cli/internal/application/catalogo"
	"github.com/tu-usuario/ventadeautos-cli/internal/application/session"
	"github.com/tu-usuario/ventadeautos-cli/internal/domain/entity"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "ventacli",
		Short:         "Cliente de línea de comandos del marketplace de autos",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newPerfilCmd(a),
		newAutosCmd(a),
		newContactoCmd(a),
		newVentasCmd(a),
		newAdminCmd(a),
	)
	return root
}

func newVentasCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ventas",
		Short: "Solicitudes de compra del cliente autenticado",
	}

	var sol entity.SolicitudVenta
	solicitar := &cobra.Command{
		Use:   "solicitar",
		Short: "Registra la intención de compra de un auto",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ventas.Contactar(cmd.Context(), sol); err != nil {
				return err
			}
			fmt.Println("Solicitud registrada")
			return nil
		},
	}
	solicitar.Flags().Int64Var(&sol.AutoID, "auto", 0, "id del auto")
	solicitar.Flags().StringVar(&sol.Nombres, "nombres", "", "nombres del comprador")
	solicitar.Flags().StringVar(&sol.Apellidos, "apellidos", "", "apellidos")
	solicitar.Flags().StringVar(&sol.DNI, "dni", "", "documento")
	solicitar.Flags().StringVar(&sol.Telefono, "telefono", "", "teléfono")
	solicitar.Flags().StringVar(&sol.Direccion, "direccion", "", "dirección")
	_ = solicitar.MarkFlagRequired("auto")

	mias := &cobra.Command{
		Use:   "mias",
		Short: "Lista las solicitudes del cliente autenticado",
		RunE: func(cmd *cobra.Command, args []string) error {
			lista, err := a.ventas.MisSolicitudes(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tAUTO\tPRECIO\tESTADO")
			for _, v := range lista {
				fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\n",
					v.ID, v.AutoMarca, v.AutoModelo, v.AutoPrecio.StringFixed(2), v.Estado)
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(solicitar, mias)
	return cmd
}

func newLoginCmd(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Inicia sesión contra el backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			usuario, err := a.sesiones.Login(cmd.Context(), session.Credenciales{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Sesión iniciada: %s (%s)\n", usuario.Nombre, usuario.Rol.Nombre)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email de la cuenta")
	cmd.Flags().StringVar(&password, "password", "", "contraseña")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cierra la sesión y limpia el estado persistido",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.sesiones.Logout()
			fmt.Println("Sesión cerrada")
			return nil
		},
	}
}

func newPerfilCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perfil",
		Short: "Muestra o edita el perfil de la sesión actual",
		RunE: func(cmd *cobra.Command, args []string) error {
			u := a.sesiones.CurrentUser()
			if u == nil {
				fmt.Println("Sin sesión activa")
				return nil
			}
			fmt.Printf("%s <%s> rol=%s activo=%t\n", u.Nombre, u.Email, u.Rol.Nombre, u.Activo)
			return nil
		},
	}

	var cambios session.PerfilCambios
	editar := &cobra.Command{
		Use:   "editar",
		Short: "Actualiza nombre/teléfono/dirección del perfil",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.sesiones.ActualizarPerfil(cmd.Context(), cambios)
			if err != nil {
				return err
			}
			fmt.Printf("Perfil actualizado: %s <%s>\n", u.Nombre, u.Email)
			return nil
		},
	}
	editar.Flags().StringVar(&cambios.Nombre, "nombre", "", "nuevo nombre")
	editar.Flags().StringVar(&cambios.Apellido, "apellido", "", "nuevo apellido")
	editar.Flags().StringVar(&cambios.Telefono, "telefono", "", "nuevo teléfono")
	editar.Flags().StringVar(&cambios.Direccion, "direccion", "", "nueva dirección")
	cmd.AddCommand(editar)
	return cmd
}

func newAutosCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autos",
		Short: "Catálogo de vehículos",
	}
	cmd.AddCommand(newAutosListarCmd(a), newAutosDetalleCmd(a))
	return cmd
}

func newAutosListarCmd(a *app) *cobra.Command {
	var (
		marca, categoria, condicion, combustible, transmision string
		precioMin, precioMax                                  string
		anioMin, anioMax, kmMax                               int
		buscar, vista                                         string
		contadores                                            bool
	)
	cmd := &cobra.Command{
		Use:   "listar",
		Short: "Lista el catálogo aplicando filtros del lado del cliente",
		RunE: func(cmd *cobra.Command, args []string) error {
			lista, err := a.catalogo.Cargar(cmd.Context())
			if err != nil {
				return err
			}

			f := a.catalogo.FiltrosIniciales()
			f.Marca = marca
			f.Categoria = categoria
			f.Condicion = condicion
			f.Combustible = combustible
			f.Transmision = transmision
			f.Busqueda = buscar
			if vista != "" {
				f.Vista = catalogo.Vista(vista)
			}
			if precioMin != "" {
				d, err := decimal.NewFromString(precioMin)
				if err != nil {
					return fmt.Errorf("precio-min inválido: %w", err)
				}
				f.PrecioMin = &d
			}
			if precioMax != "" {
				d, err := decimal.NewFromString(precioMax)
				if err != nil {
					return fmt.Errorf("precio-max inválido: %w", err)
				}
				f.PrecioMax = &d
			}
			if anioMin > 0 {
				f.AnioMin = &anioMin
			}
			if anioMax > 0 {
				f.AnioMax = &anioMax
			}
			if kmMax > 0 {
				f.KilometrajeMax = &kmMax
			}

			filtrados := f.Aplicar(lista)
			imprimirAutos(filtrados)

			if contadores {
				imprimirContadores(a, cmd, lista, f)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&marca, "marca", "", "id de marca")
	cmd.Flags().StringVar(&categoria, "categoria", "", "id de categoría")
	cmd.Flags().StringVar(&condicion, "condicion", "", "id de condición")
	cmd.Flags().StringVar(&combustible, "combustible", "", "id de combustible")
	cmd.Flags().StringVar(&transmision, "transmision", "", "id de transmisión")
	cmd.Flags().StringVar(&precioMin, "precio-min", "", "precio mínimo (inclusive)")
	cmd.Flags().StringVar(&precioMax, "precio-max", "", "precio máximo (inclusive)")
	cmd.Flags().IntVar(&anioMin, "anio-min", 0, "año mínimo (inclusive)")
	cmd.Flags().IntVar(&anioMax, "anio-max", 0, "año máximo (inclusive)")
	cmd.Flags().IntVar(&kmMax, "km-max", 0, "kilometraje máximo")
	cmd.Flags().StringVar(&buscar, "buscar", "", "búsqueda por marca/modelo/color")
	cmd.Flags().StringVar(&vista, "vista", "", "vista admin: disponibles|vendidos|todos")
	cmd.Flags().BoolVar(&contadores, "contadores", false, "muestra conteos por facet")
	return cmd
}

func imprimirAutos(lista []entity.Auto) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMARCA\tMODELO\tAÑO\tPRECIO\tKM\tDISPONIBLE")
	for _, auto := range lista {
		marca := ""
		if auto.Marca != nil {
			marca = auto.Marca.Nombre
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%d\t%t\n",
			auto.ID, marca, auto.Modelo, auto.Anio, auto.Precio.StringFixed(2), auto.Kilometraje, auto.Disponible)
	}
	w.Flush()
	fmt.Printf("%d auto(s)\n", len(lista))
}

// imprimirContadores muestra la cardinalidad por facet individual (solo
// alcance de visibilidad, ignorando el resto de filtros activos).
func imprimirContadores(a *app, cmd *cobra.Command, lista []entity.Auto, f *catalogo.Filtros) {
	ref := a.catalogo.Opciones(cmd.Context())
	for _, m := range ref.Marcas {
		fmt.Printf("marca %s (%d)\n", m.Nombre, f.ContarPorMarca(lista, m.ID))
	}
	for _, c := range ref.Categorias {
		fmt.Printf("categoría %s (%d)\n", c.Nombre, f.ContarPorCategoria(lista, c.ID))
	}
	for _, c := range ref.Condiciones {
		fmt.Printf("condición %s (%d)\n", c.Nombre, f.ContarPorCondicion(lista, c.ID))
	}
	for _, t := range ref.Transmisiones {
		fmt.Printf("transmisión %s (%d)\n", t.Nombre, f.ContarPorTransmision(lista, t.ID))
	}
}

func newAutosDetalleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "detalle <id>",
		Short: "Muestra un auto puntual",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido: %w", err)
			}
			auto, err := a.catalogo.Detalle(cmd.Context(), id)
			if err != nil {
				return err
			}
			imprimirAutos([]entity.Auto{*auto})
			fmt.Println(auto.Descripcion)
			for _, img := range auto.Imagenes {
				fmt.Println("imagen:", img)
			}
			return nil
		},
	}
}

func newContactoCmd(a *app) *cobra.Command {
	var req entity.ContactRequest
	var autoID int64
	var whatsapp string
	cmd := &cobra.Command{
		Use:   "contacto",
		Short: "Envía una consulta pública sobre un auto",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.AutoID = autoID
			if whatsapp != "" {
				enlace, err := a.contactos.EnviarYContactar(cmd.Context(), req, whatsapp)
				if err != nil {
					return err
				}
				fmt.Println("Consulta enviada. Continuar en:", enlace)
				return nil
			}
			if err := a.contactos.Enviar(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Println("Consulta enviada")
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Nombre, "nombre", "", "nombre del interesado")
	cmd.Flags().StringVar(&req.Email, "email", "", "email de contacto")
	cmd.Flags().StringVar(&req.Telefono, "telefono", "", "teléfono de contacto")
	cmd.Flags().StringVar(&req.Asunto, "asunto", "", "asunto")
	cmd.Flags().StringVar(&req.Mensaje, "mensaje", "", "mensaje")
	cmd.Flags().Int64Var(&autoID, "auto", 0, "id del auto consultado")
	cmd.Flags().StringVar(&whatsapp, "whatsapp", "", "teléfono del vendedor para abrir chat tras guardar")
	_ = cmd.MarkFlagRequired("nombre")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("telefono")
	_ = cmd.MarkFlagRequired("mensaje")
	return cmd
}

// newAdminCmd agrupa las operaciones de administración. El guard corre antes
// de cualquier subcomando: sin sesión ADMIN se informa la redirección al
// login admin con la ruta original como returnUrl.
func newAdminCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Operaciones de administración (requiere rol ADMIN)",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ruta := "/admin/" + cmd.Name()
			decision := a.guard.Autorizar(ruta)
			if !decision.Permitida {
				return fmt.Errorf("acceso denegado: inicie sesión en %s", decision.RedirigirA)
			}
			return nil
		},
	}
	cmd.AddCommand(
		newAdminAutosCmd(a),
		newAdminContactosCmd(a),
		newAdminVentasCmd(a),
		newAdminUsuariosCmd(a),
	)
	return cmd
}

func newAdminAutosCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "autos", Short: "Inventario de vehículos"}

	var req autos.AutoRequest
	var precio string
	var imagenes []string
	crear := &cobra.Command{
		Use:   "crear",
		Short: "Crea un auto en el inventario",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := decimal.NewFromString(precio)
			if err != nil {
				return fmt.Errorf("precio inválido: %w", err)
			}
			req.Precio = d
			req.Imagenes = imagenes
			req.Disponible = true
			auto, err := a.autos.Crear(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("Auto creado con id %d\n", auto.ID)
			return nil
		},
	}
	crear.Flags().Int64Var(&req.MarcaID, "marca", 0, "id de marca")
	crear.Flags().StringVar(&req.Modelo, "modelo", "", "modelo")
	crear.Flags().IntVar(&req.Anio, "anio", 0, "año")
	crear.Flags().StringVar(&precio, "precio", "", "precio")
	crear.Flags().StringVar(&req.Color, "color", "", "color")
	crear.Flags().IntVar(&req.Kilometraje, "kilometraje", 0, "kilometraje")
	crear.Flags().Int64Var(&req.CombustibleID, "combustible", 0, "id de combustible")
	crear.Flags().Int64Var(&req.TransmisionID, "transmision", 0, "id de transmisión")
	crear.Flags().Int64Var(&req.CategoriaID, "categoria", 0, "id de categoría")
	crear.Flags().Int64Var(&req.CondicionID, "condicion", 0, "id de condición")
	crear.Flags().StringVar(&req.Descripcion, "descripcion", "", "descripción")
	crear.Flags().StringSliceVar(&imagenes, "imagen", nil, "URL de imagen (repetible, máx. 5)")

	eliminar := &cobra.Command{
		Use:   "eliminar <id>",
		Short: "Elimina un auto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido: %w", err)
			}
			return a.autos.Eliminar(cmd.Context(), id)
		},
	}

	disponibilidad := &cobra.Command{
		Use:   "disponibilidad <id> <true|false>",
		Short: "Publica o retira un auto del catálogo",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido: %w", err)
			}
			disponible, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("valor inválido: %w", err)
			}
			_, err = a.autos.CambiarDisponibilidad(cmd.Context(), id, disponible)
			return err
		},
	}

	cmd.AddCommand(crear, eliminar, disponibilidad)
	return cmd
}

func newAdminContactosCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "contactos", Short: "Gestión de leads"}

	listar := &cobra.Command{
		Use:   "listar",
		Short: "Lista todos los leads",
		RunE: func(cmd *cobra.Command, args []string) error {
			lista, err := a.contactos.ListarTodos(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNOMBRE\tEMAIL\tESTADO\tLEÍDO")
			for _, c := range lista {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", c.ID, c.Nombre, c.Email, c.Estado, c.Leido)
			}
			return w.Flush()
		},
	}

	estado := &cobra.Command{
		Use:   "estado <id> <estado>",
		Short: "Transiciona el estado de un lead",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido: %w", err)
			}
			_, err = a.contactos.CambiarEstado(cmd.Context(), id, args[1])
			return err
		},
	}

	leido := &cobra.Command{
		Use:   "leido <id>",
		Short: "Marca un lead como leído",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido: %w", err)
			}
			_, err = a.contactos.MarcarLeido(cmd.Context(), id)
			return err
		},
	}

	cmd.AddCommand(listar, estado, leido)
	return cmd
}

func newAdminVentasCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "ventas", Short: "Gestión de ventas"}

	var filtroEstado string
	listar := &cobra.Command{
		Use:   "listar",
		Short: "Lista las ventas, opcionalmente por estado",
		RunE: func(cmd *cobra.Command, args []string) error {
			var lista []entity.Venta
			var err error
			if filtroEstado != "" {
				lista, err = a.ventas.ListarPorEstado(cmd.Context(), filtroEstado)
			} else {
				lista, err = a.ventas.ListarTodas(cmd.Context())
			}
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCLIENTE\tAUTO\tPRECIO\tESTADO")
			for _, v := range lista {
				fmt.Fprintf(w, "%d\t%s\t%s %s\t%s\t%s\n",
					v.ID, v.ClienteNombre, v.AutoMarca, v.AutoModelo, v.AutoPrecio.StringFixed(2), v.Estado)
			}
			return w.Flush()
		},
	}
	listar.Flags().StringVar(&filtroEstado, "estado", "", "PENDIENTE|FINALIZADO|CANCELADO")

	estado := &cobra.Command{
		Use:   "estado <id> <estado>",
		Short: "Transiciona el estado de una venta",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido: %w", err)
			}
			_, err = a.ventas.ActualizarEstado(cmd.Context(), id, args[1])
			return err
		},
	}

	cmd.AddCommand(listar, estado)
	return cmd
}

func newAdminUsuariosCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "usuarios", Short: "Gestión de cuentas"}

	listar := &cobra.Command{
		Use:   "listar",
		Short: "Lista todas las cuentas",
		RunE: func(cmd *cobra.Command, args []string) error {
			lista, err := a.usuarios.Listar(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNOMBRE\tEMAIL\tROL\tACTIVO")
			for _, u := range lista {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", u.ID, u.Nombre, u.Email, u.Rol.Nombre, u.Activo)
			}
			return w.Flush()
		},
	}

	estado := &cobra.Command{
		Use:   "estado <id> <true|false>",
		Short: "Activa o desactiva una cuenta",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido: %w", err)
			}
			activo, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("valor inválido: %w", err)
			}
			_, err = a.usuarios.CambiarEstado(cmd.Context(), id, activo)
			return err
		},
	}

	eliminar := &cobra.Command{
		Use:   "eliminar <id>",
		Short: "Elimina una cuenta",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido: %w", err)
			}
			return a.usuarios.Eliminar(cmd.Context(), id)
		},
	}

	cmd.AddCommand(listar, estado, eliminar)
	return cmd
}
