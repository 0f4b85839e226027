package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoseph/loomtrack-api/internal/application/auth"
	"github.com/jhoseph/loomtrack-api/internal/application/clientes"
	"github.com/jhoseph/loomtrack-api/internal/application/materiales"
	"github.com/jhoseph/loomtrack-api/internal/application/pedidos"
	"github.com/jhoseph/loomtrack-api/internal/application/productos"
	"github.com/jhoseph/loomtrack-api/internal/application/usuarios"
	"github.com/jhoseph/loomtrack-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MaterialesUC *materiales.UseCase
	ListadoPDF   materiales.ListadoPDFGenerator
	ClientesUC   *clientes.UseCase
	PedidosUC    *pedidos.UseCase
	ProductosUC  *productos.UseCase
	UsuariosUC   *usuarios.UseCase
	AuthUC       *auth.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público, registro solo admin
	authHandler := NewAuthHandler(deps.AuthUC, deps.UsuariosUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RolAdmin), authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Materiales (protegido): libro de materiales con movimientos
	mats := protected.Group("/materiales")
	materialHandler := NewMaterialHandler(deps.MaterialesUC, deps.ListadoPDF)
	mats.Get("/", materialHandler.Listar)
	mats.Get("/export/csv", materialHandler.ExportarCSV)
	mats.Get("/export/pdf", materialHandler.ExportarPDF)
	mats.Post("/", materialHandler.Crear)
	mats.Get("/:id", materialHandler.Obtener)
	mats.Put("/:id", materialHandler.Actualizar)
	mats.Delete("/:id", materialHandler.Eliminar)
	mats.Post("/:id/ajustes", materialHandler.AjustarStock)
	mats.Get("/:id/movimientos", materialHandler.Movimientos)
	mats.Get("/:id/verificacion", materialHandler.Verificar)

	// Movimientos globales (protegido): reporte sobre todos los materiales
	movimientoHandler := NewMovimientoHandler(deps.MaterialesUC)
	protected.Get("/movimientos", movimientoHandler.Listar)

	// Clientes (protegido)
	cls := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClientesUC)
	cls.Get("/", clienteHandler.Listar)
	cls.Get("/export/csv", clienteHandler.ExportarCSV)
	cls.Post("/", clienteHandler.Crear)
	cls.Get("/:id", clienteHandler.Obtener)
	cls.Put("/:id", clienteHandler.Actualizar)
	cls.Delete("/:id", clienteHandler.Eliminar)

	// Pedidos (protegido)
	peds := protected.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidosUC)
	peds.Get("/", pedidoHandler.Listar)
	peds.Post("/", pedidoHandler.Crear)
	peds.Get("/:id", pedidoHandler.Obtener)
	peds.Put("/:id", pedidoHandler.Actualizar)
	peds.Delete("/:id", pedidoHandler.Eliminar)

	// Productos (protegido)
	prods := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductosUC)
	prods.Get("/", productoHandler.Listar)
	prods.Post("/", productoHandler.Crear)
	prods.Get("/:id", productoHandler.Obtener)
	prods.Put("/:id", productoHandler.Actualizar)
	prods.Delete("/:id", productoHandler.Eliminar)

	// Usuarios (protegido): lectura para autenticados, mutaciones solo admin
	usrs := protected.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuariosUC)
	usrs.Get("/", usuarioHandler.Listar)
	usrs.Get("/:id", usuarioHandler.Obtener)
	usrs.Post("/", RequireRole(entity.RolAdmin), usuarioHandler.Crear)
	usrs.Put("/:id", RequireRole(entity.RolAdmin), usuarioHandler.Actualizar)
	usrs.Delete("/:id", RequireRole(entity.RolAdmin), usuarioHandler.Eliminar)
}
