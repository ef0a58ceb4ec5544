package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Repuestos-api/internal/application/auth"
	"github.com/jhoicas/Repuestos-api/internal/application/authz"
	"github.com/jhoicas/Repuestos-api/internal/application/inventory"
	"github.com/jhoicas/Repuestos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RepuestoUC       *usecase.RepuestoUseCase
	CategoriaUC      *usecase.CategoriaUseCase
	UsuarioUC        *usecase.UsuarioUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	MovementQuery    *inventory.MovementQueryUseCase
	AlertLifecycle   *inventory.AlertLifecycleUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/profile", authHandler.Profile)

	// Repuestos (lectura para cualquier autenticado; escritura según política)
	repuestos := protected.Group("/repuestos")
	repuestoHandler := NewRepuestoHandler(deps.RepuestoUC)
	repuestos.Get("/", repuestoHandler.List)
	repuestos.Get("/:id", repuestoHandler.GetByID)
	repuestos.Post("/", RequireAction(authz.ActionGestionarCatalogo), repuestoHandler.Create)
	repuestos.Put("/:id", RequireAction(authz.ActionGestionarCatalogo), repuestoHandler.Update)
	repuestos.Delete("/:id", RequireAction(authz.ActionEliminarRepuesto), repuestoHandler.Delete)

	// Movimientos (el libro de inventario)
	movimientoHandler := NewMovimientoHandler(deps.RegisterMovement, deps.MovementQuery)
	inv := protected.Group("/inventario")
	inv.Post("/movimientos", RequireAction(authz.ActionRegistrarMovimiento), movimientoHandler.Registrar)
	inv.Get("/movimientos", movimientoHandler.List)
	repuestos.Get("/:id/movimientos", movimientoHandler.ListByRepuesto)

	// Alertas de stock bajo
	alertas := protected.Group("/alertas")
	alertaHandler := NewAlertaHandler(deps.AlertLifecycle)
	alertas.Get("/", alertaHandler.List)
	alertas.Post("/:id/resolver", RequireAction(authz.ActionGestionarAlertas), alertaHandler.Resolver)
	alertas.Post("/:id/ignorar", RequireAction(authz.ActionGestionarAlertas), alertaHandler.Ignorar)
	alertas.Post("/:id/notificar", RequireAction(authz.ActionGestionarAlertas), alertaHandler.Notificar)

	// Categorías
	categorias := protected.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Get("/", categoriaHandler.List)
	categorias.Get("/:id", categoriaHandler.GetByID)
	categorias.Post("/", RequireAction(authz.ActionGestionarCatalogo), categoriaHandler.Create)
	categorias.Put("/:id", RequireAction(authz.ActionGestionarCatalogo), categoriaHandler.Update)

	// Usuarios (solo roles de gestión)
	usuarios := protected.Group("/usuarios", RequireAction(authz.ActionGestionarUsuarios))
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Put("/:id", usuarioHandler.Update)
}
