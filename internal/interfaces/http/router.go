package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/puntoventa-api/internal/application/auth"
	"github.com/jhoicas/puntoventa-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC  *usecase.ProductoUseCase
	ProveedorUC *usecase.ProveedorUseCase
	CajaUC      *usecase.CajaUseCase
	VentaUC     *usecase.VentaUseCase
	InformeUC   *usecase.InformeUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público): registro único, login y verificación de existencia
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/existe", authHandler.Exists)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuario (protegido)
	protected.Get("/usuario", authHandler.Me)
	protected.Put("/usuario", authHandler.Update)

	// Productos (protegido)
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)
	productos.Post("/:id/restaurar", productoHandler.Restore)

	// Proveedores (protegido)
	proveedores := protected.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Post("/", proveedorHandler.Create)
	proveedores.Get("/", proveedorHandler.List)
	proveedores.Get("/:id", proveedorHandler.GetByID)
	proveedores.Put("/:id", proveedorHandler.Update)
	proveedores.Delete("/:id", proveedorHandler.Delete)

	// Caja (protegido): sesión única activa
	caja := protected.Group("/caja")
	cajaHandler := NewCajaHandler(deps.CajaUC)
	caja.Post("/", cajaHandler.Open)
	caja.Post("/cerrar", cajaHandler.Close)
	caja.Get("/activa", cajaHandler.Active)
	caja.Get("/cerradas", cajaHandler.ListClosed)
	caja.Get("/buscar", cajaHandler.GetByDate)
	caja.Post("/ventas", cajaHandler.RegisterSale)

	// Ventas (protegido, consulta y anulación)
	ventas := protected.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.VentaUC)
	ventas.Get("/", ventaHandler.List)
	ventas.Get("/buscar", ventaHandler.GetByDate)
	ventas.Get("/:id", ventaHandler.GetByID)
	ventas.Delete("/:id", ventaHandler.Delete)

	// Informes (protegido)
	informes := protected.Group("/informes")
	informeHandler := NewInformeHandler(deps.InformeUC)
	informes.Post("/", informeHandler.GenerateByRange)
	informes.Post("/caja/:caja_id", informeHandler.GenerateByCaja)
	informes.Get("/", informeHandler.List)
	informes.Get("/buscar", informeHandler.GetByDate)
	informes.Get("/:id", informeHandler.GetByID)
	informes.Delete("/:id", informeHandler.Delete)
}
