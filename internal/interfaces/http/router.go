package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/innovasport/almacen-api/internal/application/auth"
	"github.com/innovasport/almacen-api/internal/application/usecase"
	"github.com/innovasport/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	MaterialUC *usecase.MaterialUseCase
	ObraUC     *usecase.ObraUseCase
	UserUC     *usecase.UserUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Las listas de roles permitidos viven
// solo aquí: cualquier rol reconocido puede operar materiales y obras, la
// administración de usuarios exige rol elevado.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Login (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	anyRole := RequireRole(entity.AllRoles...)
	elevated := RequireRole(entity.ElevatedRoles...)

	// Materials (cualquier rol autenticado)
	materials := protected.Group("/materials", anyRole)
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Get("/", materialHandler.List)
	materials.Post("/", materialHandler.Create)
	materials.Put("/", materialHandler.Update)
	materials.Delete("/", materialHandler.Delete)
	materials.Put("/cantidad", materialHandler.Adjust)
	materials.Get("/report", materialHandler.StockReport)

	// Obras (cualquier rol autenticado)
	obras := protected.Group("/obras", anyRole)
	obraHandler := NewObraHandler(deps.ObraUC)
	obras.Get("/", obraHandler.List)
	obras.Post("/", obraHandler.Create)
	obras.Put("/", obraHandler.Update)
	obras.Delete("/", obraHandler.Delete)
	obras.Get("/export", obraHandler.Export)

	// Users: /current para cualquier autenticado, el resto solo rol elevado
	userHandler := NewUserHandler(deps.UserUC)
	protected.Get("/users/current", anyRole, userHandler.Current)
	users := protected.Group("/users", elevated)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/", userHandler.Update)
	users.Delete("/", userHandler.Delete)
}
