package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/translatable-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC            *usecase.CategoryUseCase
	CategoryTranslationUC *usecase.CategoryTranslationUseCase
	// JWTSecret vacío deja las escrituras sin autenticación (entorno local).
	JWTSecret string
	AppName   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	translationHandler := NewCategoryTranslationHandler(deps.CategoryTranslationUC)

	// Escrituras: editor o admin. Borrados masivos por locale: solo admin.
	write := guard(deps.JWTSecret, RoleAdmin, RoleEditor)
	admin := guard(deps.JWTSecret, RoleAdmin)

	categories := app.Group("/categories")
	categories.Get("/", categoryHandler.GetAll)
	categories.Post("/", write(categoryHandler.Create)...)

	// Rutas literales antes que las de parámetro.
	categories.Get("/locales/:locale", categoryHandler.ListByLocale)
	categories.Delete("/locales/:locale", admin(categoryHandler.DeleteByLocale)...)
	categories.Get("/translations/search", translationHandler.Search)
	categories.Delete("/translations/locales/:locale", admin(translationHandler.DeleteByLocale)...)

	categories.Get("/:id", categoryHandler.GetByID)
	categories.Patch("/:id", write(categoryHandler.Update)...)
	categories.Delete("/:id", write(categoryHandler.Delete)...)
	categories.Get("/:id/locales/:locale", categoryHandler.GetByIDAndLocale)

	categories.Get("/:id/translations", translationHandler.List)
	categories.Get("/:id/translations/:locale", translationHandler.Get)
	categories.Delete("/:id/translations/:locale", write(translationHandler.Delete)...)
}

// guard antepone AuthMiddleware + RequireRole al handler si hay secreto configurado.
func guard(secret string, roles ...string) func(fiber.Handler) []fiber.Handler {
	return func(h fiber.Handler) []fiber.Handler {
		if secret == "" {
			return []fiber.Handler{h}
		}
		return []fiber.Handler{AuthMiddleware(secret), RequireRole(roles...), h}
	}
}
