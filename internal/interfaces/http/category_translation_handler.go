package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/translatable-api/internal/application/usecase"
)

// CategoryTranslationHandler maneja las peticiones HTTP para las traducciones de categorías.
type CategoryTranslationHandler struct {
	uc *usecase.CategoryTranslationUseCase
}

// NewCategoryTranslationHandler construye el handler.
func NewCategoryTranslationHandler(uc *usecase.CategoryTranslationUseCase) *CategoryTranslationHandler {
	return &CategoryTranslationHandler{uc: uc}
}

// List godoc
// @Summary      Listar traducciones de una categoría
// @Tags         category-translations
// @Produce      json
// @Param        id      path   string  true   "ID de la categoría"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.CategoryTranslationListResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /categories/{id}/translations [get]
func (h *CategoryTranslationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByCategory(c.UserContext(), c.Params("id"), pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener la traducción de una categoría en un locale
// @Tags         category-translations
// @Produce      json
// @Param        id      path  string  true  "ID de la categoría"
// @Param        locale  path  string  true  "Locale (BCP 47)"
// @Success      200     {object}  dto.CategoryTranslationDetailResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /categories/{id}/translations/{locale} [get]
func (h *CategoryTranslationHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"), c.Params("locale"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar traducciones por nombre y locale
// @Tags         category-translations
// @Produce      json
// @Param        name    query  string  true  "Nombre exacto"
// @Param        locale  query  string  true  "Locale (BCP 47)"
// @Success      200     {array}   dto.CategoryTranslationDetailResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /categories/translations/search [get]
func (h *CategoryTranslationHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), c.Query("name"), c.Query("locale"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar la traducción de una categoría en un locale
// @Tags         category-translations
// @Security     Bearer
// @Param        id      path  string  true  "ID de la categoría"
// @Param        locale  path  string  true  "Locale (BCP 47)"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /categories/{id}/translations/{locale} [delete]
func (h *CategoryTranslationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id"), c.Params("locale")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteByLocale godoc
// @Summary      Eliminar todas las traducciones de un locale
// @Tags         category-translations
// @Security     Bearer
// @Produce      json
// @Param        locale  path  string  true  "Locale (BCP 47)"
// @Success      200     {object}  dto.DeletedResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /categories/translations/locales/{locale} [delete]
func (h *CategoryTranslationHandler) DeleteByLocale(c *fiber.Ctx) error {
	out, err := h.uc.DeleteByLocale(c.UserContext(), c.Params("locale"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}
