package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/translatable-api/internal/application/dto"
	"github.com/jhoicas/translatable-api/internal/application/usecase"
	"github.com/jhoicas/translatable-api/internal/domain"
	"github.com/jhoicas/translatable-api/pkg/translatable"
)

// CategoryHandler maneja las peticiones HTTP para Category.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// GetAll godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Success      200  {array}   dto.CategoryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) GetAll(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateCategoryRequest  true  "Traducciones por locale"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	c.Location("/categories/" + out.ID)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar categoría (parcial por locale)
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "ID de la categoría"
// @Param        body  body      dto.UpdateCategoryRequest  true  "Traducciones a crear o modificar"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /categories/{id} [patch]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría
// @Description  Con ?locale=xx solo se elimina si la categoría tiene ese locale.
// @Tags         categories
// @Security     Bearer
// @Param        id      path   string  true   "ID de la categoría"
// @Param        locale  query  string  false  "Locale requerido"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	var err error
	if locale := c.Query("locale"); locale != "" {
		err = h.uc.DeleteByIDAndLocale(c.UserContext(), c.Params("id"), locale)
	} else {
		err = h.uc.Delete(c.UserContext(), c.Params("id"))
	}
	if err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListByLocale godoc
// @Summary      Listar categorías con traducción en un locale
// @Tags         categories
// @Produce      json
// @Param        locale  path   string  true   "Locale (BCP 47)"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.CategoryListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /categories/locales/{locale} [get]
func (h *CategoryHandler) ListByLocale(c *fiber.Ctx) error {
	out, err := h.uc.ListByLocale(c.UserContext(), c.Params("locale"), pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByIDAndLocale godoc
// @Summary      Obtener categoría si tiene traducción en un locale
// @Tags         categories
// @Produce      json
// @Param        id      path  string  true  "ID de la categoría"
// @Param        locale  path  string  true  "Locale (BCP 47)"
// @Success      200     {object}  dto.CategoryResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /categories/{id}/locales/{locale} [get]
func (h *CategoryHandler) GetByIDAndLocale(c *fiber.Ctx) error {
	out, err := h.uc.FindByIDAndLocale(c.UserContext(), c.Params("id"), c.Params("locale"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// DeleteByLocale godoc
// @Summary      Eliminar todas las categorías con traducción en un locale
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        locale  path  string  true  "Locale (BCP 47)"
// @Success      200     {object}  dto.DeletedResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /categories/locales/{locale} [delete]
func (h *CategoryHandler) DeleteByLocale(c *fiber.Ctx) error {
	out, err := h.uc.DeleteByLocale(c.UserContext(), c.Params("locale"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// parseBody decodifica el cuerpo JSON con el decoder estricto de la app.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return domain.NewBadRequest("Required request body is missing")
	}
	if err := c.App().Config().JSONDecoder(c.Body(), out); err != nil {
		return domain.NewBadRequest("Malformed JSON request")
	}
	return nil
}

// pageRequest lee limit/offset de la query aplicando valores por defecto y topes.
func pageRequest(c *fiber.Ctx) dto.PageRequest {
	p := dto.PageRequest{
		Limit:  c.QueryInt("limit", translatable.DefaultPageLimit),
		Offset: c.QueryInt("offset", 0),
	}
	p.DefaultPage()
	return p
}
