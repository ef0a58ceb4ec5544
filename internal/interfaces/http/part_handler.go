package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/application/usecase"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// RepuestoHandler maneja el CRUD del catálogo de repuestos (protegido).
type RepuestoHandler struct {
	uc *usecase.RepuestoUseCase
}

// NewRepuestoHandler construye el handler.
func NewRepuestoHandler(uc *usecase.RepuestoUseCase) *RepuestoHandler {
	return &RepuestoHandler{uc: uc}
}

// Create crea un repuesto con stock cero.
func (h *RepuestoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRepuestoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rep, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rep)
}

// GetByID obtiene un repuesto por ID.
func (h *RepuestoHandler) GetByID(c *fiber.Ctx) error {
	rep, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rep)
}

// List lista repuestos. Filtros: activo, categoria_id, necesita_reposicion,
// limit y offset por query string.
func (h *RepuestoHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválida"})
	}
	page.DefaultPage()

	filter := repository.RepuestoFilter{
		CategoriaID: c.Query("categoria_id"),
		Limit:       page.Limit,
		Offset:      page.Offset,
	}
	if v := c.Query("activo"); v != "" {
		activo := v == "true"
		filter.Activo = &activo
	}
	if v := c.Query("necesita_reposicion"); v != "" {
		necesita := v == "true"
		filter.NecesitaReposicion = &necesita
	}

	list, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Update actualiza atributos de catálogo. Nunca stock_actual.
func (h *RepuestoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRepuestoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rep, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rep)
}

// Delete elimina un repuesto. Con ?force=true y rol privilegiado borra también
// historial y alertas; si no, aplica la política estándar y un 409 lista todos
// los motivos de bloqueo de una vez.
func (h *RepuestoHandler) Delete(c *fiber.Ctx) error {
	actor := usecase.Actor{ID: GetUserID(c), Rol: GetRol(c)}
	force := c.Query("force") == "true"
	if err := h.uc.Delete(c.Context(), actor, c.Params("id"), force); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
