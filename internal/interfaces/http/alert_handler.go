package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/application/inventory"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
)

// AlertaHandler maneja el ciclo de vida de alertas de stock bajo (protegido).
// Las alertas solo las crea el motor de movimientos; aquí solo transicionan.
type AlertaHandler struct {
	uc *inventory.AlertLifecycleUseCase
}

// NewAlertaHandler construye el handler.
func NewAlertaHandler(uc *inventory.AlertLifecycleUseCase) *AlertaHandler {
	return &AlertaHandler{uc: uc}
}

// List lista alertas, filtrable por ?estado=.
func (h *AlertaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválida"})
	}
	page.DefaultPage()
	alertas, err := h.uc.ListarPorEstado(c.Query("estado"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.AlertaResponse, 0, len(alertas))
	for _, a := range alertas {
		items = append(items, toAlertaResponse(a))
	}
	return c.JSON(dto.AlertaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// Resolver marca la alerta como RESUELTA con actor y fecha.
func (h *AlertaHandler) Resolver(c *fiber.Ctx) error {
	var in dto.ResolverAlertaRequest
	if err := c.BodyParser(&in); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	alerta, err := h.uc.Resolver(c.Params("id"), GetUserID(c), in.Observaciones)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toAlertaResponse(alerta))
}

// Ignorar descarta la alerta (estado IGNORADA, terminal).
func (h *AlertaHandler) Ignorar(c *fiber.Ctx) error {
	var in dto.ResolverAlertaRequest
	if err := c.BodyParser(&in); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	alerta, err := h.uc.Ignorar(c.Params("id"), GetUserID(c), in.Observaciones)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toAlertaResponse(alerta))
}

// Notificar marca la alerta PENDIENTE como NOTIFICADA.
func (h *AlertaHandler) Notificar(c *fiber.Ctx) error {
	alerta, err := h.uc.MarcarNotificada(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toAlertaResponse(alerta))
}

func toAlertaResponse(a *entity.Alerta) dto.AlertaResponse {
	return dto.AlertaResponse{
		ID:                a.ID,
		RepuestoID:        a.RepuestoID,
		StockActual:       a.StockActual,
		StockMinimo:       a.StockMinimo,
		Estado:            a.Estado,
		FechaCreacion:     a.FechaCreacion,
		FechaNotificacion: a.FechaNotificacion,
		FechaResolucion:   a.FechaResolucion,
		ResueltaPor:       a.ResueltaPor,
		Observaciones:     a.Observaciones,
	}
}
