package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/domain"
)

// respondError mapea errores de dominio a respuestas HTTP. Punto único para
// que todos los handlers devuelvan los mismos códigos ante el mismo error.
func respondError(c *fiber.Ctx, err error) error {
	var bloqueada *domain.EliminacionBloqueadaError
	if errors.As(err, &bloqueada) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "DELETE_BLOCKED",
			Message: "la eliminación está bloqueada",
			Motivos: bloqueada.Motivos,
		})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un recurso con ese valor único"})
	case errors.Is(err, domain.ErrAlertaTerminal):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALERT_TERMINAL", Message: "la alerta ya está en un estado terminal"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto con el estado actual"})
	case errors.Is(err, domain.ErrStockNoModificable):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "STOCK_READONLY", Message: "el stock solo se modifica vía movimientos"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
