package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/application/inventory"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
)

// MovimientoHandler maneja el registro y consulta de movimientos (protegido).
type MovimientoHandler struct {
	register *inventory.RegisterMovementUseCase
	query    *inventory.MovementQueryUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(register *inventory.RegisterMovementUseCase, query *inventory.MovementQueryUseCase) *MovimientoHandler {
	return &MovimientoHandler{register: register, query: query}
}

// Registrar registra un movimiento de inventario. RegistradoPor sale del token,
// nunca del body.
func (h *MovimientoHandler) Registrar(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegistrarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.register.RegistrarMovimiento(c.Context(), inventory.MovimientoInput{
		RepuestoID:         in.RepuestoID,
		Tipo:               in.Tipo,
		Cantidad:           in.Cantidad,
		CostoUnitario:      in.CostoUnitario,
		Observaciones:      in.Observaciones,
		Proveedor:          in.Proveedor,
		NumeroFactura:      in.NumeroFactura,
		NumeroOrdenTrabajo: in.NumeroOrdenTrabajo,
		RegistradoPor:      userID,
		AutorizadoPor:      in.AutorizadoPor,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovimientoResponse(mov))
}

// List lista movimientos, más reciente primero. Con ?repuesto_id= devuelve
// solo el historial de ese repuesto.
func (h *MovimientoHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválida"})
	}
	page.DefaultPage()

	var movs []*entity.Movimiento
	var err error
	if repuestoID := c.Query("repuesto_id"); repuestoID != "" {
		movs, err = h.query.ListarPorRepuesto(repuestoID, page.Limit, page.Offset)
	} else {
		movs, err = h.query.Listar(page.Limit, page.Offset)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toMovimientoListResponse(movs, page))
}

// ListByRepuesto lista el historial de un repuesto, más reciente primero.
func (h *MovimientoHandler) ListByRepuesto(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválida"})
	}
	page.DefaultPage()
	movs, err := h.query.ListarPorRepuesto(c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toMovimientoListResponse(movs, page))
}

func toMovimientoResponse(m *entity.Movimiento) dto.MovimientoResponse {
	return dto.MovimientoResponse{
		ID:                 m.ID,
		RepuestoID:         m.RepuestoID,
		Tipo:               m.Tipo,
		Cantidad:           m.Cantidad,
		StockAnterior:      m.StockAnterior,
		StockPosterior:     m.StockPosterior,
		CostoUnitario:      m.CostoUnitario,
		Observaciones:      m.Observaciones,
		Proveedor:          m.Proveedor,
		NumeroFactura:      m.NumeroFactura,
		NumeroOrdenTrabajo: m.NumeroOrdenTrabajo,
		FechaMovimiento:    m.FechaMovimiento,
		RegistradoPor:      m.RegistradoPor,
		AutorizadoPor:      m.AutorizadoPor,
	}
}

func toMovimientoListResponse(movs []*entity.Movimiento, page dto.PageRequest) dto.MovimientoListResponse {
	items := make([]dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		items = append(items, toMovimientoResponse(m))
	}
	return dto.MovimientoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}
