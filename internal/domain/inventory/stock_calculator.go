package inventory

import (
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
)

// CalcularStockPosterior implementa la tabla de efectos por tipo de movimiento
// (servicio de dominio, función pura de stockAnterior, tipo y cantidad):
//
//	ENTRADA, AJUSTE_POSITIVO, DEVOLUCION          -> anterior + cantidad
//	SALIDA_USO, SALIDA_SOLICITUD, AJUSTE_NEGATIVO,
//	BAJA_DANO                                     -> max(0, anterior - cantidad)
//	COMPRA_EXTERNA                                -> anterior (no entra a stock)
//
// Las salidas se truncan en cero: el stock nunca queda negativo. El movimiento
// conserva la cantidad solicitada completa, así el truncamiento queda auditado.
func CalcularStockPosterior(tipo string, stockAnterior, cantidad int) (int, error) {
	if cantidad <= 0 {
		return 0, domain.ErrInvalidInput
	}
	switch tipo {
	case entity.MovimientoEntrada, entity.MovimientoAjustePositivo, entity.MovimientoDevolucion:
		return stockAnterior + cantidad, nil
	case entity.MovimientoSalidaUso, entity.MovimientoSalidaSolicitud,
		entity.MovimientoAjusteNegativo, entity.MovimientoBajaDano:
		posterior := stockAnterior - cantidad
		if posterior < 0 {
			posterior = 0
		}
		return posterior, nil
	case entity.MovimientoCompraExterna:
		return stockAnterior, nil
	}
	return 0, domain.ErrInvalidInput
}
