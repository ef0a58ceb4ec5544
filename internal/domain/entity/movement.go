package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario. Conjunto cerrado: se extiende agregando
// constantes, nunca con texto libre.
const (
	MovimientoEntrada         = "ENTRADA"          // ingreso a bodega
	MovimientoSalidaUso       = "SALIDA_USO"       // consumo en reparación
	MovimientoSalidaSolicitud = "SALIDA_SOLICITUD" // entrega por solicitud
	MovimientoAjustePositivo  = "AJUSTE_POSITIVO"
	MovimientoAjusteNegativo  = "AJUSTE_NEGATIVO"
	MovimientoBajaDano        = "BAJA_DANO"      // baja por daño
	MovimientoCompraExterna   = "COMPRA_EXTERNA" // compra directa consumida de inmediato, no entra a stock
	MovimientoDevolucion      = "DEVOLUCION"
)

// TipoMovimientoValido verifica que el tipo pertenezca al conjunto cerrado.
func TipoMovimientoValido(tipo string) bool {
	switch tipo {
	case MovimientoEntrada, MovimientoSalidaUso, MovimientoSalidaSolicitud,
		MovimientoAjustePositivo, MovimientoAjusteNegativo, MovimientoBajaDano,
		MovimientoCompraExterna, MovimientoDevolucion:
		return true
	}
	return false
}

// Movimiento representa una entrada del libro de inventario (append-only).
// StockAnterior y StockPosterior se capturan al crearlo y son inmutables;
// el registro solo desaparece por el borrado en cascada de su Repuesto.
type Movimiento struct {
	ID                 string
	RepuestoID         string
	Tipo               string
	Cantidad           int // siempre positivo; el tipo determina el signo del efecto
	StockAnterior      int
	StockPosterior     int
	CostoUnitario      *decimal.Decimal
	Observaciones      string
	Proveedor          string
	NumeroFactura      string
	NumeroOrdenTrabajo string
	FechaMovimiento    time.Time
	FechaCreacion      time.Time
	RegistradoPor      string // UserID
	AutorizadoPor      string // UserID opcional
}
