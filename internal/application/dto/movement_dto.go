package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegistrarMovimientoRequest body para POST /api/inventario/movimientos.
type RegistrarMovimientoRequest struct {
	RepuestoID         string           `json:"repuesto_id"`
	Tipo               string           `json:"tipo"`
	Cantidad           int              `json:"cantidad"`
	CostoUnitario      *decimal.Decimal `json:"costo_unitario,omitempty"`
	Observaciones      string           `json:"observaciones,omitempty"`
	Proveedor          string           `json:"proveedor,omitempty"`
	NumeroFactura      string           `json:"numero_factura,omitempty"`
	NumeroOrdenTrabajo string           `json:"numero_orden_trabajo,omitempty"`
	AutorizadoPor      string           `json:"autorizado_por,omitempty"`
}

// MovimientoResponse movimiento registrado, con snapshots antes/después.
type MovimientoResponse struct {
	ID                 string           `json:"id"`
	RepuestoID         string           `json:"repuesto_id"`
	Tipo               string           `json:"tipo"`
	Cantidad           int              `json:"cantidad"`
	StockAnterior      int              `json:"stock_anterior"`
	StockPosterior     int              `json:"stock_posterior"`
	CostoUnitario      *decimal.Decimal `json:"costo_unitario,omitempty"`
	Observaciones      string           `json:"observaciones,omitempty"`
	Proveedor          string           `json:"proveedor,omitempty"`
	NumeroFactura      string           `json:"numero_factura,omitempty"`
	NumeroOrdenTrabajo string           `json:"numero_orden_trabajo,omitempty"`
	FechaMovimiento    time.Time        `json:"fecha_movimiento"`
	RegistradoPor      string           `json:"registrado_por"`
	AutorizadoPor      string           `json:"autorizado_por,omitempty"`
}

// MovimientoListResponse listado paginado, más reciente primero.
type MovimientoListResponse struct {
	Items []MovimientoResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
