package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRepuestoRequest body para POST /api/repuestos.
// El stock inicial siempre es cero: el stock solo se mueve vía movimientos.
type CreateRepuestoRequest struct {
	Codigo               string           `json:"codigo"`
	Nombre               string           `json:"nombre"`
	Descripcion          string           `json:"descripcion,omitempty"`
	Marca                string           `json:"marca,omitempty"`
	Modelo               string           `json:"modelo,omitempty"`
	CodigoBarras         string           `json:"codigo_barras,omitempty"`
	CategoriaID          string           `json:"categoria_id,omitempty"`
	StockMinimoSeguridad int              `json:"stock_minimo_seguridad"`
	CostoUnitario        *decimal.Decimal `json:"costo_unitario,omitempty"`
}

// UpdateRepuestoRequest body para PUT /api/repuestos/:id (campos opcionales).
type UpdateRepuestoRequest struct {
	Nombre               *string          `json:"nombre,omitempty"`
	Descripcion          *string          `json:"descripcion,omitempty"`
	Marca                *string          `json:"marca,omitempty"`
	Modelo               *string          `json:"modelo,omitempty"`
	CodigoBarras         *string          `json:"codigo_barras,omitempty"`
	CategoriaID          *string          `json:"categoria_id,omitempty"`
	StockMinimoSeguridad *int             `json:"stock_minimo_seguridad,omitempty"`
	CostoUnitario        *decimal.Decimal `json:"costo_unitario,omitempty"`
	Activo               *bool            `json:"activo,omitempty"`
}

// RepuestoResponse respuesta con campos derivados incluidos.
type RepuestoResponse struct {
	ID                   string           `json:"id"`
	Codigo               string           `json:"codigo"`
	Nombre               string           `json:"nombre"`
	Descripcion          string           `json:"descripcion,omitempty"`
	Marca                string           `json:"marca,omitempty"`
	Modelo               string           `json:"modelo,omitempty"`
	CodigoBarras         string           `json:"codigo_barras,omitempty"`
	CategoriaID          string           `json:"categoria_id,omitempty"`
	StockActual          int              `json:"stock_actual"`
	StockMinimoSeguridad int              `json:"stock_minimo_seguridad"`
	CostoUnitario        *decimal.Decimal `json:"costo_unitario,omitempty"`
	NecesitaReposicion   bool             `json:"necesita_reposicion"`
	ValorStock           decimal.Decimal  `json:"valor_stock"`
	Activo               bool             `json:"activo"`
	FechaCreacion        time.Time        `json:"fecha_creacion"`
	FechaActualizacion   time.Time        `json:"fecha_actualizacion"`
}

// RepuestoListResponse listado paginado.
type RepuestoListResponse struct {
	Items []RepuestoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
