package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Repuesto representa un repuesto del catálogo del taller.
// StockActual lo escribe únicamente el motor de movimientos; el CRUD de catálogo
// no lo toca (ver RegisterMovementUseCase).
type Repuesto struct {
	ID                   string
	Codigo               string // código interno único
	Nombre               string
	Descripcion          string
	Marca                string
	Modelo               string
	CodigoBarras         string // opcional; vacío = sin código de barras (no participa en unicidad)
	CategoriaID          string
	StockActual          int
	StockMinimoSeguridad int
	CostoUnitario        *decimal.Decimal // nil = costo desconocido
	Activo               bool
	FechaCreacion        time.Time
	FechaActualizacion   time.Time
}

// NecesitaReposicion indica si el stock está en o por debajo del mínimo de seguridad.
func (r *Repuesto) NecesitaReposicion() bool {
	return r.StockActual <= r.StockMinimoSeguridad
}

// ValorStock devuelve StockActual * CostoUnitario (cero si el costo no está definido).
func (r *Repuesto) ValorStock() decimal.Decimal {
	if r.CostoUnitario == nil {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(r.StockActual)).Mul(*r.CostoUnitario)
}
