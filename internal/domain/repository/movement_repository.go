package repository

import (
	"time"

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
)

// MovimientoRepository puerto de persistencia del libro de movimientos (append-only).
type MovimientoRepository interface {
	Create(m *entity.Movimiento) error
	GetByID(id string) (*entity.Movimiento, error)
	// ListByRepuesto lista movimientos de un repuesto, más reciente primero.
	ListByRepuesto(repuestoID string, limit, offset int) ([]*entity.Movimiento, error)
	List(limit, offset int) ([]*entity.Movimiento, error)
	// ExisteDesde indica si el repuesto tiene algún movimiento desde la fecha dada
	// (política de eliminación: sin movimientos en los últimos 30 días).
	ExisteDesde(repuestoID string, desde time.Time) (bool, error)
	// DeleteByRepuesto elimina el historial completo (solo cascada privilegiada).
	DeleteByRepuesto(repuestoID string) error
}
