package repository

import (
	"time"

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
)

// RepuestoFilter filtros para el listado de repuestos.
// NecesitaReposicion filtra por el flag derivado stock_actual <= stock_minimo_seguridad
// (no es una columna almacenada; se evalúa en la consulta).
type RepuestoFilter struct {
	NecesitaReposicion *bool
	Activo             *bool
	CategoriaID        string
	Limit              int
	Offset             int
}

// RepuestoRepository puerto de persistencia del catálogo de repuestos.
// UpdateStock es de uso exclusivo del motor de movimientos.
type RepuestoRepository interface {
	Create(r *entity.Repuesto) error
	GetByID(id string) (*entity.Repuesto, error)
	GetByCodigo(codigo string) (*entity.Repuesto, error)
	GetByCodigoBarras(codigoBarras string) (*entity.Repuesto, error)
	// GetForUpdate obtiene el repuesto bloqueando su fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción (vía TxRunner).
	GetForUpdate(id string) (*entity.Repuesto, error)
	// Update actualiza atributos de catálogo; nunca toca stock_actual.
	Update(r *entity.Repuesto) error
	// UpdateStock actualiza solo stock_actual (lo invoca el libro de movimientos).
	UpdateStock(id string, stockActual int, actualizado time.Time) error
	List(filter RepuestoFilter) ([]*entity.Repuesto, error)
	Delete(id string) error
}
