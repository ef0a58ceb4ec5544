package repository

import (
	"time"

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
)

// AlertaRepository puerto de persistencia de alertas de stock bajo.
type AlertaRepository interface {
	Create(a *entity.Alerta) error
	GetByID(id string) (*entity.Alerta, error)
	// ExisteAbiertaEnFecha indica si hay una alerta PENDIENTE o NOTIFICADA para
	// el repuesto cuya fecha de creación cae en el día calendario dado
	// (ventana de deduplicación).
	ExisteAbiertaEnFecha(repuestoID string, dia time.Time) (bool, error)
	// ExisteAbierta indica si hay alguna alerta en estado no terminal para el repuesto.
	ExisteAbierta(repuestoID string) (bool, error)
	Update(a *entity.Alerta) error
	ListByEstado(estado string, limit, offset int) ([]*entity.Alerta, error)
	// DeleteByRepuesto elimina las alertas del repuesto (solo cascada privilegiada).
	DeleteByRepuesto(repuestoID string) error
}
