package inventory

import (
	"context"

	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para el libro de movimientos: movimiento,
// stock y alerta se confirman juntos o se revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		repuestoRepo repository.RepuestoRepository,
		movRepo repository.MovimientoRepository,
		alertaRepo repository.AlertaRepository,
	) error) error
}
