package inventory

import (
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// MovementQueryUseCase consultas de solo lectura sobre el libro de movimientos.
type MovementQueryUseCase struct {
	movRepo      repository.MovimientoRepository
	repuestoRepo repository.RepuestoRepository
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(movRepo repository.MovimientoRepository, repuestoRepo repository.RepuestoRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movRepo: movRepo, repuestoRepo: repuestoRepo}
}

// Listar lista movimientos de todo el inventario, más reciente primero.
func (uc *MovementQueryUseCase) Listar(limit, offset int) ([]*entity.Movimiento, error) {
	return uc.movRepo.List(limit, offset)
}

// ListarPorRepuesto lista el historial de un repuesto, más reciente primero.
// El repuesto debe existir; un historial vacío es una lista vacía, no un 404.
func (uc *MovementQueryUseCase) ListarPorRepuesto(repuestoID string, limit, offset int) ([]*entity.Movimiento, error) {
	rep, err := uc.repuestoRepo.GetByID(repuestoID)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, domain.ErrNotFound
	}
	return uc.movRepo.ListByRepuesto(repuestoID, limit, offset)
}

// GetByID obtiene un movimiento puntual.
func (uc *MovementQueryUseCase) GetByID(id string) (*entity.Movimiento, error) {
	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	return mov, nil
}
