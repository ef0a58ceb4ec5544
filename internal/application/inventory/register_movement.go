package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Repuestos-api/internal/domain/inventory"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de inventario de forma transaccional:
// bloquea la fila del repuesto (SELECT FOR UPDATE), captura stock anterior/posterior,
// persiste movimiento + stock y evalúa alertas, todo con Commit/Rollback únicos.
type RegisterMovementUseCase struct {
	txRunner  TxRunner
	evaluator *AlertEvaluator
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, evaluator *AlertEvaluator) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, evaluator: evaluator}
}

// MovimientoInput entrada para registrar un movimiento.
type MovimientoInput struct {
	RepuestoID         string
	Tipo               string
	Cantidad           int
	CostoUnitario      *decimal.Decimal
	Observaciones      string
	Proveedor          string
	NumeroFactura      string
	NumeroOrdenTrabajo string
	RegistradoPor      string // UserID del actor autenticado
	AutorizadoPor      string // UserID opcional de quien autoriza
}

// RegistrarMovimiento valida la entrada y ejecuta la secuencia leer-calcular-escribir
// serializada por repuesto:
//
//  1. SELECT FOR UPDATE del repuesto (stock_anterior).
//  2. stock_posterior según la tabla de tipos (servicio de dominio).
//  3. INSERT del movimiento con ambos snapshots y UPDATE de stock_actual.
//  4. Evaluación de alerta de stock bajo con el estado post-movimiento.
//
// Todo dentro de una sola transacción: si cualquier paso falla no queda ni el
// movimiento ni el cambio de stock ni la alerta. Movimientos concurrentes sobre
// repuestos distintos no se bloquean entre sí (el lock es por fila).
func (uc *RegisterMovementUseCase) RegistrarMovimiento(ctx context.Context, input MovimientoInput) (*entity.Movimiento, error) {
	if input.RepuestoID == "" || input.RegistradoPor == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.TipoMovimientoValido(input.Tipo) {
		return nil, domain.ErrInvalidInput
	}
	if input.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.CostoUnitario != nil && input.CostoUnitario.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var created *entity.Movimiento

	err := uc.txRunner.Run(ctx, func(
		repuestoRepo repository.RepuestoRepository,
		movRepo repository.MovimientoRepository,
		alertaRepo repository.AlertaRepository,
	) error {
		// Bloquea la fila del repuesto: serializa leer-calcular-escribir por repuesto
		rep, err := repuestoRepo.GetForUpdate(input.RepuestoID)
		if err != nil {
			return err
		}
		if rep == nil {
			return domain.ErrNotFound
		}

		stockAnterior := rep.StockActual
		stockPosterior, err := domaininv.CalcularStockPosterior(input.Tipo, stockAnterior, input.Cantidad)
		if err != nil {
			return err
		}

		mov := &entity.Movimiento{
			ID:                 uuid.New().String(),
			RepuestoID:         rep.ID,
			Tipo:               input.Tipo,
			Cantidad:           input.Cantidad,
			StockAnterior:      stockAnterior,
			StockPosterior:     stockPosterior,
			CostoUnitario:      input.CostoUnitario,
			Observaciones:      input.Observaciones,
			Proveedor:          input.Proveedor,
			NumeroFactura:      input.NumeroFactura,
			NumeroOrdenTrabajo: input.NumeroOrdenTrabajo,
			FechaMovimiento:    now,
			FechaCreacion:      now,
			RegistradoPor:      input.RegistradoPor,
			AutorizadoPor:      input.AutorizadoPor,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		// COMPRA_EXTERNA no toca stock: a lo sumo un update de repuesto por llamada
		if stockPosterior != stockAnterior {
			if err := repuestoRepo.UpdateStock(rep.ID, stockPosterior, now); err != nil {
				return err
			}
			rep.StockActual = stockPosterior
		}

		if _, err := uc.evaluator.Evaluar(rep, alertaRepo, now); err != nil {
			return err
		}

		created = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
