package inventory

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// AlertEvaluator abre alertas de stock bajo tras cada movimiento. El libro de
// movimientos lo invoca de forma síncrona dentro de su misma transacción, de modo
// que una alerta nunca queda sin su movimiento ni al revés.
type AlertEvaluator struct{}

// NewAlertEvaluator construye el evaluador.
func NewAlertEvaluator() *AlertEvaluator {
	return &AlertEvaluator{}
}

// Evaluar crea una alerta PENDIENTE si el repuesto necesita reposición y no hay
// ya una alerta abierta (PENDIENTE/NOTIFICADA) creada el mismo día calendario.
// El salto por deduplicación es una decisión de idempotencia, no un error:
// devuelve (nil, nil).
func (e *AlertEvaluator) Evaluar(rep *entity.Repuesto, alertaRepo repository.AlertaRepository, ahora time.Time) (*entity.Alerta, error) {
	if !rep.NecesitaReposicion() {
		return nil, nil
	}

	existe, err := alertaRepo.ExisteAbiertaEnFecha(rep.ID, ahora)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, nil
	}

	alerta := &entity.Alerta{
		ID:            uuid.New().String(),
		RepuestoID:    rep.ID,
		StockActual:   rep.StockActual,
		StockMinimo:   rep.StockMinimoSeguridad,
		Estado:        entity.AlertaPendiente,
		FechaCreacion: ahora,
	}
	if err := alertaRepo.Create(alerta); err != nil {
		// Carrera entre dos transacciones del mismo día: la otra ya creó la alerta
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, nil
		}
		return nil, err
	}
	return alerta, nil
}
