package inventory

import (
	"time"

	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// AlertLifecycleUseCase maneja las transiciones de estado de una alerta:
//
//	PENDIENTE -> NOTIFICADA -> RESUELTA
//	PENDIENTE -> RESUELTA
//	no terminal -> IGNORADA
//
// RESUELTA e IGNORADA son terminales; no hay transiciones automáticas
// aparte de la creación en PENDIENTE.
type AlertLifecycleUseCase struct {
	alertaRepo repository.AlertaRepository
}

// NewAlertLifecycleUseCase construye el caso de uso.
func NewAlertLifecycleUseCase(alertaRepo repository.AlertaRepository) *AlertLifecycleUseCase {
	return &AlertLifecycleUseCase{alertaRepo: alertaRepo}
}

// Resolver transiciona la alerta a RESUELTA, estampando fecha_resolucion y
// resuelta_por. Rechaza alertas ya terminales sin tocar fecha_resolucion.
func (uc *AlertLifecycleUseCase) Resolver(alertaID, actorID, observaciones string) (*entity.Alerta, error) {
	if alertaID == "" || actorID == "" {
		return nil, domain.ErrInvalidInput
	}
	alerta, err := uc.alertaRepo.GetByID(alertaID)
	if err != nil {
		return nil, err
	}
	if alerta == nil {
		return nil, domain.ErrNotFound
	}
	if alerta.EsTerminal() {
		return nil, domain.ErrAlertaTerminal
	}
	now := time.Now()
	alerta.Estado = entity.AlertaResuelta
	alerta.FechaResolucion = &now
	alerta.ResueltaPor = actorID
	if observaciones != "" {
		alerta.Observaciones = observaciones
	}
	if err := uc.alertaRepo.Update(alerta); err != nil {
		return nil, err
	}
	return alerta, nil
}

// MarcarNotificada transiciona PENDIENTE -> NOTIFICADA (canal de aviso enviado).
func (uc *AlertLifecycleUseCase) MarcarNotificada(alertaID string) (*entity.Alerta, error) {
	alerta, err := uc.alertaRepo.GetByID(alertaID)
	if err != nil {
		return nil, err
	}
	if alerta == nil {
		return nil, domain.ErrNotFound
	}
	if alerta.Estado != entity.AlertaPendiente {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	alerta.Estado = entity.AlertaNotificada
	alerta.FechaNotificacion = &now
	if err := uc.alertaRepo.Update(alerta); err != nil {
		return nil, err
	}
	return alerta, nil
}

// Ignorar transiciona cualquier estado no terminal a IGNORADA.
func (uc *AlertLifecycleUseCase) Ignorar(alertaID, actorID, observaciones string) (*entity.Alerta, error) {
	alerta, err := uc.alertaRepo.GetByID(alertaID)
	if err != nil {
		return nil, err
	}
	if alerta == nil {
		return nil, domain.ErrNotFound
	}
	if alerta.EsTerminal() {
		return nil, domain.ErrAlertaTerminal
	}
	alerta.Estado = entity.AlertaIgnorada
	alerta.ResueltaPor = actorID
	if observaciones != "" {
		alerta.Observaciones = observaciones
	}
	if err := uc.alertaRepo.Update(alerta); err != nil {
		return nil, err
	}
	return alerta, nil
}

// ListarPorEstado devuelve alertas filtradas por estado ("" = todas).
func (uc *AlertLifecycleUseCase) ListarPorEstado(estado string, limit, offset int) ([]*entity.Alerta, error) {
	if estado != "" {
		switch estado {
		case entity.AlertaPendiente, entity.AlertaNotificada, entity.AlertaResuelta, entity.AlertaIgnorada:
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	return uc.alertaRepo.ListByEstado(estado, limit, offset)
}
