package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Repuestos-api/internal/application/inventory"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
)

const supervisorID = "33333333-3333-3333-3333-333333333333"

func alertaPendiente(id string, creada time.Time) *entity.Alerta {
	return &entity.Alerta{
		ID:            id,
		RepuestoID:    repuestoFiltroAceiteID,
		StockActual:   2,
		StockMinimo:   5,
		Estado:        entity.AlertaPendiente,
		FechaCreacion: creada,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del ciclo de vida de alertas
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: PENDIENTE -> RESUELTA estampa fecha_resolucion y resuelta_por.
func TestAlertLifecycle_ResolverPendiente(t *testing.T) {
	st := newMemState()
	st.alertas = append(st.alertas, alertaPendiente("a1", time.Now()))
	uc := inventory.NewAlertLifecycleUseCase(&memAlertaRepo{st: st})

	alerta, err := uc.Resolver("a1", supervisorID, "pedido al proveedor en camino")
	require.NoError(t, err)

	assert.Equal(t, entity.AlertaResuelta, alerta.Estado)
	require.NotNil(t, alerta.FechaResolucion, "resolver debe estampar la fecha")
	assert.Equal(t, supervisorID, alerta.ResueltaPor)
	assert.Equal(t, "pedido al proveedor en camino", alerta.Observaciones)
}

// Caso 2: resolver una alerta ya terminal se rechaza sin tocar la resolución original.
func TestAlertLifecycle_ResolverTerminalSeRechaza(t *testing.T) {
	st := newMemState()
	resuelta := alertaPendiente("a1", time.Now())
	fechaOriginal := time.Now().Add(-time.Hour)
	resuelta.Estado = entity.AlertaResuelta
	resuelta.FechaResolucion = &fechaOriginal
	resuelta.ResueltaPor = supervisorID
	st.alertas = append(st.alertas, resuelta)
	uc := inventory.NewAlertLifecycleUseCase(&memAlertaRepo{st: st})

	_, err := uc.Resolver("a1", usuarioBodegaID, "intento repetido")
	assert.ErrorIs(t, err, domain.ErrAlertaTerminal)

	guardada := st.alertas[0]
	assert.Equal(t, supervisorID, guardada.ResueltaPor, "la resolución original no debe cambiar")
	assert.True(t, guardada.FechaResolucion.Equal(fechaOriginal),
		"la fecha de resolución original no debe cambiar")
}

// Caso 3: PENDIENTE -> NOTIFICADA solo desde PENDIENTE.
func TestAlertLifecycle_MarcarNotificada(t *testing.T) {
	st := newMemState()
	st.alertas = append(st.alertas, alertaPendiente("a1", time.Now()))
	uc := inventory.NewAlertLifecycleUseCase(&memAlertaRepo{st: st})

	alerta, err := uc.MarcarNotificada("a1")
	require.NoError(t, err)
	assert.Equal(t, entity.AlertaNotificada, alerta.Estado)
	require.NotNil(t, alerta.FechaNotificacion)

	_, err = uc.MarcarNotificada("a1")
	assert.ErrorIs(t, err, domain.ErrConflict, "notificar dos veces debe rechazarse")
}

// Caso 4: cualquier estado no terminal puede ignorarse.
func TestAlertLifecycle_IgnorarNotificada(t *testing.T) {
	st := newMemState()
	notificada := alertaPendiente("a1", time.Now())
	notificada.Estado = entity.AlertaNotificada
	st.alertas = append(st.alertas, notificada)
	uc := inventory.NewAlertLifecycleUseCase(&memAlertaRepo{st: st})

	alerta, err := uc.Ignorar("a1", supervisorID, "repuesto descontinuado")
	require.NoError(t, err)
	assert.Equal(t, entity.AlertaIgnorada, alerta.Estado)

	_, err = uc.Ignorar("a1", supervisorID, "")
	assert.ErrorIs(t, err, domain.ErrAlertaTerminal)
}

// Caso 5: alerta inexistente y filtros inválidos.
func TestAlertLifecycle_NotFoundYEstadoInvalido(t *testing.T) {
	st := newMemState()
	uc := inventory.NewAlertLifecycleUseCase(&memAlertaRepo{st: st})

	_, err := uc.Resolver("no-existe", supervisorID, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.ListarPorEstado("ARCHIVADA", 20, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "estado fuera del conjunto cerrado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del evaluador de alertas
// ──────────────────────────────────────────────────────────────────────────────

// Caso 6: con stock sobre el mínimo no se abre alerta.
func TestAlertEvaluator_StockSobreMinimoNoAbre(t *testing.T) {
	st := newMemState()
	evaluator := inventory.NewAlertEvaluator()
	rep := repuestoConStock(10, 5)

	alerta, err := evaluator.Evaluar(rep, &memAlertaRepo{st: st}, time.Now())
	require.NoError(t, err)
	assert.Nil(t, alerta)
	assert.Empty(t, st.alertas)
}

// Caso 7: la deduplicación es por día calendario: una alerta abierta de ayer
// no bloquea la de hoy.
func TestAlertEvaluator_AlertaDeAyerNoBloqueaLaDeHoy(t *testing.T) {
	st := newMemState()
	ayer := time.Now().AddDate(0, 0, -1)
	st.alertas = append(st.alertas, alertaPendiente("a1", ayer))
	evaluator := inventory.NewAlertEvaluator()
	rep := repuestoConStock(2, 5)

	alerta, err := evaluator.Evaluar(rep, &memAlertaRepo{st: st}, time.Now())
	require.NoError(t, err)
	require.NotNil(t, alerta, "un nuevo día calendario abre una nueva alerta")
	assert.Len(t, st.alertas, 2)
}

// duplicateAlertaRepo fuerza ErrDuplicate en Create, emulando la carrera en que
// otra transacción del mismo día insertó primero.
type duplicateAlertaRepo struct{ memAlertaRepo }

func (r *duplicateAlertaRepo) Create(a *entity.Alerta) error {
	return domain.ErrDuplicate
}

// Caso 8: el duplicado en la carrera de creación se trata como salto silencioso.
func TestAlertEvaluator_CarreraDeDuplicadoNoEsError(t *testing.T) {
	st := newMemState()
	evaluator := inventory.NewAlertEvaluator()
	rep := repuestoConStock(2, 5)

	alerta, err := evaluator.Evaluar(rep, &duplicateAlertaRepo{memAlertaRepo{st: st}}, time.Now())
	assert.NoError(t, err, "el duplicado por carrera no debe propagarse como error")
	assert.Nil(t, alerta)
}
