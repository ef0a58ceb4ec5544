package entity

import "time"

// Estados de una alerta de stock bajo.
// Transiciones: PENDIENTE -> NOTIFICADA -> RESUELTA, PENDIENTE -> RESUELTA,
// cualquier estado no terminal -> IGNORADA. RESUELTA e IGNORADA son terminales.
const (
	AlertaPendiente  = "PENDIENTE"
	AlertaNotificada = "NOTIFICADA"
	AlertaResuelta   = "RESUELTA"
	AlertaIgnorada   = "IGNORADA"
)

// Alerta registra que el stock de un repuesto cayó a o bajo su mínimo de seguridad.
// StockActual y StockMinimo son el snapshot al momento de crearla.
type Alerta struct {
	ID                string
	RepuestoID        string
	StockActual       int
	StockMinimo       int
	Estado            string
	FechaCreacion     time.Time
	FechaNotificacion *time.Time
	FechaResolucion   *time.Time
	ResueltaPor       string // UserID, vacío hasta resolver
	Observaciones     string
}

// EsTerminal indica si la alerta ya no admite transiciones.
func (a *Alerta) EsTerminal() bool {
	return a.Estado == AlertaResuelta || a.Estado == AlertaIgnorada
}

// EstaAbierta indica si la alerta cuenta para la deduplicación diaria.
func (a *Alerta) EstaAbierta() bool {
	return a.Estado == AlertaPendiente || a.Estado == AlertaNotificada
}
