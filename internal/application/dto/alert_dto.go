package dto

import "time"

// ResolverAlertaRequest body para POST /api/alertas/:id/resolver (e ignorar).
type ResolverAlertaRequest struct {
	Observaciones string `json:"observaciones,omitempty"`
}

// AlertaResponse alerta de stock bajo con su snapshot de creación.
type AlertaResponse struct {
	ID                string     `json:"id"`
	RepuestoID        string     `json:"repuesto_id"`
	StockActual       int        `json:"stock_actual"`
	StockMinimo       int        `json:"stock_minimo"`
	Estado            string     `json:"estado"`
	FechaCreacion     time.Time  `json:"fecha_creacion"`
	FechaNotificacion *time.Time `json:"fecha_notificacion,omitempty"`
	FechaResolucion   *time.Time `json:"fecha_resolucion,omitempty"`
	ResueltaPor       string     `json:"resuelta_por,omitempty"`
	Observaciones     string     `json:"observaciones,omitempty"`
}

// AlertaListResponse listado paginado.
type AlertaListResponse struct {
	Items []AlertaResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
