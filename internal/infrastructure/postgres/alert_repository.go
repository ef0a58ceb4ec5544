package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

var _ repository.AlertaRepository = (*AlertaRepo)(nil)

const alertaColumns = `id, repuesto_id, stock_actual, stock_minimo, estado,
	fecha_creacion, fecha_notificacion, fecha_resolucion, resuelta_por, observaciones`

// AlertaRepo implementación de AlertaRepository sobre PostgreSQL (usable con pool o tx).
type AlertaRepo struct {
	q Querier
}

// NewAlertaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlertaRepository(q Querier) *AlertaRepo {
	return &AlertaRepo{q: q}
}

// Create persiste una alerta. El índice parcial único sobre alertas abiertas
// por (repuesto_id, fecha) convierte la carrera de deduplicación en 23505,
// que se reporta como ErrDuplicate para que el evaluador lo trate como salto.
func (r *AlertaRepo) Create(a *entity.Alerta) error {
	query := `
		INSERT INTO alertas (` + alertaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.RepuestoID, a.StockActual, a.StockMinimo, a.Estado,
		a.FechaCreacion, a.FechaNotificacion, a.FechaResolucion,
		nullIfEmpty(a.ResueltaPor), a.Observaciones,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert alerta: %w", err)
	}
	return nil
}

func (r *AlertaRepo) scanRow(row pgx.Row) (*entity.Alerta, error) {
	var a entity.Alerta
	var resueltaPor *string
	err := row.Scan(
		&a.ID, &a.RepuestoID, &a.StockActual, &a.StockMinimo, &a.Estado,
		&a.FechaCreacion, &a.FechaNotificacion, &a.FechaResolucion, &resueltaPor, &a.Observaciones,
	)
	if err != nil {
		return nil, err
	}
	a.ResueltaPor = orEmpty(resueltaPor)
	return &a, nil
}

// GetByID obtiene una alerta por ID.
func (r *AlertaRepo) GetByID(id string) (*entity.Alerta, error) {
	a, err := r.scanRow(r.q.QueryRow(context.Background(),
		`SELECT `+alertaColumns+` FROM alertas WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alerta: %w", err)
	}
	return a, nil
}

// ExisteAbiertaEnFecha indica si hay una alerta PENDIENTE/NOTIFICADA del repuesto
// creada el día calendario dado (ventana de deduplicación).
func (r *AlertaRepo) ExisteAbiertaEnFecha(repuestoID string, dia time.Time) (bool, error) {
	var existe bool
	err := r.q.QueryRow(context.Background(), `
		SELECT EXISTS(
			SELECT 1 FROM alertas
			WHERE repuesto_id = $1
			  AND estado IN ($2, $3)
			  AND fecha_creacion::date = $4::date)`,
		repuestoID, entity.AlertaPendiente, entity.AlertaNotificada, dia,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe alerta abierta en fecha: %w", err)
	}
	return existe, nil
}

// ExisteAbierta indica si el repuesto tiene alguna alerta en estado no terminal.
func (r *AlertaRepo) ExisteAbierta(repuestoID string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(context.Background(), `
		SELECT EXISTS(
			SELECT 1 FROM alertas
			WHERE repuesto_id = $1 AND estado IN ($2, $3))`,
		repuestoID, entity.AlertaPendiente, entity.AlertaNotificada,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe alerta abierta: %w", err)
	}
	return existe, nil
}

// Update persiste una transición de estado.
func (r *AlertaRepo) Update(a *entity.Alerta) error {
	query := `
		UPDATE alertas SET estado = $2, fecha_notificacion = $3, fecha_resolucion = $4,
			resuelta_por = $5, observaciones = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Estado, a.FechaNotificacion, a.FechaResolucion,
		nullIfEmpty(a.ResueltaPor), a.Observaciones,
	)
	if err != nil {
		return fmt.Errorf("update alerta: %w", err)
	}
	return nil
}

// ListByEstado lista alertas por estado ("" = todas), más reciente primero.
func (r *AlertaRepo) ListByEstado(estado string, limit, offset int) ([]*entity.Alerta, error) {
	query := `SELECT ` + alertaColumns + ` FROM alertas`
	args := []any{}
	pos := 1
	if estado != "" {
		query += fmt.Sprintf(" WHERE estado = $%d", pos)
		args = append(args, estado)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY fecha_creacion DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list alertas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Alerta
	for rows.Next() {
		a, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan alerta: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// DeleteByRepuesto elimina las alertas del repuesto (cascada privilegiada).
func (r *AlertaRepo) DeleteByRepuesto(repuestoID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM alertas WHERE repuesto_id = $1`, repuestoID)
	if err != nil {
		return fmt.Errorf("delete alertas by repuesto: %w", err)
	}
	return nil
}
