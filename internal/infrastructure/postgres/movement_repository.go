package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

const movimientoColumns = `id, repuesto_id, tipo, cantidad, stock_anterior, stock_posterior,
	costo_unitario, observaciones, proveedor, numero_factura, numero_orden_trabajo,
	fecha_movimiento, fecha_creacion, registrado_por, autorizado_por`

// MovimientoRepo implementación de MovimientoRepository sobre PostgreSQL (usable con pool o tx).
// La tabla es append-only: no hay Update; Delete solo por cascada del repuesto.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create persiste un movimiento con sus snapshots stock_anterior/stock_posterior.
func (r *MovimientoRepo) Create(m *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos (` + movimientoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.RepuestoID, m.Tipo, m.Cantidad, m.StockAnterior, m.StockPosterior,
		m.CostoUnitario, m.Observaciones, m.Proveedor, m.NumeroFactura, m.NumeroOrdenTrabajo,
		m.FechaMovimiento, m.FechaCreacion, m.RegistradoPor, nullIfEmpty(m.AutorizadoPor),
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

func (r *MovimientoRepo) scanRow(row pgx.Row) (*entity.Movimiento, error) {
	var m entity.Movimiento
	var autorizadoPor *string
	err := row.Scan(
		&m.ID, &m.RepuestoID, &m.Tipo, &m.Cantidad, &m.StockAnterior, &m.StockPosterior,
		&m.CostoUnitario, &m.Observaciones, &m.Proveedor, &m.NumeroFactura, &m.NumeroOrdenTrabajo,
		&m.FechaMovimiento, &m.FechaCreacion, &m.RegistradoPor, &autorizadoPor,
	)
	if err != nil {
		return nil, err
	}
	m.AutorizadoPor = orEmpty(autorizadoPor)
	return &m, nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovimientoRepo) GetByID(id string) (*entity.Movimiento, error) {
	m, err := r.scanRow(r.q.QueryRow(context.Background(),
		`SELECT `+movimientoColumns+` FROM movimientos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return m, nil
}

// ListByRepuesto lista movimientos de un repuesto, más reciente primero
// (índice en repuesto_id, fecha_movimiento DESC).
func (r *MovimientoRepo) ListByRepuesto(repuestoID string, limit, offset int) ([]*entity.Movimiento, error) {
	query := `
		SELECT ` + movimientoColumns + `
		FROM movimientos WHERE repuesto_id = $1
		ORDER BY fecha_movimiento DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, repuestoID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimientos by repuesto: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

// List lista todos los movimientos, más reciente primero.
func (r *MovimientoRepo) List(limit, offset int) ([]*entity.Movimiento, error) {
	query := `
		SELECT ` + movimientoColumns + `
		FROM movimientos ORDER BY fecha_movimiento DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *MovimientoRepo) collect(rows pgx.Rows) ([]*entity.Movimiento, error) {
	var list []*entity.Movimiento
	for rows.Next() {
		m, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ExisteDesde indica si el repuesto tiene movimientos desde la fecha dada.
func (r *MovimientoRepo) ExisteDesde(repuestoID string, desde time.Time) (bool, error) {
	var existe bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM movimientos WHERE repuesto_id = $1 AND fecha_movimiento >= $2)`,
		repuestoID, desde,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe movimiento desde: %w", err)
	}
	return existe, nil
}

// DeleteByRepuesto elimina el historial del repuesto (cascada privilegiada).
func (r *MovimientoRepo) DeleteByRepuesto(repuestoID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM movimientos WHERE repuesto_id = $1`, repuestoID)
	if err != nil {
		return fmt.Errorf("delete movimientos by repuesto: %w", err)
	}
	return nil
}
