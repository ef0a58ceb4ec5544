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

var _ repository.RepuestoRepository = (*RepuestoRepo)(nil)

const repuestoColumns = `id, codigo, nombre, descripcion, marca, modelo, codigo_barras, categoria_id,
	stock_actual, stock_minimo_seguridad, costo_unitario, activo, fecha_creacion, fecha_actualizacion`

// RepuestoRepo implementación de RepuestoRepository sobre PostgreSQL (usable con pool o tx).
type RepuestoRepo struct {
	q Querier
}

// NewRepuestoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRepuestoRepository(q Querier) *RepuestoRepo {
	return &RepuestoRepo{q: q}
}

// Create persiste un nuevo repuesto. CodigoBarras vacío se guarda como NULL
// para que la unicidad no choque entre repuestos sin código de barras.
func (r *RepuestoRepo) Create(rep *entity.Repuesto) error {
	query := `
		INSERT INTO repuestos (` + repuestoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		rep.ID, rep.Codigo, rep.Nombre, rep.Descripcion, rep.Marca, rep.Modelo,
		nullIfEmpty(rep.CodigoBarras), nullIfEmpty(rep.CategoriaID),
		rep.StockActual, rep.StockMinimoSeguridad, rep.CostoUnitario,
		rep.Activo, rep.FechaCreacion, rep.FechaActualizacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert repuesto: %w", err)
	}
	return nil
}

func (r *RepuestoRepo) scanRow(row pgx.Row) (*entity.Repuesto, error) {
	var rep entity.Repuesto
	var codigoBarras, categoriaID *string
	err := row.Scan(
		&rep.ID, &rep.Codigo, &rep.Nombre, &rep.Descripcion, &rep.Marca, &rep.Modelo,
		&codigoBarras, &categoriaID,
		&rep.StockActual, &rep.StockMinimoSeguridad, &rep.CostoUnitario,
		&rep.Activo, &rep.FechaCreacion, &rep.FechaActualizacion,
	)
	if err != nil {
		return nil, err
	}
	rep.CodigoBarras = orEmpty(codigoBarras)
	rep.CategoriaID = orEmpty(categoriaID)
	return &rep, nil
}

// GetByID obtiene un repuesto por ID.
func (r *RepuestoRepo) GetByID(id string) (*entity.Repuesto, error) {
	rep, err := r.scanRow(r.q.QueryRow(context.Background(),
		`SELECT `+repuestoColumns+` FROM repuestos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get repuesto: %w", err)
	}
	return rep, nil
}

// GetByCodigo obtiene un repuesto por código interno.
func (r *RepuestoRepo) GetByCodigo(codigo string) (*entity.Repuesto, error) {
	rep, err := r.scanRow(r.q.QueryRow(context.Background(),
		`SELECT `+repuestoColumns+` FROM repuestos WHERE codigo = $1`, codigo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get repuesto by codigo: %w", err)
	}
	return rep, nil
}

// GetByCodigoBarras obtiene un repuesto por código de barras (activos e inactivos).
func (r *RepuestoRepo) GetByCodigoBarras(codigoBarras string) (*entity.Repuesto, error) {
	rep, err := r.scanRow(r.q.QueryRow(context.Background(),
		`SELECT `+repuestoColumns+` FROM repuestos WHERE codigo_barras = $1`, codigoBarras))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get repuesto by codigo_barras: %w", err)
	}
	return rep, nil
}

// GetForUpdate obtiene el repuesto y bloquea su fila (SELECT FOR UPDATE).
// Serializa la secuencia leer-calcular-escribir del stock por repuesto.
func (r *RepuestoRepo) GetForUpdate(id string) (*entity.Repuesto, error) {
	rep, err := r.scanRow(r.q.QueryRow(context.Background(),
		`SELECT `+repuestoColumns+` FROM repuestos WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get repuesto for update: %w", err)
	}
	return rep, nil
}

// Update actualiza atributos de catálogo. No toca stock_actual (solo el libro de movimientos).
func (r *RepuestoRepo) Update(rep *entity.Repuesto) error {
	query := `
		UPDATE repuestos SET nombre = $2, descripcion = $3, marca = $4, modelo = $5,
			codigo_barras = $6, categoria_id = $7, stock_minimo_seguridad = $8,
			costo_unitario = $9, activo = $10, fecha_actualizacion = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		rep.ID, rep.Nombre, rep.Descripcion, rep.Marca, rep.Modelo,
		nullIfEmpty(rep.CodigoBarras), nullIfEmpty(rep.CategoriaID),
		rep.StockMinimoSeguridad, rep.CostoUnitario, rep.Activo, rep.FechaActualizacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update repuesto: %w", err)
	}
	return nil
}

// UpdateStock actualiza solo stock_actual (lo invoca el libro de movimientos dentro de su tx).
func (r *RepuestoRepo) UpdateStock(id string, stockActual int, actualizado time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE repuestos SET stock_actual = $2, fecha_actualizacion = $3 WHERE id = $1`,
		id, stockActual, actualizado,
	)
	if err != nil {
		return fmt.Errorf("update stock repuesto: %w", err)
	}
	return nil
}

// List lista repuestos con filtros. necesita_reposicion se evalúa sobre las
// columnas (stock_actual <= stock_minimo_seguridad), no es un campo almacenado.
func (r *RepuestoRepo) List(filter repository.RepuestoFilter) ([]*entity.Repuesto, error) {
	query := `SELECT ` + repuestoColumns + ` FROM repuestos WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.Activo != nil {
		query += fmt.Sprintf(" AND activo = $%d", pos)
		args = append(args, *filter.Activo)
		pos++
	}
	if filter.CategoriaID != "" {
		query += fmt.Sprintf(" AND categoria_id = $%d", pos)
		args = append(args, filter.CategoriaID)
		pos++
	}
	if filter.NecesitaReposicion != nil {
		if *filter.NecesitaReposicion {
			query += " AND stock_actual <= stock_minimo_seguridad"
		} else {
			query += " AND stock_actual > stock_minimo_seguridad"
		}
	}
	query += fmt.Sprintf(" ORDER BY nombre ASC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list repuestos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Repuesto
	for rows.Next() {
		rep, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan repuesto: %w", err)
		}
		list = append(list, rep)
	}
	return list, rows.Err()
}

// Delete elimina un repuesto por ID (la política de eliminación vive en el caso de uso).
func (r *RepuestoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM repuestos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete repuesto: %w", err)
	}
	return nil
}
