package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación de CategoriaRepository sobre PostgreSQL.
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador.
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Create persiste una categoría (nombre único).
func (r *CategoriaRepo) Create(c *entity.Categoria) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO categorias (id, nombre, descripcion, activa) VALUES ($1, $2, $3, $4)`,
		c.ID, c.Nombre, c.Descripcion, c.Activa,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

func (r *CategoriaRepo) scanRow(row pgx.Row) (*entity.Categoria, error) {
	var c entity.Categoria
	if err := row.Scan(&c.ID, &c.Nombre, &c.Descripcion, &c.Activa); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	c, err := r.scanRow(r.q.QueryRow(context.Background(),
		`SELECT id, nombre, descripcion, activa FROM categorias WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return c, nil
}

// GetByNombre obtiene una categoría por nombre exacto.
func (r *CategoriaRepo) GetByNombre(nombre string) (*entity.Categoria, error) {
	c, err := r.scanRow(r.q.QueryRow(context.Background(),
		`SELECT id, nombre, descripcion, activa FROM categorias WHERE nombre = $1`, nombre))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria by nombre: %w", err)
	}
	return c, nil
}

// Update persiste cambios de una categoría.
func (r *CategoriaRepo) Update(c *entity.Categoria) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE categorias SET nombre = $2, descripcion = $3, activa = $4 WHERE id = $1`,
		c.ID, c.Nombre, c.Descripcion, c.Activa,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update categoria: %w", err)
	}
	return nil
}

// List lista categorías ordenadas por nombre.
func (r *CategoriaRepo) List(limit, offset int) ([]*entity.Categoria, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre, descripcion, activa FROM categorias ORDER BY nombre ASC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categoria
	for rows.Next() {
		c, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
