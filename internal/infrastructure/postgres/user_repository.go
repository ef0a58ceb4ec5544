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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

const usuarioColumns = `id, username, email, password_hash, nombre, rol, telefono,
	activo, fecha_creacion, fecha_actualizacion`

// UsuarioRepo implementación de UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un usuario nuevo (username y email únicos).
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (` + usuarioColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Username, u.Email, u.PasswordHash, u.Nombre, u.Rol, u.Telefono,
		u.Activo, u.FechaCreacion, u.FechaActualizacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

func (r *UsuarioRepo) scanRow(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Nombre, &u.Rol, &u.Telefono,
		&u.Activo, &u.FechaCreacion, &u.FechaActualizacion,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	u, err := r.scanRow(r.q.QueryRow(context.Background(),
		`SELECT `+usuarioColumns+` FROM usuarios WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return u, nil
}

// FindByUsername obtiene un usuario por username (para login).
func (r *UsuarioRepo) FindByUsername(username string) (*entity.Usuario, error) {
	u, err := r.scanRow(r.q.QueryRow(context.Background(),
		`SELECT `+usuarioColumns+` FROM usuarios WHERE username = $1`, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by username: %w", err)
	}
	return u, nil
}

// Update persiste cambios de perfil, rol o estado.
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	query := `
		UPDATE usuarios SET email = $2, nombre = $3, rol = $4, telefono = $5,
			activo = $6, fecha_actualizacion = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Email, u.Nombre, u.Rol, u.Telefono, u.Activo, u.FechaActualizacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// List lista usuarios ordenados por username.
func (r *UsuarioRepo) List(limit, offset int) ([]*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios ORDER BY username ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		u, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}
