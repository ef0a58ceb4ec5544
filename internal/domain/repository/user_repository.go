package repository

import "github.com/jhoicas/Repuestos-api/internal/domain/entity"

// UsuarioRepository puerto de persistencia de usuarios.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByUsername(username string) (*entity.Usuario, error)
	Update(u *entity.Usuario) error
	List(limit, offset int) ([]*entity.Usuario, error)
}
