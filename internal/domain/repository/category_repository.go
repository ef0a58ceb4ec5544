package repository

import "github.com/jhoicas/Repuestos-api/internal/domain/entity"

// CategoriaRepository puerto de persistencia de categorías.
type CategoriaRepository interface {
	Create(c *entity.Categoria) error
	GetByID(id string) (*entity.Categoria, error)
	GetByNombre(nombre string) (*entity.Categoria, error)
	Update(c *entity.Categoria) error
	List(limit, offset int) ([]*entity.Categoria, error)
}
