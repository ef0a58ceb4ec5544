package usecase

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// CategoriaUseCase casos de uso CRUD para categorías.
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// Create crea una categoría con nombre único.
func (uc *CategoriaUseCase) Create(in dto.CreateCategoriaRequest) (*dto.CategoriaResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByNombre(in.Nombre)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	cat := &entity.Categoria{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Activa:      true,
	}
	if err := uc.repo.Create(cat); err != nil {
		return nil, err
	}
	return toCategoriaResponse(cat), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoriaUseCase) GetByID(id string) (*dto.CategoriaResponse, error) {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoriaResponse(cat), nil
}

// Update actualiza una categoría.
func (uc *CategoriaUseCase) Update(id string, in dto.UpdateCategoriaRequest) (*dto.CategoriaResponse, error) {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		if strings.TrimSpace(*in.Nombre) == "" {
			return nil, domain.ErrInvalidInput
		}
		if *in.Nombre != cat.Nombre {
			existing, _ := uc.repo.GetByNombre(*in.Nombre)
			if existing != nil && existing.ID != cat.ID {
				return nil, domain.ErrDuplicate
			}
		}
		cat.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		cat.Descripcion = *in.Descripcion
	}
	if in.Activa != nil {
		cat.Activa = *in.Activa
	}
	if err := uc.repo.Update(cat); err != nil {
		return nil, err
	}
	return toCategoriaResponse(cat), nil
}

// List lista categorías con paginación.
func (uc *CategoriaUseCase) List(limit, offset int) ([]dto.CategoriaResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoriaResponse(c))
	}
	return items, nil
}

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoriaResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		Activa:      c.Activa,
	}
}
