package usecase

import (
	"time"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// UsuarioUseCase administración de usuarios (lista, actualización de rol y estado).
// El registro/login vive en application/auth.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// GetByID obtiene un usuario por ID (sin hash).
func (uc *UsuarioUseCase) GetByID(id string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUserResponse(u), nil
}

// List lista usuarios con paginación.
func (uc *UsuarioUseCase) List(limit, offset int) (*dto.UsuarioListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *ToUserResponse(u))
	}
	return &dto.UsuarioListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza nombre, email, teléfono, rol o estado de un usuario.
func (uc *UsuarioUseCase) Update(id string, in dto.UpdateUsuarioRequest) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Nombre != nil {
		u.Nombre = *in.Nombre
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Telefono != nil {
		u.Telefono = *in.Telefono
	}
	if in.Rol != nil {
		if !entity.RolValido(*in.Rol) {
			return nil, domain.ErrInvalidInput
		}
		u.Rol = *in.Rol
	}
	if in.Activo != nil {
		u.Activo = *in.Activo
	}
	u.FechaActualizacion = time.Now()
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	return ToUserResponse(u), nil
}

// ToUserResponse mapea la entidad sin exponer el hash de contraseña.
func ToUserResponse(u *entity.Usuario) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:                 u.ID,
		Username:           u.Username,
		Email:              u.Email,
		Nombre:             u.Nombre,
		Rol:                u.Rol,
		Telefono:           u.Telefono,
		Activo:             u.Activo,
		FechaCreacion:      u.FechaCreacion,
		FechaActualizacion: u.FechaActualizacion,
	}
}
