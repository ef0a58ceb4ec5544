package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Repuestos-api/internal/application/authz"
	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/application/inventory"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// diasSinMovimientosParaEliminar ventana de la política de eliminación estándar.
const diasSinMovimientosParaEliminar = 30

// Actor identidad mínima que necesitan las decisiones de política.
type Actor struct {
	ID  string
	Rol string
}

// RepuestoUseCase casos de uso CRUD del catálogo. StockActual no se toca aquí:
// lo escribe únicamente el libro de movimientos.
type RepuestoUseCase struct {
	repuestoRepo  repository.RepuestoRepository
	categoriaRepo repository.CategoriaRepository
	movRepo       repository.MovimientoRepository
	alertaRepo    repository.AlertaRepository
	txRunner      inventory.TxRunner
}

// NewRepuestoUseCase construye el caso de uso.
func NewRepuestoUseCase(
	repuestoRepo repository.RepuestoRepository,
	categoriaRepo repository.CategoriaRepository,
	movRepo repository.MovimientoRepository,
	alertaRepo repository.AlertaRepository,
	txRunner inventory.TxRunner,
) *RepuestoUseCase {
	return &RepuestoUseCase{
		repuestoRepo:  repuestoRepo,
		categoriaRepo: categoriaRepo,
		movRepo:       movRepo,
		alertaRepo:    alertaRepo,
		txRunner:      txRunner,
	}
}

// NormalizarCodigoBarras trata un código en blanco o solo espacios como
// "sin código de barras" para que no participe en la unicidad.
func NormalizarCodigoBarras(codigo string) string {
	return strings.TrimSpace(codigo)
}

// Create crea un repuesto con stock cero. Codigo y CodigoBarras (si viene) únicos.
func (uc *RepuestoUseCase) Create(in dto.CreateRepuestoRequest) (*dto.RepuestoResponse, error) {
	if strings.TrimSpace(in.Codigo) == "" || strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.StockMinimoSeguridad < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.CostoUnitario != nil && in.CostoUnitario.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	existing, _ := uc.repuestoRepo.GetByCodigo(in.Codigo)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	barras := NormalizarCodigoBarras(in.CodigoBarras)
	if barras != "" {
		conBarras, _ := uc.repuestoRepo.GetByCodigoBarras(barras)
		if conBarras != nil {
			return nil, domain.ErrDuplicate
		}
	}

	if in.CategoriaID != "" {
		cat, err := uc.categoriaRepo.GetByID(in.CategoriaID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	rep := &entity.Repuesto{
		ID:                   uuid.New().String(),
		Codigo:               in.Codigo,
		Nombre:               in.Nombre,
		Descripcion:          in.Descripcion,
		Marca:                in.Marca,
		Modelo:               in.Modelo,
		CodigoBarras:         barras,
		CategoriaID:          in.CategoriaID,
		StockActual:          0,
		StockMinimoSeguridad: in.StockMinimoSeguridad,
		CostoUnitario:        in.CostoUnitario,
		Activo:               true,
		FechaCreacion:        now,
		FechaActualizacion:   now,
	}
	if err := uc.repuestoRepo.Create(rep); err != nil {
		return nil, err
	}
	return toRepuestoResponse(rep), nil
}

// GetByID obtiene un repuesto por ID.
func (uc *RepuestoUseCase) GetByID(id string) (*dto.RepuestoResponse, error) {
	rep, err := uc.repuestoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, domain.ErrNotFound
	}
	return toRepuestoResponse(rep), nil
}

// Update actualiza atributos de catálogo. Nunca modifica stock_actual.
func (uc *RepuestoUseCase) Update(id string, in dto.UpdateRepuestoRequest) (*dto.RepuestoResponse, error) {
	rep, err := uc.repuestoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		if strings.TrimSpace(*in.Nombre) == "" {
			return nil, domain.ErrInvalidInput
		}
		rep.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		rep.Descripcion = *in.Descripcion
	}
	if in.Marca != nil {
		rep.Marca = *in.Marca
	}
	if in.Modelo != nil {
		rep.Modelo = *in.Modelo
	}
	if in.CodigoBarras != nil {
		barras := NormalizarCodigoBarras(*in.CodigoBarras)
		if barras != "" && barras != rep.CodigoBarras {
			conBarras, _ := uc.repuestoRepo.GetByCodigoBarras(barras)
			if conBarras != nil && conBarras.ID != rep.ID {
				return nil, domain.ErrDuplicate
			}
		}
		rep.CodigoBarras = barras
	}
	if in.CategoriaID != nil {
		if *in.CategoriaID != "" {
			cat, err := uc.categoriaRepo.GetByID(*in.CategoriaID)
			if err != nil {
				return nil, err
			}
			if cat == nil {
				return nil, domain.ErrNotFound
			}
		}
		rep.CategoriaID = *in.CategoriaID
	}
	if in.StockMinimoSeguridad != nil {
		if *in.StockMinimoSeguridad < 0 {
			return nil, domain.ErrInvalidInput
		}
		rep.StockMinimoSeguridad = *in.StockMinimoSeguridad
	}
	if in.CostoUnitario != nil {
		if in.CostoUnitario.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		rep.CostoUnitario = in.CostoUnitario
	}
	if in.Activo != nil {
		rep.Activo = *in.Activo
	}
	rep.FechaActualizacion = time.Now()
	if err := uc.repuestoRepo.Update(rep); err != nil {
		return nil, err
	}
	return toRepuestoResponse(rep), nil
}

// List lista repuestos; necesita_reposicion se evalúa en la consulta, no es columna.
func (uc *RepuestoUseCase) List(filter repository.RepuestoFilter) (*dto.RepuestoListResponse, error) {
	list, err := uc.repuestoRepo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RepuestoResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRepuestoResponse(r))
	}
	return &dto.RepuestoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// Delete aplica la política de eliminación:
//
//   - Actor privilegiado con force=true: elimina el repuesto junto con todo su
//     historial de movimientos y alertas, en una sola transacción.
//   - Actor estándar: solo si stock == 0, sin alertas abiertas y sin movimientos
//     en los últimos 30 días. Las violaciones se devuelven todas juntas como
//     EliminacionBloqueadaError para que el cliente las muestre de una vez.
func (uc *RepuestoUseCase) Delete(ctx context.Context, actor Actor, id string, force bool) error {
	rep, err := uc.repuestoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if rep == nil {
		return domain.ErrNotFound
	}

	if force {
		if !authz.Can(actor.Rol, authz.ActionEliminarForzado) {
			return domain.ErrForbidden
		}
		return uc.eliminarConHistorial(ctx, id)
	}

	if !authz.Can(actor.Rol, authz.ActionEliminarRepuesto) {
		return domain.ErrForbidden
	}

	var motivos []string
	if rep.StockActual != 0 {
		motivos = append(motivos, "el stock actual es distinto de cero")
	}
	abierta, err := uc.alertaRepo.ExisteAbierta(id)
	if err != nil {
		return err
	}
	if abierta {
		motivos = append(motivos, "existen alertas sin resolver")
	}
	desde := time.Now().AddDate(0, 0, -diasSinMovimientosParaEliminar)
	reciente, err := uc.movRepo.ExisteDesde(id, desde)
	if err != nil {
		return err
	}
	if reciente {
		motivos = append(motivos, "hay movimientos registrados en los últimos 30 días")
	}
	if len(motivos) > 0 {
		return &domain.EliminacionBloqueadaError{Motivos: motivos}
	}
	return uc.eliminarConHistorial(ctx, id)
}

// eliminarConHistorial borra alertas, movimientos y el repuesto en una transacción.
func (uc *RepuestoUseCase) eliminarConHistorial(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		repuestoRepo repository.RepuestoRepository,
		movRepo repository.MovimientoRepository,
		alertaRepo repository.AlertaRepository,
	) error {
		if err := alertaRepo.DeleteByRepuesto(id); err != nil {
			return err
		}
		if err := movRepo.DeleteByRepuesto(id); err != nil {
			return err
		}
		return repuestoRepo.Delete(id)
	})
}

func toRepuestoResponse(r *entity.Repuesto) *dto.RepuestoResponse {
	if r == nil {
		return nil
	}
	return &dto.RepuestoResponse{
		ID:                   r.ID,
		Codigo:               r.Codigo,
		Nombre:               r.Nombre,
		Descripcion:          r.Descripcion,
		Marca:                r.Marca,
		Modelo:               r.Modelo,
		CodigoBarras:         r.CodigoBarras,
		CategoriaID:          r.CategoriaID,
		StockActual:          r.StockActual,
		StockMinimoSeguridad: r.StockMinimoSeguridad,
		CostoUnitario:        r.CostoUnitario,
		NecesitaReposicion:   r.NecesitaReposicion(),
		ValorStock:           r.ValorStock(),
		Activo:               r.Activo,
		FechaCreacion:        r.FechaCreacion,
		FechaActualizacion:   r.FechaActualizacion,
	}
}
