package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/application/usecase"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	repuestos  map[string]*entity.Repuesto
	categorias map[string]*entity.Categoria
	movs       []*entity.Movimiento
	alertas    []*entity.Alerta
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		repuestos:  make(map[string]*entity.Repuesto),
		categorias: make(map[string]*entity.Categoria),
	}
}

type fakeRepuestoRepo struct{ st *fakeStore }

func (r *fakeRepuestoRepo) Create(rep *entity.Repuesto) error {
	cp := *rep
	r.st.repuestos[rep.ID] = &cp
	return nil
}

func (r *fakeRepuestoRepo) GetByID(id string) (*entity.Repuesto, error) {
	rep, ok := r.st.repuestos[id]
	if !ok {
		return nil, nil
	}
	cp := *rep
	return &cp, nil
}

func (r *fakeRepuestoRepo) GetByCodigo(codigo string) (*entity.Repuesto, error) {
	for _, rep := range r.st.repuestos {
		if rep.Codigo == codigo {
			cp := *rep
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRepuestoRepo) GetByCodigoBarras(codigoBarras string) (*entity.Repuesto, error) {
	for _, rep := range r.st.repuestos {
		if rep.CodigoBarras != "" && rep.CodigoBarras == codigoBarras {
			cp := *rep
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRepuestoRepo) GetForUpdate(id string) (*entity.Repuesto, error) {
	return r.GetByID(id)
}

func (r *fakeRepuestoRepo) Update(rep *entity.Repuesto) error {
	existing, ok := r.st.repuestos[rep.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stock := existing.StockActual
	cp := *rep
	cp.StockActual = stock // Update de catálogo jamás escribe stock
	r.st.repuestos[rep.ID] = &cp
	return nil
}

func (r *fakeRepuestoRepo) UpdateStock(id string, stockActual int, actualizado time.Time) error {
	rep, ok := r.st.repuestos[id]
	if !ok {
		return domain.ErrNotFound
	}
	rep.StockActual = stockActual
	rep.FechaActualizacion = actualizado
	return nil
}

func (r *fakeRepuestoRepo) List(filter repository.RepuestoFilter) ([]*entity.Repuesto, error) {
	var out []*entity.Repuesto
	for _, rep := range r.st.repuestos {
		if filter.NecesitaReposicion != nil && rep.NecesitaReposicion() != *filter.NecesitaReposicion {
			continue
		}
		if filter.Activo != nil && rep.Activo != *filter.Activo {
			continue
		}
		cp := *rep
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRepuestoRepo) Delete(id string) error {
	delete(r.st.repuestos, id)
	return nil
}

type fakeCategoriaRepo struct{ st *fakeStore }

func (r *fakeCategoriaRepo) Create(c *entity.Categoria) error {
	cp := *c
	r.st.categorias[c.ID] = &cp
	return nil
}

func (r *fakeCategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	c, ok := r.st.categorias[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoriaRepo) GetByNombre(nombre string) (*entity.Categoria, error) {
	for _, c := range r.st.categorias {
		if c.Nombre == nombre {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoriaRepo) Update(c *entity.Categoria) error {
	cp := *c
	r.st.categorias[c.ID] = &cp
	return nil
}

func (r *fakeCategoriaRepo) List(limit, offset int) ([]*entity.Categoria, error) {
	var out []*entity.Categoria
	for _, c := range r.st.categorias {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

type fakeMovimientoRepo struct{ st *fakeStore }

func (r *fakeMovimientoRepo) Create(m *entity.Movimiento) error {
	cp := *m
	r.st.movs = append(r.st.movs, &cp)
	return nil
}

func (r *fakeMovimientoRepo) GetByID(id string) (*entity.Movimiento, error) { return nil, nil }

func (r *fakeMovimientoRepo) ListByRepuesto(repuestoID string, limit, offset int) ([]*entity.Movimiento, error) {
	return nil, nil
}

func (r *fakeMovimientoRepo) List(limit, offset int) ([]*entity.Movimiento, error) {
	return nil, nil
}

func (r *fakeMovimientoRepo) ExisteDesde(repuestoID string, desde time.Time) (bool, error) {
	for _, m := range r.st.movs {
		if m.RepuestoID == repuestoID && !m.FechaMovimiento.Before(desde) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMovimientoRepo) DeleteByRepuesto(repuestoID string) error {
	var rest []*entity.Movimiento
	for _, m := range r.st.movs {
		if m.RepuestoID != repuestoID {
			rest = append(rest, m)
		}
	}
	r.st.movs = rest
	return nil
}

type fakeAlertaRepo struct{ st *fakeStore }

func (r *fakeAlertaRepo) Create(a *entity.Alerta) error {
	cp := *a
	r.st.alertas = append(r.st.alertas, &cp)
	return nil
}

func (r *fakeAlertaRepo) GetByID(id string) (*entity.Alerta, error) { return nil, nil }

func (r *fakeAlertaRepo) ExisteAbiertaEnFecha(repuestoID string, dia time.Time) (bool, error) {
	return false, nil
}

func (r *fakeAlertaRepo) ExisteAbierta(repuestoID string) (bool, error) {
	for _, a := range r.st.alertas {
		if a.RepuestoID == repuestoID && a.EstaAbierta() {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAlertaRepo) Update(a *entity.Alerta) error { return nil }

func (r *fakeAlertaRepo) ListByEstado(estado string, limit, offset int) ([]*entity.Alerta, error) {
	return nil, nil
}

func (r *fakeAlertaRepo) DeleteByRepuesto(repuestoID string) error {
	var rest []*entity.Alerta
	for _, a := range r.st.alertas {
		if a.RepuestoID != repuestoID {
			rest = append(rest, a)
		}
	}
	r.st.alertas = rest
	return nil
}

type fakeTxRunner struct{ st *fakeStore }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	repuestoRepo repository.RepuestoRepository,
	movRepo repository.MovimientoRepository,
	alertaRepo repository.AlertaRepository,
) error) error {
	return fn(&fakeRepuestoRepo{st: r.st}, &fakeMovimientoRepo{st: r.st}, &fakeAlertaRepo{st: r.st})
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	superAdminID = "00000000-0000-0000-0000-00000000000a"
	supervisorID = "00000000-0000-0000-0000-00000000000b"
	tecnicoID    = "00000000-0000-0000-0000-00000000000c"
)

func nuevoRepuestoUC(st *fakeStore) *usecase.RepuestoUseCase {
	return usecase.NewRepuestoUseCase(
		&fakeRepuestoRepo{st: st},
		&fakeCategoriaRepo{st: st},
		&fakeMovimientoRepo{st: st},
		&fakeAlertaRepo{st: st},
		&fakeTxRunner{st: st},
	)
}

func sembrarRepuesto(st *fakeStore, id string, stock int) *entity.Repuesto {
	now := time.Now()
	rep := &entity.Repuesto{
		ID:                   id,
		Codigo:               "COD-" + id,
		Nombre:               "Repuesto " + id,
		StockActual:          stock,
		StockMinimoSeguridad: 2,
		Activo:               true,
		FechaCreacion:        now,
		FechaActualizacion:   now,
	}
	st.repuestos[id] = rep
	return rep
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create / Update
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: el stock inicial siempre es cero; solo el libro de movimientos lo mueve.
func TestRepuestoCreate_StockSiempreCero(t *testing.T) {
	st := newFakeStore()
	uc := nuevoRepuestoUC(st)

	resp, err := uc.Create(dto.CreateRepuestoRequest{
		Codigo:               "FIL-001",
		Nombre:               "Filtro de aceite",
		StockMinimoSeguridad: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.StockActual, "el stock inicial siempre es cero")
	assert.True(t, resp.NecesitaReposicion, "0 <= mínimo implica necesita reposición")
	assert.True(t, resp.Activo, "los repuestos nacen activos")
}

// Caso 2: código interno duplicado se rechaza.
func TestRepuestoCreate_CodigoDuplicado(t *testing.T) {
	st := newFakeStore()
	uc := nuevoRepuestoUC(st)

	_, err := uc.Create(dto.CreateRepuestoRequest{Codigo: "FIL-001", Nombre: "Filtro"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateRepuestoRequest{Codigo: "FIL-001", Nombre: "Otro filtro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Caso 3: un código de barras en blanco se normaliza a "sin código" y no
// participa en la unicidad: dos repuestos sin código de barras conviven.
func TestRepuestoCreate_CodigoBarrasBlancoNoColisiona(t *testing.T) {
	st := newFakeStore()
	uc := nuevoRepuestoUC(st)

	r1, err := uc.Create(dto.CreateRepuestoRequest{Codigo: "A-1", Nombre: "Uno", CodigoBarras: "   "})
	require.NoError(t, err)
	assert.Empty(t, r1.CodigoBarras, "espacios en blanco se normalizan a vacío")

	_, err = uc.Create(dto.CreateRepuestoRequest{Codigo: "A-2", Nombre: "Dos", CodigoBarras: ""})
	assert.NoError(t, err, "dos repuestos sin código de barras no colisionan")

	_, err = uc.Create(dto.CreateRepuestoRequest{Codigo: "A-3", Nombre: "Tres", CodigoBarras: "750123"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateRepuestoRequest{Codigo: "A-4", Nombre: "Cuatro", CodigoBarras: "750123"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "un código de barras real sí es único")
}

// Caso 4: la categoría referenciada debe existir.
func TestRepuestoCreate_CategoriaInexistente(t *testing.T) {
	st := newFakeStore()
	uc := nuevoRepuestoUC(st)

	_, err := uc.Create(dto.CreateRepuestoRequest{
		Codigo:      "FIL-001",
		Nombre:      "Filtro",
		CategoriaID: "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso 5: Update modifica catálogo pero nunca el stock.
func TestRepuestoUpdate_NoTocaStock(t *testing.T) {
	st := newFakeStore()
	sembrarRepuesto(st, "r1", 7)
	uc := nuevoRepuestoUC(st)

	nombre := "Filtro premium"
	minimo := 10
	resp, err := uc.Update("r1", dto.UpdateRepuestoRequest{
		Nombre:               &nombre,
		StockMinimoSeguridad: &minimo,
	})
	require.NoError(t, err)
	assert.Equal(t, "Filtro premium", resp.Nombre)
	assert.Equal(t, 10, resp.StockMinimoSeguridad)
	assert.Equal(t, 7, st.repuestos["r1"].StockActual, "el stock no debe cambiar por un update de catálogo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la política de eliminación
// ──────────────────────────────────────────────────────────────────────────────

// Caso 6: la eliminación estándar bloqueada reporta TODOS los motivos a la vez.
func TestRepuestoDelete_BloqueadaReportaTodosLosMotivos(t *testing.T) {
	st := newFakeStore()
	sembrarRepuesto(st, "r1", 4) // stock distinto de cero
	st.alertas = append(st.alertas, &entity.Alerta{
		ID: "a1", RepuestoID: "r1", Estado: entity.AlertaPendiente, FechaCreacion: time.Now(),
	})
	st.movs = append(st.movs, &entity.Movimiento{
		ID: "m1", RepuestoID: "r1", Tipo: entity.MovimientoEntrada,
		Cantidad: 4, FechaMovimiento: time.Now().AddDate(0, 0, -3),
	})
	uc := nuevoRepuestoUC(st)

	err := uc.Delete(context.Background(), usecase.Actor{ID: supervisorID, Rol: entity.RolSupervisor}, "r1", false)
	var bloqueada *domain.EliminacionBloqueadaError
	require.ErrorAs(t, err, &bloqueada, "debe devolver el error de eliminación bloqueada")
	assert.Len(t, bloqueada.Motivos, 3, "las tres violaciones deben reportarse juntas")
	assert.Contains(t, st.repuestos, "r1", "el repuesto no debe eliminarse")
}

// Caso 7: con las condiciones cumplidas la eliminación estándar procede y
// arrastra el historial.
func TestRepuestoDelete_EstandarProcede(t *testing.T) {
	st := newFakeStore()
	sembrarRepuesto(st, "r1", 0)
	st.movs = append(st.movs, &entity.Movimiento{
		ID: "m1", RepuestoID: "r1", Tipo: entity.MovimientoSalidaUso,
		Cantidad: 1, FechaMovimiento: time.Now().AddDate(0, 0, -45),
	})
	st.alertas = append(st.alertas, &entity.Alerta{
		ID: "a1", RepuestoID: "r1", Estado: entity.AlertaResuelta, FechaCreacion: time.Now().AddDate(0, 0, -45),
	})
	uc := nuevoRepuestoUC(st)

	err := uc.Delete(context.Background(), usecase.Actor{ID: supervisorID, Rol: entity.RolSupervisor}, "r1", false)
	require.NoError(t, err, "stock cero, sin alertas abiertas y sin movimientos recientes")
	assert.NotContains(t, st.repuestos, "r1")
	assert.Empty(t, st.movs, "el historial se elimina con el repuesto")
	assert.Empty(t, st.alertas)
}

// Caso 8: force=true requiere rol privilegiado; con él, la cascada ignora la política.
func TestRepuestoDelete_ForzadaSoloPrivilegiados(t *testing.T) {
	st := newFakeStore()
	sembrarRepuesto(st, "r1", 9)
	st.movs = append(st.movs, &entity.Movimiento{
		ID: "m1", RepuestoID: "r1", Tipo: entity.MovimientoEntrada,
		Cantidad: 9, FechaMovimiento: time.Now(),
	})
	st.alertas = append(st.alertas, &entity.Alerta{
		ID: "a1", RepuestoID: "r1", Estado: entity.AlertaPendiente, FechaCreacion: time.Now(),
	})
	uc := nuevoRepuestoUC(st)

	err := uc.Delete(context.Background(), usecase.Actor{ID: supervisorID, Rol: entity.RolSupervisor}, "r1", true)
	assert.ErrorIs(t, err, domain.ErrForbidden, "SUPERVISOR no puede forzar la eliminación")
	assert.Contains(t, st.repuestos, "r1")

	err = uc.Delete(context.Background(), usecase.Actor{ID: superAdminID, Rol: entity.RolSuperAdmin}, "r1", true)
	require.NoError(t, err, "SUPER_ADMIN fuerza la eliminación con historial")
	assert.NotContains(t, st.repuestos, "r1")
	assert.Empty(t, st.movs)
	assert.Empty(t, st.alertas)
}

// Caso 9: TECNICO no puede eliminar, ni siquiera sin force.
func TestRepuestoDelete_TecnicoSinPermiso(t *testing.T) {
	st := newFakeStore()
	sembrarRepuesto(st, "r1", 0)
	uc := nuevoRepuestoUC(st)

	err := uc.Delete(context.Background(), usecase.Actor{ID: tecnicoID, Rol: entity.RolTecnico}, "r1", false)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Contains(t, st.repuestos, "r1")
}
