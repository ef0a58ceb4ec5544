package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Repuestos-api/internal/application/authz"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
)

// La tabla de política es el único punto de decisión RBAC; estos tests fijan
// el contrato por rol y acción.
func TestCan_TablaDePolitica(t *testing.T) {
	casos := []struct {
		rol      string
		action   authz.Action
		esperado bool
	}{
		// Catálogo: todos menos TECNICO
		{entity.RolSuperAdmin, authz.ActionGestionarCatalogo, true},
		{entity.RolEncargadoBodega, authz.ActionGestionarCatalogo, true},
		{entity.RolTecnico, authz.ActionGestionarCatalogo, false},

		// Movimientos: todos los roles, incluido TECNICO
		{entity.RolTecnico, authz.ActionRegistrarMovimiento, true},
		{entity.RolEncargadoBodega, authz.ActionRegistrarMovimiento, true},

		// Alertas: TECNICO no gestiona
		{entity.RolSupervisor, authz.ActionGestionarAlertas, true},
		{entity.RolTecnico, authz.ActionGestionarAlertas, false},

		// Eliminación estándar: desde SUPERVISOR hacia arriba
		{entity.RolSupervisor, authz.ActionEliminarRepuesto, true},
		{entity.RolEncargadoBodega, authz.ActionEliminarRepuesto, false},
		{entity.RolTecnico, authz.ActionEliminarRepuesto, false},

		// Eliminación forzada: solo la cúpula
		{entity.RolSuperAdmin, authz.ActionEliminarForzado, true},
		{entity.RolSupervisorGeneral, authz.ActionEliminarForzado, true},
		{entity.RolSupervisor, authz.ActionEliminarForzado, false},

		// Usuarios
		{entity.RolSuperAdmin, authz.ActionGestionarUsuarios, true},
		{entity.RolSupervisor, authz.ActionGestionarUsuarios, false},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, authz.Can(c.rol, c.action),
			"rol %s, acción %s", c.rol, c.action)
	}
}

func TestCan_RolOAccionDesconocidos(t *testing.T) {
	assert.False(t, authz.Can("GERENTE", authz.ActionGestionarCatalogo),
		"un rol fuera del conjunto no tiene permisos")
	assert.False(t, authz.Can(entity.RolSuperAdmin, authz.Action("reportes.exportar")),
		"una acción no registrada en la tabla se niega")
	assert.False(t, authz.Can("", authz.ActionRegistrarMovimiento))
}

func TestEsPrivilegiado(t *testing.T) {
	assert.True(t, authz.EsPrivilegiado(entity.RolSuperAdmin))
	assert.True(t, authz.EsPrivilegiado(entity.RolSupervisorGeneral))
	assert.False(t, authz.EsPrivilegiado(entity.RolSupervisor))
	assert.False(t, authz.EsPrivilegiado(entity.RolEncargadoBodega))
	assert.False(t, authz.EsPrivilegiado(entity.RolTecnico))
}
