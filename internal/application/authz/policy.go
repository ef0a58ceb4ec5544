package authz

import "github.com/jhoicas/Repuestos-api/internal/domain/entity"

// Action acción autorizable sobre un recurso.
type Action string

// Acciones del sistema. Cada endpoint consulta Can con una de estas;
// no hay chequeos de rol ad-hoc repartidos por los handlers.
const (
	ActionGestionarCatalogo   Action = "catalogo.gestionar"
	ActionRegistrarMovimiento Action = "movimientos.registrar"
	ActionGestionarAlertas    Action = "alertas.gestionar"
	ActionEliminarRepuesto    Action = "repuestos.eliminar"
	ActionEliminarForzado     Action = "repuestos.eliminar_forzado"
	ActionGestionarUsuarios   Action = "usuarios.gestionar"
)

// allowed tabla central de política: qué roles pueden ejecutar cada acción.
var allowed = map[Action]map[string]bool{
	ActionGestionarCatalogo: {
		entity.RolSuperAdmin:        true,
		entity.RolSupervisorGeneral: true,
		entity.RolSupervisor:        true,
		entity.RolEncargadoBodega:   true,
	},
	ActionRegistrarMovimiento: {
		entity.RolSuperAdmin:        true,
		entity.RolSupervisorGeneral: true,
		entity.RolSupervisor:        true,
		entity.RolEncargadoBodega:   true,
		entity.RolTecnico:           true,
	},
	ActionGestionarAlertas: {
		entity.RolSuperAdmin:        true,
		entity.RolSupervisorGeneral: true,
		entity.RolSupervisor:        true,
		entity.RolEncargadoBodega:   true,
	},
	ActionEliminarRepuesto: {
		entity.RolSuperAdmin:        true,
		entity.RolSupervisorGeneral: true,
		entity.RolSupervisor:        true,
	},
	ActionEliminarForzado: {
		entity.RolSuperAdmin:        true,
		entity.RolSupervisorGeneral: true,
	},
	ActionGestionarUsuarios: {
		entity.RolSuperAdmin:        true,
		entity.RolSupervisorGeneral: true,
	},
}

// Can decide si el rol puede ejecutar la acción. Punto único de política RBAC.
func Can(rol string, action Action) bool {
	roles, ok := allowed[action]
	if !ok {
		return false
	}
	return roles[rol]
}

// EsPrivilegiado indica si el rol puede forzar eliminaciones con historial
// (la única distinción de privilegio que usa el motor de inventario).
func EsPrivilegiado(rol string) bool {
	return Can(rol, ActionEliminarForzado)
}
