package entity

import "time"

// Roles válidos para Usuario.
const (
	RolSuperAdmin        = "SUPER_ADMIN"
	RolSupervisorGeneral = "SUPERVISOR_GENERAL"
	RolSupervisor        = "SUPERVISOR"
	RolEncargadoBodega   = "ENCARGADO_BODEGA"
	RolTecnico           = "TECNICO"
)

// RolValido verifica que el rol pertenezca al conjunto definido.
func RolValido(rol string) bool {
	switch rol {
	case RolSuperAdmin, RolSupervisorGeneral, RolSupervisor, RolEncargadoBodega, RolTecnico:
		return true
	}
	return false
}

// Usuario representa un usuario del sistema.
type Usuario struct {
	ID                 string
	Username           string
	Email              string
	PasswordHash       string // bcrypt hash, nunca plano en dominio después de persistir
	Nombre             string
	Rol                string
	Telefono           string
	Activo             bool
	FechaCreacion      time.Time
	FechaActualizacion time.Time
}
