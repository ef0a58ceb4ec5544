package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrAlertaTerminal     = errors.New("la alerta ya está en un estado terminal")
	ErrStockNoModificable = errors.New("el stock solo se modifica vía movimientos")
)

// EliminacionBloqueadaError agrupa todos los motivos que impiden eliminar un repuesto,
// para que el cliente pueda mostrarlos todos de una vez.
type EliminacionBloqueadaError struct {
	Motivos []string
}

func (e *EliminacionBloqueadaError) Error() string {
	return "eliminación bloqueada: " + strings.Join(e.Motivos, "; ")
}
