package entity

// Categoria agrupa repuestos del catálogo.
type Categoria struct {
	ID          string
	Nombre      string // único
	Descripcion string
	Activa      bool
}
