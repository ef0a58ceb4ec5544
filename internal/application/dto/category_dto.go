package dto

// CreateCategoriaRequest body para POST /api/categorias.
type CreateCategoriaRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
}

// UpdateCategoriaRequest body para PUT /api/categorias/:id.
type UpdateCategoriaRequest struct {
	Nombre      *string `json:"nombre,omitempty"`
	Descripcion *string `json:"descripcion,omitempty"`
	Activa      *bool   `json:"activa,omitempty"`
}

// CategoriaResponse categoría del catálogo.
type CategoriaResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Activa      bool   `json:"activa"`
}
