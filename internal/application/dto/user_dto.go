package dto

import "time"

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
	Nombre   string `json:"nombre,omitempty"`
	Rol      string `json:"rol,omitempty"` // vacío = TECNICO
	Telefono string `json:"telefono,omitempty"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse usuario sin hash de contraseña.
type UserResponse struct {
	ID                 string    `json:"id"`
	Username           string    `json:"username"`
	Email              string    `json:"email,omitempty"`
	Nombre             string    `json:"nombre,omitempty"`
	Rol                string    `json:"rol"`
	Telefono           string    `json:"telefono,omitempty"`
	Activo             bool      `json:"activo"`
	FechaCreacion      time.Time `json:"fecha_creacion"`
	FechaActualizacion time.Time `json:"fecha_actualizacion"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateUsuarioRequest body para PUT /api/usuarios/:id.
type UpdateUsuarioRequest struct {
	Nombre   *string `json:"nombre,omitempty"`
	Email    *string `json:"email,omitempty"`
	Rol      *string `json:"rol,omitempty"`
	Telefono *string `json:"telefono,omitempty"`
	Activo   *bool   `json:"activo,omitempty"`
}

// UsuarioListResponse listado de usuarios.
type UsuarioListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
