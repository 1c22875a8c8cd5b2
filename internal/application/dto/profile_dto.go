package dto

import "time"

// ProfileResponse salida de un perfil con sus permisos derivados del rol.
type ProfileResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Role        string    `json:"role"`
	RoleDisplay string    `json:"role_display"`
	Phone       *string   `json:"phone"`
	Department  *string   `json:"department"`
	HireDate    time.Time `json:"hire_date"`
	Active      bool      `json:"active"`
	CanRead     bool      `json:"can_read"`
	CanWrite    bool      `json:"can_write"`
	CanDelete   bool      `json:"can_delete"`
}

// StaffResponse usuario con su perfil (administración).
type StaffResponse struct {
	User    UserResponse    `json:"user"`
	Profile ProfileResponse `json:"profile"`
}

// StaffListResponse lista paginada de perfiles.
type StaffListResponse struct {
	Items []StaffResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// CreateStaffRequest alta de usuario con perfil.
type CreateStaffRequest struct {
	Username   string  `json:"username" validate:"required,min=1,max=150"`
	Password   string  `json:"password" validate:"required,min=8"`
	Email      string  `json:"email" validate:"omitempty,email,max=254"`
	FirstName  string  `json:"first_name" validate:"max=150"`
	LastName   string  `json:"last_name" validate:"max=150"`
	Role       string  `json:"role" validate:"omitempty,oneof=vendedor gerente administrador"`
	Phone      *string `json:"phone" validate:"omitempty,max=15"`
	Department *string `json:"department" validate:"omitempty,max=100"`
}

// UpdateProfileRequest cambios parciales de un perfil. HireDate no es editable.
type UpdateProfileRequest struct {
	Role       *string `json:"role" validate:"omitempty,oneof=vendedor gerente administrador"`
	Phone      *string `json:"phone" validate:"omitempty,max=15"`
	Department *string `json:"department" validate:"omitempty,max=100"`
	Active     *bool   `json:"active"`
}

// ProfileListQuery filtros del listado de perfiles.
type ProfileListQuery struct {
	PageRequest
	Role       string `query:"role" validate:"omitempty,oneof=vendedor gerente administrador"`
	Active     string `query:"active" validate:"omitempty,oneof=true false"`
	Department string `query:"department"`
	Search     string `query:"q"`
}
