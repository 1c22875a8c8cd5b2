package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ProfileFilter filtros del listado de perfiles (administración).
type ProfileFilter struct {
	Role       *entity.Role
	Active     *bool
	Department string
	Search     string // username, email o departamento
	Limit      int
	Offset     int
}

// ProfileRepository define el puerto de persistencia para Profile.
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	// FindByUserID devuelve (nil, nil) si el usuario no tiene perfil.
	FindByUserID(ctx context.Context, userID string) (*entity.Profile, error)
	// Update modifica rol, teléfono, departamento y estado. HireDate no se toca.
	Update(ctx context.Context, profile *entity.Profile) error
	List(ctx context.Context, filter ProfileFilter) ([]*entity.Staff, error)
}
