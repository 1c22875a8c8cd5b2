package access

import (
	"strings"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// RoleSet conjunto inmutable de roles, un bit por nivel de entity.Role.
// Se itera siempre en orden de privilegio, así los mensajes son estables.
type RoleSet uint8

// NewRoleSet construye el conjunto ignorando roles inválidos.
func NewRoleSet(roles ...entity.Role) RoleSet {
	var s RoleSet
	for _, r := range roles {
		if r.Valid() {
			s |= 1 << uint(r.Rank())
		}
	}
	return s
}

// RolesAtLeast conjunto de todos los roles con al menos las capacidades de min.
func RolesAtLeast(min entity.Role) RoleSet {
	var s RoleSet
	for _, r := range entity.Roles() {
		if r.AtLeast(min) {
			s |= NewRoleSet(r)
		}
	}
	return s
}

// Contains indica si r pertenece al conjunto.
func (s RoleSet) Contains(r entity.Role) bool {
	return r.Valid() && s&(1<<uint(r.Rank())) != 0
}

// Empty indica si el conjunto no tiene roles.
func (s RoleSet) Empty() bool { return s == 0 }

// Roles devuelve los roles del conjunto de menor a mayor privilegio.
func (s RoleSet) Roles() []entity.Role {
	out := make([]entity.Role, 0, 3)
	for _, r := range entity.Roles() {
		if s.Contains(r) {
			out = append(out, r)
		}
	}
	return out
}

// Display nombres legibles separados por coma, ej: "Gerente, Administrador".
func (s RoleSet) Display() string {
	roles := s.Roles()
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Display())
	}
	return strings.Join(names, ", ")
}
