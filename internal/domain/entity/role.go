package entity

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Role rol de un perfil de usuario. Conjunto cerrado de tres valores.
type Role string

// Roles válidos para Profile.
const (
	RoleVendedor      Role = "vendedor"
	RoleGerente       Role = "gerente"
	RoleAdministrador Role = "administrador"
)

// roleRank orden de capacidades: vendedor < gerente < administrador.
// Los helpers de permisos y las listas de la política se derivan de aquí.
var roleRank = map[Role]int{
	RoleVendedor:      1,
	RoleGerente:       2,
	RoleAdministrador: 3,
}

// Roles devuelve los roles válidos ordenados de menor a mayor privilegio.
func Roles() []Role {
	return []Role{RoleVendedor, RoleGerente, RoleAdministrador}
}

// ParseRole normaliza y valida un rol recibido como texto.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("rol inválido: %q", s)
	}
	return r, nil
}

// Valid indica si el rol pertenece al conjunto cerrado.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// Rank devuelve el nivel del rol (0 si no es válido).
func (r Role) Rank() int {
	return roleRank[r]
}

// AtLeast indica si el rol tiene al menos las capacidades de min.
func (r Role) AtLeast(min Role) bool {
	return r.Valid() && min.Valid() && r.Rank() >= min.Rank()
}

// Display nombre legible del rol, ej: "Gerente".
func (r Role) Display() string {
	// cases.Caser no es seguro entre goroutines: uno por llamada.
	return cases.Title(language.Spanish).String(string(r))
}

func (r Role) String() string { return string(r) }
