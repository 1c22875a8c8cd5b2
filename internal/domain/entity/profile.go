package entity

import "time"

// Profile extiende 1:1 a un User con rol, departamento y datos de contratación.
// Se elimina en cascada junto con su User.
type Profile struct {
	ID         string
	UserID     string
	Role       Role
	Phone      *string
	Department *string
	HireDate   time.Time // se fija al crear, no se modifica después
	Active     bool
}

// IsVendor indica si el perfil tiene rol vendedor.
func (p *Profile) IsVendor() bool { return p.Role == RoleVendedor }

// IsManager indica si el perfil tiene rol gerente.
func (p *Profile) IsManager() bool { return p.Role == RoleGerente }

// IsAdministrator indica si el perfil tiene rol administrador.
func (p *Profile) IsAdministrator() bool { return p.Role == RoleAdministrador }

// CanRead todos los roles pueden leer.
func (p *Profile) CanRead() bool { return true }

// CanWrite gerente y administrador pueden crear y editar.
func (p *Profile) CanWrite() bool { return p.Role.AtLeast(RoleGerente) }

// CanDelete solo administrador puede eliminar.
func (p *Profile) CanDelete() bool { return p.Role.AtLeast(RoleAdministrador) }

// Staff une un User con su Profile para los listados de administración.
type Staff struct {
	User    User
	Profile Profile
}
