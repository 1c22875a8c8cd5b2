package access

import (
	"fmt"
	"sort"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// Operation identificador de una operación protegida por la política.
type Operation string

// Operaciones protegidas por rol. Las que solo exigen sesión (listar productos,
// registrar ventas, etc.) no aparecen aquí.
const (
	OpProductCreate Operation = "producto.crear"
	OpProductUpdate Operation = "producto.editar"
	OpProductDelete Operation = "producto.eliminar"

	OpCategoryList   Operation = "categoria.listar"
	OpCategoryCreate Operation = "categoria.crear"
	OpCategoryUpdate Operation = "categoria.editar"
	OpCategoryDelete Operation = "categoria.eliminar"

	OpSupplierList   Operation = "proveedor.listar"
	OpSupplierCreate Operation = "proveedor.crear"
	OpSupplierUpdate Operation = "proveedor.editar"
	OpSupplierDelete Operation = "proveedor.eliminar"

	OpCustomerUpdate Operation = "cliente.editar"
	OpCustomerDelete Operation = "cliente.eliminar"

	OpSaleDelete Operation = "venta.eliminar"

	OpProfileList   Operation = "perfil.listar"
	OpProfileCreate Operation = "perfil.crear"
	OpProfileUpdate Operation = "perfil.editar"
	OpUserDelete    Operation = "usuario.eliminar"
)

// Policy asocia cada operación protegida con los roles que pueden ejecutarla.
type Policy map[Operation]RoleSet

// DefaultPolicy política de la tienda: escritura para gerente o superior,
// eliminación y administración de perfiles solo para administrador.
func DefaultPolicy() Policy {
	writers := RolesAtLeast(entity.RoleGerente)
	admins := RolesAtLeast(entity.RoleAdministrador)
	return Policy{
		OpProductCreate: writers,
		OpProductUpdate: writers,
		OpProductDelete: admins,

		OpCategoryList:   writers,
		OpCategoryCreate: writers,
		OpCategoryUpdate: writers,
		OpCategoryDelete: admins,

		OpSupplierList:   writers,
		OpSupplierCreate: writers,
		OpSupplierUpdate: writers,
		OpSupplierDelete: admins,

		OpCustomerUpdate: writers,
		OpCustomerDelete: admins,

		OpSaleDelete: admins,

		OpProfileList:   admins,
		OpProfileCreate: admins,
		OpProfileUpdate: admins,
		OpUserDelete:    admins,
	}
}

// Allowed devuelve el conjunto declarado para op.
func (p Policy) Allowed(op Operation) (RoleSet, bool) {
	s, ok := p[op]
	return s, ok
}

// Validate exige que toda operación declare al menos un rol.
func (p Policy) Validate() error {
	ops := make([]string, 0, len(p))
	for op, s := range p {
		if s.Empty() {
			ops = append(ops, string(op))
		}
	}
	if len(ops) > 0 {
		sort.Strings(ops)
		return fmt.Errorf("política: operaciones sin roles: %v", ops)
	}
	return nil
}
