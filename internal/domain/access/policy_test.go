package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain/access"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

func TestRoleSet_ContainsYDisplay(t *testing.T) {
	s := access.NewRoleSet(entity.RoleAdministrador, entity.RoleGerente, entity.Role("otro"))
	assert.True(t, s.Contains(entity.RoleGerente))
	assert.True(t, s.Contains(entity.RoleAdministrador))
	assert.False(t, s.Contains(entity.RoleVendedor))
	assert.False(t, s.Contains(entity.Role("otro")))
	assert.Equal(t, []entity.Role{entity.RoleGerente, entity.RoleAdministrador}, s.Roles())
	assert.Equal(t, "Gerente, Administrador", s.Display())
	assert.True(t, access.RoleSet(0).Empty())
}

func TestRolesAtLeast(t *testing.T) {
	assert.Equal(t, access.NewRoleSet(entity.Roles()...), access.RolesAtLeast(entity.RoleVendedor))
	assert.Equal(t, access.NewRoleSet(entity.RoleGerente, entity.RoleAdministrador), access.RolesAtLeast(entity.RoleGerente))
	assert.Equal(t, access.NewRoleSet(entity.RoleAdministrador), access.RolesAtLeast(entity.RoleAdministrador))
}

func TestDefaultPolicy_Valida(t *testing.T) {
	p := access.DefaultPolicy()
	require.NoError(t, p.Validate())

	p["vacia"] = access.RoleSet(0)
	assert.Error(t, p.Validate())
}

// La política y los helpers del perfil no pueden divergir: quien puede crear
// debe poder escribir y quien puede eliminar debe poder borrar.
func TestDefaultPolicy_CoherenteConPerfil(t *testing.T) {
	p := access.DefaultPolicy()
	writeOps := []access.Operation{
		access.OpProductCreate, access.OpProductUpdate,
		access.OpCategoryCreate, access.OpCategoryUpdate,
		access.OpSupplierCreate, access.OpSupplierUpdate,
		access.OpCustomerUpdate,
	}
	deleteOps := []access.Operation{
		access.OpProductDelete, access.OpCategoryDelete, access.OpSupplierDelete,
		access.OpCustomerDelete, access.OpSaleDelete, access.OpUserDelete,
	}
	for _, r := range entity.Roles() {
		profile := &entity.Profile{Role: r}
		for _, op := range writeOps {
			set, ok := p.Allowed(op)
			require.True(t, ok, op)
			assert.Equal(t, profile.CanWrite(), set.Contains(r), "%s / %s", op, r)
		}
		for _, op := range deleteOps {
			set, ok := p.Allowed(op)
			require.True(t, ok, op)
			assert.Equal(t, profile.CanDelete(), set.Contains(r), "%s / %s", op, r)
		}
	}
}

func TestDefaultPolicy_OperacionDesconocida(t *testing.T) {
	_, ok := access.DefaultPolicy().Allowed("inexistente")
	assert.False(t, ok)
}
