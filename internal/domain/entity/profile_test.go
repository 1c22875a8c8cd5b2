package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

func TestProfile_PermisosPorRol(t *testing.T) {
	cases := []struct {
		role                      entity.Role
		vendor, manager, admin    bool
		canRead, canWrite, canDel bool
	}{
		{entity.RoleVendedor, true, false, false, true, false, false},
		{entity.RoleGerente, false, true, false, true, true, false},
		{entity.RoleAdministrador, false, false, true, true, true, true},
	}
	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			p := &entity.Profile{Role: tc.role, Active: true}
			assert.Equal(t, tc.vendor, p.IsVendor())
			assert.Equal(t, tc.manager, p.IsManager())
			assert.Equal(t, tc.admin, p.IsAdministrator())
			assert.Equal(t, tc.canRead, p.CanRead())
			assert.Equal(t, tc.canWrite, p.CanWrite())
			assert.Equal(t, tc.canDel, p.CanDelete())
		})
	}
}

// Un perfil inactivo conserva sus permisos: el flag no forma parte de los helpers.
func TestProfile_InactivoConservaPermisos(t *testing.T) {
	p := &entity.Profile{Role: entity.RoleAdministrador, Active: false}
	assert.True(t, p.CanWrite())
	assert.True(t, p.CanDelete())
}

func TestProfile_RolDesconocidoSinEscritura(t *testing.T) {
	p := &entity.Profile{Role: entity.Role("cajero")}
	assert.True(t, p.CanRead())
	assert.False(t, p.CanWrite())
	assert.False(t, p.CanDelete())
}

func TestRole_RankYAtLeast(t *testing.T) {
	assert.Less(t, entity.RoleVendedor.Rank(), entity.RoleGerente.Rank())
	assert.Less(t, entity.RoleGerente.Rank(), entity.RoleAdministrador.Rank())
	assert.Equal(t, 0, entity.Role("otro").Rank())

	assert.True(t, entity.RoleAdministrador.AtLeast(entity.RoleGerente))
	assert.True(t, entity.RoleGerente.AtLeast(entity.RoleGerente))
	assert.False(t, entity.RoleVendedor.AtLeast(entity.RoleGerente))
	assert.False(t, entity.Role("otro").AtLeast(entity.RoleVendedor))
}

func TestRole_Display(t *testing.T) {
	assert.Equal(t, "Vendedor", entity.RoleVendedor.Display())
	assert.Equal(t, "Gerente", entity.RoleGerente.Display())
	assert.Equal(t, "Administrador", entity.RoleAdministrador.Display())
}

func TestParseRole(t *testing.T) {
	r, err := entity.ParseRole("  Gerente ")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleGerente, r)

	_, err = entity.ParseRole("bodeguero")
	assert.Error(t, err)
}

func TestCustomer_FullName(t *testing.T) {
	c := &entity.Customer{FirstName: "Ana", LastName: "Pérez"}
	assert.Equal(t, "Ana Pérez", c.FullName())
}
