package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/jwt"
)

var jwtCfg = JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "tienda-api"}

type memUsers struct {
	byID map[string]*entity.User
	err  error
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error { m.byID[u.ID] = u; return nil }
func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byID[id], nil
}
func (m *memUsers) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range m.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (m *memUsers) Update(context.Context, *entity.User) error { return nil }
func (m *memUsers) Delete(context.Context, string) error       { return nil }

type memProfiles struct{ byUser map[string]*entity.Profile }

func (m *memProfiles) Create(context.Context, *entity.Profile) error { return nil }
func (m *memProfiles) FindByUserID(_ context.Context, userID string) (*entity.Profile, error) {
	return m.byUser[userID], nil
}
func (m *memProfiles) Update(context.Context, *entity.Profile) error { return nil }
func (m *memProfiles) List(context.Context, repository.ProfileFilter) ([]*entity.Staff, error) {
	return nil, nil
}

func newUser(t *testing.T, id, username, password string, active bool) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{ID: id, Username: username, PasswordHash: string(hash), IsActive: active}
}

func fixture(t *testing.T) (*AuthUseCase, *memUsers) {
	users := &memUsers{byID: map[string]*entity.User{
		"u-1": newUser(t, "u-1", "gerente1", "gerente123", true),
		"u-2": newUser(t, "u-2", "inactivo", "clave1234", false),
	}}
	profiles := &memProfiles{byUser: map[string]*entity.Profile{
		"u-1": {ID: "p-1", UserID: "u-1", Role: entity.RoleGerente, Active: true},
	}}
	return NewAuthUseCase(users, profiles, jwtCfg), users
}

func TestLogin_Exitoso(t *testing.T) {
	uc, _ := fixture(t)
	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "gerente1", Password: "gerente123"})
	require.NoError(t, err)

	assert.Equal(t, "gerente1", out.User.Username)
	require.NotNil(t, out.Profile)
	assert.Equal(t, "gerente", out.Profile.Role)

	claims, err := jwt.Parse(jwtCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
}

func TestLogin_Fallidos(t *testing.T) {
	uc, _ := fixture(t)
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{Username: "gerente1", Password: "mala"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "inactivo", Password: "clave1234"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestResolveIdentity(t *testing.T) {
	uc, users := fixture(t)
	ctx := context.Background()

	token, err := jwt.Generate(jwtCfg.Secret, "u-1", "gerente1", false, jwtCfg.Issuer, 5)
	require.NoError(t, err)
	id, err := uc.ResolveIdentity(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, "gerente1", id.Username)
	assert.False(t, id.Superuser)

	id, err = uc.ResolveIdentity(ctx, "basura")
	assert.NoError(t, err)
	assert.Nil(t, id)

	inactive, _ := jwt.Generate(jwtCfg.Secret, "u-2", "inactivo", false, jwtCfg.Issuer, 5)
	id, err = uc.ResolveIdentity(ctx, inactive)
	assert.NoError(t, err)
	assert.Nil(t, id)

	users.err = errors.New("db caída")
	_, err = uc.ResolveIdentity(ctx, token)
	assert.Error(t, err)
}

func TestResolveIdentity_SuperusuarioDesdeElStore(t *testing.T) {
	uc, users := fixture(t)
	users.byID["u-1"].IsSuperuser = true

	// el token dice false, el store manda
	token, _ := jwt.Generate(jwtCfg.Secret, "u-1", "gerente1", false, jwtCfg.Issuer, 5)
	id, err := uc.ResolveIdentity(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, id.Superuser)
}

func TestMe(t *testing.T) {
	uc, _ := fixture(t)
	out, err := uc.Me(context.Background(), "u-2")
	require.NoError(t, err)
	assert.Nil(t, out.Profile)

	_, err = uc.Me(context.Background(), "u-404")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCreateSuperuser(t *testing.T) {
	uc, users := fixture(t)
	ctx := context.Background()

	out, err := uc.CreateSuperuser(ctx, "root", "Root@Tienda.com", "supersecreto")
	require.NoError(t, err)
	assert.True(t, out.IsSuperuser)
	assert.Equal(t, "root@tienda.com", out.Email)
	assert.Len(t, users.byID, 3)

	_, err = uc.CreateSuperuser(ctx, "root", "", "supersecreto")
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	_, err = uc.CreateSuperuser(ctx, "otro", "", "corta")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
