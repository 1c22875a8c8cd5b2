package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/access"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	apphttp "github.com/jhoicas/tienda-api/internal/interfaces/http"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	sessionCookie = "test_session"
	tokenCookie   = "test_token"
)

// fakeResolver usa el token como username: "Bearer gerente1" → identidad de gerente1.
type fakeResolver struct {
	identities map[string]*access.Identity
	err        error
}

func (f *fakeResolver) ResolveIdentity(_ context.Context, token string) (*access.Identity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.identities[token], nil
}

type fakeProfiles struct {
	byUser map[string]*entity.Profile
	err    error
	calls  int
}

func (f *fakeProfiles) FindByUserID(_ context.Context, userID string) (*entity.Profile, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.byUser[userID], nil
}

type testEnv struct {
	app      *fiber.App
	resolver *fakeResolver
	profiles *fakeProfiles
	gate     *apphttp.Gate
}

// newTestEnv construye una app Fiber con AuthMiddleware, el Gate y rutas dummy que devuelven 200.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	resolver := &fakeResolver{identities: map[string]*access.Identity{
		"vendedor1": {UserID: "u-vendedor", Username: "vendedor1"},
		"gerente1":  {UserID: "u-gerente", Username: "gerente1"},
		"admin1":    {UserID: "u-admin", Username: "admin1"},
		"sinperfil": {UserID: "u-sinperfil", Username: "sinperfil"},
		"root":      {UserID: "u-root", Username: "root", Superuser: true},
	}}
	profiles := &fakeProfiles{byUser: map[string]*entity.Profile{
		"u-vendedor": {UserID: "u-vendedor", Role: entity.RoleVendedor, Active: true},
		"u-gerente":  {UserID: "u-gerente", Role: entity.RoleGerente, Active: true},
		"u-admin":    {UserID: "u-admin", Role: entity.RoleAdministrador, Active: false},
	}}
	store := session.New(session.Config{KeyLookup: "cookie:" + sessionCookie, Expiration: time.Hour})
	notifier := apphttp.NewNotifier(store)
	gate, err := apphttp.NewGate(access.DefaultPolicy(), profiles, notifier, logger.Nop())
	require.NoError(t, err)

	app := fiber.New()
	app.Use(apphttp.AuthMiddleware(resolver, tokenCookie))

	ok := func(c *fiber.Ctx) error {
		body := fiber.Map{"ok": true}
		if p := apphttp.GetProfile(c); p != nil {
			body["role"] = string(p.Role)
		}
		return c.JSON(body)
	}
	app.Get("/productos/nuevo", gate.Require(access.OpProductCreate), ok)
	app.Get("/usuarios/eliminar", gate.Require(access.OpUserDelete), ok)
	app.Get("/nadie", gate.RequireRoles("nadie", access.NewRoleSet()), ok)
	app.Get("/ventas", gate.RequireLogin(), ok)
	app.Get("/notificaciones", func(c *fiber.Ctx) error {
		notes, err := notifier.Pop(c)
		if err != nil {
			return err
		}
		return c.JSON(dto.NotificationsResponse{Notifications: notes})
	})

	return &testEnv{app: app, resolver: resolver, profiles: profiles, gate: gate}
}

func (e *testEnv) do(t *testing.T, path, token string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func sessionFrom(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, ck := range resp.Cookies() {
		if ck.Name == sessionCookie {
			return ck
		}
	}
	require.FailNow(t, "la respuesta no trae cookie de sesión")
	return nil
}

// notifications consume la cola de la sesión indicada.
func (e *testEnv) notifications(t *testing.T, ck *http.Cookie) []access.Notification {
	t.Helper()
	resp := e.do(t, "/notificaciones", "", ck)
	defer resp.Body.Close()
	var body dto.NotificationsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Notifications
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Gate
// ──────────────────────────────────────────────────────────────────────────────

func TestGate_SinSesionRedirigeALogin(t *testing.T) {
	env := newTestEnv(t)
	for _, path := range []string{"/productos/nuevo", "/usuarios/eliminar", "/nadie", "/ventas"} {
		resp := env.do(t, path, "")
		assert.Equal(t, http.StatusFound, resp.StatusCode, path)
		assert.Equal(t, "/login", resp.Header.Get("Location"), path)

		notes := env.notifications(t, sessionFrom(t, resp))
		require.Len(t, notes, 1, path)
		assert.Equal(t, access.LevelError, notes[0].Level)
		assert.Equal(t, "Debes iniciar sesión para acceder", notes[0].Text)
	}
	assert.Zero(t, env.profiles.calls, "sin sesión no se consulta el perfil")
}

func TestGate_VendedorBloqueadoEnRutaDeGerente(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, "/productos/nuevo", "vendedor1")

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	notes := env.notifications(t, sessionFrom(t, resp))
	require.Len(t, notes, 1)
	assert.Equal(t, "⚠️ Acceso denegado. Se requiere rol: Gerente, Administrador", notes[0].Text)
}

func TestGate_NotificacionSeMuestraUnaSolaVez(t *testing.T) {
	env := newTestEnv(t)
	ck := sessionFrom(t, env.do(t, "/productos/nuevo", "vendedor1"))

	assert.Len(t, env.notifications(t, ck), 1)
	assert.Empty(t, env.notifications(t, ck))
}

func TestGate_GerenteAccedeRutaDeGerente(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, "/productos/nuevo", "gerente1")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "gerente", body["role"])
}

func TestGate_GerenteBloqueadoEnRutaDeAdministrador(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, "/usuarios/eliminar", "gerente1")
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	notes := env.notifications(t, sessionFrom(t, resp))
	require.Len(t, notes, 1)
	assert.Equal(t, "⚠️ Acceso denegado. Se requiere rol: Administrador", notes[0].Text)
}

func TestGate_AdministradorInactivoConservaAcceso(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, "/usuarios/eliminar", "admin1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGate_SinPerfilRedirigeAInicio(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, "/productos/nuevo", "sinperfil")

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	notes := env.notifications(t, sessionFrom(t, resp))
	require.Len(t, notes, 1)
	assert.Equal(t, "⚠️ Tu cuenta no tiene un perfil asignado. Contacta al administrador.", notes[0].Text)
}

func TestGate_SuperusuarioSiemprePasa(t *testing.T) {
	env := newTestEnv(t)
	for _, path := range []string{"/productos/nuevo", "/usuarios/eliminar", "/nadie"} {
		resp := env.do(t, path, "root")
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
	assert.Zero(t, env.profiles.calls)
}

func TestGate_RequireLoginNoExigePerfil(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, "/ventas", "sinperfil")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, env.profiles.calls)
}

func TestGate_CambioDeRolAplicaEnLaSiguientePeticion(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, http.StatusFound, env.do(t, "/productos/nuevo", "vendedor1").StatusCode)

	env.profiles.byUser["u-vendedor"].Role = entity.RoleGerente
	assert.Equal(t, http.StatusOK, env.do(t, "/productos/nuevo", "vendedor1").StatusCode)
	assert.Equal(t, 2, env.profiles.calls)
}

func TestGate_ErrorDelStoreRetorna503(t *testing.T) {
	env := newTestEnv(t)
	env.profiles.err = errors.New("conexión rechazada")

	resp := env.do(t, "/productos/nuevo", "gerente1")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestGate_OperacionDesconocidaEntraEnPanico(t *testing.T) {
	env := newTestEnv(t)
	assert.Panics(t, func() { env.gate.Require(access.Operation("inventada")) })
}

func TestNewGate_PoliticaInvalida(t *testing.T) {
	store := session.New()
	_, err := apphttp.NewGate(access.Policy{"x": access.NewRoleSet()}, &fakeProfiles{}, apphttp.NewNotifier(store), logger.Nop())
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_TokenEnCookie(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, "/productos/nuevo", "", &http.Cookie{Name: tokenCookie, Value: "gerente1"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_TokenDesconocidoQuedaSinSesion(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, "/ventas", "token-invalido")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestAuthMiddleware_ErrorAlResolverRetorna503(t *testing.T) {
	env := newTestEnv(t)
	env.resolver.err = errors.New("db caída")

	resp := env.do(t, "/ventas", "gerente1")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	// sin token no se consulta el store
	resp = env.do(t, "/notificaciones", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_HeaderMalFormado(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest(http.MethodGet, "/ventas", nil)
	req.Header.Set("Authorization", "Token gerente1")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.True(t, strings.HasSuffix(resp.Header.Get("Location"), "/login"))
}
