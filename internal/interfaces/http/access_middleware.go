package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/access"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// Gate aplica la política de acceso a las rutas. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - Permitido → c.Next(), la respuesta del handler no se modifica.
//   - Denegado  → 302 al destino de la decisión y notificación encolada en la sesión.
//   - Fallo del store al leer el perfil → 503.
type Gate struct {
	policy   access.Policy
	profiles access.ProfileFinder
	notifier *Notifier
	log      *logger.Logger
}

// NewGate construye el gate. Falla si la política tiene operaciones sin roles.
func NewGate(policy access.Policy, profiles access.ProfileFinder, notifier *Notifier, log *logger.Logger) (*Gate, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Gate{policy: policy, profiles: profiles, notifier: notifier, log: log.Named("access")}, nil
}

// Require protege la ruta con los roles que la política asigna a op.
// Una operación ausente de la política es un error de programación: entra en pánico al registrar la ruta.
func (g *Gate) Require(op access.Operation) fiber.Handler {
	allowed, ok := g.policy.Allowed(op)
	if !ok {
		panic(fmt.Sprintf("access: operación %q no está en la política", op))
	}
	return g.RequireRoles(string(op), allowed)
}

// RequireRoles protege la ruta con un conjunto de roles explícito.
func (g *Gate) RequireRoles(name string, allowed access.RoleSet) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := GetIdentity(c)
		decision, err := access.Authorize(c.UserContext(), id, allowed, g.profiles)
		if err != nil {
			g.log.Error().Err(err).Str("operation", name).Msg("no se pudo evaluar el acceso")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "ACCESS_CHECK_FAILED",
				Message: "no se pudo verificar el acceso, intente más tarde",
			})
		}
		if !decision.Allowed {
			return g.deny(c, name, id, decision)
		}
		if decision.Profile != nil {
			if !decision.Profile.Active {
				g.log.Debug().Str("user", id.Username).Str("operation", name).Msg("perfil inactivo con acceso")
			}
			c.Locals(LocalProfile, decision.Profile)
		}
		return c.Next()
	}
}

// RequireLogin solo exige identidad autenticada; no consulta el perfil.
func (g *Gate) RequireLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := GetIdentity(c)
		if decision := access.RequireIdentity(id); !decision.Allowed {
			return g.deny(c, "login", id, decision)
		}
		return c.Next()
	}
}

func (g *Gate) deny(c *fiber.Ctx, name string, id *access.Identity, d access.Decision) error {
	ev := g.log.Warn().
		Str("operation", name).
		Str("reason", string(d.Reason)).
		Str("method", c.Method()).
		Str("path", c.Path())
	if id != nil {
		ev = ev.Str("user", id.Username)
	}
	ev.Msg("acceso denegado")

	if d.Notice != nil {
		if err := g.notifier.Push(c, *d.Notice); err != nil {
			g.log.Error().Err(err).Msg("no se pudo encolar la notificación")
		}
	}
	return c.Redirect(d.Redirect, fiber.StatusFound)
}
