package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/access"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// Locals keys en Fiber.
const (
	LocalIdentity = "identity"
	LocalProfile  = "profile"
)

// IdentityResolver valida el token y devuelve la identidad vigente, o nil si no hay sesión válida.
// Lo implementa *auth.AuthUseCase.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, token string) (*access.Identity, error)
}

// AuthMiddleware lee el token de la cookie tokenCookie o del header Bearer y, si es válido,
// deja la identidad en c.Locals. Nunca rechaza por falta de sesión: eso lo decide el Gate.
// Un fallo del store al resolver la identidad responde 503.
func AuthMiddleware(resolver IdentityResolver, tokenCookie string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			token = c.Cookies(tokenCookie)
		}
		if token == "" {
			return c.Next()
		}
		id, err := resolver.ResolveIdentity(c.UserContext(), token)
		if err != nil {
			requestLogger(c).Error().Err(err).Msg("no se pudo resolver la identidad")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "AUTH_UNAVAILABLE",
				Message: "no se pudo verificar la sesión, intente más tarde",
			})
		}
		if id != nil {
			c.Locals(LocalIdentity, id)
		}
		return c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetIdentity devuelve la identidad de la petición o nil si no está autenticada.
func GetIdentity(c *fiber.Ctx) *access.Identity {
	id, _ := c.Locals(LocalIdentity).(*access.Identity)
	return id
}

// GetUserID devuelve el ID del usuario autenticado o "".
func GetUserID(c *fiber.Ctx) string {
	if id := GetIdentity(c); id != nil {
		return id.UserID
	}
	return ""
}

// GetProfile devuelve el perfil resuelto por el Gate (nil para superusuarios o rutas sin rol).
func GetProfile(c *fiber.Ctx) *entity.Profile {
	p, _ := c.Locals(LocalProfile).(*entity.Profile)
	return p
}
