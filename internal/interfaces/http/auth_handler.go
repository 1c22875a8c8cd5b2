package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/access"
)

// CookieConfig cookie que transporta el JWT.
type CookieConfig struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

// AuthHandler maneja login, logout y la sesión actual.
type AuthHandler struct {
	uc       *auth.AuthUseCase
	notifier *Notifier
	cookie   CookieConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, notifier *Notifier, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{uc: uc, notifier: notifier, cookie: cookie}
}

// LoginPage godoc
// @Summary      Página de login
// @Description  Devuelve las notificaciones pendientes. Si ya hay sesión redirige a /.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.NotificationsResponse
// @Success      302
// @Router       /login [get]
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if GetIdentity(c) != nil {
		return c.Redirect(access.HomePath, fiber.StatusFound)
	}
	notes, err := h.notifier.Pop(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NotificationsResponse{Notifications: notes})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Success      302
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	if GetIdentity(c) != nil {
		return c.Redirect(access.HomePath, fiber.StatusFound)
	}
	var in dto.LoginRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		switch err {
		case domain.ErrUnauthorized:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Usuario o contraseña incorrectos"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "cuenta inactiva"})
		}
		return writeError(c, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    out.Token,
		Path:     "/",
		Expires:  time.Now().Add(h.cookie.MaxAge),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	h.push(c, access.Notification{Level: access.LevelSuccess, Text: "Bienvenido " + out.User.Username + "!"})
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Success      302
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	h.push(c, access.Notification{Level: access.LevelInfo, Text: "Sesión cerrada correctamente"})
	return c.Redirect(access.LoginPath, fiber.StatusFound)
}

// Me godoc
// @Summary      Usuario actual
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MeResponse
// @Success      302
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Notifications godoc
// @Summary      Notificaciones pendientes
// @Description  Devuelve y consume los mensajes encolados (se muestran una sola vez).
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.NotificationsResponse
// @Router       /api/notifications [get]
func (h *AuthHandler) Notifications(c *fiber.Ctx) error {
	notes, err := h.notifier.Pop(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NotificationsResponse{Notifications: notes})
}

func (h *AuthHandler) push(c *fiber.Ctx, n access.Notification) {
	if err := h.notifier.Push(c, n); err != nil {
		requestLogger(c).Error().Err(err).Msg("no se pudo encolar la notificación")
	}
}
