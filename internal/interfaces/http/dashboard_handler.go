package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/analytics"
)

// DashboardHandler página de inicio. Es el destino de las redirecciones por rol
// o perfil, así que entrega las notificaciones pendientes junto al resumen.
type DashboardHandler struct {
	uc       *analytics.DashboardUseCase
	notifier *Notifier
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, notifier *Notifier) *DashboardHandler {
	return &DashboardHandler{uc: uc, notifier: notifier}
}

// Home godoc
// @Summary      Panel principal
// @Description  Ventas de hoy, totales del catálogo, productos recientes y notificaciones pendientes.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Success      302
// @Router       / [get]
func (h *DashboardHandler) Home(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	if out.Notifications, err = h.notifier.Pop(c); err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
