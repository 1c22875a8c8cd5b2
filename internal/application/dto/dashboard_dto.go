package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/access"
)

// DashboardSummaryDTO respuesta del panel principal (GET /).
type DashboardSummaryDTO struct {
	TodaySales     decimal.Decimal   `json:"today_sales"`
	Products       int               `json:"total_products"`
	Categories     int               `json:"total_categories"`
	Suppliers      int               `json:"total_suppliers"`
	Customers      int               `json:"total_customers"`
	RecentProducts []ProductResponse `json:"recent_products"`
	DateLabel      string            `json:"date_label"` // ej: "18 de Octubre 2026"

	// Notifications cola de un solo uso de la sesión (ej: acceso denegado).
	Notifications []access.Notification `json:"notifications"`
}
