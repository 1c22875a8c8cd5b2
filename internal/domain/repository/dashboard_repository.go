package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// CatalogCounts totales de registros para el panel principal.
type CatalogCounts struct {
	Products   int
	Categories int
	Suppliers  int
	Customers  int
}

// DashboardRepository consultas de solo lectura para el panel principal.
type DashboardRepository interface {
	// SalesTotal suma el total de las ventas con sold_at en [from, to).
	SalesTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	Counts(ctx context.Context) (CatalogCounts, error)
	RecentProducts(ctx context.Context, limit int) ([]*entity.Product, error)
}
