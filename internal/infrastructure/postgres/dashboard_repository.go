package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para el panel principal.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador del panel.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// SalesTotal suma el total de las ventas del rango [from, to).
func (r *DashboardRepo) SalesTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0) FROM sales WHERE sold_at >= $1 AND sold_at < $2`,
		from, to,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("dashboard.SalesTotal: %w", err)
	}
	return total, nil
}

// Counts cuenta productos, categorías, proveedores y clientes en una sola consulta.
func (r *DashboardRepo) Counts(ctx context.Context) (repository.CatalogCounts, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM products)   AS products,
	    (SELECT COUNT(*) FROM categories) AS categories,
	    (SELECT COUNT(*) FROM suppliers)  AS suppliers,
	    (SELECT COUNT(*) FROM customers)  AS customers`
	var c repository.CatalogCounts
	if err := r.q.QueryRow(ctx, query).Scan(&c.Products, &c.Categories, &c.Suppliers, &c.Customers); err != nil {
		return repository.CatalogCounts{}, fmt.Errorf("dashboard.Counts: %w", err)
	}
	return c, nil
}

// RecentProducts últimos productos creados.
func (r *DashboardRepo) RecentProducts(ctx context.Context, limit int) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.RecentProducts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("dashboard.RecentProducts scan: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
