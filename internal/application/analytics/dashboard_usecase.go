// Package analytics contiene los casos de uso de lectura del panel principal.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

const dashboardRecentProducts = 5 // productos recientes en el panel

// DashboardUseCase genera el resumen del día para la página de inicio.
type DashboardUseCase struct {
	repo repository.DashboardRepository
	now  func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, now: time.Now}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres llamadas en paralelo:
//  1. SalesTotal(hoy)         → TodaySales
//  2. Counts                  → totales del catálogo
//  3. RecentProducts(5)       → RecentProducts
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.AddDate(0, 0, 1)

	type totalResult struct {
		total decimal.Decimal
		err   error
	}
	type countsResult struct {
		counts repository.CatalogCounts
		err    error
	}
	type recentResult struct {
		products []*entity.Product
		err      error
	}

	totalCh := make(chan totalResult, 1)
	countsCh := make(chan countsResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		total, err := uc.repo.SalesTotal(ctx, todayStart, todayEnd)
		totalCh <- totalResult{total, err}
	}()
	go func() {
		counts, err := uc.repo.Counts(ctx)
		countsCh <- countsResult{counts, err}
	}()
	go func() {
		products, err := uc.repo.RecentProducts(ctx, dashboardRecentProducts)
		recentCh <- recentResult{products, err}
	}()

	total := <-totalCh
	counts := <-countsCh
	recent := <-recentCh

	if total.err != nil {
		return nil, fmt.Errorf("dashboard: ventas de hoy: %w", total.err)
	}
	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: totales: %w", counts.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: productos recientes: %w", recent.err)
	}

	products := make([]dto.ProductResponse, 0, len(recent.products))
	for _, p := range recent.products {
		products = append(products, dto.ProductResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			SalePrice:   p.SalePrice,
			Stock:       p.Stock,
			CategoryID:  p.CategoryID,
			SupplierID:  p.SupplierID,
			CreatedBy:   p.CreatedBy,
			CreatedAt:   p.CreatedAt,
			Active:      p.Active,
		})
	}

	return &dto.DashboardSummaryDTO{
		TodaySales:     total.total.Round(2),
		Products:       counts.counts.Products,
		Categories:     counts.counts.Categories,
		Suppliers:      counts.counts.Suppliers,
		Customers:      counts.counts.Customers,
		RecentProducts: products,
		DateLabel:      dayLabel(now),
	}, nil
}

// dayLabel devuelve una etiqueta legible del día, ej: "18 de Octubre 2026".
func dayLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%d de %s %d", t.Day(), months[t.Month()-1], t.Year())
}
