// Package sales registra ventas descontando stock y genera sus comprobantes.
package sales

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// SaleTxRunner ejecuta fn con repos de productos y ventas en una misma transacción.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// ReceiptData datos que necesita el comprobante además de la venta.
type ReceiptData struct {
	StoreName string
	Sale      *entity.Sale
	Customer  *entity.Customer // nil si la venta no tiene cliente
	Seller    string           // username del vendedor; vacío si se eliminó
}

// ReceiptGenerator genera el comprobante de venta en PDF.
type ReceiptGenerator interface {
	GenerateSaleReceipt(data ReceiptData) ([]byte, error)
}
