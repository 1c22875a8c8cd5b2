package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar una venta.
type CreateSaleRequest struct {
	CustomerID *string           `json:"customer_id" validate:"omitempty,uuid"`
	Items      []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleItemRequest línea solicitada. El precio se toma del producto.
type SaleItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// SaleItemResponse línea de venta.
type SaleItemResponse struct {
	ProductID   *string         `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID         string             `json:"id"`
	SoldAt     time.Time          `json:"sold_at"`
	Total      decimal.Decimal    `json:"total"`
	CustomerID *string            `json:"customer_id"`
	SoldBy     *string            `json:"sold_by"`
	Items      []SaleItemResponse `json:"items,omitempty"`
}

// SaleListResponse lista paginada de ventas (sin líneas).
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
