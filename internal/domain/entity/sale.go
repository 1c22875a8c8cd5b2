package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale cabecera de una venta. Total = suma de los subtotales de sus líneas.
type Sale struct {
	ID         string
	SoldAt     time.Time
	Total      decimal.Decimal
	CustomerID *string // SET NULL al eliminar el cliente
	SoldBy     *string // SET NULL al eliminar el usuario
	Items      []SaleItem
}

// SaleItem línea de venta. ProductName se copia para conservar el comprobante
// aunque el producto se elimine.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   *string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}
