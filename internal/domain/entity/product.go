package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del inventario. Active se usa para eliminación lógica.
type Product struct {
	ID          string
	Name        string
	Description string
	SalePrice   decimal.Decimal // numeric(10,2)
	Stock       int
	CategoryID  string
	SupplierID  *string // nil si no tiene proveedor o si el proveedor fue eliminado
	CreatedBy   *string
	CreatedAt   time.Time
	Active      bool
}
