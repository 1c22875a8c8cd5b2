package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	Stock       int             `json:"stock" validate:"min=0"`
	CategoryID  string          `json:"category_id" validate:"required,uuid"`
	SupplierID  *string         `json:"supplier_id" validate:"omitempty,uuid"`
}

// UpdateProductRequest cambios parciales de un producto.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	Stock         *int             `json:"stock" validate:"omitempty,min=0"`
	CategoryID    *string          `json:"category_id" validate:"omitempty,uuid"`
	SupplierID    *string          `json:"supplier_id" validate:"omitempty,uuid"`
	ClearSupplier bool             `json:"clear_supplier"`
	Active        *bool            `json:"active"`
}

// ProductListQuery filtros del listado de productos.
type ProductListQuery struct {
	PageRequest
	Active     string `query:"active" validate:"omitempty,oneof=true false"`
	CategoryID string `query:"category_id" validate:"omitempty,uuid"`
	Search     string `query:"q"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	Stock       int             `json:"stock"`
	CategoryID  string          `json:"category_id"`
	SupplierID  *string         `json:"supplier_id"`
	CreatedBy   *string         `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	Active      bool            `json:"active"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
