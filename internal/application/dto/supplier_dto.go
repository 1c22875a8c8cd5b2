package dto

// SupplierRequest entrada para crear o editar un proveedor.
type SupplierRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=150"`
	Contact string  `json:"contact" validate:"max=100"`
	Phone   string  `json:"phone" validate:"max=15"`
	Company *string `json:"company" validate:"omitempty,max=100"`
	Address *string `json:"address" validate:"omitempty,max=200"`
	Email   *string `json:"email" validate:"omitempty,email"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Contact string  `json:"contact"`
	Phone   string  `json:"phone"`
	Company *string `json:"company"`
	Address *string `json:"address"`
	Email   *string `json:"email"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
