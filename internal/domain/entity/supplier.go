package entity

// Supplier proveedor de productos. Solo Name es obligatorio.
type Supplier struct {
	ID      string
	Name    string
	Contact string
	Phone   string
	Company *string
	Address *string
	Email   *string
}
