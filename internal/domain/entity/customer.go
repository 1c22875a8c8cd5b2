package entity

import "time"

// Customer cliente de la tienda. Email es único.
type Customer struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Address      string
	RegisteredAt time.Time
}

// FullName nombre completo del cliente.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
