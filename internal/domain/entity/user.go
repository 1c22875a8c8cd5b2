package entity

import "time"

// User identidad autenticable del sistema. Los datos de rol viven en Profile.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	IsSuperuser  bool // escape de la verificación de roles, no es un Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
