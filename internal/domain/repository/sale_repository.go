package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
type SaleRepository interface {
	// Create persiste cabecera y líneas (debe ejecutarse dentro de una transacción).
	Create(ctx context.Context, sale *entity.Sale) error
	// GetByID devuelve la venta con sus líneas, o (nil, nil).
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// List devuelve cabeceras sin líneas, más recientes primero.
	List(ctx context.Context, limit, offset int) ([]*entity.Sale, error)
	Delete(ctx context.Context, id string) error
}
