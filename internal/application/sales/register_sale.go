package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// RegisterSaleUseCase registra una venta y descuenta el stock en una sola transacción.
type RegisterSaleUseCase struct {
	tx           SaleTxRunner
	customerRepo repository.CustomerRepository
	now          func() time.Time
}

// NewRegisterSaleUseCase construye el caso de uso.
func NewRegisterSaleUseCase(tx SaleTxRunner, customerRepo repository.CustomerRepository) *RegisterSaleUseCase {
	return &RegisterSaleUseCase{tx: tx, customerRepo: customerRepo, now: time.Now}
}

// Register valida el cliente, bloquea cada producto, verifica stock y persiste cabecera y líneas.
// Si cualquier línea falla (inactivo, stock insuficiente) no se modifica nada.
func (uc *RegisterSaleUseCase) Register(ctx context.Context, sellerID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	quantities := make(map[string]int, len(in.Items))
	order := make([]string, 0, len(in.Items))
	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if _, seen := quantities[it.ProductID]; !seen {
			order = append(order, it.ProductID)
		}
		quantities[it.ProductID] += it.Quantity
	}

	if in.CustomerID != nil && *in.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(ctx, *in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, fmt.Errorf("cliente %s: %w", *in.CustomerID, domain.ErrNotFound)
		}
	} else {
		in.CustomerID = nil
	}

	sale := &entity.Sale{
		ID:         uuid.New().String(),
		SoldAt:     uc.now(),
		CustomerID: in.CustomerID,
	}
	if sellerID != "" {
		sale.SoldBy = &sellerID
	}

	err := uc.tx.RunSale(ctx, func(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) error {
		total := decimal.Zero
		for _, productID := range order {
			qty := quantities[productID]
			product, err := productRepo.GetForUpdate(ctx, productID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("producto %s: %w", productID, domain.ErrNotFound)
			}
			if !product.Active {
				return fmt.Errorf("producto %s inactivo: %w", product.Name, domain.ErrInvalidInput)
			}
			if product.Stock < qty {
				return fmt.Errorf("%s (disponible %d, solicitado %d): %w", product.Name, product.Stock, qty, domain.ErrInsufficientStock)
			}
			if err := productRepo.UpdateStock(ctx, product.ID, product.Stock-qty); err != nil {
				return err
			}
			pid := product.ID
			subtotal := product.SalePrice.Mul(decimal.NewFromInt(int64(qty))).Round(2)
			sale.Items = append(sale.Items, entity.SaleItem{
				ID:          uuid.New().String(),
				SaleID:      sale.ID,
				ProductID:   &pid,
				ProductName: product.Name,
				Quantity:    qty,
				UnitPrice:   product.SalePrice,
				Subtotal:    subtotal,
			})
			total = total.Add(subtotal)
		}
		sale.Total = total.Round(2)
		return saleRepo.Create(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	return ToSaleResponse(sale), nil
}

// ToSaleResponse convierte la venta (con o sin líneas) a DTO.
func ToSaleResponse(s *entity.Sale) *dto.SaleResponse {
	out := &dto.SaleResponse{
		ID:         s.ID,
		SoldAt:     s.SoldAt,
		Total:      s.Total,
		CustomerID: s.CustomerID,
		SoldBy:     s.SoldBy,
	}
	for _, it := range s.Items {
		out.Items = append(out.Items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return out
}
