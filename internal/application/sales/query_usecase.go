package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// SaleQueryUseCase consulta, elimina y genera comprobantes de ventas.
type SaleQueryUseCase struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	userRepo     repository.UserRepository
	receipts     ReceiptGenerator
	storeName    string
}

// NewSaleQueryUseCase construye el caso de uso.
func NewSaleQueryUseCase(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	userRepo repository.UserRepository,
	receipts ReceiptGenerator,
	storeName string,
) *SaleQueryUseCase {
	return &SaleQueryUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
		receipts:     receipts,
		storeName:    storeName,
	}
}

// GetByID obtiene la venta con sus líneas; (nil, nil) si no existe.
func (uc *SaleQueryUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil || sale == nil {
		return nil, err
	}
	return ToSaleResponse(sale), nil
}

// List lista cabeceras de ventas, más recientes primero.
func (uc *SaleQueryUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.SaleListResponse, error) {
	page.DefaultPage()
	list, err := uc.saleRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *ToSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina la venta y sus líneas. El stock no se repone.
func (uc *SaleQueryUseCase) Delete(ctx context.Context, id string) error {
	return uc.saleRepo.Delete(ctx, id)
}

// Receipt genera el PDF del comprobante.
func (uc *SaleQueryUseCase) Receipt(ctx context.Context, id string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	data := ReceiptData{StoreName: uc.storeName, Sale: sale}
	if sale.CustomerID != nil {
		var customer *entity.Customer
		customer, err = uc.customerRepo.GetByID(ctx, *sale.CustomerID)
		if err != nil {
			return nil, err
		}
		data.Customer = customer
	}
	if sale.SoldBy != nil {
		seller, err := uc.userRepo.GetByID(ctx, *sale.SoldBy)
		if err != nil {
			return nil, err
		}
		if seller != nil {
			data.Seller = seller.Username
		}
	}
	pdf, err := uc.receipts.GenerateSaleReceipt(data)
	if err != nil {
		return nil, fmt.Errorf("comprobante de venta %s: %w", id, err)
	}
	return pdf, nil
}
