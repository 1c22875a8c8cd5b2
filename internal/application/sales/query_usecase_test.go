package sales

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

type stubUsers struct{ byID map[string]*entity.User }

func (s *stubUsers) Create(context.Context, *entity.User) error {
	return nil
}
func (s *stubUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	return s.byID[id], nil
}
func (s *stubUsers) GetByUsername(context.Context, string) (*entity.User, error) {
	return nil, nil
}
func (s *stubUsers) Update(context.Context, *entity.User) error {
	return nil
}
func (s *stubUsers) Delete(context.Context, string) error {
	return nil
}

type captureReceipts struct {
	got ReceiptData
	err error
}

func (c *captureReceipts) GenerateSaleReceipt(data ReceiptData) ([]byte, error) {
	c.got = data
	return []byte("%PDF"), c.err
}

func TestReceipt_ResuelveClienteYVendedor(t *testing.T) {
	customerID, sellerID := "c-1", "u-1"
	sales := &memSales{byID: map[string]*entity.Sale{
		"s-1": {ID: "s-1", Total: decimal.NewFromInt(9), CustomerID: &customerID, SoldBy: &sellerID},
	}}
	customers := &memCustomers{byID: map[string]*entity.Customer{"c-1": {ID: "c-1", FirstName: "Ana", LastName: "Ruiz"}}}
	users := &stubUsers{byID: map[string]*entity.User{"u-1": {ID: "u-1", Username: "vendedor1"}}}
	receipts := &captureReceipts{}

	uc := NewSaleQueryUseCase(sales, customers, users, receipts, "Mi Tienda")
	pdf, err := uc.Receipt(context.Background(), "s-1")
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF"), pdf)
	assert.Equal(t, "Mi Tienda", receipts.got.StoreName)
	assert.Equal(t, "vendedor1", receipts.got.Seller)
	require.NotNil(t, receipts.got.Customer)
	assert.Equal(t, "Ana Ruiz", receipts.got.Customer.FullName())
}

func TestReceipt_VentaInexistente(t *testing.T) {
	uc := NewSaleQueryUseCase(&memSales{byID: map[string]*entity.Sale{}}, &memCustomers{}, &stubUsers{}, &captureReceipts{}, "")
	_, err := uc.Receipt(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReceipt_ErrorDelGenerador(t *testing.T) {
	sales := &memSales{byID: map[string]*entity.Sale{"s-1": {ID: "s-1"}}}
	uc := NewSaleQueryUseCase(sales, &memCustomers{}, &stubUsers{}, &captureReceipts{err: errors.New("fuente")}, "")
	_, err := uc.Receipt(context.Background(), "s-1")
	assert.ErrorContains(t, err, "fuente")
}
