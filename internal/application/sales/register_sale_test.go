package sales

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

type memProducts struct {
	byID   map[string]*entity.Product
	locked []string
}

func (m *memProducts) clone() *memProducts {
	c := &memProducts{byID: map[string]*entity.Product{}}
	for id, p := range m.byID {
		x := *p
		c.byID[id] = &x
	}
	return c
}

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	m.byID[p.ID] = p
	return nil
}
func (m *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if p, ok := m.byID[id]; ok {
		x := *p
		return &x, nil
	}
	return nil, nil
}
func (m *memProducts) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	m.locked = append(m.locked, id)
	return m.GetByID(ctx, id)
}
func (m *memProducts) Update(_ context.Context, p *entity.Product) error {
	m.byID[p.ID] = p
	return nil
}
func (m *memProducts) UpdateStock(_ context.Context, id string, stock int) error {
	m.byID[id].Stock = stock
	return nil
}
func (m *memProducts) List(context.Context, repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}
func (m *memProducts) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

type memSales struct{ byID map[string]*entity.Sale }

func (m *memSales) Create(_ context.Context, s *entity.Sale) error {
	m.byID[s.ID] = s
	return nil
}
func (m *memSales) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	return m.byID[id], nil
}
func (m *memSales) List(context.Context, int, int) ([]*entity.Sale, error) {
	out := []*entity.Sale{}
	for _, s := range m.byID {
		out = append(out, s)
	}
	return out, nil
}
func (m *memSales) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

// fakeTx aplica los cambios sobre una copia y solo la publica si fn no falla.
type fakeTx struct {
	products *memProducts
	sales    *memSales
}

func (f *fakeTx) RunSale(_ context.Context, fn func(repository.ProductRepository, repository.SaleRepository) error) error {
	work := f.products.clone()
	staged := &memSales{byID: map[string]*entity.Sale{}}
	if err := fn(work, staged); err != nil {
		return err
	}
	f.products.byID = work.byID
	f.products.locked = append(f.products.locked, work.locked...)
	for id, s := range staged.byID {
		f.sales.byID[id] = s
	}
	return nil
}

type memCustomers struct{ byID map[string]*entity.Customer }

func (m *memCustomers) Create(context.Context, *entity.Customer) error {
	return nil
}
func (m *memCustomers) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	return m.byID[id], nil
}
func (m *memCustomers) GetByEmail(context.Context, string) (*entity.Customer, error) {
	return nil, nil
}
func (m *memCustomers) List(context.Context, int, int) ([]*entity.Customer, error) {
	return nil, nil
}
func (m *memCustomers) Update(context.Context, *entity.Customer) error {
	return nil
}
func (m *memCustomers) Delete(context.Context, string) error {
	return nil
}

func newSaleFixture() (*RegisterSaleUseCase, *fakeTx) {
	products := &memProducts{byID: map[string]*entity.Product{
		"cafe":   {ID: "cafe", Name: "Café", SalePrice: decimal.RequireFromString("4.50"), Stock: 10, Active: true},
		"azucar": {ID: "azucar", Name: "Azúcar", SalePrice: decimal.RequireFromString("1.99"), Stock: 2, Active: true},
		"viejo":  {ID: "viejo", Name: "Descontinuado", SalePrice: decimal.NewFromInt(1), Stock: 5, Active: false},
	}}
	tx := &fakeTx{products: products, sales: &memSales{byID: map[string]*entity.Sale{}}}
	customers := &memCustomers{byID: map[string]*entity.Customer{"c-1": {ID: "c-1", FirstName: "Ana", LastName: "Ruiz"}}}
	uc := NewRegisterSaleUseCase(tx, customers)
	uc.now = func() time.Time { return time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC) }
	return uc, tx
}

func TestRegister_DescuentaStockYCalculaTotal(t *testing.T) {
	uc, tx := newSaleFixture()
	customer := "c-1"

	out, err := uc.Register(context.Background(), "u-vendedor", dto.CreateSaleRequest{
		CustomerID: &customer,
		Items: []dto.SaleItemRequest{
			{ProductID: "cafe", Quantity: 2},
			{ProductID: "azucar", Quantity: 1},
			{ProductID: "cafe", Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "15.49", out.Total.StringFixed(2))
	require.Len(t, out.Items, 2)
	assert.Equal(t, 3, out.Items[0].Quantity)
	assert.Equal(t, "13.50", out.Items[0].Subtotal.StringFixed(2))
	require.NotNil(t, out.SoldBy)
	assert.Equal(t, "u-vendedor", *out.SoldBy)

	assert.Equal(t, 7, tx.products.byID["cafe"].Stock)
	assert.Equal(t, 1, tx.products.byID["azucar"].Stock)
	assert.Equal(t, []string{"cafe", "azucar"}, tx.products.locked)
	assert.Len(t, tx.sales.byID, 1)
}

func TestRegister_StockInsuficienteNoModificaNada(t *testing.T) {
	uc, tx := newSaleFixture()

	_, err := uc.Register(context.Background(), "u-1", dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: "cafe", Quantity: 1},
			{ProductID: "azucar", Quantity: 3},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 10, tx.products.byID["cafe"].Stock)
	assert.Empty(t, tx.sales.byID)
}

func TestRegister_ProductoInactivo(t *testing.T) {
	uc, _ := newSaleFixture()
	_, err := uc.Register(context.Background(), "u-1", dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "viejo", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_ClienteOProductoInexistente(t *testing.T) {
	uc, _ := newSaleFixture()
	missing := "c-404"
	_, err := uc.Register(context.Background(), "u-1", dto.CreateSaleRequest{
		CustomerID: &missing,
		Items:      []dto.SaleItemRequest{{ProductID: "cafe", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Register(context.Background(), "u-1", dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "nada", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_EntradaInvalida(t *testing.T) {
	uc, _ := newSaleFixture()
	_, err := uc.Register(context.Background(), "u-1", dto.CreateSaleRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(context.Background(), "u-1", dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "cafe", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
