package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/sales"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":         "$0.00",
		"9.5":       "$9.50",
		"1234.567":  "$1,234.57",
		"1000000":   "$1,000,000.00",
		"-25000.10": "-$25,000.10",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "N° 1A2B3C4D", ShortID("1a2b3c4d-0000-0000-0000-000000000000"))
	assert.Equal(t, "N° AB", ShortID("ab"))
}

func TestGenerateSaleReceipt(t *testing.T) {
	pid := "p-1"
	sale := &entity.Sale{
		ID:     "1a2b3c4d-0000-0000-0000-000000000000",
		SoldAt: time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC),
		Total:  decimal.RequireFromString("9.00"),
		Items: []entity.SaleItem{{
			ProductID: &pid, ProductName: "Café", Quantity: 2,
			UnitPrice: decimal.RequireFromString("4.50"), Subtotal: decimal.RequireFromString("9.00"),
		}},
	}

	out, err := NewMarotoReceiptGenerator().GenerateSaleReceipt(sales.ReceiptData{
		StoreName: "Mi Tienda",
		Sale:      sale,
		Customer:  &entity.Customer{FirstName: "Ana", LastName: "Ruiz"},
		Seller:    "vendedor1",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	_, err = NewMarotoReceiptGenerator().GenerateSaleReceipt(sales.ReceiptData{})
	assert.Error(t, err)
}
