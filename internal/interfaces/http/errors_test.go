package http

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
)

func TestErrorStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{fmt.Errorf("producto x: %w", domain.ErrNotFound), fiber.StatusNotFound, "NOT_FOUND"},
		{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
		{domain.ErrUsernameTaken, fiber.StatusConflict, "DUPLICATE"},
		{fmt.Errorf("café: %w", domain.ErrInsufficientStock), fiber.StatusConflict, "INSUFFICIENT_STOCK"},
		{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
		{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
		{fmt.Errorf("otro"), fiber.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		status, code := errorStatus(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.Equal(t, tc.code, code, tc.err.Error())
	}
}

func TestDescribeValidation(t *testing.T) {
	err := validate.Struct(dto.CustomerRequest{Email: "no-es-email"})
	msg := describeValidation(err)
	assert.Contains(t, msg, "firstname: required")
	assert.Contains(t, msg, "email: email")

	sale := dto.CreateSaleRequest{Items: []dto.SaleItemRequest{{ProductID: "x", Quantity: 0}}}
	assert.Error(t, validate.Struct(sale))
}
