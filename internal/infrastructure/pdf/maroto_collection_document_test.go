package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fueldepot-api/internal/domain/entity"
	"github.com/jhoicas/fueldepot-api/internal/infrastructure/pdf"
)

func TestGenerateCollectionPDF(t *testing.T) {
	gen := pdf.NewMarotoCollectionDocument("Depósito de Prueba")

	invoice := &entity.Invoice{
		ID:                7,
		CustomerID:        1,
		FuelType:          entity.FuelPetrol,
		QuantityCollected: decimal.RequireFromString("60"),
		RequestDate:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:            entity.StatusPending,
	}
	customer := &entity.Customer{ID: 1, Name: "Transporte Andina", Email: "andina@example.com"}
	lines := []*entity.Withdrawal{
		{ID: 1, InvoiceID: 7, OrderID: 1, QtyTaken: decimal.RequireFromString("50")},
		{ID: 2, InvoiceID: 7, OrderID: 2, QtyTaken: decimal.RequireFromString("10")},
	}

	out, err := gen.GenerateCollectionPDF(context.Background(), invoice, customer, lines)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]), "el resultado es un PDF válido")
}

func TestGenerateCollectionPDF_SinLineas(t *testing.T) {
	// Una factura sin líneas no debe romper la generación del documento.
	gen := pdf.NewMarotoCollectionDocument("Depósito de Prueba")

	invoice := &entity.Invoice{
		ID:                1,
		CustomerID:        2,
		FuelType:          entity.FuelDiesel,
		QuantityCollected: decimal.Zero,
		RequestDate:       time.Now(),
		Status:            entity.StatusCollected,
	}
	customer := &entity.Customer{ID: 2, Name: "Carga del Sur"}

	out, err := gen.GenerateCollectionPDF(context.Background(), invoice, customer, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
