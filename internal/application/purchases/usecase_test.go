package purchases_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fueldepot-api/internal/application/dto"
	"github.com/jhoicas/fueldepot-api/internal/application/purchases"
	"github.com/jhoicas/fueldepot-api/internal/domain"
	"github.com/jhoicas/fueldepot-api/internal/domain/entity"
	"github.com/jhoicas/fueldepot-api/internal/domain/ledger"
	"github.com/jhoicas/fueldepot-api/internal/infrastructure/memory"
)

func setup(t *testing.T) (*purchases.RecordPurchaseUseCase, *memory.Store, int64) {
	t.Helper()
	store := memory.NewStore()
	uc := purchases.NewRecordPurchaseUseCase(memory.NewTxRunner(store), store.Customers())

	customer := &entity.Customer{Name: "Transporte Andina"}
	require.NoError(t, store.Customers().Create(customer))
	return uc, store, customer.ID
}

func TestRecordPurchase_CreaOrdenYAsientos(t *testing.T) {
	uc, store, custID := setup(t)

	orderID, err := uc.RecordPurchase(context.Background(), dto.RecordPurchaseRequest{
		CustomerID: custID,
		FuelType:   " petrol ",
		Quantity:   decimal.RequireFromString("50.5"),
		Date:       "2024-01-10",
	})
	require.NoError(t, err)

	order, err := store.Orders().GetByID(orderID)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, entity.FuelPetrol, order.FuelType, "el combustible se normaliza antes de guardar")
	assert.True(t, order.QuantityOrdered.Equal(decimal.RequireFromString("50.5")))
	assert.Equal(t, "2024-01-10", order.OrderDate.Format("2006-01-02"))

	// Crédito en el libro del cliente y en el del depósito.
	entries, err := store.Ledger().ListCustomerEntries(custID, ledger.Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.EntryCredit, entries[0].EntryType)
	assert.True(t, entries[0].Liters.Equal(decimal.RequireFromString("50.5")))

	whEntries, err := store.Ledger().ListWarehouseEntries(ledger.Filter{})
	require.NoError(t, err)
	require.Len(t, whEntries, 1)
	assert.Equal(t, entity.EntryCredit, whEntries[0].EntryType)
}

func TestRecordPurchase_FechaVaciaEsHoy(t *testing.T) {
	uc, store, custID := setup(t)

	orderID, err := uc.RecordPurchase(context.Background(), dto.RecordPurchaseRequest{
		CustomerID: custID,
		FuelType:   "DIESEL",
		Quantity:   decimal.RequireFromString("10"),
	})
	require.NoError(t, err)

	order, err := store.Orders().GetByID(orderID)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.False(t, order.OrderDate.IsZero())
}

func TestRecordPurchase_Validaciones(t *testing.T) {
	uc, _, custID := setup(t)
	ctx := context.Background()

	_, err := uc.RecordPurchase(ctx, dto.RecordPurchaseRequest{
		CustomerID: custID, FuelType: "JETFUEL", Quantity: decimal.RequireFromString("10"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RecordPurchase(ctx, dto.RecordPurchaseRequest{
		CustomerID: custID, FuelType: "PETROL", Quantity: decimal.RequireFromString("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = uc.RecordPurchase(ctx, dto.RecordPurchaseRequest{
		CustomerID: custID, FuelType: "PETROL", Quantity: decimal.RequireFromString("10"), Date: "10/01/2024",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RecordPurchase(ctx, dto.RecordPurchaseRequest{
		CustomerID: 999, FuelType: "PETROL", Quantity: decimal.RequireFromString("10"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
