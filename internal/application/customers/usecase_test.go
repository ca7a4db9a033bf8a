package customers_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fueldepot-api/internal/application/customers"
	"github.com/jhoicas/fueldepot-api/internal/application/dto"
	"github.com/jhoicas/fueldepot-api/internal/domain"
	"github.com/jhoicas/fueldepot-api/internal/domain/entity"
	"github.com/jhoicas/fueldepot-api/internal/domain/ledger"
	"github.com/jhoicas/fueldepot-api/internal/infrastructure/memory"
)

func TestCustomer_CRUD(t *testing.T) {
	store := memory.NewStore()
	uc := customers.NewCustomerUseCase(store.Customers())
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CustomerRequest{
		Name: "  Transporte Andina  ", Email: "andina@example.com", Phone: "3001234567",
	})
	require.NoError(t, err)
	assert.Equal(t, "Transporte Andina", created.Name, "el nombre se guarda sin espacios")

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "andina@example.com", got.Email)

	updated, err := uc.Update(ctx, created.ID, dto.CustomerRequest{
		Name: "Transporte Andina SAS", Email: "andina@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Transporte Andina SAS", updated.Name)

	list, err := uc.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, uc.Delete(ctx, created.ID))
	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomer_NombreObligatorio(t *testing.T) {
	uc := customers.NewCustomerUseCase(memory.NewStore().Customers())

	_, err := uc.Create(context.Background(), dto.CustomerRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomer_EmailUnico(t *testing.T) {
	uc := customers.NewCustomerUseCase(memory.NewStore().Customers())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CustomerRequest{Name: "Uno", Email: "x@example.com"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CustomerRequest{Name: "Dos", Email: "x@example.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Editar otro cliente hacia un email ocupado también se rechaza.
	otro, err := uc.Create(ctx, dto.CustomerRequest{Name: "Dos"})
	require.NoError(t, err)
	_, err = uc.Update(ctx, otro.ID, dto.CustomerRequest{Name: "Dos", Email: "x@example.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCustomer_DeleteConHistorialDeCompras(t *testing.T) {
	store := memory.NewStore()
	uc := customers.NewCustomerUseCase(store.Customers())
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CustomerRequest{Name: "Transporte Andina"})
	require.NoError(t, err)

	order := &entity.Order{
		CustomerID:      created.ID,
		FuelType:        entity.FuelPetrol,
		QuantityOrdered: decimal.RequireFromString("50"),
	}
	require.NoError(t, store.Orders().Create(order))

	err = uc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrCustomerInUse)

	// Ni el cliente ni su orden se tocaron.
	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	kept, err := store.Orders().GetByID(order.ID)
	require.NoError(t, err)
	require.NotNil(t, kept)
}

func TestCustomer_DeleteCascadaDeAsientos(t *testing.T) {
	store := memory.NewStore()
	uc := customers.NewCustomerUseCase(store.Customers())
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CustomerRequest{Name: "Efímero"})
	require.NoError(t, err)

	require.NoError(t, store.Ledger().RecordCustomerEntry(&entity.CustomerLedgerEntry{
		CustomerID: created.ID,
		EntryType:  entity.EntryCredit,
		FuelType:   entity.FuelPetrol,
		Liters:     decimal.RequireFromString("10"),
	}))

	require.NoError(t, uc.Delete(ctx, created.ID))

	entries, err := store.Ledger().ListCustomerEntries(created.ID, ledger.Filter{})
	require.NoError(t, err)
	assert.Empty(t, entries, "los asientos del cliente caen con él")
}
