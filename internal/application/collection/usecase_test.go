package collection_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fueldepot-api/internal/application/collection"
	"github.com/jhoicas/fueldepot-api/internal/application/customers"
	"github.com/jhoicas/fueldepot-api/internal/application/dto"
	"github.com/jhoicas/fueldepot-api/internal/application/purchases"
	"github.com/jhoicas/fueldepot-api/internal/application/statement"
	"github.com/jhoicas/fueldepot-api/internal/domain"
	"github.com/jhoicas/fueldepot-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	store      *memory.Store
	customers  *customers.CustomerUseCase
	purchase   *purchases.RecordPurchaseUseCase
	request    *collection.RequestCollectionUseCase
	lifecycle  *collection.LifecycleUseCase
	statements *statement.UseCase
}

// newEnv arma el grafo de casos de uso sobre el almacén en memoria.
func newEnv(t *testing.T) *testEnv {
	t.Helper()
	store := memory.NewStore()
	tx := memory.NewTxRunner(store)
	return &testEnv{
		store:     store,
		customers: customers.NewCustomerUseCase(store.Customers()),
		purchase:  purchases.NewRecordPurchaseUseCase(tx, store.Customers()),
		request: collection.NewRequestCollectionUseCase(
			tx, store.Customers(), store.Orders(), store.Withdrawals(),
		),
		lifecycle:  collection.NewLifecycleUseCase(tx, store.Invoices()),
		statements: statement.New(store.Customers(), store.Orders(), store.Invoices(), store.Ledger()),
	}
}

// newCustomer da de alta un cliente y devuelve su id.
func (e *testEnv) newCustomer(t *testing.T, name string) int64 {
	t.Helper()
	c, err := e.customers.Create(context.Background(), dto.CustomerRequest{Name: name})
	require.NoError(t, err)
	return c.ID
}

// buy registra una compra de litros de petrol para el cliente.
func (e *testEnv) buy(t *testing.T, customerID int64, fuel, qty, date string) int64 {
	t.Helper()
	orderID, err := e.purchase.RecordPurchase(context.Background(), dto.RecordPurchaseRequest{
		CustomerID: customerID,
		FuelType:   fuel,
		Quantity:   decimal.RequireFromString(qty),
		Date:       date,
	})
	require.NoError(t, err)
	return orderID
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// Solicitud de retiro (asignación FIFO)
// ──────────────────────────────────────────────────────────────────────────────

func TestRequestCollection_AsignacionFIFO(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	custID := env.newCustomer(t, "Transporte Andina")

	order1 := env.buy(t, custID, "PETROL", "50", "2024-01-10")
	order2 := env.buy(t, custID, "PETROL", "30", "2024-01-12")

	inv, err := env.request.RequestCollection(ctx, dto.CollectionRequest{
		CustomerID: custID,
		FuelType:   "petrol",
		Quantity:   d("60"),
		Date:       "2024-01-15",
	})
	require.NoError(t, err)

	assert.Equal(t, "PENDING", inv.Status)
	assert.Equal(t, "PETROL", inv.FuelType)
	require.Len(t, inv.Lines, 2)
	assert.Equal(t, order1, inv.Lines[0].OrderID)
	assert.True(t, inv.Lines[0].QtyTaken.Equal(d("50")), "agota primero la compra más antigua")
	assert.Equal(t, order2, inv.Lines[1].OrderID)
	assert.True(t, inv.Lines[1].QtyTaken.Equal(d("10")))

	balance, err := env.request.AvailableBalance(ctx, custID, "PETROL")
	require.NoError(t, err)
	assert.True(t, balance.Available.Equal(d("20")))
}

func TestRequestCollection_SaldoInsuficienteSinEfectos(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	custID := env.newCustomer(t, "Transporte Andina")
	env.buy(t, custID, "PETROL", "50", "2024-01-10")
	env.buy(t, custID, "PETROL", "30", "2024-01-12")

	_, err := env.request.RequestCollection(ctx, dto.CollectionRequest{
		CustomerID: custID, FuelType: "PETROL", Quantity: d("60"), Date: "2024-01-15",
	})
	require.NoError(t, err)

	// Quedan 20 L; pedir 25 L falla y no deja factura, líneas ni débito.
	_, err = env.request.RequestCollection(ctx, dto.CollectionRequest{
		CustomerID: custID, FuelType: "PETROL", Quantity: d("25"), Date: "2024-01-16",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	balance, err := env.request.AvailableBalance(ctx, custID, "PETROL")
	require.NoError(t, err)
	assert.True(t, balance.Available.Equal(d("20")), "el rechazo no altera el disponible")

	// El retiro exacto del disponible sigue siendo posible.
	inv, err := env.request.RequestCollection(ctx, dto.CollectionRequest{
		CustomerID: custID, FuelType: "PETROL", Quantity: d("20"), Date: "2024-01-17",
	})
	require.NoError(t, err)
	require.Len(t, inv.Lines, 1)
	assert.True(t, inv.Lines[0].QtyTaken.Equal(d("20")))
}

func TestRequestCollection_AlcancePorCombustible(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	custID := env.newCustomer(t, "Transporte Andina")
	env.buy(t, custID, "PETROL", "50", "")
	env.buy(t, custID, "DIESEL", "100", "")

	// El diesel comprado no respalda retiros de petrol.
	_, err := env.request.RequestCollection(ctx, dto.CollectionRequest{
		CustomerID: custID, FuelType: "PETROL", Quantity: d("80"),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	diesel, err := env.request.AvailableBalance(ctx, custID, "DIESEL")
	require.NoError(t, err)
	assert.True(t, diesel.Available.Equal(d("100")))
}

func TestRequestCollection_Validaciones(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	custID := env.newCustomer(t, "Transporte Andina")

	_, err := env.request.RequestCollection(ctx, dto.CollectionRequest{
		CustomerID: custID, FuelType: "KEROSENE", Quantity: d("10"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.request.RequestCollection(ctx, dto.CollectionRequest{
		CustomerID: custID, FuelType: "PETROL", Quantity: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = env.request.RequestCollection(ctx, dto.CollectionRequest{
		CustomerID: 999, FuelType: "PETROL", Quantity: d("10"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida: verificación y confirmación
// ──────────────────────────────────────────────────────────────────────────────

func TestVerify_Chequeos(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	custID := env.newCustomer(t, "Transporte Andina")
	otherID := env.newCustomer(t, "Carga del Sur")
	env.buy(t, custID, "DIESEL", "40", "")

	inv, err := env.request.RequestCollection(ctx, dto.CollectionRequest{
		CustomerID: custID, FuelType: "DIESEL", Quantity: d("15"),
	})
	require.NoError(t, err)

	// Factura inexistente
	_, err = env.lifecycle.Verify(ctx, 999, custID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Identidad equivocada
	_, err = env.lifecycle.Verify(ctx, inv.InvoiceID, otherID)
	assert.ErrorIs(t, err, domain.ErrCustomerMismatch)

	// Verificación correcta: sin efectos sobre el estado
	result, err := env.lifecycle.Verify(ctx, inv.InvoiceID, custID)
	require.NoError(t, err)
	assert.Equal(t, "PENDING", result.Status)
	assert.True(t, result.Quantity.Equal(d("15")))

	again, err := env.lifecycle.Verify(ctx, inv.InvoiceID, custID)
	require.NoError(t, err)
	assert.Equal(t, "PENDING", again.Status, "verificar no consume la factura")
}

func TestConfirmRelease_EntregaUnicaVez(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	custID := env.newCustomer(t, "Transporte Andina")
	env.buy(t, custID, "PETROL", "40", "")

	inv, err := env.request.RequestCollection(ctx, dto.CollectionRequest{
		CustomerID: custID, FuelType: "PETROL", Quantity: d("40"),
	})
	require.NoError(t, err)

	require.NoError(t, env.lifecycle.ConfirmRelease(ctx, inv.InvoiceID))

	// Repetir la confirmación falla: COLLECTED es terminal.
	err = env.lifecycle.ConfirmRelease(ctx, inv.InvoiceID)
	assert.ErrorIs(t, err, domain.ErrAlreadyCollected)

	// La verificación tras la entrega también se rechaza, antes que la identidad.
	_, err = env.lifecycle.Verify(ctx, inv.InvoiceID, 999)
	assert.ErrorIs(t, err, domain.ErrAlreadyCollected)
}

func TestConfirmRelease_DebitaElLibroDelDeposito(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	custID := env.newCustomer(t, "Transporte Andina")
	env.buy(t, custID, "DIESEL", "100", "2024-05-01")

	inv, err := env.request.RequestCollection(ctx, dto.CollectionRequest{
		CustomerID: custID, FuelType: "DIESEL", Quantity: d("30"), Date: "2024-05-02",
	})
	require.NoError(t, err)
	require.NoError(t, env.lifecycle.ConfirmRelease(ctx, inv.InvoiceID))

	wh, err := env.statements.WarehouseLedger(ctx, "DIESEL", statement.FilterParams{})
	require.NoError(t, err)
	require.Len(t, wh.Entries, 2)
	assert.Equal(t, "CREDIT", wh.Entries[0].EntryType, "la compra acredita el depósito")
	assert.Equal(t, "DEBIT", wh.Entries[1].EntryType, "la entrega debita el depósito")
	assert.True(t, wh.Entries[1].Liters.Equal(d("30")))
	assert.Equal(t, time.Now().Format("2006-01-02"), wh.Entries[1].CreatedAt,
		"el débito lleva la fecha de la entrega, no la del pedido")
}

// ──────────────────────────────────────────────────────────────────────────────
// Conciliación: el estado de cuenta reproduce el disponible del asignador
// ──────────────────────────────────────────────────────────────────────────────

func TestStatement_CoincideConElDisponible(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	custID := env.newCustomer(t, "Transporte Andina")
	env.buy(t, custID, "PETROL", "50", "2024-01-10")
	env.buy(t, custID, "PETROL", "30", "2024-01-12")

	_, err := env.request.RequestCollection(ctx, dto.CollectionRequest{
		CustomerID: custID, FuelType: "PETROL", Quantity: d("60"), Date: "2024-01-15",
	})
	require.NoError(t, err)

	st, err := env.statements.CustomerStatement(ctx, custID, "PETROL", statement.FilterParams{})
	require.NoError(t, err)
	require.Len(t, st.Lines, 3)

	balance, err := env.request.AvailableBalance(ctx, custID, "PETROL")
	require.NoError(t, err)
	assert.True(t, st.Balance.Equal(balance.Available),
		"estado de cuenta %s vs disponible %s", st.Balance, balance.Available)

	// El libro mayor del cliente llega al mismo saldo por su propio camino.
	lg, err := env.statements.CustomerLedger(ctx, custID, "PETROL", statement.FilterParams{})
	require.NoError(t, err)
	assert.True(t, lg.Balance.Equal(balance.Available))
}

func TestStatement_FiltroInvalido(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	custID := env.newCustomer(t, "Transporte Andina")

	_, err := env.statements.CustomerStatement(ctx, custID, "PETROL", statement.FilterParams{
		OnDate: "2024-01-10", StartDate: "2024-01-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	_, err = env.statements.CustomerLedger(ctx, custID, "", statement.FilterParams{
		StartDate: "01-01-2024",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha malformada: error de entrada")
}
