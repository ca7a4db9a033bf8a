package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fueldepot-api/internal/domain/entity"
	"github.com/jhoicas/fueldepot-api/internal/domain/ledger"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBuildStatement_SaldoCorrido(t *testing.T) {
	orders := []*entity.Order{
		{ID: 1, FuelType: entity.FuelPetrol, QuantityOrdered: d("50"), OrderDate: day("2024-01-10")},
		{ID: 2, FuelType: entity.FuelPetrol, QuantityOrdered: d("30"), OrderDate: day("2024-01-12")},
	}
	invoices := []*entity.Invoice{
		{ID: 1, FuelType: entity.FuelPetrol, QuantityCollected: d("60"), RequestDate: day("2024-01-15")},
	}

	lines := ledger.BuildStatement(orders, invoices, ledger.Filter{})
	require.Len(t, lines, 3)

	assert.Equal(t, "ORD#1", lines[0].Reference)
	assert.True(t, lines[0].Balance.Equal(d("50")))
	assert.Equal(t, "ORD#2", lines[1].Reference)
	assert.True(t, lines[1].Balance.Equal(d("80")))
	assert.Equal(t, "INV#1", lines[2].Reference)
	assert.Equal(t, entity.EntryDebit, lines[2].Type)
	assert.True(t, lines[2].Balance.Equal(d("20")))

	assert.True(t, ledger.FinalBalance(lines).Equal(d("20")))
}

func TestBuildStatement_EmpateDeFecha_CreditosPrimero(t *testing.T) {
	// Compra y retiro el mismo día: el crédito se aplica antes que el débito,
	// así el saldo corrido nunca baja de cero en un día con compra suficiente.
	orders := []*entity.Order{
		{ID: 7, FuelType: entity.FuelDiesel, QuantityOrdered: d("40"), OrderDate: day("2024-03-01")},
	}
	invoices := []*entity.Invoice{
		{ID: 3, FuelType: entity.FuelDiesel, QuantityCollected: d("40"), RequestDate: day("2024-03-01")},
	}

	lines := ledger.BuildStatement(orders, invoices, ledger.Filter{})
	require.Len(t, lines, 2)
	assert.Equal(t, entity.EntryCredit, lines[0].Type)
	assert.Equal(t, entity.EntryDebit, lines[1].Type)
	assert.True(t, ledger.FinalBalance(lines).Equal(decimal.Zero))
}

func TestBuildStatement_OrdenEstablePorID(t *testing.T) {
	// Varias compras el mismo día conservan el orden de inserción (id ascendente).
	orders := []*entity.Order{
		{ID: 1, FuelType: entity.FuelPetrol, QuantityOrdered: d("10"), OrderDate: day("2024-02-02")},
		{ID: 2, FuelType: entity.FuelPetrol, QuantityOrdered: d("20"), OrderDate: day("2024-02-02")},
		{ID: 3, FuelType: entity.FuelPetrol, QuantityOrdered: d("30"), OrderDate: day("2024-02-01")},
	}

	lines := ledger.BuildStatement(orders, nil, ledger.Filter{})
	require.Len(t, lines, 3)
	assert.Equal(t, "ORD#3", lines[0].Reference)
	assert.Equal(t, "ORD#1", lines[1].Reference)
	assert.Equal(t, "ORD#2", lines[2].Reference)
}

func TestBuildStatement_FiltroDeFechas(t *testing.T) {
	orders := []*entity.Order{
		{ID: 1, FuelType: entity.FuelPetrol, QuantityOrdered: d("50"), OrderDate: day("2024-01-10")},
		{ID: 2, FuelType: entity.FuelPetrol, QuantityOrdered: d("30"), OrderDate: day("2024-02-10")},
	}
	invoices := []*entity.Invoice{
		{ID: 1, FuelType: entity.FuelPetrol, QuantityCollected: d("20"), RequestDate: day("2024-02-15")},
	}

	f, err := ledger.ParseFilter("", "", "2024-02-01", "2024-02-28")
	require.NoError(t, err)

	lines := ledger.BuildStatement(orders, invoices, f)
	require.Len(t, lines, 2)
	assert.Equal(t, "ORD#2", lines[0].Reference)
	assert.Equal(t, "INV#1", lines[1].Reference)
	// El saldo corrido parte de cero dentro de la ventana filtrada.
	assert.True(t, ledger.FinalBalance(lines).Equal(d("10")))
}

func TestBuildStatement_Vacio(t *testing.T) {
	lines := ledger.BuildStatement(nil, nil, ledger.Filter{})
	assert.Empty(t, lines)
	assert.True(t, ledger.FinalBalance(lines).Equal(decimal.Zero))
}

func TestRunningBalance(t *testing.T) {
	entries := []*entity.CustomerLedgerEntry{
		{EntryType: entity.EntryCredit, Liters: d("50")},
		{EntryType: entity.EntryCredit, Liters: d("30")},
		{EntryType: entity.EntryDebit, Liters: d("60")},
	}
	assert.True(t, ledger.RunningBalance(entries).Equal(d("20")))
	assert.True(t, ledger.RunningBalance(nil).Equal(decimal.Zero))
}
