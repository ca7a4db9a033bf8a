package allocation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fueldepot-api/internal/domain"
	"github.com/jhoicas/fueldepot-api/internal/domain/allocation"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPlan_ConsumeOrdenesEnOrdenFIFO(t *testing.T) {
	// Dos compras: 50 L y 30 L. Un retiro de 60 L debe agotar la primera
	// orden y tomar 10 L de la segunda.
	orders := []allocation.OrderBalance{
		{OrderID: 1, Remaining: d("50")},
		{OrderID: 2, Remaining: d("30")},
	}

	lines, err := allocation.Plan(orders, d("60"))
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, int64(1), lines[0].OrderID)
	assert.True(t, lines[0].QtyTaken.Equal(d("50")), "la primera orden se consume completa")
	assert.Equal(t, int64(2), lines[1].OrderID)
	assert.True(t, lines[1].QtyTaken.Equal(d("10")))
}

func TestPlan_SaldoInsuficienteNoProduceLineas(t *testing.T) {
	// Tras el retiro de 60 L quedan 20 L; pedir 25 L falla sin plan parcial.
	orders := []allocation.OrderBalance{
		{OrderID: 1, Remaining: d("0")},
		{OrderID: 2, Remaining: d("20")},
	}

	lines, err := allocation.Plan(orders, d("25"))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Nil(t, lines)
}

func TestPlan_RetiroExactoDelDisponible(t *testing.T) {
	orders := []allocation.OrderBalance{
		{OrderID: 1, Remaining: d("0")},
		{OrderID: 2, Remaining: d("20")},
	}

	lines, err := allocation.Plan(orders, d("20"))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int64(2), lines[0].OrderID)
	assert.True(t, lines[0].QtyTaken.Equal(d("20")))
}

func TestPlan_CantidadInvalida(t *testing.T) {
	orders := []allocation.OrderBalance{{OrderID: 1, Remaining: d("50")}}

	_, err := allocation.Plan(orders, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = allocation.Plan(orders, d("-5"))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestPlan_SinOrdenes(t *testing.T) {
	_, err := allocation.Plan(nil, d("1"))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestPlan_SaltaOrdenesAgotadas(t *testing.T) {
	orders := []allocation.OrderBalance{
		{OrderID: 1, Remaining: d("0")},
		{OrderID: 2, Remaining: d("15")},
		{OrderID: 3, Remaining: d("40")},
	}

	lines, err := allocation.Plan(orders, d("30"))
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, int64(2), lines[0].OrderID)
	assert.True(t, lines[0].QtyTaken.Equal(d("15")))
	assert.Equal(t, int64(3), lines[1].OrderID)
	assert.True(t, lines[1].QtyTaken.Equal(d("15")))
}

func TestPlan_CantidadesFraccionarias(t *testing.T) {
	// Los litros se manejan como decimales exactos, no float.
	orders := []allocation.OrderBalance{
		{OrderID: 1, Remaining: d("0.3")},
		{OrderID: 2, Remaining: d("0.3")},
		{OrderID: 3, Remaining: d("0.3")},
	}

	lines, err := allocation.Plan(orders, d("0.9"))
	require.NoError(t, err)
	require.Len(t, lines, 3)

	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.QtyTaken)
	}
	assert.True(t, total.Equal(d("0.9")), "la suma de líneas es exacta: %s", total)
}

func TestPlan_NingunaLineaExcedeElSaldoDeSuOrden(t *testing.T) {
	orders := []allocation.OrderBalance{
		{OrderID: 1, Remaining: d("12.5")},
		{OrderID: 2, Remaining: d("7.25")},
		{OrderID: 3, Remaining: d("100")},
	}

	lines, err := allocation.Plan(orders, d("40"))
	require.NoError(t, err)

	remaining := map[int64]decimal.Decimal{}
	for _, o := range orders {
		remaining[o.OrderID] = o.Remaining
	}
	total := decimal.Zero
	for _, l := range lines {
		assert.True(t, l.QtyTaken.LessThanOrEqual(remaining[l.OrderID]),
			"la línea de la orden %d no supera su saldo", l.OrderID)
		total = total.Add(l.QtyTaken)
	}
	assert.True(t, total.Equal(d("40")))
}

func TestAvailable_IgnoraSaldosNegativos(t *testing.T) {
	orders := []allocation.OrderBalance{
		{OrderID: 1, Remaining: d("-3")},
		{OrderID: 2, Remaining: d("10")},
	}
	assert.True(t, allocation.Available(orders).Equal(d("10")))
}
