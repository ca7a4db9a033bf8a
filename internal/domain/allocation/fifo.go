// Package allocation implementa el reparto FIFO de un retiro sobre las
// órdenes de compra pendientes de un cliente. Lógica pura, sin persistencia:
// el caso de uso carga las órdenes, calcula el plan aquí y persiste el resultado
// en una sola transacción.
package allocation

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fueldepot-api/internal/domain"
)

// OrderBalance saldo pendiente de una orden de compra. Remaining puede ser
// negativo solo ante datos corruptos; Available lo trata como cero.
type OrderBalance struct {
	OrderID   int64
	Remaining decimal.Decimal
}

// Line línea del plan de retiro: cantidad a tomar de una orden.
type Line struct {
	OrderID  int64
	QtyTaken decimal.Decimal
}

// Available suma los saldos positivos de las órdenes del alcance (cliente, combustible).
func Available(orders []OrderBalance) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		if o.Remaining.GreaterThan(decimal.Zero) {
			total = total.Add(o.Remaining)
		}
	}
	return total
}

// Plan reparte requested sobre las órdenes en el orden recibido (el caller las
// carga por order_id ascendente: compra más antigua primero). Consume cada orden
// por completo antes de tocar la siguiente.
//
// Falla con ErrInvalidQuantity si requested <= 0 y con ErrInsufficientBalance si
// requested supera el disponible; en ambos casos no se produce plan alguno.
// Garantía: ninguna línea hace que el acumulado retirado de una orden supere
// su cantidad comprada.
func Plan(orders []OrderBalance, requested decimal.Decimal) ([]Line, error) {
	if !requested.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidQuantity
	}
	if requested.GreaterThan(Available(orders)) {
		return nil, domain.ErrInsufficientBalance
	}

	var lines []Line
	left := requested
	for _, o := range orders {
		if !left.GreaterThan(decimal.Zero) {
			break
		}
		if !o.Remaining.GreaterThan(decimal.Zero) {
			continue
		}
		take := decimal.Min(o.Remaining, left)
		lines = append(lines, Line{OrderID: o.OrderID, QtyTaken: take})
		left = left.Sub(take)
	}
	return lines, nil
}
