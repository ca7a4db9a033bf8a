package entity

import "github.com/shopspring/decimal"

// Withdrawal línea de asignación: cantidad tomada de una orden concreta para una factura.
// Se crean en lote junto con su Invoice y son inmutables.
// Invariante: para toda Order, sum(QtyTaken de sus Withdrawals) <= QuantityOrdered.
type Withdrawal struct {
	ID        int64
	InvoiceID int64
	OrderID   int64
	QtyTaken  decimal.Decimal
}
