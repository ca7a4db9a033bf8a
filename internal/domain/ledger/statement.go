// Package ledger contiene la lógica pura de conciliación de saldos:
// el estado de cuenta (compras y retiros mezclados con saldo corrido)
// y el cálculo de saldo sobre los asientos del libro mayor.
package ledger

import (
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fueldepot-api/internal/domain/entity"
)

// Line una fila del estado de cuenta del cliente.
type Line struct {
	Date      time.Time
	Type      entity.EntryType
	FuelType  entity.FuelType
	Reference string // ORD#<order_id> o INV#<invoice_id>
	Quantity  decimal.Decimal
	Balance   decimal.Decimal // saldo corrido tras aplicar esta fila
}

// BuildStatement mezcla las compras (créditos) y las facturas de retiro (débitos)
// del alcance y calcula el saldo corrido partiendo de cero.
//
// Orden: fecha ascendente; en empate de fecha van primero los créditos y dentro
// de cada tipo el id ascendente (orden estable de inserción). El saldo final debe
// coincidir siempre con el disponible que calcula el asignador para el mismo alcance.
func BuildStatement(orders []*entity.Order, invoices []*entity.Invoice, f Filter) []Line {
	lines := make([]Line, 0, len(orders)+len(invoices))
	for _, o := range orders {
		if !f.MatchesDate(o.OrderDate) {
			continue
		}
		lines = append(lines, Line{
			Date:      o.OrderDate,
			Type:      entity.EntryCredit,
			FuelType:  o.FuelType,
			Reference: "ORD#" + strconv.FormatInt(o.ID, 10),
			Quantity:  o.QuantityOrdered,
		})
	}
	for _, inv := range invoices {
		if !f.MatchesDate(inv.RequestDate) {
			continue
		}
		lines = append(lines, Line{
			Date:      inv.RequestDate,
			Type:      entity.EntryDebit,
			FuelType:  inv.FuelType,
			Reference: "INV#" + strconv.FormatInt(inv.ID, 10),
			Quantity:  inv.QuantityCollected,
		})
	}

	// Estable: conserva créditos-antes-que-débitos e id ascendente en empates.
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Date.Before(lines[j].Date)
	})

	balance := decimal.Zero
	for i := range lines {
		if lines[i].Type == entity.EntryCredit {
			balance = balance.Add(lines[i].Quantity)
		} else {
			balance = balance.Sub(lines[i].Quantity)
		}
		lines[i].Balance = balance
	}
	return lines
}

// FinalBalance saldo tras la última fila del estado de cuenta (cero si no hay filas).
func FinalBalance(lines []Line) decimal.Decimal {
	if len(lines) == 0 {
		return decimal.Zero
	}
	return lines[len(lines)-1].Balance
}

// RunningBalance calcula el saldo de un cliente sumando CREDIT y restando DEBIT
// sobre sus asientos del libro mayor.
func RunningBalance(entries []*entity.CustomerLedgerEntry) decimal.Decimal {
	balance := decimal.Zero
	for _, e := range entries {
		if e.EntryType == entity.EntryCredit {
			balance = balance.Add(e.Liters)
		} else {
			balance = balance.Sub(e.Liters)
		}
	}
	return balance
}
