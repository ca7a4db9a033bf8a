package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fueldepot-api/internal/domain"
)

// EntryType tipo de asiento contable. Conjunto cerrado.
type EntryType string

const (
	EntryCredit EntryType = "CREDIT" // derecho ganado (compra)
	EntryDebit  EntryType = "DEBIT"  // derecho consumido (solicitud de retiro)
)

// ParseEntryType valida el tipo de asiento (case-insensitive).
func ParseEntryType(s string) (EntryType, error) {
	switch EntryType(strings.ToUpper(strings.TrimSpace(s))) {
	case EntryCredit:
		return EntryCredit, nil
	case EntryDebit:
		return EntryDebit, nil
	default:
		return "", domain.ErrInvalidInput
	}
}

// CustomerLedgerEntry asiento del libro mayor de un cliente. Append-only:
// nunca se modifica ni se borra (salvo cascada al eliminar el cliente).
type CustomerLedgerEntry struct {
	ID         int64
	CustomerID int64
	EntryType  EntryType
	FuelType   FuelType
	Liters     decimal.Decimal
	CreatedAt  time.Time
}

// WarehouseLedgerEntry asiento del libro mayor del depósito (sin cliente).
type WarehouseLedgerEntry struct {
	ID        int64
	EntryType EntryType
	FuelType  FuelType
	Liters    decimal.Decimal
	CreatedAt time.Time
}
