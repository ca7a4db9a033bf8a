package repository

import (
	"github.com/jhoicas/fueldepot-api/internal/domain/entity"
	"github.com/jhoicas/fueldepot-api/internal/domain/ledger"
)

// LedgerRepository puerto de persistencia para los libros mayores (append-only).
// Los asientos nunca se modifican ni se borran.
type LedgerRepository interface {
	// RecordCustomerEntry inserta un asiento en el libro del cliente y asigna su ID.
	// Rechaza liters negativos con domain.ErrInvalidInput.
	RecordCustomerEntry(entry *entity.CustomerLedgerEntry) error
	// RecordWarehouseEntry inserta un asiento en el libro del depósito y asigna su ID.
	RecordWarehouseEntry(entry *entity.WarehouseLedgerEntry) error
	// ListCustomerEntries lista por id ascendente aplicando el filtro.
	ListCustomerEntries(customerID int64, f ledger.Filter) ([]*entity.CustomerLedgerEntry, error)
	// ListWarehouseEntries lista por id ascendente aplicando el filtro.
	ListWarehouseEntries(f ledger.Filter) ([]*entity.WarehouseLedgerEntry, error)
}
