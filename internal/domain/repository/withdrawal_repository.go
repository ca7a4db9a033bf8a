package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fueldepot-api/internal/domain/entity"
)

// WithdrawalRepository puerto de persistencia para líneas de asignación.
// Las líneas son inmutables: solo altas y lecturas.
type WithdrawalRepository interface {
	// Create asigna el ID autoincremental en la entidad.
	Create(withdrawal *entity.Withdrawal) error
	// SumByOrder devuelve la suma de qty_taken por orden para el conjunto dado.
	// Órdenes sin retiros no aparecen en el mapa.
	SumByOrder(orderIDs []int64) (map[int64]decimal.Decimal, error)
	ListByInvoice(invoiceID int64) ([]*entity.Withdrawal, error)
}
