package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fueldepot-api/internal/domain/entity"
	"github.com/jhoicas/fueldepot-api/internal/domain/repository"
)

var _ repository.WithdrawalRepository = (*WithdrawalRepo)(nil)

// WithdrawalRepo implementación de WithdrawalRepository (usable con pool o tx).
type WithdrawalRepo struct {
	q Querier
}

// NewWithdrawalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWithdrawalRepository(q Querier) *WithdrawalRepo {
	return &WithdrawalRepo{q: q}
}

// Create persiste una línea de asignación y asigna su ID.
func (r *WithdrawalRepo) Create(withdrawal *entity.Withdrawal) error {
	query := `
		INSERT INTO withdrawals (invoice_id, order_id, qty_taken)
		VALUES ($1, $2, $3)
		RETURNING withdrawal_id`
	err := r.q.QueryRow(context.Background(), query,
		withdrawal.InvoiceID, withdrawal.OrderID, withdrawal.QtyTaken,
	).Scan(&withdrawal.ID)
	if err != nil {
		return fmt.Errorf("insert withdrawal: %w", err)
	}
	return nil
}

// SumByOrder suma qty_taken por orden para el conjunto dado.
// Órdenes sin retiros no aparecen en el mapa.
func (r *WithdrawalRepo) SumByOrder(orderIDs []int64) (map[int64]decimal.Decimal, error) {
	sums := make(map[int64]decimal.Decimal, len(orderIDs))
	if len(orderIDs) == 0 {
		return sums, nil
	}
	query := `
		SELECT order_id, COALESCE(SUM(qty_taken), 0)
		FROM withdrawals
		WHERE order_id = ANY($1)
		GROUP BY order_id`
	rows, err := r.q.Query(context.Background(), query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("sum withdrawals: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var orderID int64
		var sum decimal.Decimal
		if err := rows.Scan(&orderID, &sum); err != nil {
			return nil, fmt.Errorf("scan withdrawal sum: %w", err)
		}
		sums[orderID] = sum
	}
	return sums, rows.Err()
}

// ListByInvoice lista las líneas de una factura por withdrawal_id ascendente.
func (r *WithdrawalRepo) ListByInvoice(invoiceID int64) ([]*entity.Withdrawal, error) {
	query := `
		SELECT withdrawal_id, invoice_id, order_id, qty_taken
		FROM withdrawals WHERE invoice_id = $1 ORDER BY withdrawal_id`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list withdrawals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Withdrawal
	for rows.Next() {
		var w entity.Withdrawal
		if err := rows.Scan(&w.ID, &w.InvoiceID, &w.OrderID, &w.QtyTaken); err != nil {
			return nil, fmt.Errorf("scan withdrawal: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
