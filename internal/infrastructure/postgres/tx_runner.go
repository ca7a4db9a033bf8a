package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/fueldepot-api/internal/application/collection"
	"github.com/jhoicas/fueldepot-api/internal/application/purchases"
	"github.com/jhoicas/fueldepot-api/internal/domain/repository"
)

// Ensure TxRunner implements purchases.TxRunner and collection.TxRunner.
var _ purchases.TxRunner = (*TxRunner)(nil)
var _ collection.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con los repos de compras atados a la tx y hace
// Commit o Rollback según el resultado de fn.
func (r *TxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	ledgerRepo repository.LedgerRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewOrderRepository(tx), NewLedgerRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCollection inicia una transacción con los repos del subsistema de retiros
// (asignación FIFO y ciclo de vida de la factura).
func (r *TxRunner) RunCollection(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	withdrawalRepo repository.WithdrawalRepository,
	invoiceRepo repository.InvoiceRepository,
	ledgerRepo repository.LedgerRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = fn(
		NewOrderRepository(tx),
		NewWithdrawalRepository(tx),
		NewInvoiceRepository(tx),
		NewLedgerRepository(tx),
	)
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
