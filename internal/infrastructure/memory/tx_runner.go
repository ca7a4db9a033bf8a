package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/fueldepot-api/internal/application/collection"
	"github.com/jhoicas/fueldepot-api/internal/application/purchases"
	"github.com/jhoicas/fueldepot-api/internal/domain/repository"
)

// Ensure TxRunner implements purchases.TxRunner and collection.TxRunner.
var _ purchases.TxRunner = (*TxRunner)(nil)
var _ collection.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las "transacciones" con un mutex propio: dos asignaciones
// concurrentes nunca observan el mismo disponible. No hay rollback: los casos
// de uso validan todo antes de escribir, igual que en el flujo transaccional
// real, así que un fallo ocurre siempre antes de la primera escritura.
type TxRunner struct {
	txMu  sync.Mutex
	store *Store
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con los repos de compras.
func (r *TxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	ledgerRepo repository.LedgerRepository,
) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()
	return fn(r.store.Orders(), r.store.Ledger())
}

// RunCollection ejecuta fn con los repos del subsistema de retiros.
func (r *TxRunner) RunCollection(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	withdrawalRepo repository.WithdrawalRepository,
	invoiceRepo repository.InvoiceRepository,
	ledgerRepo repository.LedgerRepository,
) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()
	return fn(r.store.Orders(), r.store.Withdrawals(), r.store.Invoices(), r.store.Ledger())
}
