// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria, guardado por un mutex único (un operador a la vez, como el sistema
// original). Respaldo de los tests del núcleo y del modo local sin PostgreSQL.
package memory

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fueldepot-api/internal/domain"
	"github.com/jhoicas/fueldepot-api/internal/domain/entity"
	"github.com/jhoicas/fueldepot-api/internal/domain/ledger"
	"github.com/jhoicas/fueldepot-api/internal/domain/repository"
)

// Store estado compartido de todos los repositorios en memoria.
type Store struct {
	mu sync.Mutex

	customers        []entity.Customer
	orders           []entity.Order
	invoices         []entity.Invoice
	withdrawals      []entity.Withdrawal
	customerLedger   []entity.CustomerLedgerEntry
	warehouseLedger  []entity.WarehouseLedgerEntry
	nextCustomerID   int64
	nextOrderID      int64
	nextInvoiceID    int64
	nextWithdrawalID int64
	nextCustEntryID  int64
	nextWhEntryID    int64
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		nextCustomerID:   1,
		nextOrderID:      1,
		nextInvoiceID:    1,
		nextWithdrawalID: 1,
		nextCustEntryID:  1,
		nextWhEntryID:    1,
	}
}

// Repositorios atados al almacén.
func (s *Store) Customers() repository.CustomerRepository     { return &customerRepo{s} }
func (s *Store) Orders() repository.OrderRepository           { return &orderRepo{s} }
func (s *Store) Invoices() repository.InvoiceRepository       { return &invoiceRepo{s} }
func (s *Store) Withdrawals() repository.WithdrawalRepository { return &withdrawalRepo{s} }
func (s *Store) Ledger() repository.LedgerRepository          { return &ledgerRepo{s} }

// ── Customers ─────────────────────────────────────────────────────────────────

type customerRepo struct{ s *Store }

var _ repository.CustomerRepository = (*customerRepo)(nil)

func (r *customerRepo) Create(customer *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if customer.Email != "" {
		for _, c := range r.s.customers {
			if c.Email == customer.Email {
				return domain.ErrDuplicate
			}
		}
	}
	customer.ID = r.s.nextCustomerID
	r.s.nextCustomerID++
	r.s.customers = append(r.s.customers, *customer)
	return nil
}

func (r *customerRepo) GetByID(id int64) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.customers {
		if r.s.customers[i].ID == id {
			c := r.s.customers[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *customerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Customer
	for i := range r.s.customers {
		if i < offset {
			continue
		}
		if len(list) == limit {
			break
		}
		c := r.s.customers[i]
		list = append(list, &c)
	}
	return list, nil
}

func (r *customerRepo) Update(customer *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if customer.Email != "" {
		for _, c := range r.s.customers {
			if c.Email == customer.Email && c.ID != customer.ID {
				return domain.ErrDuplicate
			}
		}
	}
	for i := range r.s.customers {
		if r.s.customers[i].ID == customer.ID {
			r.s.customers[i] = *customer
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete rechaza el borrado si el cliente tiene órdenes o facturas, igual que
// las FK sin cascada del esquema PostgreSQL.
func (r *customerRepo) Delete(id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.orders {
		if o.CustomerID == id {
			return domain.ErrCustomerInUse
		}
	}
	for _, inv := range r.s.invoices {
		if inv.CustomerID == id {
			return domain.ErrCustomerInUse
		}
	}
	for i := range r.s.customers {
		if r.s.customers[i].ID == id {
			r.s.customers = append(r.s.customers[:i], r.s.customers[i+1:]...)
			// Cascada: libro mayor del cliente
			kept := r.s.customerLedger[:0]
			for _, e := range r.s.customerLedger {
				if e.CustomerID != id {
					kept = append(kept, e)
				}
			}
			r.s.customerLedger = kept
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── Orders ────────────────────────────────────────────────────────────────────

type orderRepo struct{ s *Store }

var _ repository.OrderRepository = (*orderRepo)(nil)

func (r *orderRepo) Create(order *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	order.ID = r.s.nextOrderID
	r.s.nextOrderID++
	r.s.orders = append(r.s.orders, *order)
	return nil
}

func (r *orderRepo) GetByID(id int64) (*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.orders {
		if r.s.orders[i].ID == id {
			o := r.s.orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (r *orderRepo) ListByScope(customerID int64, fuelType entity.FuelType) ([]*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Order
	// El slice crece por ID ascendente: el recorrido ya es FIFO.
	for i := range r.s.orders {
		if r.s.orders[i].CustomerID == customerID && r.s.orders[i].FuelType == fuelType {
			o := r.s.orders[i]
			list = append(list, &o)
		}
	}
	return list, nil
}

// ListByScopeForUpdate sin bloqueo de filas: el TxRunner de memoria serializa
// las transacciones completas con su mutex.
func (r *orderRepo) ListByScopeForUpdate(customerID int64, fuelType entity.FuelType) ([]*entity.Order, error) {
	return r.ListByScope(customerID, fuelType)
}

// ── Invoices ──────────────────────────────────────────────────────────────────

type invoiceRepo struct{ s *Store }

var _ repository.InvoiceRepository = (*invoiceRepo)(nil)

func (r *invoiceRepo) Create(invoice *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	invoice.ID = r.s.nextInvoiceID
	r.s.nextInvoiceID++
	r.s.invoices = append(r.s.invoices, *invoice)
	return nil
}

func (r *invoiceRepo) GetByID(id int64) (*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.invoices {
		if r.s.invoices[i].ID == id {
			inv := r.s.invoices[i]
			return &inv, nil
		}
	}
	return nil, nil
}

func (r *invoiceRepo) GetByIDForUpdate(id int64) (*entity.Invoice, error) {
	return r.GetByID(id)
}

func (r *invoiceRepo) UpdateStatus(id int64, status entity.InvoiceStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.invoices {
		if r.s.invoices[i].ID == id {
			r.s.invoices[i].Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *invoiceRepo) ListByScope(customerID int64, fuelType entity.FuelType) ([]*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Invoice
	for i := range r.s.invoices {
		if r.s.invoices[i].CustomerID == customerID && r.s.invoices[i].FuelType == fuelType {
			inv := r.s.invoices[i]
			list = append(list, &inv)
		}
	}
	return list, nil
}

// ── Withdrawals ───────────────────────────────────────────────────────────────

type withdrawalRepo struct{ s *Store }

var _ repository.WithdrawalRepository = (*withdrawalRepo)(nil)

func (r *withdrawalRepo) Create(withdrawal *entity.Withdrawal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	withdrawal.ID = r.s.nextWithdrawalID
	r.s.nextWithdrawalID++
	r.s.withdrawals = append(r.s.withdrawals, *withdrawal)
	return nil
}

func (r *withdrawalRepo) SumByOrder(orderIDs []int64) (map[int64]decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	wanted := make(map[int64]bool, len(orderIDs))
	for _, id := range orderIDs {
		wanted[id] = true
	}
	sums := make(map[int64]decimal.Decimal)
	for _, w := range r.s.withdrawals {
		if wanted[w.OrderID] {
			sums[w.OrderID] = sums[w.OrderID].Add(w.QtyTaken)
		}
	}
	return sums, nil
}

func (r *withdrawalRepo) ListByInvoice(invoiceID int64) ([]*entity.Withdrawal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Withdrawal
	for i := range r.s.withdrawals {
		if r.s.withdrawals[i].InvoiceID == invoiceID {
			w := r.s.withdrawals[i]
			list = append(list, &w)
		}
	}
	return list, nil
}

// ── Ledger ────────────────────────────────────────────────────────────────────

type ledgerRepo struct{ s *Store }

var _ repository.LedgerRepository = (*ledgerRepo)(nil)

func (r *ledgerRepo) RecordCustomerEntry(entry *entity.CustomerLedgerEntry) error {
	if entry.Liters.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	entry.ID = r.s.nextCustEntryID
	r.s.nextCustEntryID++
	r.s.customerLedger = append(r.s.customerLedger, *entry)
	return nil
}

func (r *ledgerRepo) RecordWarehouseEntry(entry *entity.WarehouseLedgerEntry) error {
	if entry.Liters.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	entry.ID = r.s.nextWhEntryID
	r.s.nextWhEntryID++
	r.s.warehouseLedger = append(r.s.warehouseLedger, *entry)
	return nil
}

func (r *ledgerRepo) ListCustomerEntries(customerID int64, f ledger.Filter) ([]*entity.CustomerLedgerEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.CustomerLedgerEntry
	for i := range r.s.customerLedger {
		e := r.s.customerLedger[i]
		if e.CustomerID != customerID || !f.MatchesFuel(e.FuelType) || !f.MatchesDate(e.CreatedAt) {
			continue
		}
		list = append(list, &e)
	}
	return list, nil
}

func (r *ledgerRepo) ListWarehouseEntries(f ledger.Filter) ([]*entity.WarehouseLedgerEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.WarehouseLedgerEntry
	for i := range r.s.warehouseLedger {
		e := r.s.warehouseLedger[i]
		if !f.MatchesFuel(e.FuelType) || !f.MatchesDate(e.CreatedAt) {
			continue
		}
		list = append(list, &e)
	}
	return list, nil
}
