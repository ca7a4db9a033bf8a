package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fueldepot-api/internal/domain"
	"github.com/jhoicas/fueldepot-api/internal/domain/entity"
	"github.com/jhoicas/fueldepot-api/internal/domain/ledger"
	"github.com/jhoicas/fueldepot-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación de LedgerRepository sobre PostgreSQL (usable con pool o tx).
// Los asientos son append-only: solo INSERT y SELECT.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// RecordCustomerEntry inserta un asiento en el libro del cliente y asigna su ID.
func (r *LedgerRepo) RecordCustomerEntry(entry *entity.CustomerLedgerEntry) error {
	if entry.Liters.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	query := `
		INSERT INTO customer_transaction_ledger (customer_id, entry_type, fuel_type, liters, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		entry.CustomerID, entry.EntryType, entry.FuelType, entry.Liters, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("insert customer ledger entry: %w", err)
	}
	return nil
}

// RecordWarehouseEntry inserta un asiento en el libro del depósito y asigna su ID.
func (r *LedgerRepo) RecordWarehouseEntry(entry *entity.WarehouseLedgerEntry) error {
	if entry.Liters.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	query := `
		INSERT INTO warehouse_transaction_ledger (entry_type, fuel_type, liters, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		entry.EntryType, entry.FuelType, entry.Liters, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("insert warehouse ledger entry: %w", err)
	}
	return nil
}

// ListCustomerEntries lista asientos del cliente por id ascendente aplicando el filtro.
func (r *LedgerRepo) ListCustomerEntries(customerID int64, f ledger.Filter) ([]*entity.CustomerLedgerEntry, error) {
	query := `
		SELECT id, customer_id, entry_type, fuel_type, liters, created_at
		FROM customer_transaction_ledger
		WHERE customer_id = $1`
	args := []any{customerID}
	query, args = appendFilter(query, args, f)
	query += " ORDER BY id"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customer ledger: %w", err)
	}
	defer rows.Close()
	var list []*entity.CustomerLedgerEntry
	for rows.Next() {
		var e entity.CustomerLedgerEntry
		if err := rows.Scan(&e.ID, &e.CustomerID, &e.EntryType, &e.FuelType, &e.Liters, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// ListWarehouseEntries lista asientos del depósito por id ascendente aplicando el filtro.
func (r *LedgerRepo) ListWarehouseEntries(f ledger.Filter) ([]*entity.WarehouseLedgerEntry, error) {
	query := `
		SELECT id, entry_type, fuel_type, liters, created_at
		FROM warehouse_transaction_ledger
		WHERE true`
	var args []any
	query, args = appendFilter(query, args, f)
	query += " ORDER BY id"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list warehouse ledger: %w", err)
	}
	defer rows.Close()
	var list []*entity.WarehouseLedgerEntry
	for rows.Next() {
		var e entity.WarehouseLedgerEntry
		if err := rows.Scan(&e.ID, &e.EntryType, &e.FuelType, &e.Liters, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// appendFilter traduce la especificación de filtro a cláusulas WHERE.
// La comparación de fechas es por día calendario (created_at::date).
func appendFilter(query string, args []any, f ledger.Filter) (string, []any) {
	if f.FuelType != nil {
		args = append(args, *f.FuelType)
		query += fmt.Sprintf(" AND fuel_type = $%d", len(args))
	}
	if f.OnDate != nil {
		args = append(args, *f.OnDate)
		query += fmt.Sprintf(" AND created_at::date = $%d::date", len(args))
		return query, args
	}
	if f.StartDate != nil {
		args = append(args, *f.StartDate)
		query += fmt.Sprintf(" AND created_at::date >= $%d::date", len(args))
	}
	if f.EndDate != nil {
		args = append(args, *f.EndDate)
		query += fmt.Sprintf(" AND created_at::date <= $%d::date", len(args))
	}
	return query, args
}
