package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate crea el esquema si no existe. Los libros mayores son append-only;
// las órdenes y los retiros nunca se actualizan, solo el estado de la factura.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS customers (
			id         BIGSERIAL PRIMARY KEY,
			name       TEXT NOT NULL,
			email      TEXT,
			phone      TEXT,
			address    TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_customers_email ON customers(email)`,

		`CREATE TABLE IF NOT EXISTS customer_orders (
			order_id    BIGSERIAL PRIMARY KEY,
			customer_id BIGINT NOT NULL REFERENCES customers(id),
			fuel_type   TEXT NOT NULL CHECK (fuel_type IN ('PETROL','DIESEL')),
			qty_ordered NUMERIC(14,3) NOT NULL CHECK (qty_ordered > 0),
			order_date  DATE NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_customer_orders_scope
			ON customer_orders(customer_id, fuel_type)`,

		`CREATE TABLE IF NOT EXISTS collection_invoices (
			invoice_id    BIGSERIAL PRIMARY KEY,
			customer_id   BIGINT NOT NULL REFERENCES customers(id),
			fuel_type     TEXT NOT NULL CHECK (fuel_type IN ('PETROL','DIESEL')),
			qty_collected NUMERIC(14,3) NOT NULL CHECK (qty_collected > 0),
			request_date  DATE NOT NULL,
			status        TEXT NOT NULL DEFAULT 'PENDING' CHECK (status IN ('PENDING','COLLECTED'))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_collection_invoices_scope
			ON collection_invoices(customer_id, fuel_type)`,

		`CREATE TABLE IF NOT EXISTS withdrawals (
			withdrawal_id BIGSERIAL PRIMARY KEY,
			invoice_id    BIGINT NOT NULL REFERENCES collection_invoices(invoice_id),
			order_id      BIGINT NOT NULL REFERENCES customer_orders(order_id),
			qty_taken     NUMERIC(14,3) NOT NULL CHECK (qty_taken > 0)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_withdrawals_order ON withdrawals(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_withdrawals_invoice ON withdrawals(invoice_id)`,

		`CREATE TABLE IF NOT EXISTS customer_transaction_ledger (
			id          BIGSERIAL PRIMARY KEY,
			customer_id BIGINT NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
			entry_type  TEXT NOT NULL CHECK (entry_type IN ('DEBIT','CREDIT')),
			fuel_type   TEXT NOT NULL CHECK (fuel_type IN ('PETROL','DIESEL')),
			liters      NUMERIC(14,3) NOT NULL CHECK (liters >= 0),
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_customer_ledger_customer
			ON customer_transaction_ledger(customer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_customer_ledger_fuel
			ON customer_transaction_ledger(fuel_type)`,

		`CREATE TABLE IF NOT EXISTS warehouse_transaction_ledger (
			id         BIGSERIAL PRIMARY KEY,
			entry_type TEXT NOT NULL CHECK (entry_type IN ('DEBIT','CREDIT')),
			fuel_type  TEXT NOT NULL CHECK (fuel_type IN ('PETROL','DIESEL')),
			liters     NUMERIC(14,3) NOT NULL CHECK (liters >= 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_warehouse_ledger_fuel
			ON warehouse_transaction_ledger(fuel_type)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migración: %w", err)
		}
	}
	return nil
}
