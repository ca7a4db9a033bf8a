package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fueldepot-api/internal/domain/entity"
	"github.com/jhoicas/fueldepot-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la factura de retiro en estado PENDING y asigna su ID.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO collection_invoices (customer_id, fuel_type, qty_collected, request_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING invoice_id`
	err := r.q.QueryRow(context.Background(), query,
		invoice.CustomerID, invoice.FuelType, invoice.QuantityCollected,
		invoice.RequestDate, invoice.Status,
	).Scan(&invoice.ID)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID. Devuelve (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(id int64) (*entity.Invoice, error) {
	return r.getByID(id, false)
}

// GetByIDForUpdate obtiene la factura bloqueando su fila (SELECT ... FOR UPDATE).
// La confirmación de entrega relee el estado bajo este bloqueo para impedir la
// doble entrega entre confirmaciones concurrentes.
func (r *InvoiceRepo) GetByIDForUpdate(id int64) (*entity.Invoice, error) {
	return r.getByID(id, true)
}

func (r *InvoiceRepo) getByID(id int64, lock bool) (*entity.Invoice, error) {
	query := `
		SELECT invoice_id, customer_id, fuel_type, qty_collected, request_date, status
		FROM collection_invoices WHERE invoice_id = $1`
	if lock {
		query += " FOR UPDATE"
	}
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.CustomerID, &inv.FuelType, &inv.QuantityCollected,
		&inv.RequestDate, &inv.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// UpdateStatus cambia el estado de la factura. Única mutación permitida.
func (r *InvoiceRepo) UpdateStatus(id int64, status entity.InvoiceStatus) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE collection_invoices SET status = $2 WHERE invoice_id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	return nil
}

// ListByScope lista las facturas del alcance por invoice_id ascendente.
func (r *InvoiceRepo) ListByScope(customerID int64, fuelType entity.FuelType) ([]*entity.Invoice, error) {
	query := `
		SELECT invoice_id, customer_id, fuel_type, qty_collected, request_date, status
		FROM collection_invoices
		WHERE customer_id = $1 AND fuel_type = $2
		ORDER BY invoice_id`
	rows, err := r.q.Query(context.Background(), query, customerID, fuelType)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.CustomerID, &inv.FuelType, &inv.QuantityCollected,
			&inv.RequestDate, &inv.Status); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
