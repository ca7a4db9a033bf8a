package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fueldepot-api/internal/domain/entity"
	"github.com/jhoicas/fueldepot-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste una orden de compra y asigna su ID.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO customer_orders (customer_id, fuel_type, qty_ordered, order_date)
		VALUES ($1, $2, $3, $4)
		RETURNING order_id`
	err := r.q.QueryRow(context.Background(), query,
		order.CustomerID, order.FuelType, order.QuantityOrdered, order.OrderDate,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID. Devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByID(id int64) (*entity.Order, error) {
	query := `
		SELECT order_id, customer_id, fuel_type, qty_ordered, order_date
		FROM customer_orders WHERE order_id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CustomerID, &o.FuelType, &o.QuantityOrdered, &o.OrderDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// ListByScope lista las órdenes del alcance por order_id ascendente (orden FIFO).
func (r *OrderRepo) ListByScope(customerID int64, fuelType entity.FuelType) ([]*entity.Order, error) {
	return r.listByScope(customerID, fuelType, false)
}

// ListByScopeForUpdate igual que ListByScope pero con SELECT ... FOR UPDATE.
// Solo tiene sentido dentro de una transacción: serializa retiros concurrentes
// sobre el mismo alcance.
func (r *OrderRepo) ListByScopeForUpdate(customerID int64, fuelType entity.FuelType) ([]*entity.Order, error) {
	return r.listByScope(customerID, fuelType, true)
}

func (r *OrderRepo) listByScope(customerID int64, fuelType entity.FuelType, lock bool) ([]*entity.Order, error) {
	query := `
		SELECT order_id, customer_id, fuel_type, qty_ordered, order_date
		FROM customer_orders
		WHERE customer_id = $1 AND fuel_type = $2
		ORDER BY order_id`
	if lock {
		query += " FOR UPDATE"
	}
	rows, err := r.q.Query(context.Background(), query, customerID, fuelType)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.FuelType, &o.QuantityOrdered, &o.OrderDate); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
