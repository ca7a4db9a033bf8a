package repository

import "github.com/jhoicas/fueldepot-api/internal/domain/entity"

// OrderRepository puerto de persistencia para órdenes de compra.
// Las órdenes nunca se actualizan ni se borran.
type OrderRepository interface {
	// Create asigna el ID autoincremental en la entidad.
	Create(order *entity.Order) error
	GetByID(id int64) (*entity.Order, error)
	// ListByScope devuelve las órdenes del alcance (cliente, combustible)
	// por order_id ascendente: orden FIFO de asignación.
	ListByScope(customerID int64, fuelType entity.FuelType) ([]*entity.Order, error)
	// ListByScopeForUpdate igual que ListByScope pero bloqueando las filas
	// dentro de la transacción del caller (SELECT ... FOR UPDATE), para que dos
	// retiros concurrentes del mismo alcance no observen el mismo disponible.
	ListByScopeForUpdate(customerID int64, fuelType entity.FuelType) ([]*entity.Order, error)
}
