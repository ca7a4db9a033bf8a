package repository

import "github.com/jhoicas/fueldepot-api/internal/domain/entity"

// InvoiceRepository puerto de persistencia para facturas de retiro.
type InvoiceRepository interface {
	// Create asigna el ID autoincremental en la entidad.
	Create(invoice *entity.Invoice) error
	GetByID(id int64) (*entity.Invoice, error)
	// GetByIDForUpdate bloquea la fila de la factura dentro de la transacción
	// del caller; así dos confirmaciones concurrentes no pueden leer PENDING a la vez.
	GetByIDForUpdate(id int64) (*entity.Invoice, error)
	UpdateStatus(id int64, status entity.InvoiceStatus) error
	ListByScope(customerID int64, fuelType entity.FuelType) ([]*entity.Invoice, error)
}
