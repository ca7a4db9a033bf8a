package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus estado de una factura de retiro. Transición única: PENDING → COLLECTED.
type InvoiceStatus string

const (
	StatusPending   InvoiceStatus = "PENDING"   // derecho reservado, pendiente de entrega física
	StatusCollected InvoiceStatus = "COLLECTED" // entregado en bodega; estado terminal
)

// Invoice representa una factura de retiro: la reserva aprobada de una cantidad
// de combustible que el cliente presenta en bodega para su entrega.
type Invoice struct {
	ID                int64
	CustomerID        int64
	FuelType          FuelType
	QuantityCollected decimal.Decimal
	RequestDate       time.Time
	Status            InvoiceStatus
}
