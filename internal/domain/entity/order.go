package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa una compra de combustible (registro de derecho adquirido).
// Inmutable una vez creada; lo retirado hasta la fecha no se guarda aquí,
// se deriva de la suma de sus Withdrawals.
type Order struct {
	ID              int64
	CustomerID      int64
	FuelType        FuelType
	QuantityOrdered decimal.Decimal
	OrderDate       time.Time
}
