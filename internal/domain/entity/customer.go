package entity

import "time"

// Customer representa un cliente del depósito de combustible.
// El email es único en todo el sistema.
type Customer struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
}
