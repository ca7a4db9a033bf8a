package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidQuantity     = errors.New("cantidad inválida")
	ErrInsufficientBalance = errors.New("saldo de combustible insuficiente")
	ErrAlreadyCollected    = errors.New("el combustible ya fue entregado")
	ErrCustomerMismatch    = errors.New("el cliente no coincide con la factura")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrCustomerInUse       = errors.New("el cliente tiene historial de combustible")
	ErrInvalidDateRange    = errors.New("filtro de fechas inválido")
)
