package dto

import "github.com/shopspring/decimal"

// RecordPurchaseRequest compra de combustible: acredita derecho al cliente.
// Date en formato YYYY-MM-DD; vacío = hoy.
type RecordPurchaseRequest struct {
	CustomerID int64           `json:"customer_id"`
	FuelType   string          `json:"fuel_type"`
	Quantity   decimal.Decimal `json:"quantity"`
	Date       string          `json:"date"`
}

// PurchaseResponse resultado de registrar una compra.
type PurchaseResponse struct {
	OrderID int64 `json:"order_id"`
}

// CollectionRequest solicitud de retiro contra el saldo del cliente.
type CollectionRequest struct {
	CustomerID int64           `json:"customer_id"`
	FuelType   string          `json:"fuel_type"`
	Quantity   decimal.Decimal `json:"quantity"`
	Date       string          `json:"date"`
}

// WithdrawalLineResponse línea de asignación de la factura.
type WithdrawalLineResponse struct {
	WithdrawalID int64           `json:"withdrawal_id"`
	OrderID      int64           `json:"order_id"`
	QtyTaken     decimal.Decimal `json:"qty_taken"`
}

// CollectionInvoiceResponse factura de retiro creada (estado PENDING).
type CollectionInvoiceResponse struct {
	InvoiceID   int64                    `json:"invoice_id"`
	CustomerID  int64                    `json:"customer_id"`
	FuelType    string                   `json:"fuel_type"`
	Quantity    decimal.Decimal          `json:"quantity"`
	RequestDate string                   `json:"request_date"`
	Status      string                   `json:"status"`
	Lines       []WithdrawalLineResponse `json:"lines"`
}

// VerifyRequest identidad presentada en bodega.
type VerifyRequest struct {
	CustomerID int64 `json:"customer_id"`
}

// VerificationResponse datos que la bodega confirma antes de entregar.
type VerificationResponse struct {
	InvoiceID  int64           `json:"invoice_id"`
	CustomerID int64           `json:"customer_id"`
	FuelType   string          `json:"fuel_type"`
	Quantity   decimal.Decimal `json:"quantity"`
	Status     string          `json:"status"`
}

// BalanceResponse disponible de un alcance (cliente, combustible).
type BalanceResponse struct {
	CustomerID int64           `json:"customer_id"`
	FuelType   string          `json:"fuel_type"`
	Available  decimal.Decimal `json:"available"`
}

// StatementLineResponse fila del estado de cuenta con saldo corrido.
type StatementLineResponse struct {
	Date      string          `json:"date"`
	Type      string          `json:"type"`
	FuelType  string          `json:"fuel_type"`
	Reference string          `json:"reference"`
	Quantity  decimal.Decimal `json:"quantity"`
	Balance   decimal.Decimal `json:"balance"`
}

// StatementResponse estado de cuenta completo del alcance.
type StatementResponse struct {
	CustomerID int64                   `json:"customer_id"`
	FuelType   string                  `json:"fuel_type"`
	Lines      []StatementLineResponse `json:"lines"`
	Balance    decimal.Decimal         `json:"balance"`
}

// LedgerEntryResponse asiento del libro mayor.
type LedgerEntryResponse struct {
	ID        int64           `json:"id"`
	EntryType string          `json:"entry_type"`
	FuelType  string          `json:"fuel_type"`
	Liters    decimal.Decimal `json:"liters"`
	CreatedAt string          `json:"created_at"`
}

// LedgerResponse listado de asientos de un cliente con su saldo.
type LedgerResponse struct {
	CustomerID int64                 `json:"customer_id"`
	Entries    []LedgerEntryResponse `json:"entries"`
	Balance    decimal.Decimal       `json:"balance"`
}

// WarehouseLedgerResponse listado de asientos del depósito.
type WarehouseLedgerResponse struct {
	Entries []LedgerEntryResponse `json:"entries"`
}
