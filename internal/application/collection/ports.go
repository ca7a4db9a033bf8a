package collection

import (
	"context"

	"github.com/jhoicas/fueldepot-api/internal/domain/entity"
	"github.com/jhoicas/fueldepot-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios del subsistema de retiros atados a esa tx. La asignación FIFO
// (leer órdenes, calcular plan, escribir factura + líneas + débito) debe correr
// completa dentro de una sola transacción.
type TxRunner interface {
	RunCollection(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		withdrawalRepo repository.WithdrawalRepository,
		invoiceRepo repository.InvoiceRepository,
		ledgerRepo repository.LedgerRepository,
	) error) error
}

// InvoicePDFGenerator genera el documento imprimible de la factura de retiro
// que el cliente presenta en bodega.
type InvoicePDFGenerator interface {
	GenerateCollectionPDF(
		ctx context.Context,
		invoice *entity.Invoice,
		customer *entity.Customer,
		lines []*entity.Withdrawal,
	) ([]byte, error)
}
