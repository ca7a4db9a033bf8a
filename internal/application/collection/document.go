package collection

import (
	"context"

	"github.com/jhoicas/fueldepot-api/internal/domain"
	"github.com/jhoicas/fueldepot-api/internal/domain/repository"
)

// DocumentUseCase genera el documento imprimible de la factura de retiro
// (el papel que el cliente lleva a la bodega para la verificación).
type DocumentUseCase struct {
	invoiceRepo    repository.InvoiceRepository
	withdrawalRepo repository.WithdrawalRepository
	customerRepo   repository.CustomerRepository
	generator      InvoicePDFGenerator
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(
	invoiceRepo repository.InvoiceRepository,
	withdrawalRepo repository.WithdrawalRepository,
	customerRepo repository.CustomerRepository,
	generator InvoicePDFGenerator,
) *DocumentUseCase {
	return &DocumentUseCase{
		invoiceRepo:    invoiceRepo,
		withdrawalRepo: withdrawalRepo,
		customerRepo:   customerRepo,
		generator:      generator,
	}
}

// InvoiceDocument devuelve los bytes del PDF de la factura.
func (uc *DocumentUseCase) InvoiceDocument(ctx context.Context, invoiceID int64) ([]byte, error) {
	invoice, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(invoice.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.withdrawalRepo.ListByInvoice(invoiceID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateCollectionPDF(ctx, invoice, customer, lines)
}
