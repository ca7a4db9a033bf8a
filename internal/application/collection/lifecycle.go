package collection

import (
	"context"
	"time"

	"github.com/jhoicas/fueldepot-api/internal/application/dto"
	"github.com/jhoicas/fueldepot-api/internal/domain"
	"github.com/jhoicas/fueldepot-api/internal/domain/entity"
	"github.com/jhoicas/fueldepot-api/internal/domain/repository"
)

// LifecycleUseCase gestiona el ciclo de vida de la factura de retiro:
// verificación de identidad en bodega y confirmación de entrega.
// Única transición legal: PENDING → COLLECTED; COLLECTED es terminal.
type LifecycleUseCase struct {
	txRunner    TxRunner
	invoiceRepo repository.InvoiceRepository
}

// NewLifecycleUseCase construye el caso de uso. invoiceRepo atado al pool se
// usa solo para la verificación (lectura sin efectos).
func NewLifecycleUseCase(txRunner TxRunner, invoiceRepo repository.InvoiceRepository) *LifecycleUseCase {
	return &LifecycleUseCase{txRunner: txRunner, invoiceRepo: invoiceRepo}
}

// Verify comprueba factura e identidad antes de la entrega. Orden de chequeos:
// existencia, doble entrega, identidad. No tiene efectos sobre el estado.
func (uc *LifecycleUseCase) Verify(ctx context.Context, invoiceID, presentedCustomerID int64) (*dto.VerificationResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if invoice.Status == entity.StatusCollected {
		return nil, domain.ErrAlreadyCollected
	}
	if invoice.CustomerID != presentedCustomerID {
		return nil, domain.ErrCustomerMismatch
	}
	return &dto.VerificationResponse{
		InvoiceID:  invoice.ID,
		CustomerID: invoice.CustomerID,
		FuelType:   invoice.FuelType.String(),
		Quantity:   invoice.QuantityCollected,
		Status:     string(invoice.Status),
	}, nil
}

// ConfirmRelease pasa la factura de PENDING a COLLECTED y debita el libro del
// depósito (el combustible sale físicamente al confirmar). El estado se relee
// bajo bloqueo de fila dentro de la transacción: una segunda confirmación
// concurrente o repetida falla con ErrAlreadyCollected, nunca entrega dos veces.
func (uc *LifecycleUseCase) ConfirmRelease(ctx context.Context, invoiceID int64) error {
	return uc.txRunner.RunCollection(ctx, func(
		_ repository.OrderRepository,
		_ repository.WithdrawalRepository,
		invoiceRepo repository.InvoiceRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		invoice, err := invoiceRepo.GetByIDForUpdate(invoiceID)
		if err != nil {
			return err
		}
		if invoice == nil {
			return domain.ErrNotFound
		}
		if invoice.Status == entity.StatusCollected {
			return domain.ErrAlreadyCollected
		}
		if err := invoiceRepo.UpdateStatus(invoiceID, entity.StatusCollected); err != nil {
			return err
		}
		// El asiento lleva la fecha de la confirmación, no la del pedido:
		// el combustible sale del depósito ahora.
		return ledgerRepo.RecordWarehouseEntry(&entity.WarehouseLedgerEntry{
			EntryType: entity.EntryDebit,
			FuelType:  invoice.FuelType,
			Liters:    invoice.QuantityCollected,
			CreatedAt: time.Now(),
		})
	})
}
