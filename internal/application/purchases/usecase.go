package purchases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fueldepot-api/internal/application/dto"
	"github.com/jhoicas/fueldepot-api/internal/domain"
	"github.com/jhoicas/fueldepot-api/internal/domain/entity"
	"github.com/jhoicas/fueldepot-api/internal/domain/repository"
)

// RecordPurchaseUseCase registra una compra de combustible: crea la orden
// (entrada del libro de órdenes) y acredita el derecho en el libro mayor del
// cliente y del depósito, todo en una sola transacción.
type RecordPurchaseUseCase struct {
	txRunner     TxRunner
	customerRepo repository.CustomerRepository
}

// NewRecordPurchaseUseCase construye el caso de uso.
func NewRecordPurchaseUseCase(txRunner TxRunner, customerRepo repository.CustomerRepository) *RecordPurchaseUseCase {
	return &RecordPurchaseUseCase{txRunner: txRunner, customerRepo: customerRepo}
}

// RecordPurchase valida la entrada y persiste orden + créditos. Devuelve el order_id.
func (uc *RecordPurchaseUseCase) RecordPurchase(ctx context.Context, in dto.RecordPurchaseRequest) (int64, error) {
	fuel, err := entity.ParseFuelType(in.FuelType)
	if err != nil {
		return 0, err
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return 0, domain.ErrInvalidQuantity
	}
	date, err := parseDateOrToday(in.Date)
	if err != nil {
		return 0, err
	}

	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return 0, err
	}
	if customer == nil {
		return 0, domain.ErrNotFound
	}

	order := &entity.Order{
		CustomerID:      in.CustomerID,
		FuelType:        fuel,
		QuantityOrdered: in.Quantity,
		OrderDate:       date,
	}

	err = uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		if err := ledgerRepo.RecordCustomerEntry(&entity.CustomerLedgerEntry{
			CustomerID: in.CustomerID,
			EntryType:  entity.EntryCredit,
			FuelType:   fuel,
			Liters:     in.Quantity,
			CreatedAt:  date,
		}); err != nil {
			return err
		}
		// El depósito recibe el combustible comprado.
		return ledgerRepo.RecordWarehouseEntry(&entity.WarehouseLedgerEntry{
			EntryType: entity.EntryCredit,
			FuelType:  fuel,
			Liters:    in.Quantity,
			CreatedAt: date,
		})
	})
	if err != nil {
		return 0, err
	}
	return order.ID, nil
}

// parseDateOrToday acepta YYYY-MM-DD; vacío = fecha de hoy.
func parseDateOrToday(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}
