package collection

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fueldepot-api/internal/application/dto"
	"github.com/jhoicas/fueldepot-api/internal/domain"
	"github.com/jhoicas/fueldepot-api/internal/domain/allocation"
	"github.com/jhoicas/fueldepot-api/internal/domain/entity"
	"github.com/jhoicas/fueldepot-api/internal/domain/repository"
)

// RequestCollectionUseCase atiende solicitudes de retiro: calcula el disponible
// del alcance (cliente, combustible), reparte la cantidad pedida sobre las órdenes
// pendientes en orden FIFO y deja factura PENDING + líneas + débito en una sola
// transacción. El derecho queda reservado al solicitar, no al entregar.
type RequestCollectionUseCase struct {
	txRunner       TxRunner
	customerRepo   repository.CustomerRepository
	orderRepo      repository.OrderRepository
	withdrawalRepo repository.WithdrawalRepository
}

// NewRequestCollectionUseCase construye el caso de uso. orderRepo y
// withdrawalRepo atados al pool se usan solo para la consulta de disponible.
func NewRequestCollectionUseCase(
	txRunner TxRunner,
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	withdrawalRepo repository.WithdrawalRepository,
) *RequestCollectionUseCase {
	return &RequestCollectionUseCase{
		txRunner:       txRunner,
		customerRepo:   customerRepo,
		orderRepo:      orderRepo,
		withdrawalRepo: withdrawalRepo,
	}
}

// RequestCollection ejecuta la asignación. Si la cantidad supera el disponible
// falla con ErrInsufficientBalance sin crear fila alguna.
func (uc *RequestCollectionUseCase) RequestCollection(ctx context.Context, in dto.CollectionRequest) (*dto.CollectionInvoiceResponse, error) {
	fuel, err := entity.ParseFuelType(in.FuelType)
	if err != nil {
		return nil, err
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidQuantity
	}
	date, err := parseDateOrToday(in.Date)
	if err != nil {
		return nil, err
	}

	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	invoice := &entity.Invoice{
		CustomerID:        in.CustomerID,
		FuelType:          fuel,
		QuantityCollected: in.Quantity,
		RequestDate:       date,
		Status:            entity.StatusPending,
	}
	var created []*entity.Withdrawal

	err = uc.txRunner.RunCollection(ctx, func(
		orderRepo repository.OrderRepository,
		withdrawalRepo repository.WithdrawalRepository,
		invoiceRepo repository.InvoiceRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		// Bloquea las órdenes del alcance: dos retiros concurrentes del mismo
		// cliente y combustible se serializan aquí.
		balances, err := scopeBalances(orderRepo, withdrawalRepo, in.CustomerID, fuel, true)
		if err != nil {
			return err
		}
		lines, err := allocation.Plan(balances, in.Quantity)
		if err != nil {
			return err
		}

		if err := invoiceRepo.Create(invoice); err != nil {
			return err
		}
		for _, line := range lines {
			w := &entity.Withdrawal{
				InvoiceID: invoice.ID,
				OrderID:   line.OrderID,
				QtyTaken:  line.QtyTaken,
			}
			if err := withdrawalRepo.Create(w); err != nil {
				return err
			}
			created = append(created, w)
		}
		// Débito al solicitar: el derecho queda consumido aunque la entrega
		// física ocurra después.
		return ledgerRepo.RecordCustomerEntry(&entity.CustomerLedgerEntry{
			CustomerID: in.CustomerID,
			EntryType:  entity.EntryDebit,
			FuelType:   fuel,
			Liters:     in.Quantity,
			CreatedAt:  date,
		})
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.CollectionInvoiceResponse{
		InvoiceID:   invoice.ID,
		CustomerID:  invoice.CustomerID,
		FuelType:    invoice.FuelType.String(),
		Quantity:    invoice.QuantityCollected,
		RequestDate: invoice.RequestDate.Format("2006-01-02"),
		Status:      string(invoice.Status),
	}
	for _, w := range created {
		resp.Lines = append(resp.Lines, dto.WithdrawalLineResponse{
			WithdrawalID: w.ID,
			OrderID:      w.OrderID,
			QtyTaken:     w.QtyTaken,
		})
	}
	return resp, nil
}

// AvailableBalance devuelve el disponible del alcance sin bloquear filas.
// Usa el mismo cálculo de saldos por orden que la asignación.
func (uc *RequestCollectionUseCase) AvailableBalance(ctx context.Context, customerID int64, fuelType string) (*dto.BalanceResponse, error) {
	fuel, err := entity.ParseFuelType(fuelType)
	if err != nil {
		return nil, err
	}
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	balances, err := scopeBalances(uc.orderRepo, uc.withdrawalRepo, customerID, fuel, false)
	if err != nil {
		return nil, err
	}
	return &dto.BalanceResponse{
		CustomerID: customerID,
		FuelType:   fuel.String(),
		Available:  allocation.Available(balances),
	}, nil
}

// scopeBalances carga las órdenes del alcance (FIFO) y les resta lo ya retirado.
func scopeBalances(
	orderRepo repository.OrderRepository,
	withdrawalRepo repository.WithdrawalRepository,
	customerID int64,
	fuel entity.FuelType,
	lock bool,
) ([]allocation.OrderBalance, error) {
	var orders []*entity.Order
	var err error
	if lock {
		orders, err = orderRepo.ListByScopeForUpdate(customerID, fuel)
	} else {
		orders, err = orderRepo.ListByScope(customerID, fuel)
	}
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	withdrawn, err := withdrawalRepo.SumByOrder(ids)
	if err != nil {
		return nil, err
	}
	balances := make([]allocation.OrderBalance, 0, len(orders))
	for _, o := range orders {
		balances = append(balances, allocation.OrderBalance{
			OrderID:   o.ID,
			Remaining: o.QuantityOrdered.Sub(withdrawn[o.ID]),
		})
	}
	return balances, nil
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
