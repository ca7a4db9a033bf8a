// Package statement implementa la conciliación de saldos de cara al operador:
// el estado de cuenta mezclado (compras y retiros con saldo corrido) y los
// listados crudos de los libros mayores con filtros de fecha.
package statement

import (
	"context"

	"github.com/jhoicas/fueldepot-api/internal/application/dto"
	"github.com/jhoicas/fueldepot-api/internal/domain"
	"github.com/jhoicas/fueldepot-api/internal/domain/entity"
	"github.com/jhoicas/fueldepot-api/internal/domain/ledger"
	"github.com/jhoicas/fueldepot-api/internal/domain/repository"
)

// UseCase consultas de estado de cuenta y libros mayores.
type UseCase struct {
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	invoiceRepo  repository.InvoiceRepository
	ledgerRepo   repository.LedgerRepository
}

// New construye el caso de uso.
func New(
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	invoiceRepo repository.InvoiceRepository,
	ledgerRepo repository.LedgerRepository,
) *UseCase {
	return &UseCase{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		invoiceRepo:  invoiceRepo,
		ledgerRepo:   ledgerRepo,
	}
}

// FilterParams parámetros crudos del operador para filtrar por fecha.
// OnDate es mutuamente excluyente con StartDate/EndDate.
type FilterParams struct {
	OnDate    string
	StartDate string
	EndDate   string
}

// CustomerStatement arma el estado de cuenta del alcance (cliente, combustible):
// compras como créditos, facturas de retiro como débitos, saldo corrido desde cero.
// El saldo final reproduce el disponible del asignador para el mismo alcance.
func (uc *UseCase) CustomerStatement(ctx context.Context, customerID int64, fuelType string, p FilterParams) (*dto.StatementResponse, error) {
	fuel, err := entity.ParseFuelType(fuelType)
	if err != nil {
		return nil, err
	}
	f, err := ledger.ParseFilter("", p.OnDate, p.StartDate, p.EndDate)
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

	orders, err := uc.orderRepo.ListByScope(customerID, fuel)
	if err != nil {
		return nil, err
	}
	invoices, err := uc.invoiceRepo.ListByScope(customerID, fuel)
	if err != nil {
		return nil, err
	}

	lines := ledger.BuildStatement(orders, invoices, f)
	resp := &dto.StatementResponse{
		CustomerID: customerID,
		FuelType:   fuel.String(),
		Lines:      make([]dto.StatementLineResponse, 0, len(lines)),
		Balance:    ledger.FinalBalance(lines),
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, dto.StatementLineResponse{
			Date:      l.Date.Format("2006-01-02"),
			Type:      string(l.Type),
			FuelType:  l.FuelType.String(),
			Reference: l.Reference,
			Quantity:  l.Quantity,
			Balance:   l.Balance,
		})
	}
	return resp, nil
}

// CustomerLedger lista los asientos del libro mayor del cliente (append-only,
// por id ascendente) y su saldo según el filtro.
func (uc *UseCase) CustomerLedger(ctx context.Context, customerID int64, fuelType string, p FilterParams) (*dto.LedgerResponse, error) {
	f, err := ledger.ParseFilter(fuelType, p.OnDate, p.StartDate, p.EndDate)
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
	entries, err := uc.ledgerRepo.ListCustomerEntries(customerID, f)
	if err != nil {
		return nil, err
	}
	resp := &dto.LedgerResponse{
		CustomerID: customerID,
		Entries:    make([]dto.LedgerEntryResponse, 0, len(entries)),
		Balance:    ledger.RunningBalance(entries),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, dto.LedgerEntryResponse{
			ID:        e.ID,
			EntryType: string(e.EntryType),
			FuelType:  e.FuelType.String(),
			Liters:    e.Liters,
			CreatedAt: e.CreatedAt.Format("2006-01-02"),
		})
	}
	return resp, nil
}

// WarehouseLedger lista los asientos del libro mayor del depósito según el filtro.
func (uc *UseCase) WarehouseLedger(ctx context.Context, fuelType string, p FilterParams) (*dto.WarehouseLedgerResponse, error) {
	f, err := ledger.ParseFilter(fuelType, p.OnDate, p.StartDate, p.EndDate)
	if err != nil {
		return nil, err
	}
	entries, err := uc.ledgerRepo.ListWarehouseEntries(f)
	if err != nil {
		return nil, err
	}
	resp := &dto.WarehouseLedgerResponse{Entries: make([]dto.LedgerEntryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, dto.LedgerEntryResponse{
			ID:        e.ID,
			EntryType: string(e.EntryType),
			FuelType:  e.FuelType.String(),
			Liters:    e.Liters,
			CreatedAt: e.CreatedAt.Format("2006-01-02"),
		})
	}
	return resp, nil
}
