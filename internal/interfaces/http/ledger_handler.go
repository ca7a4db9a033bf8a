package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fueldepot-api/internal/application/dto"
	"github.com/jhoicas/fueldepot-api/internal/application/statement"
	"github.com/jhoicas/fueldepot-api/internal/domain"
)

// LedgerHandler maneja las consultas de conciliación: estado de cuenta del
// cliente y libros mayores (cliente y depósito) con filtros de fecha.
type LedgerHandler struct {
	uc *statement.UseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *statement.UseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// Statement GET /api/customers/:id/statement?fuel_type=PETROL&on_date=...&start_date=...&end_date=...
// Compras como créditos, retiros como débitos, saldo corrido desde cero.
func (h *LedgerHandler) Statement(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	resp, err := h.uc.CustomerStatement(c.Context(), id, c.Query("fuel_type"), filterParams(c))
	if err != nil {
		return h.queryError(c, err)
	}
	return c.JSON(resp)
}

// CustomerLedger GET /api/customers/:id/ledger?fuel_type=...&on_date=...
// Asientos crudos del libro mayor del cliente, por id ascendente.
func (h *LedgerHandler) CustomerLedger(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	resp, err := h.uc.CustomerLedger(c.Context(), id, c.Query("fuel_type"), filterParams(c))
	if err != nil {
		return h.queryError(c, err)
	}
	return c.JSON(resp)
}

// WarehouseLedger GET /api/warehouse/ledger?fuel_type=...&start_date=...&end_date=...
func (h *LedgerHandler) WarehouseLedger(c *fiber.Ctx) error {
	resp, err := h.uc.WarehouseLedger(c.Context(), c.Query("fuel_type"), filterParams(c))
	if err != nil {
		return h.queryError(c, err)
	}
	return c.JSON(resp)
}

func (h *LedgerHandler) queryError(c *fiber.Ctx, err error) error {
	if err == domain.ErrInvalidInput {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fuel_type debe ser PETROL o DIESEL y las fechas van en formato YYYY-MM-DD"})
	}
	if err == domain.ErrInvalidDateRange {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE_RANGE", Message: "on_date es excluyente con start_date/end_date y end_date no puede preceder a start_date"})
	}
	if err == domain.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func filterParams(c *fiber.Ctx) statement.FilterParams {
	return statement.FilterParams{
		OnDate:    c.Query("on_date"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
}
