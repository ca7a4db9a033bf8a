package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fueldepot-api/internal/application/dto"
	"github.com/jhoicas/fueldepot-api/internal/application/purchases"
	"github.com/jhoicas/fueldepot-api/internal/domain"
)

// PurchaseHandler maneja el registro de compras de combustible.
type PurchaseHandler struct {
	uc *purchases.RecordPurchaseUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *purchases.RecordPurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// RecordPurchase godoc
// @Summary      Registrar compra de combustible
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordPurchaseRequest  true  "customer_id, fuel_type (PETROL|DIESEL), quantity (litros), date (YYYY-MM-DD, opcional)"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *PurchaseHandler) RecordPurchase(c *fiber.Ctx) error {
	var in dto.RecordPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	orderID, err := h.uc.RecordPurchase(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fuel_type debe ser PETROL o DIESEL y date formato YYYY-MM-DD"})
		}
		if err == domain.ErrInvalidQuantity {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "quantity debe ser mayor que cero"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.PurchaseResponse{OrderID: orderID})
}
