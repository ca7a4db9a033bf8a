package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fueldepot-api/internal/application/collection"
	"github.com/jhoicas/fueldepot-api/internal/application/dto"
	"github.com/jhoicas/fueldepot-api/internal/domain"
)

// CollectionHandler maneja el ciclo de retiro: solicitud, verificación en
// bodega, confirmación de entrega, saldo disponible y documento imprimible.
type CollectionHandler struct {
	request   *collection.RequestCollectionUseCase
	lifecycle *collection.LifecycleUseCase
	document  *collection.DocumentUseCase
}

// NewCollectionHandler construye el handler.
func NewCollectionHandler(
	request *collection.RequestCollectionUseCase,
	lifecycle *collection.LifecycleUseCase,
	document *collection.DocumentUseCase,
) *CollectionHandler {
	return &CollectionHandler{request: request, lifecycle: lifecycle, document: document}
}

// RequestCollection godoc
// @Summary      Solicitar retiro de combustible (asignación FIFO)
// @Tags         collections
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CollectionRequest  true  "customer_id, fuel_type, quantity, date (opcional)"
// @Success      201   {object}  dto.CollectionInvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/collections [post]
func (h *CollectionHandler) RequestCollection(c *fiber.Ctx) error {
	var in dto.CollectionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	invoice, err := h.request.RequestCollection(c.Context(), in)
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
		if err == domain.ErrInsufficientBalance {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_BALANCE", Message: "saldo de combustible insuficiente para el retiro"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// Verify POST /api/collections/:id/verify
// Chequeo de bodega sin efectos: existencia, doble entrega, identidad.
func (h *CollectionHandler) Verify(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.VerifyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.lifecycle.Verify(c.Context(), id, in.CustomerID)
	if err != nil {
		return h.lifecycleError(c, err)
	}
	return c.JSON(result)
}

// ConfirmRelease POST /api/collections/:id/confirm
// Transición PENDING -> COLLECTED. COLLECTED es terminal.
func (h *CollectionHandler) ConfirmRelease(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.lifecycle.ConfirmRelease(c.Context(), id); err != nil {
		return h.lifecycleError(c, err)
	}
	return c.JSON(fiber.Map{"invoice_id": id, "status": "COLLECTED"})
}

// Balance GET /api/customers/:id/balance?fuel_type=PETROL
func (h *CollectionHandler) Balance(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	balance, err := h.request.AvailableBalance(c.Context(), id, c.Query("fuel_type"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fuel_type debe ser PETROL o DIESEL"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(balance)
}

// Document GET /api/collections/:id/document
// Devuelve el PDF que el cliente presenta en la bodega.
func (h *CollectionHandler) Document(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	pdf, err := h.document.InvoiceDocument(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="collection-invoice-`+c.Params("id")+`.pdf"`)
	return c.Send(pdf)
}

// lifecycleError mapea los errores del ciclo de vida de la factura.
func (h *CollectionHandler) lifecycleError(c *fiber.Ctx, err error) error {
	if err == domain.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	}
	if err == domain.ErrAlreadyCollected {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_COLLECTED", Message: "la factura ya fue entregada"})
	}
	if err == domain.ErrCustomerMismatch {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "CUSTOMER_MISMATCH", Message: "la factura no pertenece al cliente presentado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
