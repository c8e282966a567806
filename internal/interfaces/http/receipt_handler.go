package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Ansup17174/randomproject/internal/application/billing"
	"github.com/Ansup17174/randomproject/internal/application/dto"
)

// ReceiptHandler handles receipt endpoints (protected).
type ReceiptHandler struct {
	uc *billing.CreateReceiptUseCase
}

// NewReceiptHandler builds the handler.
func NewReceiptHandler(uc *billing.CreateReceiptUseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

// Create creates a receipt with the next daily print number.
// POST /api/receipts
func (h *ReceiptHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateReceipt(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID fetches one receipt with computed aggregates.
// GET /api/receipts/:id
func (h *ReceiptHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetReceipt(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List returns the user's receipts, newest first.
// GET /api/receipts
func (h *ReceiptHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.ListReceipts(c.Context(), GetUserID(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
