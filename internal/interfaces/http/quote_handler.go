package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/application/usecase"
)

// QuoteHandler maneja las peticiones HTTP para cotizaciones (protegido).
type QuoteHandler struct {
	uc *usecase.QuoteUseCase
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(uc *usecase.QuoteUseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// Create crea una cotización con sus líneas.
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDocumentRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(GetAccountID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una cotización.
func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetAccountID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza una cotización.
func (h *QuoteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDocumentRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(GetAccountID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista cotizaciones de la cuenta.
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(GetAccountID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete borra lógicamente una cotización.
func (h *QuoteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetAccountID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
