package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/application/usecase"
)

// TaxHandler maneja las peticiones HTTP para impuestos (protegido).
type TaxHandler struct {
	uc *usecase.TaxUseCase
}

// NewTaxHandler construye el handler.
func NewTaxHandler(uc *usecase.TaxUseCase) *TaxHandler {
	return &TaxHandler{uc: uc}
}

// Create crea un impuesto.
func (h *TaxHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaxRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(GetAccountID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un impuesto.
func (h *TaxHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetAccountID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza un impuesto.
func (h *TaxHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTaxRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(GetAccountID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista impuestos de la cuenta.
func (h *TaxHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(GetAccountID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un impuesto.
func (h *TaxHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetAccountID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
