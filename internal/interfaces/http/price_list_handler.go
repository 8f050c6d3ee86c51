package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/application/usecase"
)

// PriceListHandler maneja las peticiones HTTP para listas de precios (protegido).
type PriceListHandler struct {
	uc *usecase.PriceListUseCase
}

// NewPriceListHandler construye el handler.
func NewPriceListHandler(uc *usecase.PriceListUseCase) *PriceListHandler {
	return &PriceListHandler{uc: uc}
}

// Create crea una lista de precios con sus líneas.
func (h *PriceListHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePriceListRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(GetAccountID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una lista de precios.
func (h *PriceListHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetAccountID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza una lista de precios. Todo guardado toca updated_at y
// promueve la lista en la resolución de precios.
func (h *PriceListHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePriceListRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(GetAccountID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista las listas de precios de la cuenta.
func (h *PriceListHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(GetAccountID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una lista de precios.
func (h *PriceListHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetAccountID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
