package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Comercio-api/internal/application/documents"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
)

// DeliveryNoteHandler maneja las peticiones HTTP para remisiones manuales
// (protegido). Espejo del handler de GRNs.
type DeliveryNoteHandler struct {
	uc *documents.DeliveryNoteUseCase
}

// NewDeliveryNoteHandler construye el handler.
func NewDeliveryNoteHandler(uc *documents.DeliveryNoteUseCase) *DeliveryNoteHandler {
	return &DeliveryNoteHandler{uc: uc}
}

// Create crea una remisión manual ligada a una venta.
func (h *DeliveryNoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDeliveryNoteRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetAccountID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una remisión con sus líneas.
func (h *DeliveryNoteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetAccountID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza la remisión reconciliando stock con signo invertido.
func (h *DeliveryNoteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDeliveryNoteRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetAccountID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista remisiones de la cuenta.
func (h *DeliveryNoteHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.UserContext(), GetAccountID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete revierte el decremento de stock y borra lógicamente la remisión.
func (h *DeliveryNoteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetAccountID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
