package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Comercio-api/internal/application/documents"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
)

// GrnHandler maneja las peticiones HTTP para GRNs manuales (protegido).
// Solo aplica cuando la cuenta tiene enable_grns activo; en modo automático
// las GRNs nacen de la compra.
type GrnHandler struct {
	uc *documents.GrnUseCase
}

// NewGrnHandler construye el handler.
func NewGrnHandler(uc *documents.GrnUseCase) *GrnHandler {
	return &GrnHandler{uc: uc}
}

// Create godoc
// @Summary      Crear GRN manual
// @Tags         grns
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGrnRequest  true  "Datos de la GRN"
// @Success      201   {object}  dto.GrnResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/grns [post]
func (h *GrnHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGrnRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetAccountID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una GRN con sus líneas.
func (h *GrnHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetAccountID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza la GRN con el protocolo reverse -> mutar -> re-aplicar.
func (h *GrnHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateGrnRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetAccountID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista GRNs de la cuenta.
func (h *GrnHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.UserContext(), GetAccountID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete revierte el efecto en stock y borra lógicamente la GRN.
func (h *GrnHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetAccountID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
