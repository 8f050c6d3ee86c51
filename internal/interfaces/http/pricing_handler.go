package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Comercio-api/internal/application/pricing"
)

// PricingHandler expone la resolución de precio efectivo (protegido).
type PricingHandler struct {
	resolver *pricing.Resolver
}

// NewPricingHandler construye el handler.
func NewPricingHandler(resolver *pricing.Resolver) *PricingHandler {
	return &PricingHandler{resolver: resolver}
}

// Effective godoc
// @Summary      Precio efectivo para pre-llenar una línea
// @Tags         pricing
// @Security     Bearer
// @Produce      json
// @Param        item_id   query  string  true  "ID del artículo"
// @Param        party_id  query  string  true  "ID del tercero"
// @Param        doc_type  query  string  true  "SALE o PURCHASE"
// @Success      200  {object}  dto.EffectivePriceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/price/effective [get]
func (h *PricingHandler) Effective(c *fiber.Ctx) error {
	out, err := h.resolver.Resolve(
		c.UserContext(),
		GetAccountID(c),
		c.Query("item_id"),
		c.Query("party_id"),
		c.Query("doc_type"),
	)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
