package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
)

// HeaderAccountID header que identifica la cuenta activa de la petición.
const HeaderAccountID = "X-Account-ID"

// TenantMiddleware resuelve la cuenta (tenant) de la petición: primero el
// header X-Account-ID y, en su defecto, el claim account_id del token (puesto
// en Locals por AuthMiddleware). Sin cuenta resoluble la petición se rechaza
// antes de tocar cualquier caso de uso.
func TenantMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID := c.Get(HeaderAccountID)
		if accountID == "" {
			accountID = GetAccountID(c)
		}
		if accountID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ACCOUNT", Message: "cuenta (tenant) requerida: header X-Account-ID o claim del token"})
		}
		c.Locals(LocalAccountID, accountID)
		return c.Next()
	}
}
