package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Items ─────────────────────────────────────────────────────────────────────

// CreateItemRequest alta de artículo.
type CreateItemRequest struct {
	Code          string          `json:"code" validate:"required"`
	Name          string          `json:"name" validate:"required"`
	Description   string          `json:"description"`
	UnitID        *string         `json:"unit_id" validate:"omitempty,uuid4"`
	TaxID         *string         `json:"tax_id" validate:"omitempty,uuid4"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
}

// UpdateItemRequest actualización parcial de artículo.
type UpdateItemRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	UnitID        *string          `json:"unit_id" validate:"omitempty,uuid4"`
	TaxID         *string          `json:"tax_id" validate:"omitempty,uuid4"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
}

// ItemResponse artículo en respuestas.
type ItemResponse struct {
	ID            string          `json:"id"`
	AccountID     string          `json:"account_id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	UnitID        *string         `json:"unit_id,omitempty"`
	TaxID         *string         `json:"tax_id,omitempty"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ItemListResponse listado paginado de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// ── Parties ───────────────────────────────────────────────────────────────────

// CreatePartyRequest alta de tercero.
type CreatePartyRequest struct {
	Name    string `json:"name" validate:"required"`
	Type    string `json:"type" validate:"required,oneof=customer supplier both"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address"`
}

// UpdatePartyRequest actualización parcial de tercero.
type UpdatePartyRequest struct {
	Name    *string `json:"name"`
	Type    *string `json:"type" validate:"omitempty,oneof=customer supplier both"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address"`
}

// PartyResponse tercero en respuestas.
type PartyResponse struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PartyListResponse listado paginado de terceros.
type PartyListResponse struct {
	Items []PartyResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// ── Taxes ─────────────────────────────────────────────────────────────────────

// CreateTaxRequest alta de impuesto.
type CreateTaxRequest struct {
	Name string          `json:"name" validate:"required"`
	Rate decimal.Decimal `json:"rate"`
}

// UpdateTaxRequest actualización parcial de impuesto.
type UpdateTaxRequest struct {
	Name *string          `json:"name"`
	Rate *decimal.Decimal `json:"rate"`
}

// TaxResponse impuesto en respuestas.
type TaxResponse struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	Name      string          `json:"name"`
	Rate      decimal.Decimal `json:"rate"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TaxListResponse listado paginado de impuestos.
type TaxListResponse struct {
	Items []TaxResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}

// ── Units ─────────────────────────────────────────────────────────────────────

// CreateUnitRequest alta de unidad.
type CreateUnitRequest struct {
	Name      string `json:"name" validate:"required"`
	ShortName string `json:"short_name"`
}

// UpdateUnitRequest actualización parcial de unidad.
type UpdateUnitRequest struct {
	Name      *string `json:"name"`
	ShortName *string `json:"short_name"`
}

// UnitResponse unidad en respuestas.
type UnitResponse struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	Name      string    `json:"name"`
	ShortName string    `json:"short_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UnitListResponse listado paginado de unidades.
type UnitListResponse struct {
	Items []UnitResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
