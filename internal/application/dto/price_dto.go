package dto

import "github.com/shopspring/decimal"

// EffectivePriceResponse precio sugerido para pre-llenar una línea nueva.
// Source identifica la fuente ganadora ("Last Sale", "Last Quote",
// "Last Purchase", "Price List: <nombre>" o "None").
type EffectivePriceResponse struct {
	Price  decimal.Decimal `json:"price"`
	Source string          `json:"source"`
}

// PriceListItemRequest línea de lista de precios.
type PriceListItemRequest struct {
	ItemID string          `json:"item_id" validate:"required,uuid4"`
	Price  decimal.Decimal `json:"price" validate:"required"`
}

// CreatePriceListRequest alta de lista de precios.
type CreatePriceListRequest struct {
	Name  string                 `json:"name" validate:"required"`
	Items []PriceListItemRequest `json:"items" validate:"omitempty,dive"`
}

// UpdatePriceListRequest actualización de lista de precios.
// Items no-nil reemplaza las líneas completas (y toca updated_at).
type UpdatePriceListRequest struct {
	Name  *string                `json:"name"`
	Items []PriceListItemRequest `json:"items" validate:"omitempty,dive"`
}

// PriceListItemResponse línea de lista en respuestas.
type PriceListItemResponse struct {
	ID     string          `json:"id"`
	ItemID string          `json:"item_id"`
	Price  decimal.Decimal `json:"price"`
}

// PriceListResponse lista de precios con líneas.
type PriceListResponse struct {
	ID        string                  `json:"id"`
	AccountID string                  `json:"account_id"`
	Name      string                  `json:"name"`
	UpdatedAt string                  `json:"updated_at"`
	Items     []PriceListItemResponse `json:"items"`
}

// PriceListListResponse listado paginado de listas de precios.
type PriceListListResponse struct {
	Items []PriceListResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
