package dto

import "github.com/shopspring/decimal"

// DocumentItemRequest línea de documento transaccional (venta/compra/cotización/pedido).
type DocumentItemRequest struct {
	ItemID string          `json:"item_id" validate:"required,uuid4"`
	Price  decimal.Decimal `json:"price"`
	Qty    decimal.Decimal `json:"qty" validate:"required"`
	TaxID  *string         `json:"tax_id" validate:"omitempty,uuid4"`
}

// CreateDocumentRequest alta de documento transaccional.
type CreateDocumentRequest struct {
	PartyID string                `json:"party_id" validate:"required,uuid4"`
	Date    string                `json:"date" validate:"required"`
	Notes   string                `json:"notes"`
	Items   []DocumentItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateDocumentRequest actualización de documento transaccional.
// Items nil = conservar líneas actuales.
type UpdateDocumentRequest struct {
	PartyID *string               `json:"party_id" validate:"omitempty,uuid4"`
	Date    *string               `json:"date"`
	Notes   *string               `json:"notes"`
	Items   []DocumentItemRequest `json:"items" validate:"omitempty,min=1,dive"`
}

// DocumentItemResponse línea en respuestas.
type DocumentItemResponse struct {
	ID     string          `json:"id"`
	ItemID string          `json:"item_id"`
	Price  decimal.Decimal `json:"price"`
	Qty    decimal.Decimal `json:"qty"`
	TaxID  *string         `json:"tax_id,omitempty"`
}

// DocumentResponse documento transaccional con líneas.
type DocumentResponse struct {
	ID        string                 `json:"id"`
	AccountID string                 `json:"account_id"`
	PartyID   string                 `json:"party_id"`
	No        int64                  `json:"no"`
	Date      string                 `json:"date"`
	Notes     string                 `json:"notes"`
	Total     decimal.Decimal        `json:"total"`
	Items     []DocumentItemResponse `json:"items"`
}

// DocumentListResponse listado paginado de documentos (sin líneas).
type DocumentListResponse struct {
	Items []DocumentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
