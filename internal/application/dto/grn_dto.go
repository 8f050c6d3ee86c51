package dto

import "github.com/shopspring/decimal"

// GrnItemRequest línea de GRN/remisión.
type GrnItemRequest struct {
	ItemID   string          `json:"item_id" validate:"required,uuid4"`
	Quantity decimal.Decimal `json:"quantity" validate:"required"`
}

// CreateGrnRequest alta manual de GRN.
type CreateGrnRequest struct {
	PurchaseID string           `json:"purchase_id" validate:"required,uuid4"`
	Date       string           `json:"date" validate:"required"`
	VehicleNo  string           `json:"vehicle_no"`
	InvoiceNo  string           `json:"invoice_no"`
	Notes      string           `json:"notes"`
	Items      []GrnItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateGrnRequest actualización de GRN. Items nil = conservar líneas actuales.
type UpdateGrnRequest struct {
	Date      *string          `json:"date"`
	VehicleNo *string          `json:"vehicle_no"`
	InvoiceNo *string          `json:"invoice_no"`
	Notes     *string          `json:"notes"`
	Items     []GrnItemRequest `json:"items" validate:"omitempty,min=1,dive"`
}

// CreateDeliveryNoteRequest alta manual de remisión.
type CreateDeliveryNoteRequest struct {
	SaleID    string           `json:"sale_id" validate:"required,uuid4"`
	Date      string           `json:"date" validate:"required"`
	VehicleNo string           `json:"vehicle_no"`
	InvoiceNo string           `json:"invoice_no"`
	Notes     string           `json:"notes"`
	Items     []GrnItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateDeliveryNoteRequest actualización de remisión.
type UpdateDeliveryNoteRequest = UpdateGrnRequest

// GrnItemResponse línea de GRN/remisión en respuestas.
type GrnItemResponse struct {
	ID       string          `json:"id"`
	ItemID   string          `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
}

// GrnResponse GRN con líneas.
type GrnResponse struct {
	ID            string            `json:"id"`
	AccountID     string            `json:"account_id"`
	PurchaseID    string            `json:"purchase_id"`
	GrnNo         int64             `json:"grn_no"`
	Date          string            `json:"date"`
	VehicleNo     string            `json:"vehicle_no"`
	InvoiceNo     string            `json:"invoice_no"`
	Notes         string            `json:"notes"`
	AutoGenerated bool              `json:"auto_generated"`
	Items         []GrnItemResponse `json:"items"`
}

// DeliveryNoteResponse remisión con líneas.
type DeliveryNoteResponse struct {
	ID            string            `json:"id"`
	AccountID     string            `json:"account_id"`
	SaleID        string            `json:"sale_id"`
	NoteNo        int64             `json:"note_no"`
	Date          string            `json:"date"`
	VehicleNo     string            `json:"vehicle_no"`
	InvoiceNo     string            `json:"invoice_no"`
	Notes         string            `json:"notes"`
	AutoGenerated bool              `json:"auto_generated"`
	Items         []GrnItemResponse `json:"items"`
}

// GrnListResponse listado paginado de GRNs.
type GrnListResponse struct {
	Items []GrnResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}

// DeliveryNoteListResponse listado paginado de remisiones.
type DeliveryNoteListResponse struct {
	Items []DeliveryNoteResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
