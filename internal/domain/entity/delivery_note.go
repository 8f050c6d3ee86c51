package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryNote remisión de despacho, espejo de la GRN pero ligada a una venta.
// Su efecto en stock es un decremento. El borrado es lógico (DeletedAt).
type DeliveryNote struct {
	ID            string
	AccountID     string
	SaleID        string
	NoteNo        int64 // consecutivo por cuenta
	Date          time.Time
	VehicleNo     string
	InvoiceNo     string
	Notes         string
	AutoGenerated bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

// Deleted indica si la remisión está borrada lógicamente.
func (d *DeliveryNote) Deleted() bool { return d.DeletedAt != nil }

// DeliveryNoteItem línea de una remisión (reemplazo completo en updates).
type DeliveryNoteItem struct {
	ID             string
	DeliveryNoteID string
	ItemID         string
	Quantity       decimal.Decimal
}

// DeliveryNoteItemDeltas convierte líneas persistidas en deltas para el servicio de ajustes.
func DeliveryNoteItemDeltas(items []*DeliveryNoteItem) []StockDelta {
	deltas := make([]StockDelta, 0, len(items))
	for _, it := range items {
		deltas = append(deltas, StockDelta{ItemID: it.ItemID, Quantity: it.Quantity})
	}
	return deltas
}
