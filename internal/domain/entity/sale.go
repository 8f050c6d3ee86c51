package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale venta (cabecera). Date establece el orden cronológico para el
// histórico de precios. Borrado lógico.
type Sale struct {
	ID        string
	AccountID string
	PartyID   string
	SaleNo    int64
	Date      time.Time
	Notes     string
	Total     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Deleted indica si la venta está borrada lógicamente.
func (s *Sale) Deleted() bool { return s.DeletedAt != nil }

// SaleItem línea de venta.
type SaleItem struct {
	ID     string
	SaleID string
	ItemID string
	Price  decimal.Decimal
	Qty    decimal.Decimal
	TaxID  *string
}

// SaleItemDeltas convierte líneas persistidas de venta en deltas de stock
// (usado al sintetizar la remisión en modo automático).
func SaleItemDeltas(items []*SaleItem) []StockDelta {
	deltas := make([]StockDelta, 0, len(items))
	for _, it := range items {
		deltas = append(deltas, StockDelta{ItemID: it.ItemID, Quantity: it.Qty})
	}
	return deltas
}
