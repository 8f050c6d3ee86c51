package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase compra (cabecera). Borrado lógico.
type Purchase struct {
	ID         string
	AccountID  string
	PartyID    string
	PurchaseNo int64
	Date       time.Time
	Notes      string
	Total      decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// Deleted indica si la compra está borrada lógicamente.
func (p *Purchase) Deleted() bool { return p.DeletedAt != nil }

// PurchaseItem línea de compra.
type PurchaseItem struct {
	ID         string
	PurchaseID string
	ItemID     string
	Price      decimal.Decimal
	Qty        decimal.Decimal
	TaxID      *string
}

// PurchaseItemDeltas convierte líneas persistidas de compra en deltas de stock
// (usado al sintetizar la GRN en modo automático).
func PurchaseItemDeltas(items []*PurchaseItem) []StockDelta {
	deltas := make([]StockDelta, 0, len(items))
	for _, it := range items {
		deltas = append(deltas, StockDelta{ItemID: it.ItemID, Quantity: it.Qty})
	}
	return deltas
}
