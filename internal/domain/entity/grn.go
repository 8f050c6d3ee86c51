package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Grn (Goods Receipt Note) registra la recepción física de una compra.
// Su efecto en stock es un incremento. El borrado es lógico (DeletedAt).
type Grn struct {
	ID            string
	AccountID     string
	PurchaseID    string
	GrnNo         int64 // consecutivo por cuenta
	Date          time.Time
	VehicleNo     string
	InvoiceNo     string
	Notes         string
	AutoGenerated bool // sintetizada desde la compra (modo automático)
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

// Deleted indica si la GRN está borrada lógicamente.
func (g *Grn) Deleted() bool { return g.DeletedAt != nil }

// GrnItem línea de una GRN. Las líneas pertenecen en exclusiva a su GRN:
// en updates se reemplazan completas (delete-all-then-insert).
type GrnItem struct {
	ID       string
	GrnID    string
	ItemID   string
	Quantity decimal.Decimal
}

// GrnItemDeltas convierte líneas persistidas de GRN en deltas para el servicio de ajustes.
func GrnItemDeltas(items []*GrnItem) []StockDelta {
	deltas := make([]StockDelta, 0, len(items))
	for _, it := range items {
		deltas = append(deltas, StockDelta{ItemID: it.ItemID, Quantity: it.Quantity})
	}
	return deltas
}
