package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote cotización (cabecera). No afecta stock; su histórico participa en la
// resolución de precios efectivos.
type Quote struct {
	ID        string
	AccountID string
	PartyID   string
	QuoteNo   int64
	Date      time.Time
	Notes     string
	Total     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Deleted indica si la cotización está borrada lógicamente.
func (q *Quote) Deleted() bool { return q.DeletedAt != nil }

// QuoteItem línea de cotización.
type QuoteItem struct {
	ID      string
	QuoteID string
	ItemID  string
	Price   decimal.Decimal
	Qty     decimal.Decimal
	TaxID   *string
}

// Order pedido (cabecera). No afecta stock.
type Order struct {
	ID        string
	AccountID string
	PartyID   string
	OrderNo   int64
	Date      time.Time
	Notes     string
	Total     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Deleted indica si el pedido está borrado lógicamente.
func (o *Order) Deleted() bool { return o.DeletedAt != nil }

// OrderItem línea de pedido.
type OrderItem struct {
	ID      string
	OrderID string
	ItemID  string
	Price   decimal.Decimal
	Qty     decimal.Decimal
	TaxID   *string
}
