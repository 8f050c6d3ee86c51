package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceList lista de precios por cuenta. UpdatedAt actúa como "fecha efectiva"
// en la resolución de precios: tocar la lista (re-guardar sus ítems) la
// promueve por encima de histórico transaccional más nuevo. Comportamiento
// deliberado para permitir forzar un override administrativo.
type PriceList struct {
	ID        string
	AccountID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PriceListItem precio de un artículo dentro de una lista.
type PriceListItem struct {
	ID          string
	PriceListID string
	ItemID      string
	Price       decimal.Decimal
}

// LastPrice último precio transaccional (venta/cotización/compra) de un
// artículo para un tercero, con la fecha del documento como fecha efectiva.
type LastPrice struct {
	Price decimal.Decimal
	Date  time.Time
}

// PriceListCandidate precio de lista candidato para la resolución, con el
// updated_at de la lista padre como fecha efectiva.
type PriceListCandidate struct {
	ListName  string
	Price     decimal.Decimal
	UpdatedAt time.Time
}
