package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock existencia actual de un artículo en una cuenta (una fila por
// item+cuenta). Count es la suma algebraica de todos los ajustes aplicados;
// se permite negativo (sobreventa/backorder). Solo el servicio de ajustes
// escribe Count.
type Stock struct {
	AccountID string
	ItemID    string
	Count     decimal.Decimal
	UpdatedAt time.Time
}

// StockDelta cantidad por artículo leída del estado confirmado de un documento.
// Los ajustes de stock SOLO aceptan deltas construidos desde filas persistidas,
// nunca desde el payload del request (evita divergencia validado/persistido).
type StockDelta struct {
	ItemID   string
	Quantity decimal.Decimal
}
