package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item artículo del catálogo (maestro). Precios de venta/compra son valores
// por defecto; el precio efectivo de una línea lo decide el resolver de precios.
type Item struct {
	ID            string
	AccountID     string
	Code          string
	Name          string
	Description   string
	UnitID        *string
	TaxID         *string
	SalePrice     decimal.Decimal
	PurchasePrice decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Tax impuesto aplicable a líneas de documento.
type Tax struct {
	ID        string
	AccountID string
	Name      string
	Rate      decimal.Decimal // porcentaje, ej. 19
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Unit unidad de medida (maestro).
type Unit struct {
	ID        string
	AccountID string
	Name      string
	ShortName string
	CreatedAt time.Time
	UpdatedAt time.Time
}
