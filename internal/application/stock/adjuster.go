package stock

import (
	"time"

	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// Direction sentido del ajuste forward de un documento:
// GRN incrementa, remisión decrementa.
type Direction int

const (
	DirectionIncrease Direction = iota + 1
	DirectionDecrease
)

// Adjuster aplica y revierte deltas de cantidad contra el libro de existencias.
// Opera SIEMPRE dentro de la transacción del caller (recibe el StockRepository
// atado a la tx) y solo acepta deltas leídos del estado confirmado del
// documento, nunca del payload del request.
//
// Protocolo por fila: GetForUpdate (SELECT FOR UPDATE) -> sumar/restar -> Upsert.
// El bloqueo de fila serializa ajustes concurrentes sobre el mismo (cuenta, artículo).
type Adjuster struct{}

// NewAdjuster construye el servicio de ajustes.
func NewAdjuster() *Adjuster { return &Adjuster{} }

// ApplyIncrease suma cada delta al stock de la cuenta (crea la fila en cero si
// no existe). Ajuste forward de GRNs.
func (a *Adjuster) ApplyIncrease(stockRepo repository.StockRepository, accountID string, deltas []entity.StockDelta) error {
	return a.apply(stockRepo, accountID, deltas, false)
}

// ApplyDecrease resta cada delta al stock de la cuenta. Ajuste forward de
// remisiones. El resultado puede quedar negativo (sobreventa permitida);
// aquí no se valida piso en cero.
func (a *Adjuster) ApplyDecrease(stockRepo repository.StockRepository, accountID string, deltas []entity.StockDelta) error {
	return a.apply(stockRepo, accountID, deltas, true)
}

// Reverse aplica el signo exactamente opuesto al ajuste forward del documento:
// para forward=increase resta, para forward=decrease suma. Se invoca siempre
// ANTES de mutar líneas en un update y antes de un borrado, con las líneas
// actualmente persistidas.
func (a *Adjuster) Reverse(stockRepo repository.StockRepository, accountID string, deltas []entity.StockDelta, forward Direction) error {
	switch forward {
	case DirectionIncrease:
		return a.apply(stockRepo, accountID, deltas, true)
	case DirectionDecrease:
		return a.apply(stockRepo, accountID, deltas, false)
	}
	return domain.ErrInvalidInput
}

func (a *Adjuster) apply(stockRepo repository.StockRepository, accountID string, deltas []entity.StockDelta, subtract bool) error {
	now := time.Now()
	for _, d := range deltas {
		// Bloquea la fila (SELECT FOR UPDATE); el repo devuelve fila en cero si no existe
		stock, err := stockRepo.GetForUpdate(accountID, d.ItemID)
		if err != nil {
			return err
		}
		if subtract {
			stock.Count = stock.Count.Sub(d.Quantity)
		} else {
			stock.Count = stock.Count.Add(d.Quantity)
		}
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}
	}
	return nil
}
