package pricing

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// Tipos de documento para la resolución de precio.
const (
	DocTypeSale     = "SALE"
	DocTypePurchase = "PURCHASE"
)

// Etiquetas de fuente expuestas en la API.
const (
	SourceLastSale     = "Last Sale"
	SourceLastQuote    = "Last Quote"
	SourceLastPurchase = "Last Purchase"
	SourceNone         = "None"
	sourcePriceListFmt = "Price List: "
)

// Candidate candidato a precio efectivo: fuente + precio + fecha efectiva.
type Candidate struct {
	Source        string
	Price         decimal.Decimal
	EffectiveDate time.Time
}

// Resolver resuelve el precio efectivo para pre-llenar una línea nueva:
// reúne candidatos del histórico transaccional (última venta/cotización o
// última compra del artículo para el tercero) y de todas las listas de
// precios, y gana el de fecha efectiva más reciente.
//
// Las listas de precios usan su updated_at como fecha efectiva: re-guardar
// una lista la promueve por encima de histórico más nuevo. Es comportamiento
// deliberado (override administrativo), no cambiar la clave de ranking.
type Resolver struct {
	saleRepo      repository.SaleRepository
	quoteRepo     repository.QuoteRepository
	purchaseRepo  repository.PurchaseRepository
	priceListRepo repository.PriceListRepository
}

// NewResolver construye el resolver.
func NewResolver(
	saleRepo repository.SaleRepository,
	quoteRepo repository.QuoteRepository,
	purchaseRepo repository.PurchaseRepository,
	priceListRepo repository.PriceListRepository,
) *Resolver {
	return &Resolver{
		saleRepo:      saleRepo,
		quoteRepo:     quoteRepo,
		purchaseRepo:  purchaseRepo,
		priceListRepo: priceListRepo,
	}
}

// Resolve devuelve (precio, fuente) para (artículo, tercero, tipo).
// Sin cuenta -> ErrTenantRequired antes de consultar nada.
// Sin candidatos -> {0, "None"} como resultado válido, no error.
func (r *Resolver) Resolve(ctx context.Context, accountID, itemID, partyID, docType string) (*dto.EffectivePriceResponse, error) {
	if accountID == "" {
		return nil, domain.ErrTenantRequired
	}
	if itemID == "" || partyID == "" {
		return nil, domain.ErrInvalidInput
	}
	if docType != DocTypeSale && docType != DocTypePurchase {
		return nil, domain.ErrInvalidInput
	}

	var candidates []Candidate

	switch docType {
	case DocTypeSale:
		last, err := r.saleRepo.LastLinePrice(accountID, itemID, partyID)
		if err != nil {
			return nil, err
		}
		if last != nil {
			candidates = append(candidates, Candidate{Source: SourceLastSale, Price: last.Price, EffectiveDate: last.Date})
		}
		last, err = r.quoteRepo.LastLinePrice(accountID, itemID, partyID)
		if err != nil {
			return nil, err
		}
		if last != nil {
			candidates = append(candidates, Candidate{Source: SourceLastQuote, Price: last.Price, EffectiveDate: last.Date})
		}
	case DocTypePurchase:
		last, err := r.purchaseRepo.LastLinePrice(accountID, itemID, partyID)
		if err != nil {
			return nil, err
		}
		if last != nil {
			candidates = append(candidates, Candidate{Source: SourceLastPurchase, Price: last.Price, EffectiveDate: last.Date})
		}
	}

	// Listas de precios: aplican a ambos tipos, fecha efectiva = updated_at de la lista
	listCandidates, err := r.priceListRepo.CandidatesForItem(accountID, itemID)
	if err != nil {
		return nil, err
	}
	for _, lc := range listCandidates {
		candidates = append(candidates, Candidate{
			Source:        sourcePriceListFmt + lc.ListName,
			Price:         lc.Price,
			EffectiveDate: lc.UpdatedAt,
		})
	}

	if len(candidates) == 0 {
		return &dto.EffectivePriceResponse{Price: decimal.Zero, Source: SourceNone}, nil
	}

	// Orden estable: empates en fecha conservan el orden de inserción
	// (venta -> cotización -> compra -> listas); los callers no deben depender de él.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].EffectiveDate.After(candidates[j].EffectiveDate)
	})

	winner := candidates[0]
	return &dto.EffectivePriceResponse{Price: winner.Price, Source: winner.Source}, nil
}
