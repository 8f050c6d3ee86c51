package pricing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercio-api/internal/application/pricing"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// ─────────────────────────────────────────────
// Stubs: solo los métodos que consulta el resolver.
// La interfaz embebida (nil) hace panic si el resolver
// tocara cualquier otro método.
// ─────────────────────────────────────────────

type stubSaleRepo struct {
	repository.SaleRepository
	last *entity.LastPrice
}

func (r stubSaleRepo) LastLinePrice(_, _, _ string) (*entity.LastPrice, error) {
	return r.last, nil
}

type stubQuoteRepo struct {
	repository.QuoteRepository
	last *entity.LastPrice
}

func (r stubQuoteRepo) LastLinePrice(_, _, _ string) (*entity.LastPrice, error) {
	return r.last, nil
}

type stubPurchaseRepo struct {
	repository.PurchaseRepository
	last *entity.LastPrice
}

func (r stubPurchaseRepo) LastLinePrice(_, _, _ string) (*entity.LastPrice, error) {
	return r.last, nil
}

type stubPriceListRepo struct {
	repository.PriceListRepository
	candidates []*entity.PriceListCandidate
}

func (r stubPriceListRepo) CandidatesForItem(_, _ string) ([]*entity.PriceListCandidate, error) {
	return r.candidates, nil
}

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func lastPrice(price int64, d int) *entity.LastPrice {
	return &entity.LastPrice{Price: decimal.NewFromInt(price), Date: day(d)}
}

func newResolver(sale, quote, purchase *entity.LastPrice, lists ...*entity.PriceListCandidate) *pricing.Resolver {
	return pricing.NewResolver(
		stubSaleRepo{last: sale},
		stubQuoteRepo{last: quote},
		stubPurchaseRepo{last: purchase},
		stubPriceListRepo{candidates: lists},
	)
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestResolve_SinCuentaRetornaErrTenantRequired(t *testing.T) {
	r := newResolver(nil, nil, nil)

	_, err := r.Resolve(context.Background(), "", "item-1", "party-1", pricing.DocTypeSale)
	assert.ErrorIs(t, err, domain.ErrTenantRequired)
}

func TestResolve_ParametrosIncompletosRetornanErrInvalidInput(t *testing.T) {
	r := newResolver(nil, nil, nil)

	_, err := r.Resolve(context.Background(), "acc-1", "", "party-1", pricing.DocTypeSale)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = r.Resolve(context.Background(), "acc-1", "item-1", "", pricing.DocTypeSale)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResolve_TipoDocumentoDesconocidoRetornaErrInvalidInput(t *testing.T) {
	r := newResolver(nil, nil, nil)

	_, err := r.Resolve(context.Background(), "acc-1", "item-1", "party-1", "INVOICE")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResolve_SinCandidatosRetornaCeroYNone(t *testing.T) {
	r := newResolver(nil, nil, nil)

	out, err := r.Resolve(context.Background(), "acc-1", "item-1", "party-1", pricing.DocTypeSale)
	require.NoError(t, err)

	assert.True(t, out.Price.IsZero())
	assert.Equal(t, pricing.SourceNone, out.Source)
}

func TestResolve_Venta_GanaLaFuenteMasReciente(t *testing.T) {
	// Cotización (día 20) más nueva que venta (día 10)
	r := newResolver(lastPrice(100, 10), lastPrice(120, 20), nil)

	out, err := r.Resolve(context.Background(), "acc-1", "item-1", "party-1", pricing.DocTypeSale)
	require.NoError(t, err)

	assert.Equal(t, pricing.SourceLastQuote, out.Source)
	assert.True(t, out.Price.Equal(decimal.NewFromInt(120)))
}

func TestResolve_Venta_UltimaVentaSuperaCotizacionVieja(t *testing.T) {
	r := newResolver(lastPrice(100, 25), lastPrice(120, 20), nil)

	out, err := r.Resolve(context.Background(), "acc-1", "item-1", "party-1", pricing.DocTypeSale)
	require.NoError(t, err)

	assert.Equal(t, pricing.SourceLastSale, out.Source)
	assert.True(t, out.Price.Equal(decimal.NewFromInt(100)))
}

func TestResolve_Compra_UsaSoloHistoricoDeCompras(t *testing.T) {
	// Repos de venta/cotización en nil: si el resolver los consultara
	// para PURCHASE, el test haría panic.
	r := pricing.NewResolver(
		nil,
		nil,
		stubPurchaseRepo{last: lastPrice(80, 12)},
		stubPriceListRepo{},
	)

	out, err := r.Resolve(context.Background(), "acc-1", "item-1", "party-1", pricing.DocTypePurchase)
	require.NoError(t, err)

	assert.Equal(t, pricing.SourceLastPurchase, out.Source)
	assert.True(t, out.Price.Equal(decimal.NewFromInt(80)))
}

func TestResolve_ListaDePreciosParticipaEnAmbosTipos(t *testing.T) {
	list := &entity.PriceListCandidate{
		ListName:  "Mayorista",
		Price:     decimal.NewFromInt(95),
		UpdatedAt: day(28),
	}

	for _, docType := range []string{pricing.DocTypeSale, pricing.DocTypePurchase} {
		r := newResolver(lastPrice(100, 10), nil, lastPrice(80, 12), list)

		out, err := r.Resolve(context.Background(), "acc-1", "item-1", "party-1", docType)
		require.NoError(t, err)

		assert.Equal(t, "Price List: Mayorista", out.Source)
		assert.True(t, out.Price.Equal(decimal.NewFromInt(95)))
	}
}

func TestResolve_ListaTocadaSuperaHistoricoMasNuevo(t *testing.T) {
	// La venta es del día 20; la lista se re-guardó el día 21: el touch de
	// updated_at la promueve por encima del histórico transaccional.
	list := &entity.PriceListCandidate{
		ListName:  "General",
		Price:     decimal.NewFromInt(150),
		UpdatedAt: day(21),
	}
	r := newResolver(lastPrice(100, 20), nil, nil, list)

	out, err := r.Resolve(context.Background(), "acc-1", "item-1", "party-1", pricing.DocTypeSale)
	require.NoError(t, err)

	assert.Equal(t, "Price List: General", out.Source)
	assert.True(t, out.Price.Equal(decimal.NewFromInt(150)))
}

func TestResolve_HistoricoMasNuevoSuperaListaVieja(t *testing.T) {
	list := &entity.PriceListCandidate{
		ListName:  "General",
		Price:     decimal.NewFromInt(150),
		UpdatedAt: day(5),
	}
	r := newResolver(lastPrice(100, 20), nil, nil, list)

	out, err := r.Resolve(context.Background(), "acc-1", "item-1", "party-1", pricing.DocTypeSale)
	require.NoError(t, err)

	assert.Equal(t, pricing.SourceLastSale, out.Source)
	assert.True(t, out.Price.Equal(decimal.NewFromInt(100)))
}
