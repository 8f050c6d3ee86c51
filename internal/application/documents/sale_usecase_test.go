package documents_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercio-api/internal/application/documents"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

// fakePDFGen captura los argumentos del render y devuelve bytes fijos.
type fakePDFGen struct {
	lines []documents.SaleLineForPDF
}

func (g *fakePDFGen) GenerateSalePDF(_ context.Context, _ *entity.Sale, _ *entity.Account, _ *entity.Party, lines []documents.SaleLineForPDF) ([]byte, error) {
	g.lines = lines
	return []byte("%PDF-fake"), nil
}

func newSaleUseCase(f *fixture, pdfGen documents.SalePDFGenerator) *documents.SaleUseCase {
	return documents.NewSaleUseCase(f.tx, f.adjuster, f.accounts, f.parties, f.catalog, f.sales, pdfGen)
}

func TestSaleCreate_ModoAutomaticoSintetizaRemision(t *testing.T) {
	f := newFixture()
	accountID := f.seedAccount(false, false) // modo automático
	partyID := f.seedParty(accountID, entity.PartyTypeCustomer)
	itemA := f.seedItem(accountID, "A-001")
	uc := newSaleUseCase(f, nil)

	out, err := uc.Create(context.Background(), accountID, dto.CreateDocumentRequest{
		PartyID: partyID,
		Date:    "2026-03-05",
		Items:   []dto.DocumentItemRequest{docLine(itemA, 200, 3)},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.No)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(600)))

	note, err := f.notes.FindAutoBySaleID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, note)
	assert.True(t, note.AutoGenerated)

	// Sin existencias previas el despacho deja saldo negativo
	assert.True(t, f.stockCount(accountID, itemA).Equal(decimal.NewFromInt(-3)))
}

func TestSaleCreate_ModoManualNoTocaStock(t *testing.T) {
	f := newFixture()
	accountID := f.seedAccount(true, true)
	partyID := f.seedParty(accountID, entity.PartyTypeCustomer)
	itemA := f.seedItem(accountID, "A-001")
	uc := newSaleUseCase(f, nil)

	out, err := uc.Create(context.Background(), accountID, dto.CreateDocumentRequest{
		PartyID: partyID,
		Date:    "2026-03-05",
		Items:   []dto.DocumentItemRequest{docLine(itemA, 200, 3)},
	})
	require.NoError(t, err)

	note, err := f.notes.FindAutoBySaleID(out.ID)
	require.NoError(t, err)
	assert.Nil(t, note)
	assert.True(t, f.stockCount(accountID, itemA).IsZero())
}

func TestSaleUpdate_SincronizaRemisionAutomatica(t *testing.T) {
	f := newFixture()
	accountID := f.seedAccount(false, false)
	partyID := f.seedParty(accountID, entity.PartyTypeCustomer)
	itemA := f.seedItem(accountID, "A-001")
	uc := newSaleUseCase(f, nil)

	created, err := uc.Create(context.Background(), accountID, dto.CreateDocumentRequest{
		PartyID: partyID,
		Date:    "2026-03-05",
		Items:   []dto.DocumentItemRequest{docLine(itemA, 200, 5)},
	})
	require.NoError(t, err)
	require.True(t, f.stockCount(accountID, itemA).Equal(decimal.NewFromInt(-5)))

	_, err = uc.Update(context.Background(), accountID, created.ID, dto.UpdateDocumentRequest{
		Items: []dto.DocumentItemRequest{docLine(itemA, 200, 2)},
	})
	require.NoError(t, err)

	assert.True(t, f.stockCount(accountID, itemA).Equal(decimal.NewFromInt(-2)))
}

func TestSaleDelete_RevierteRemisionesYRestauraStock(t *testing.T) {
	f := newFixture()
	accountID := f.seedAccount(false, false)
	partyID := f.seedParty(accountID, entity.PartyTypeCustomer)
	itemA := f.seedItem(accountID, "A-001")
	uc := newSaleUseCase(f, nil)

	created, err := uc.Create(context.Background(), accountID, dto.CreateDocumentRequest{
		PartyID: partyID,
		Date:    "2026-03-05",
		Items:   []dto.DocumentItemRequest{docLine(itemA, 200, 3)},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), accountID, created.ID))

	assert.True(t, f.stockCount(accountID, itemA).IsZero())
	_, err = uc.Get(context.Background(), accountID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSalePdf_GeneraDocumentoConLineasEnriquecidas(t *testing.T) {
	f := newFixture()
	accountID := f.seedAccount(true, true)
	partyID := f.seedParty(accountID, entity.PartyTypeCustomer)
	itemA := f.seedItem(accountID, "A-001")
	gen := &fakePDFGen{}
	uc := newSaleUseCase(f, gen)

	created, err := uc.Create(context.Background(), accountID, dto.CreateDocumentRequest{
		PartyID: partyID,
		Date:    "2026-03-05",
		Items:   []dto.DocumentItemRequest{docLine(itemA, 200, 3)},
	})
	require.NoError(t, err)

	pdf, err := uc.Pdf(context.Background(), accountID, created.ID)
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-fake"), pdf)
	require.Len(t, gen.lines, 1)
	assert.Equal(t, "Artículo A-001", gen.lines[0].ItemName)
	assert.Equal(t, "A-001", gen.lines[0].ItemCode)
	assert.True(t, gen.lines[0].Subtotal.Equal(decimal.NewFromInt(600)))
}

func TestSalePdf_VentaDeOtraCuentaRetornaForbidden(t *testing.T) {
	f := newFixture()
	accountID := f.seedAccount(true, true)
	otherAccount := f.seedAccount(true, true)
	partyID := f.seedParty(accountID, entity.PartyTypeCustomer)
	itemA := f.seedItem(accountID, "A-001")
	uc := newSaleUseCase(f, &fakePDFGen{})

	created, err := uc.Create(context.Background(), accountID, dto.CreateDocumentRequest{
		PartyID: partyID,
		Date:    "2026-03-05",
		Items:   []dto.DocumentItemRequest{docLine(itemA, 200, 3)},
	})
	require.NoError(t, err)

	_, err = uc.Pdf(context.Background(), otherAccount, created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSalePdf_SinGeneradorRetornaNotFound(t *testing.T) {
	f := newFixture()
	accountID := f.seedAccount(true, true)
	uc := newSaleUseCase(f, nil)

	_, err := uc.Pdf(context.Background(), accountID, "cualquiera")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
