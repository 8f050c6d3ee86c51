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

func newGrnUseCase(f *fixture) *documents.GrnUseCase {
	return documents.NewGrnUseCase(f.tx, f.adjuster, f.grns, f.purchases)
}

func grnLine(itemID string, qty int64) dto.GrnItemRequest {
	return dto.GrnItemRequest{ItemID: itemID, Quantity: decimal.NewFromInt(qty)}
}

func TestGrnCreate_AplicaIncrementoDeStock(t *testing.T) {
	f := newFixture()
	accountID := f.seedAccount(true, true)
	partyID := f.seedParty(accountID, entity.PartyTypeSupplier)
	purchaseID := f.seedPurchase(accountID, partyID)
	itemA := f.seedItem(accountID, "A-001")
	itemB := f.seedItem(accountID, "A-002")
	uc := newGrnUseCase(f)

	out, err := uc.Create(context.Background(), accountID, dto.CreateGrnRequest{
		PurchaseID: purchaseID,
		Date:       "2026-03-02",
		Items:      []dto.GrnItemRequest{grnLine(itemA, 5), grnLine(itemB, 3)},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.GrnNo)
	assert.Len(t, out.Items, 2)
	assert.True(t, f.stockCount(accountID, itemA).Equal(decimal.NewFromInt(5)))
	assert.True(t, f.stockCount(accountID, itemB).Equal(decimal.NewFromInt(3)))
}

func TestGrnCreate_CompraInexistenteRetornaNotFound(t *testing.T) {
	f := newFixture()
	accountID := f.seedAccount(true, true)
	uc := newGrnUseCase(f)

	_, err := uc.Create(context.Background(), accountID, dto.CreateGrnRequest{
		PurchaseID: "no-existe",
		Date:       "2026-03-02",
		Items:      []dto.GrnItemRequest{grnLine("item-x", 1)},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGrnCreate_CompraDeOtraCuentaRetornaForbidden(t *testing.T) {
	f := newFixture()
	accountID := f.seedAccount(true, true)
	otherAccount := f.seedAccount(true, true)
	partyID := f.seedParty(otherAccount, entity.PartyTypeSupplier)
	purchaseID := f.seedPurchase(otherAccount, partyID)
	uc := newGrnUseCase(f)

	_, err := uc.Create(context.Background(), accountID, dto.CreateGrnRequest{
		PurchaseID: purchaseID,
		Date:       "2026-03-02",
		Items:      []dto.GrnItemRequest{grnLine("item-x", 1)},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGrnCreate_FechaInvalidaRetornaErrInvalidInput(t *testing.T) {
	f := newFixture()
	accountID := f.seedAccount(true, true)
	uc := newGrnUseCase(f)

	_, err := uc.Create(context.Background(), accountID, dto.CreateGrnRequest{
		PurchaseID: "cualquiera",
		Date:       "02/03/2026",
		Items:      []dto.GrnItemRequest{grnLine("item-x", 1)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGrnUpdate_ReconciliaStockConLineasNuevas(t *testing.T) {
	f := newFixture()
	accountID := f.seedAccount(true, true)
	partyID := f.seedParty(accountID, entity.PartyTypeSupplier)
	purchaseID := f.seedPurchase(accountID, partyID)
	itemA := f.seedItem(accountID, "A-001")
	itemB := f.seedItem(accountID, "A-002")
	uc := newGrnUseCase(f)

	created, err := uc.Create(context.Background(), accountID, dto.CreateGrnRequest{
		PurchaseID: purchaseID,
		Date:       "2026-03-02",
		Items:      []dto.GrnItemRequest{grnLine(itemA, 10)},
	})
	require.NoError(t, err)

	// Reemplazo completo de líneas: el stock debe quedar como si el
	// documento siempre hubiera tenido las líneas nuevas
	out, err := uc.Update(context.Background(), accountID, created.ID, dto.UpdateGrnRequest{
		Items: []dto.GrnItemRequest{grnLine(itemA, 4), grnLine(itemB, 2)},
	})
	require.NoError(t, err)

	assert.Len(t, out.Items, 2)
	assert.True(t, f.stockCount(accountID, itemA).Equal(decimal.NewFromInt(4)))
	assert.True(t, f.stockCount(accountID, itemB).Equal(decimal.NewFromInt(2)))
}

func TestGrnUpdate_SoloCabeceraConservaStock(t *testing.T) {
	f := newFixture()
	accountID := f.seedAccount(true, true)
	partyID := f.seedParty(accountID, entity.PartyTypeSupplier)
	purchaseID := f.seedPurchase(accountID, partyID)
	itemA := f.seedItem(accountID, "A-001")
	uc := newGrnUseCase(f)

	created, err := uc.Create(context.Background(), accountID, dto.CreateGrnRequest{
		PurchaseID: purchaseID,
		Date:       "2026-03-02",
		Items:      []dto.GrnItemRequest{grnLine(itemA, 10)},
	})
	require.NoError(t, err)

	notes := "recibido en bodega 2"
	out, err := uc.Update(context.Background(), accountID, created.ID, dto.UpdateGrnRequest{
		Notes: &notes,
	})
	require.NoError(t, err)

	// Revertir y re-aplicar las mismas líneas deja el saldo intacto
	assert.Equal(t, notes, out.Notes)
	assert.True(t, f.stockCount(accountID, itemA).Equal(decimal.NewFromInt(10)))
}

func TestGrnUpdate_DeOtraCuentaRetornaForbidden(t *testing.T) {
	f := newFixture()
	accountID := f.seedAccount(true, true)
	otherAccount := f.seedAccount(true, true)
	partyID := f.seedParty(accountID, entity.PartyTypeSupplier)
	purchaseID := f.seedPurchase(accountID, partyID)
	itemA := f.seedItem(accountID, "A-001")
	uc := newGrnUseCase(f)

	created, err := uc.Create(context.Background(), accountID, dto.CreateGrnRequest{
		PurchaseID: purchaseID,
		Date:       "2026-03-02",
		Items:      []dto.GrnItemRequest{grnLine(itemA, 1)},
	})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), otherAccount, created.ID, dto.UpdateGrnRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGrnDelete_RevierteStockYBorraLogicamente(t *testing.T) {
	f := newFixture()
	accountID := f.seedAccount(true, true)
	partyID := f.seedParty(accountID, entity.PartyTypeSupplier)
	purchaseID := f.seedPurchase(accountID, partyID)
	itemA := f.seedItem(accountID, "A-001")
	uc := newGrnUseCase(f)

	created, err := uc.Create(context.Background(), accountID, dto.CreateGrnRequest{
		PurchaseID: purchaseID,
		Date:       "2026-03-02",
		Items:      []dto.GrnItemRequest{grnLine(itemA, 5)},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), accountID, created.ID))

	assert.True(t, f.stockCount(accountID, itemA).IsZero())
	_, err = uc.Get(context.Background(), accountID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGrnNumeracion_NoReutilizaConsecutivosTrasBorrado(t *testing.T) {
	f := newFixture()
	accountID := f.seedAccount(true, true)
	partyID := f.seedParty(accountID, entity.PartyTypeSupplier)
	purchaseID := f.seedPurchase(accountID, partyID)
	itemA := f.seedItem(accountID, "A-001")
	uc := newGrnUseCase(f)

	first, err := uc.Create(context.Background(), accountID, dto.CreateGrnRequest{
		PurchaseID: purchaseID,
		Date:       "2026-03-02",
		Items:      []dto.GrnItemRequest{grnLine(itemA, 1)},
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), first.GrnNo)

	require.NoError(t, uc.Delete(context.Background(), accountID, first.ID))

	second, err := uc.Create(context.Background(), accountID, dto.CreateGrnRequest{
		PurchaseID: purchaseID,
		Date:       "2026-03-03",
		Items:      []dto.GrnItemRequest{grnLine(itemA, 1)},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.GrnNo)
}
