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

func newNoteUseCase(f *fixture) *documents.DeliveryNoteUseCase {
	return documents.NewDeliveryNoteUseCase(f.tx, f.adjuster, f.notes, f.sales)
}

func TestNoteCreate_AplicaDecrementoYPermiteNegativo(t *testing.T) {
	f := newFixture()
	accountID := f.seedAccount(true, true)
	partyID := f.seedParty(accountID, entity.PartyTypeCustomer)
	saleID := f.seedSale(accountID, partyID)
	itemA := f.seedItem(accountID, "A-001")
	uc := newNoteUseCase(f)

	// Sin existencias previas: la remisión deja saldo negativo (sobreventa)
	out, err := uc.Create(context.Background(), accountID, dto.CreateDeliveryNoteRequest{
		SaleID: saleID,
		Date:   "2026-03-02",
		Items:  []dto.GrnItemRequest{grnLine(itemA, 5)},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.NoteNo)
	assert.True(t, f.stockCount(accountID, itemA).Equal(decimal.NewFromInt(-5)))
}

func TestNoteCreate_VentaDeOtraCuentaRetornaForbidden(t *testing.T) {
	f := newFixture()
	accountID := f.seedAccount(true, true)
	otherAccount := f.seedAccount(true, true)
	partyID := f.seedParty(otherAccount, entity.PartyTypeCustomer)
	saleID := f.seedSale(otherAccount, partyID)
	uc := newNoteUseCase(f)

	_, err := uc.Create(context.Background(), accountID, dto.CreateDeliveryNoteRequest{
		SaleID: saleID,
		Date:   "2026-03-02",
		Items:  []dto.GrnItemRequest{grnLine("item-x", 1)},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestNoteUpdate_ReconciliaConSignoInvertido(t *testing.T) {
	f := newFixture()
	accountID := f.seedAccount(true, true)
	partyID := f.seedParty(accountID, entity.PartyTypeCustomer)
	saleID := f.seedSale(accountID, partyID)
	itemA := f.seedItem(accountID, "A-001")
	uc := newNoteUseCase(f)

	created, err := uc.Create(context.Background(), accountID, dto.CreateDeliveryNoteRequest{
		SaleID: saleID,
		Date:   "2026-03-02",
		Items:  []dto.GrnItemRequest{grnLine(itemA, 5)},
	})
	require.NoError(t, err)
	require.True(t, f.stockCount(accountID, itemA).Equal(decimal.NewFromInt(-5)))

	// Corregir la cantidad despachada de 5 a 2: el reverse suma 5 y el
	// re-apply resta 2
	_, err = uc.Update(context.Background(), accountID, created.ID, dto.UpdateDeliveryNoteRequest{
		Items: []dto.GrnItemRequest{grnLine(itemA, 2)},
	})
	require.NoError(t, err)

	assert.True(t, f.stockCount(accountID, itemA).Equal(decimal.NewFromInt(-2)))
}

func TestNoteDelete_RestauraStock(t *testing.T) {
	f := newFixture()
	accountID := f.seedAccount(true, true)
	partyID := f.seedParty(accountID, entity.PartyTypeCustomer)
	saleID := f.seedSale(accountID, partyID)
	itemA := f.seedItem(accountID, "A-001")
	uc := newNoteUseCase(f)

	created, err := uc.Create(context.Background(), accountID, dto.CreateDeliveryNoteRequest{
		SaleID: saleID,
		Date:   "2026-03-02",
		Items:  []dto.GrnItemRequest{grnLine(itemA, 5)},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), accountID, created.ID))

	assert.True(t, f.stockCount(accountID, itemA).IsZero())
	_, err = uc.Get(context.Background(), accountID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
