package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercio-api/internal/application/stock"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

// ─────────────────────────────────────────────
// Fake en memoria del repositorio de stock
// ─────────────────────────────────────────────

type memStockRepo struct {
	rows map[string]*entity.Stock // clave: accountID|itemID
}

func newMemStockRepo() *memStockRepo {
	return &memStockRepo{rows: make(map[string]*entity.Stock)}
}

func (r *memStockRepo) key(accountID, itemID string) string { return accountID + "|" + itemID }

func (r *memStockRepo) Get(accountID, itemID string) (*entity.Stock, error) {
	return r.GetForUpdate(accountID, itemID)
}

// GetForUpdate emula la semántica del repo real: fila en cero si no existe.
func (r *memStockRepo) GetForUpdate(accountID, itemID string) (*entity.Stock, error) {
	if s, ok := r.rows[r.key(accountID, itemID)]; ok {
		cp := *s
		return &cp, nil
	}
	return &entity.Stock{AccountID: accountID, ItemID: itemID, Count: decimal.Zero}, nil
}

func (r *memStockRepo) Upsert(s *entity.Stock) error {
	cp := *s
	r.rows[r.key(s.AccountID, s.ItemID)] = &cp
	return nil
}

func (r *memStockRepo) count(t *testing.T, accountID, itemID string) decimal.Decimal {
	t.Helper()
	s, err := r.Get(accountID, itemID)
	require.NoError(t, err)
	return s.Count
}

func delta(itemID string, qty int64) entity.StockDelta {
	return entity.StockDelta{ItemID: itemID, Quantity: decimal.NewFromInt(qty)}
}

func deltas(ds ...entity.StockDelta) []entity.StockDelta { return ds }

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestApplyIncrease_CreaFilaDesdeCero(t *testing.T) {
	repo := newMemStockRepo()
	adj := stock.NewAdjuster()

	err := adj.ApplyIncrease(repo, "acc-1", deltas(delta("item-a", 5)))
	require.NoError(t, err)

	assert.True(t, repo.count(t, "acc-1", "item-a").Equal(decimal.NewFromInt(5)))
}

func TestApplyIncrease_AcumulaSobreExistente(t *testing.T) {
	repo := newMemStockRepo()
	adj := stock.NewAdjuster()

	require.NoError(t, adj.ApplyIncrease(repo, "acc-1", deltas(delta("item-a", 5))))
	require.NoError(t, adj.ApplyIncrease(repo, "acc-1", deltas(delta("item-a", 3), delta("item-b", 2))))

	assert.True(t, repo.count(t, "acc-1", "item-a").Equal(decimal.NewFromInt(8)))
	assert.True(t, repo.count(t, "acc-1", "item-b").Equal(decimal.NewFromInt(2)))
}

func TestApplyDecrease_PermiteStockNegativo(t *testing.T) {
	repo := newMemStockRepo()
	adj := stock.NewAdjuster()

	// Sobreventa: decrementar sin existencias previas deja saldo negativo
	err := adj.ApplyDecrease(repo, "acc-1", deltas(delta("item-a", 4)))
	require.NoError(t, err)

	assert.True(t, repo.count(t, "acc-1", "item-a").Equal(decimal.NewFromInt(-4)))
}

func TestReverse_DeshaceExactamenteElForward(t *testing.T) {
	repo := newMemStockRepo()
	adj := stock.NewAdjuster()
	d := deltas(delta("item-a", 7), delta("item-b", 3))

	require.NoError(t, adj.ApplyIncrease(repo, "acc-1", d))
	require.NoError(t, adj.Reverse(repo, "acc-1", d, stock.DirectionIncrease))

	assert.True(t, repo.count(t, "acc-1", "item-a").IsZero())
	assert.True(t, repo.count(t, "acc-1", "item-b").IsZero())
}

func TestReverse_DeRemisionSuma(t *testing.T) {
	repo := newMemStockRepo()
	adj := stock.NewAdjuster()
	d := deltas(delta("item-a", 6))

	require.NoError(t, adj.ApplyDecrease(repo, "acc-1", d))
	require.NoError(t, adj.Reverse(repo, "acc-1", d, stock.DirectionDecrease))

	assert.True(t, repo.count(t, "acc-1", "item-a").IsZero())
}

func TestReverse_LuegoReaplicarNetaLaDiferencia(t *testing.T) {
	repo := newMemStockRepo()
	adj := stock.NewAdjuster()

	// Documento original recibe 10; el update lo corrige a 4
	require.NoError(t, adj.ApplyIncrease(repo, "acc-1", deltas(delta("item-a", 10))))
	require.NoError(t, adj.Reverse(repo, "acc-1", deltas(delta("item-a", 10)), stock.DirectionIncrease))
	require.NoError(t, adj.ApplyIncrease(repo, "acc-1", deltas(delta("item-a", 4))))

	assert.True(t, repo.count(t, "acc-1", "item-a").Equal(decimal.NewFromInt(4)))
}

func TestReverse_DireccionInvalidaRetornaError(t *testing.T) {
	repo := newMemStockRepo()
	adj := stock.NewAdjuster()

	err := adj.Reverse(repo, "acc-1", deltas(delta("item-a", 1)), stock.Direction(0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAjustes_AislamientoPorCuenta(t *testing.T) {
	repo := newMemStockRepo()
	adj := stock.NewAdjuster()

	require.NoError(t, adj.ApplyIncrease(repo, "acc-1", deltas(delta("item-a", 5))))
	require.NoError(t, adj.ApplyIncrease(repo, "acc-2", deltas(delta("item-a", 2))))

	assert.True(t, repo.count(t, "acc-1", "item-a").Equal(decimal.NewFromInt(5)))
	assert.True(t, repo.count(t, "acc-2", "item-a").Equal(decimal.NewFromInt(2)))
}
