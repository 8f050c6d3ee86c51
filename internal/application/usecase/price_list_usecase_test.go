package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/application/usecase"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

// memPriceListRepo fake en memoria que registra los toques de updated_at:
// es la señal que promueve la lista en la resolución de precios.
type memPriceListRepo struct {
	rows    map[string]*entity.PriceList
	items   map[string][]*entity.PriceListItem
	touches map[string]int
}

func newMemPriceListRepo() *memPriceListRepo {
	return &memPriceListRepo{
		rows:    make(map[string]*entity.PriceList),
		items:   make(map[string][]*entity.PriceListItem),
		touches: make(map[string]int),
	}
}

func (r *memPriceListRepo) Create(l *entity.PriceList) error {
	cp := *l
	r.rows[l.ID] = &cp
	return nil
}

func (r *memPriceListRepo) Update(l *entity.PriceList) error { return r.Create(l) }

func (r *memPriceListRepo) Delete(id string) error {
	delete(r.rows, id)
	delete(r.items, id)
	return nil
}

func (r *memPriceListRepo) GetByID(id string) (*entity.PriceList, error) {
	l, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *memPriceListRepo) ListByAccount(accountID string, _, _ int) ([]*entity.PriceList, error) {
	var out []*entity.PriceList
	for _, l := range r.rows {
		if l.AccountID == accountID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ReplaceItems reemplaza las líneas y toca updated_at, como el repo Postgres.
func (r *memPriceListRepo) ReplaceItems(listID string, items []*entity.PriceListItem) error {
	r.items[listID] = items
	return r.Touch(listID)
}

func (r *memPriceListRepo) GetItems(listID string) ([]*entity.PriceListItem, error) {
	return r.items[listID], nil
}

func (r *memPriceListRepo) Touch(listID string) error {
	r.touches[listID]++
	if l, ok := r.rows[listID]; ok {
		l.UpdatedAt = time.Now()
	}
	return nil
}

func (r *memPriceListRepo) CandidatesForItem(_, _ string) ([]*entity.PriceListCandidate, error) {
	return nil, nil
}

func listLine(itemID string, price int64) dto.PriceListItemRequest {
	return dto.PriceListItemRequest{ItemID: itemID, Price: decimal.NewFromInt(price)}
}

func TestPriceListCreate_GuardaListaConLineas(t *testing.T) {
	repo := newMemPriceListRepo()
	uc := usecase.NewPriceListUseCase(repo)

	out, err := uc.Create("acc-1", dto.CreatePriceListRequest{
		Name:  "Mayorista",
		Items: []dto.PriceListItemRequest{listLine("item-a", 95), listLine("item-b", 50)},
	})
	require.NoError(t, err)

	assert.Equal(t, "Mayorista", out.Name)
	assert.Len(t, out.Items, 2)
}

func TestPriceListUpdate_ReemplazoDeLineasTocaUpdatedAt(t *testing.T) {
	repo := newMemPriceListRepo()
	uc := usecase.NewPriceListUseCase(repo)

	created, err := uc.Create("acc-1", dto.CreatePriceListRequest{Name: "General"})
	require.NoError(t, err)

	_, err = uc.Update("acc-1", created.ID, dto.UpdatePriceListRequest{
		Items: []dto.PriceListItemRequest{listLine("item-a", 120)},
	})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, repo.touches[created.ID], 1)
}

func TestPriceListUpdate_SinCambiosTambienTocaUpdatedAt(t *testing.T) {
	repo := newMemPriceListRepo()
	uc := usecase.NewPriceListUseCase(repo)

	created, err := uc.Create("acc-1", dto.CreatePriceListRequest{Name: "General"})
	require.NoError(t, err)
	before := repo.touches[created.ID]

	// Re-guardar sin nombre ni líneas: el guardado vacío es el mecanismo
	// de promoción en la resolución de precios
	_, err = uc.Update("acc-1", created.ID, dto.UpdatePriceListRequest{})
	require.NoError(t, err)

	assert.Equal(t, before+1, repo.touches[created.ID])
}

func TestPriceListUpdate_DeOtraCuentaRetornaForbidden(t *testing.T) {
	repo := newMemPriceListRepo()
	uc := usecase.NewPriceListUseCase(repo)

	created, err := uc.Create("acc-1", dto.CreatePriceListRequest{Name: "General"})
	require.NoError(t, err)

	_, err = uc.Update("acc-2", created.ID, dto.UpdatePriceListRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPriceListDelete_EliminaListaYLineas(t *testing.T) {
	repo := newMemPriceListRepo()
	uc := usecase.NewPriceListUseCase(repo)

	created, err := uc.Create("acc-1", dto.CreatePriceListRequest{
		Name:  "General",
		Items: []dto.PriceListItemRequest{listLine("item-a", 120)},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete("acc-1", created.ID))

	_, err = uc.Get("acc-1", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
