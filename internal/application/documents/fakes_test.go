package documents_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercio-api/internal/application/documents"
	"github.com/jhoicas/Comercio-api/internal/application/stock"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Imitan la semántica de los
// repos Postgres: borrado lógico excluido de las consultas, fila de stock en
// cero cuando no existe y consecutivos que no se reutilizan tras un borrado.

// ─────────────────────────────────────────────
// Stock
// ─────────────────────────────────────────────

type memStockRepo struct {
	rows map[string]*entity.Stock
}

func newMemStockRepo() *memStockRepo {
	return &memStockRepo{rows: make(map[string]*entity.Stock)}
}

func (r *memStockRepo) key(accountID, itemID string) string { return accountID + "|" + itemID }

func (r *memStockRepo) Get(accountID, itemID string) (*entity.Stock, error) {
	return r.GetForUpdate(accountID, itemID)
}

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

// ─────────────────────────────────────────────
// GRNs
// ─────────────────────────────────────────────

type memGrnRepo struct {
	rows  map[string]*entity.Grn
	items map[string][]*entity.GrnItem
	seq   map[string]int64
}

func newMemGrnRepo() *memGrnRepo {
	return &memGrnRepo{
		rows:  make(map[string]*entity.Grn),
		items: make(map[string][]*entity.GrnItem),
		seq:   make(map[string]int64),
	}
}

func (r *memGrnRepo) Create(g *entity.Grn) error {
	cp := *g
	r.rows[g.ID] = &cp
	return nil
}

func (r *memGrnRepo) CreateItem(it *entity.GrnItem) error {
	cp := *it
	r.items[it.GrnID] = append(r.items[it.GrnID], &cp)
	return nil
}

func (r *memGrnRepo) Update(g *entity.Grn) error {
	cp := *g
	r.rows[g.ID] = &cp
	return nil
}

func (r *memGrnRepo) SoftDelete(id string, at time.Time) error {
	if g, ok := r.rows[id]; ok {
		g.DeletedAt = &at
	}
	return nil
}

func (r *memGrnRepo) GetByID(id string) (*entity.Grn, error) {
	g, ok := r.rows[id]
	if !ok || g.Deleted() {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (r *memGrnRepo) GetItems(grnID string) ([]*entity.GrnItem, error) {
	out := make([]*entity.GrnItem, 0, len(r.items[grnID]))
	for _, it := range r.items[grnID] {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memGrnRepo) DeleteItems(grnID string) error {
	delete(r.items, grnID)
	return nil
}

func (r *memGrnRepo) ListByAccount(accountID string, _, _ int) ([]*entity.Grn, error) {
	var out []*entity.Grn
	for _, g := range r.rows {
		if g.AccountID == accountID && !g.Deleted() {
			cp := *g
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memGrnRepo) FindByPurchaseID(purchaseID string) ([]*entity.Grn, error) {
	var out []*entity.Grn
	for _, g := range r.rows {
		if g.PurchaseID == purchaseID && !g.Deleted() {
			cp := *g
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memGrnRepo) FindAutoByPurchaseID(purchaseID string) (*entity.Grn, error) {
	for _, g := range r.rows {
		if g.PurchaseID == purchaseID && g.AutoGenerated && !g.Deleted() {
			cp := *g
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memGrnRepo) NextNumber(accountID string) (int64, error) {
	r.seq[accountID]++
	return r.seq[accountID], nil
}

// ─────────────────────────────────────────────
// Remisiones
// ─────────────────────────────────────────────

type memNoteRepo struct {
	rows  map[string]*entity.DeliveryNote
	items map[string][]*entity.DeliveryNoteItem
	seq   map[string]int64
}

func newMemNoteRepo() *memNoteRepo {
	return &memNoteRepo{
		rows:  make(map[string]*entity.DeliveryNote),
		items: make(map[string][]*entity.DeliveryNoteItem),
		seq:   make(map[string]int64),
	}
}

func (r *memNoteRepo) Create(n *entity.DeliveryNote) error {
	cp := *n
	r.rows[n.ID] = &cp
	return nil
}

func (r *memNoteRepo) CreateItem(it *entity.DeliveryNoteItem) error {
	cp := *it
	r.items[it.DeliveryNoteID] = append(r.items[it.DeliveryNoteID], &cp)
	return nil
}

func (r *memNoteRepo) Update(n *entity.DeliveryNote) error {
	cp := *n
	r.rows[n.ID] = &cp
	return nil
}

func (r *memNoteRepo) SoftDelete(id string, at time.Time) error {
	if n, ok := r.rows[id]; ok {
		n.DeletedAt = &at
	}
	return nil
}

func (r *memNoteRepo) GetByID(id string) (*entity.DeliveryNote, error) {
	n, ok := r.rows[id]
	if !ok || n.Deleted() {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (r *memNoteRepo) GetItems(noteID string) ([]*entity.DeliveryNoteItem, error) {
	out := make([]*entity.DeliveryNoteItem, 0, len(r.items[noteID]))
	for _, it := range r.items[noteID] {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memNoteRepo) DeleteItems(noteID string) error {
	delete(r.items, noteID)
	return nil
}

func (r *memNoteRepo) ListByAccount(accountID string, _, _ int) ([]*entity.DeliveryNote, error) {
	var out []*entity.DeliveryNote
	for _, n := range r.rows {
		if n.AccountID == accountID && !n.Deleted() {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memNoteRepo) FindBySaleID(saleID string) ([]*entity.DeliveryNote, error) {
	var out []*entity.DeliveryNote
	for _, n := range r.rows {
		if n.SaleID == saleID && !n.Deleted() {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memNoteRepo) FindAutoBySaleID(saleID string) (*entity.DeliveryNote, error) {
	for _, n := range r.rows {
		if n.SaleID == saleID && n.AutoGenerated && !n.Deleted() {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memNoteRepo) NextNumber(accountID string) (int64, error) {
	r.seq[accountID]++
	return r.seq[accountID], nil
}

// ─────────────────────────────────────────────
// Compras
// ─────────────────────────────────────────────

type memPurchaseRepo struct {
	rows  map[string]*entity.Purchase
	items map[string][]*entity.PurchaseItem
	seq   map[string]int64
}

func newMemPurchaseRepo() *memPurchaseRepo {
	return &memPurchaseRepo{
		rows:  make(map[string]*entity.Purchase),
		items: make(map[string][]*entity.PurchaseItem),
		seq:   make(map[string]int64),
	}
}

func (r *memPurchaseRepo) Create(p *entity.Purchase) error {
	cp := *p
	r.rows[p.ID] = &cp
	return nil
}

func (r *memPurchaseRepo) CreateItem(it *entity.PurchaseItem) error {
	cp := *it
	r.items[it.PurchaseID] = append(r.items[it.PurchaseID], &cp)
	return nil
}

func (r *memPurchaseRepo) Update(p *entity.Purchase) error {
	cp := *p
	r.rows[p.ID] = &cp
	return nil
}

func (r *memPurchaseRepo) SoftDelete(id string, at time.Time) error {
	if p, ok := r.rows[id]; ok {
		p.DeletedAt = &at
	}
	return nil
}

func (r *memPurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	p, ok := r.rows[id]
	if !ok || p.Deleted() {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memPurchaseRepo) GetItems(purchaseID string) ([]*entity.PurchaseItem, error) {
	out := make([]*entity.PurchaseItem, 0, len(r.items[purchaseID]))
	for _, it := range r.items[purchaseID] {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memPurchaseRepo) DeleteItems(purchaseID string) error {
	delete(r.items, purchaseID)
	return nil
}

func (r *memPurchaseRepo) ListByAccount(accountID string, _, _ int) ([]*entity.Purchase, error) {
	var out []*entity.Purchase
	for _, p := range r.rows {
		if p.AccountID == accountID && !p.Deleted() {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memPurchaseRepo) NextNumber(accountID string) (int64, error) {
	r.seq[accountID]++
	return r.seq[accountID], nil
}

func (r *memPurchaseRepo) LastLinePrice(_, _, _ string) (*entity.LastPrice, error) {
	return nil, nil
}

// ─────────────────────────────────────────────
// Ventas
// ─────────────────────────────────────────────

type memSaleRepo struct {
	rows  map[string]*entity.Sale
	items map[string][]*entity.SaleItem
	seq   map[string]int64
}

func newMemSaleRepo() *memSaleRepo {
	return &memSaleRepo{
		rows:  make(map[string]*entity.Sale),
		items: make(map[string][]*entity.SaleItem),
		seq:   make(map[string]int64),
	}
}

func (r *memSaleRepo) Create(s *entity.Sale) error {
	cp := *s
	r.rows[s.ID] = &cp
	return nil
}

func (r *memSaleRepo) CreateItem(it *entity.SaleItem) error {
	cp := *it
	r.items[it.SaleID] = append(r.items[it.SaleID], &cp)
	return nil
}

func (r *memSaleRepo) Update(s *entity.Sale) error {
	cp := *s
	r.rows[s.ID] = &cp
	return nil
}

func (r *memSaleRepo) SoftDelete(id string, at time.Time) error {
	if s, ok := r.rows[id]; ok {
		s.DeletedAt = &at
	}
	return nil
}

func (r *memSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := r.rows[id]
	if !ok || s.Deleted() {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memSaleRepo) GetItems(saleID string) ([]*entity.SaleItem, error) {
	out := make([]*entity.SaleItem, 0, len(r.items[saleID]))
	for _, it := range r.items[saleID] {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memSaleRepo) DeleteItems(saleID string) error {
	delete(r.items, saleID)
	return nil
}

func (r *memSaleRepo) ListByAccount(accountID string, _, _ int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.rows {
		if s.AccountID == accountID && !s.Deleted() {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memSaleRepo) NextNumber(accountID string) (int64, error) {
	r.seq[accountID]++
	return r.seq[accountID], nil
}

func (r *memSaleRepo) LastLinePrice(_, _, _ string) (*entity.LastPrice, error) {
	return nil, nil
}

// ─────────────────────────────────────────────
// Maestros
// ─────────────────────────────────────────────

type memAccountRepo struct {
	rows map[string]*entity.Account
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{rows: make(map[string]*entity.Account)}
}

func (r *memAccountRepo) Create(a *entity.Account) error {
	cp := *a
	r.rows[a.ID] = &cp
	return nil
}

func (r *memAccountRepo) Update(a *entity.Account) error { return r.Create(a) }

func (r *memAccountRepo) GetByID(id string) (*entity.Account, error) {
	a, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *memAccountRepo) List(_, _ int) ([]*entity.Account, error) {
	var out []*entity.Account
	for _, a := range r.rows {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

type memPartyRepo struct {
	rows map[string]*entity.Party
}

func newMemPartyRepo() *memPartyRepo {
	return &memPartyRepo{rows: make(map[string]*entity.Party)}
}

func (r *memPartyRepo) Create(p *entity.Party) error {
	cp := *p
	r.rows[p.ID] = &cp
	return nil
}

func (r *memPartyRepo) Update(p *entity.Party) error { return r.Create(p) }

func (r *memPartyRepo) Delete(id string) error {
	delete(r.rows, id)
	return nil
}

func (r *memPartyRepo) GetByID(id string) (*entity.Party, error) {
	p, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memPartyRepo) ListByAccount(accountID, partyType string, _, _ int) ([]*entity.Party, error) {
	var out []*entity.Party
	for _, p := range r.rows {
		if p.AccountID != accountID {
			continue
		}
		if partyType != "" && p.Type != partyType && p.Type != entity.PartyTypeBoth {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

type memItemRepo struct {
	rows map[string]*entity.Item
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{rows: make(map[string]*entity.Item)}
}

func (r *memItemRepo) Create(it *entity.Item) error {
	cp := *it
	r.rows[it.ID] = &cp
	return nil
}

func (r *memItemRepo) Update(it *entity.Item) error { return r.Create(it) }

func (r *memItemRepo) Delete(id string) error {
	delete(r.rows, id)
	return nil
}

func (r *memItemRepo) GetByID(id string) (*entity.Item, error) {
	it, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *memItemRepo) GetByAccountAndCode(accountID, code string) (*entity.Item, error) {
	for _, it := range r.rows {
		if it.AccountID == accountID && it.Code == code {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memItemRepo) ListByAccount(accountID string, _, _ int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range r.rows {
		if it.AccountID == accountID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ─────────────────────────────────────────────
// TxRunner
// ─────────────────────────────────────────────

// memTxRunner ejecuta el callback contra los fakes compartidos (sin
// transacción real; los tests verifican la secuencia, no el aislamiento).
type memTxRunner struct {
	stock     *memStockRepo
	grns      *memGrnRepo
	notes     *memNoteRepo
	purchases *memPurchaseRepo
	sales     *memSaleRepo
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	stockRepo repository.StockRepository,
	grnRepo repository.GrnRepository,
	noteRepo repository.DeliveryNoteRepository,
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return fn(r.stock, r.grns, r.notes, r.purchases, r.sales)
}

var _ documents.TxRunner = (*memTxRunner)(nil)

// ─────────────────────────────────────────────
// Fixture
// ─────────────────────────────────────────────

type fixture struct {
	stock     *memStockRepo
	grns      *memGrnRepo
	notes     *memNoteRepo
	purchases *memPurchaseRepo
	sales     *memSaleRepo
	accounts  *memAccountRepo
	parties   *memPartyRepo
	catalog   *memItemRepo
	tx        *memTxRunner
	adjuster  *stock.Adjuster
}

func newFixture() *fixture {
	f := &fixture{
		stock:     newMemStockRepo(),
		grns:      newMemGrnRepo(),
		notes:     newMemNoteRepo(),
		purchases: newMemPurchaseRepo(),
		sales:     newMemSaleRepo(),
		accounts:  newMemAccountRepo(),
		parties:   newMemPartyRepo(),
		catalog:   newMemItemRepo(),
		adjuster:  stock.NewAdjuster(),
	}
	f.tx = &memTxRunner{
		stock:     f.stock,
		grns:      f.grns,
		notes:     f.notes,
		purchases: f.purchases,
		sales:     f.sales,
	}
	return f
}

// seedAccount crea una cuenta; los flags en true habilitan el registro manual
// (false = modo automático).
func (f *fixture) seedAccount(manualGrns, manualNotes bool) string {
	id := uuid.New().String()
	_ = f.accounts.Create(&entity.Account{
		ID:                  id,
		Name:                "Distribuidora El Centro",
		EnableGrns:          manualGrns,
		EnableDeliveryNotes: manualNotes,
		Status:              "active",
	})
	return id
}

func (f *fixture) seedParty(accountID, partyType string) string {
	id := uuid.New().String()
	_ = f.parties.Create(&entity.Party{
		ID:        id,
		AccountID: accountID,
		Name:      "Tercero de prueba",
		Type:      partyType,
	})
	return id
}

func (f *fixture) seedItem(accountID, code string) string {
	id := uuid.New().String()
	_ = f.catalog.Create(&entity.Item{
		ID:        id,
		AccountID: accountID,
		Code:      code,
		Name:      "Artículo " + code,
	})
	return id
}

func (f *fixture) seedPurchase(accountID, partyID string) string {
	id := uuid.New().String()
	_ = f.purchases.Create(&entity.Purchase{
		ID:        id,
		AccountID: accountID,
		PartyID:   partyID,
		Date:      time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	})
	return id
}

func (f *fixture) seedSale(accountID, partyID string) string {
	id := uuid.New().String()
	_ = f.sales.Create(&entity.Sale{
		ID:        id,
		AccountID: accountID,
		PartyID:   partyID,
		Date:      time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	})
	return id
}

func (f *fixture) stockCount(accountID, itemID string) decimal.Decimal {
	s, _ := f.stock.Get(accountID, itemID)
	return s.Count
}
