package documents

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/application/stock"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// PurchaseUseCase ciclo de vida de compras con sincronización de la GRN
// automática: si la cuenta opera en modo automático (enable_grns=false), al
// crear la compra se sintetiza la GRN y se aplica el incremento de stock; al
// actualizarla se revierte, se sincronizan las líneas desde el estado
// confirmado de la compra y se re-aplica; al borrarla se revierte toda GRN
// ligada. La secuencia de cada operación corre en una sola transacción.
type PurchaseUseCase struct {
	txRunner     TxRunner
	adjuster     *stock.Adjuster
	accountRepo  repository.AccountRepository
	partyRepo    repository.PartyRepository
	itemRepo     repository.ItemRepository
	purchaseRepo repository.PurchaseRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(
	txRunner TxRunner,
	adjuster *stock.Adjuster,
	accountRepo repository.AccountRepository,
	partyRepo repository.PartyRepository,
	itemRepo repository.ItemRepository,
	purchaseRepo repository.PurchaseRepository,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		txRunner:     txRunner,
		adjuster:     adjuster,
		accountRepo:  accountRepo,
		partyRepo:    partyRepo,
		itemRepo:     itemRepo,
		purchaseRepo: purchaseRepo,
	}
}

// Create persiste la compra con sus líneas y, en modo automático, sintetiza
// la GRN copiando las líneas confirmadas de la compra y aplica el incremento.
func (uc *PurchaseUseCase) Create(ctx context.Context, accountID string, in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	account, err := uc.validateHeader(accountID, in.PartyID, in.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	purchase := &entity.Purchase{
		ID:        uuid.New().String(),
		AccountID: accountID,
		PartyID:   in.PartyID,
		Date:      date,
		Notes:     in.Notes,
		Total:     documentTotal(in.Items),
		CreatedAt: now,
		UpdatedAt: now,
	}
	var items []*entity.PurchaseItem

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		grnRepo repository.GrnRepository,
		_ repository.DeliveryNoteRepository,
		purchaseRepo repository.PurchaseRepository,
		_ repository.SaleRepository,
	) error {
		no, err := purchaseRepo.NextNumber(accountID)
		if err != nil {
			return err
		}
		purchase.PurchaseNo = no
		if err := purchaseRepo.Create(purchase); err != nil {
			return err
		}
		for _, it := range in.Items {
			item := &entity.PurchaseItem{
				ID:         uuid.New().String(),
				PurchaseID: purchase.ID,
				ItemID:     it.ItemID,
				Price:      it.Price,
				Qty:        it.Qty,
				TaxID:      it.TaxID,
			}
			if err := purchaseRepo.CreateItem(item); err != nil {
				return err
			}
		}
		items, err = purchaseRepo.GetItems(purchase.ID)
		if err != nil {
			return err
		}
		if !account.AutoGrns() {
			return nil
		}
		// Modo automático: sintetizar GRN desde las líneas confirmadas
		return uc.synthesizeGrn(stockRepo, grnRepo, purchase, items, now)
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase, items), nil
}

// Update actualiza la compra y reconcilia la GRN automática: si existe,
// revierte su efecto, sincroniza fecha y líneas desde la compra confirmada y
// re-aplica; si fue borrada por fuera, la repara creándola de nuevo.
func (uc *PurchaseUseCase) Update(ctx context.Context, accountID, id string, in dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	if purchase.AccountID != accountID {
		return nil, domain.ErrForbidden
	}
	account, err := uc.accountRepo.GetByID(accountID)
	if err != nil || account == nil {
		return nil, domain.ErrNotFound
	}

	if in.PartyID != nil {
		party, _ := uc.partyRepo.GetByID(*in.PartyID)
		if party == nil || party.AccountID != accountID {
			return nil, domain.ErrNotFound
		}
		purchase.PartyID = *in.PartyID
	}
	if in.Date != nil {
		date, err := dto.ParseDate(*in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		purchase.Date = date
	}
	if in.Notes != nil {
		purchase.Notes = *in.Notes
	}
	if in.Items != nil {
		if err := uc.validateItems(accountID, in.Items); err != nil {
			return nil, err
		}
		purchase.Total = documentTotal(in.Items)
	}
	now := time.Now()
	purchase.UpdatedAt = now

	var items []*entity.PurchaseItem
	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		grnRepo repository.GrnRepository,
		_ repository.DeliveryNoteRepository,
		purchaseRepo repository.PurchaseRepository,
		_ repository.SaleRepository,
	) error {
		if err := purchaseRepo.Update(purchase); err != nil {
			return err
		}
		if in.Items != nil {
			if err := purchaseRepo.DeleteItems(purchase.ID); err != nil {
				return err
			}
			for _, it := range in.Items {
				item := &entity.PurchaseItem{
					ID:         uuid.New().String(),
					PurchaseID: purchase.ID,
					ItemID:     it.ItemID,
					Price:      it.Price,
					Qty:        it.Qty,
					TaxID:      it.TaxID,
				}
				if err := purchaseRepo.CreateItem(item); err != nil {
					return err
				}
			}
		}
		// Líneas confirmadas de la compra: fuente de verdad para la GRN
		items, err = purchaseRepo.GetItems(purchase.ID)
		if err != nil {
			return err
		}
		if !account.AutoGrns() {
			return nil
		}
		grn, err := grnRepo.FindAutoByPurchaseID(purchase.ID)
		if err != nil {
			return err
		}
		if grn == nil {
			// Reparación: la GRN automática fue borrada por fuera
			return uc.synthesizeGrn(stockRepo, grnRepo, purchase, items, now)
		}
		oldGrnItems, err := grnRepo.GetItems(grn.ID)
		if err != nil {
			return err
		}
		if err := uc.adjuster.Reverse(stockRepo, accountID, entity.GrnItemDeltas(oldGrnItems), stock.DirectionIncrease); err != nil {
			return err
		}
		grn.Date = purchase.Date
		grn.UpdatedAt = now
		if err := grnRepo.Update(grn); err != nil {
			return err
		}
		if err := grnRepo.DeleteItems(grn.ID); err != nil {
			return err
		}
		for _, it := range items {
			gi := &entity.GrnItem{
				ID:       uuid.New().String(),
				GrnID:    grn.ID,
				ItemID:   it.ItemID,
				Quantity: it.Qty,
			}
			if err := grnRepo.CreateItem(gi); err != nil {
				return err
			}
		}
		newGrnItems, err := grnRepo.GetItems(grn.ID)
		if err != nil {
			return err
		}
		return uc.adjuster.ApplyIncrease(stockRepo, accountID, entity.GrnItemDeltas(newGrnItems))
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase, items), nil
}

// Delete revierte el efecto de TODAS las GRNs ligadas a la compra (manuales o
// automáticas), las borra lógicamente y luego borra la compra.
func (uc *PurchaseUseCase) Delete(ctx context.Context, accountID, id string) error {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if purchase == nil {
		return domain.ErrNotFound
	}
	if purchase.AccountID != accountID {
		return domain.ErrForbidden
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		grnRepo repository.GrnRepository,
		_ repository.DeliveryNoteRepository,
		purchaseRepo repository.PurchaseRepository,
		_ repository.SaleRepository,
	) error {
		grns, err := grnRepo.FindByPurchaseID(purchase.ID)
		if err != nil {
			return err
		}
		for _, grn := range grns {
			items, err := grnRepo.GetItems(grn.ID)
			if err != nil {
				return err
			}
			if err := uc.adjuster.Reverse(stockRepo, accountID, entity.GrnItemDeltas(items), stock.DirectionIncrease); err != nil {
				return err
			}
			if err := grnRepo.SoftDelete(grn.ID, now); err != nil {
				return err
			}
		}
		return purchaseRepo.SoftDelete(purchase.ID, now)
	})
}

// Get obtiene una compra con sus líneas.
func (uc *PurchaseUseCase) Get(ctx context.Context, accountID, id string) (*dto.DocumentResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	if purchase.AccountID != accountID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.purchaseRepo.GetItems(purchase.ID)
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase, items), nil
}

// List lista compras de la cuenta con paginación (sin líneas).
func (uc *PurchaseUseCase) List(ctx context.Context, accountID string, limit, offset int) (*dto.DocumentListResponse, error) {
	list, err := uc.purchaseRepo.ListByAccount(accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPurchaseResponse(p, nil))
	}
	return &dto.DocumentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// synthesizeGrn crea la GRN automática desde las líneas confirmadas de la
// compra y aplica el incremento de stock.
func (uc *PurchaseUseCase) synthesizeGrn(
	stockRepo repository.StockRepository,
	grnRepo repository.GrnRepository,
	purchase *entity.Purchase,
	items []*entity.PurchaseItem,
	now time.Time,
) error {
	no, err := grnRepo.NextNumber(purchase.AccountID)
	if err != nil {
		return err
	}
	grn := &entity.Grn{
		ID:            uuid.New().String(),
		AccountID:     purchase.AccountID,
		PurchaseID:    purchase.ID,
		GrnNo:         no,
		Date:          purchase.Date,
		AutoGenerated: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := grnRepo.Create(grn); err != nil {
		return err
	}
	for _, it := range items {
		gi := &entity.GrnItem{
			ID:       uuid.New().String(),
			GrnID:    grn.ID,
			ItemID:   it.ItemID,
			Quantity: it.Qty,
		}
		if err := grnRepo.CreateItem(gi); err != nil {
			return err
		}
	}
	grnItems, err := grnRepo.GetItems(grn.ID)
	if err != nil {
		return err
	}
	return uc.adjuster.ApplyIncrease(stockRepo, purchase.AccountID, entity.GrnItemDeltas(grnItems))
}

// validateHeader valida cuenta, tercero y líneas (lecturas fuera de la tx).
func (uc *PurchaseUseCase) validateHeader(accountID, partyID string, items []dto.DocumentItemRequest) (*entity.Account, error) {
	account, err := uc.accountRepo.GetByID(accountID)
	if err != nil || account == nil {
		return nil, domain.ErrNotFound
	}
	party, _ := uc.partyRepo.GetByID(partyID)
	if party == nil || party.AccountID != accountID {
		return nil, domain.ErrNotFound
	}
	if err := uc.validateItems(accountID, items); err != nil {
		return nil, err
	}
	return account, nil
}

func (uc *PurchaseUseCase) validateItems(accountID string, items []dto.DocumentItemRequest) error {
	for _, it := range items {
		if !it.Qty.GreaterThan(decimal.Zero) || it.Price.LessThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
		item, _ := uc.itemRepo.GetByID(it.ItemID)
		if item == nil || item.AccountID != accountID {
			return domain.ErrNotFound
		}
	}
	return nil
}

// documentTotal suma precio*cantidad de las líneas del request.
func documentTotal(items []dto.DocumentItemRequest) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(it.Qty))
	}
	return total
}

func toPurchaseResponse(p *entity.Purchase, items []*entity.PurchaseItem) *dto.DocumentResponse {
	resp := &dto.DocumentResponse{
		ID:        p.ID,
		AccountID: p.AccountID,
		PartyID:   p.PartyID,
		No:        p.PurchaseNo,
		Date:      dto.FormatDate(p.Date),
		Notes:     p.Notes,
		Total:     p.Total,
		Items:     make([]dto.DocumentItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.DocumentItemResponse{
			ID:     it.ID,
			ItemID: it.ItemID,
			Price:  it.Price,
			Qty:    it.Qty,
			TaxID:  it.TaxID,
		})
	}
	return resp
}
