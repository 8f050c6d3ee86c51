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

// SaleUseCase ciclo de vida de ventas con sincronización de la remisión
// automática: espejo exacto de PurchaseUseCase sustituyendo incremento por
// decremento (enable_delivery_notes=false activa el modo automático).
type SaleUseCase struct {
	txRunner    TxRunner
	adjuster    *stock.Adjuster
	accountRepo repository.AccountRepository
	partyRepo   repository.PartyRepository
	itemRepo    repository.ItemRepository
	saleRepo    repository.SaleRepository
	pdfGen      SalePDFGenerator
}

// NewSaleUseCase construye el caso de uso. pdfGen puede ser nil (sin endpoint PDF).
func NewSaleUseCase(
	txRunner TxRunner,
	adjuster *stock.Adjuster,
	accountRepo repository.AccountRepository,
	partyRepo repository.PartyRepository,
	itemRepo repository.ItemRepository,
	saleRepo repository.SaleRepository,
	pdfGen SalePDFGenerator,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:    txRunner,
		adjuster:    adjuster,
		accountRepo: accountRepo,
		partyRepo:   partyRepo,
		itemRepo:    itemRepo,
		saleRepo:    saleRepo,
		pdfGen:      pdfGen,
	}
}

// Create persiste la venta con sus líneas y, en modo automático, sintetiza la
// remisión copiando las líneas confirmadas y aplica el decremento.
func (uc *SaleUseCase) Create(ctx context.Context, accountID string, in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	account, err := uc.validateHeader(accountID, in.PartyID, in.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:        uuid.New().String(),
		AccountID: accountID,
		PartyID:   in.PartyID,
		Date:      date,
		Notes:     in.Notes,
		Total:     documentTotal(in.Items),
		CreatedAt: now,
		UpdatedAt: now,
	}
	var items []*entity.SaleItem

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		_ repository.GrnRepository,
		noteRepo repository.DeliveryNoteRepository,
		_ repository.PurchaseRepository,
		saleRepo repository.SaleRepository,
	) error {
		no, err := saleRepo.NextNumber(accountID)
		if err != nil {
			return err
		}
		sale.SaleNo = no
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, it := range in.Items {
			item := &entity.SaleItem{
				ID:     uuid.New().String(),
				SaleID: sale.ID,
				ItemID: it.ItemID,
				Price:  it.Price,
				Qty:    it.Qty,
				TaxID:  it.TaxID,
			}
			if err := saleRepo.CreateItem(item); err != nil {
				return err
			}
		}
		items, err = saleRepo.GetItems(sale.ID)
		if err != nil {
			return err
		}
		if !account.AutoDeliveryNotes() {
			return nil
		}
		return uc.synthesizeNote(stockRepo, noteRepo, sale, items, now)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, items), nil
}

// Update actualiza la venta y reconcilia la remisión automática (revertir,
// sincronizar desde el estado confirmado, re-aplicar; o reparar si falta).
func (uc *SaleUseCase) Update(ctx context.Context, accountID, id string, in dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.AccountID != accountID {
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
		sale.PartyID = *in.PartyID
	}
	if in.Date != nil {
		date, err := dto.ParseDate(*in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		sale.Date = date
	}
	if in.Notes != nil {
		sale.Notes = *in.Notes
	}
	if in.Items != nil {
		if err := uc.validateItems(accountID, in.Items); err != nil {
			return nil, err
		}
		sale.Total = documentTotal(in.Items)
	}
	now := time.Now()
	sale.UpdatedAt = now

	var items []*entity.SaleItem
	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		_ repository.GrnRepository,
		noteRepo repository.DeliveryNoteRepository,
		_ repository.PurchaseRepository,
		saleRepo repository.SaleRepository,
	) error {
		if err := saleRepo.Update(sale); err != nil {
			return err
		}
		if in.Items != nil {
			if err := saleRepo.DeleteItems(sale.ID); err != nil {
				return err
			}
			for _, it := range in.Items {
				item := &entity.SaleItem{
					ID:     uuid.New().String(),
					SaleID: sale.ID,
					ItemID: it.ItemID,
					Price:  it.Price,
					Qty:    it.Qty,
					TaxID:  it.TaxID,
				}
				if err := saleRepo.CreateItem(item); err != nil {
					return err
				}
			}
		}
		items, err = saleRepo.GetItems(sale.ID)
		if err != nil {
			return err
		}
		if !account.AutoDeliveryNotes() {
			return nil
		}
		note, err := noteRepo.FindAutoBySaleID(sale.ID)
		if err != nil {
			return err
		}
		if note == nil {
			// Reparación: la remisión automática fue borrada por fuera
			return uc.synthesizeNote(stockRepo, noteRepo, sale, items, now)
		}
		oldNoteItems, err := noteRepo.GetItems(note.ID)
		if err != nil {
			return err
		}
		if err := uc.adjuster.Reverse(stockRepo, accountID, entity.DeliveryNoteItemDeltas(oldNoteItems), stock.DirectionDecrease); err != nil {
			return err
		}
		note.Date = sale.Date
		note.UpdatedAt = now
		if err := noteRepo.Update(note); err != nil {
			return err
		}
		if err := noteRepo.DeleteItems(note.ID); err != nil {
			return err
		}
		for _, it := range items {
			ni := &entity.DeliveryNoteItem{
				ID:             uuid.New().String(),
				DeliveryNoteID: note.ID,
				ItemID:         it.ItemID,
				Quantity:       it.Qty,
			}
			if err := noteRepo.CreateItem(ni); err != nil {
				return err
			}
		}
		newNoteItems, err := noteRepo.GetItems(note.ID)
		if err != nil {
			return err
		}
		return uc.adjuster.ApplyDecrease(stockRepo, accountID, entity.DeliveryNoteItemDeltas(newNoteItems))
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, items), nil
}

// Delete revierte el efecto de TODAS las remisiones ligadas a la venta, las
// borra lógicamente y luego borra la venta.
func (uc *SaleUseCase) Delete(ctx context.Context, accountID, id string) error {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	if sale.AccountID != accountID {
		return domain.ErrForbidden
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		_ repository.GrnRepository,
		noteRepo repository.DeliveryNoteRepository,
		_ repository.PurchaseRepository,
		saleRepo repository.SaleRepository,
	) error {
		notes, err := noteRepo.FindBySaleID(sale.ID)
		if err != nil {
			return err
		}
		for _, note := range notes {
			items, err := noteRepo.GetItems(note.ID)
			if err != nil {
				return err
			}
			if err := uc.adjuster.Reverse(stockRepo, accountID, entity.DeliveryNoteItemDeltas(items), stock.DirectionDecrease); err != nil {
				return err
			}
			if err := noteRepo.SoftDelete(note.ID, now); err != nil {
				return err
			}
		}
		return saleRepo.SoftDelete(sale.ID, now)
	})
}

// Get obtiene una venta con sus líneas.
func (uc *SaleUseCase) Get(ctx context.Context, accountID, id string) (*dto.DocumentResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.AccountID != accountID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.saleRepo.GetItems(sale.ID)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, items), nil
}

// List lista ventas de la cuenta con paginación (sin líneas).
func (uc *SaleUseCase) List(ctx context.Context, accountID string, limit, offset int) (*dto.DocumentListResponse, error) {
	list, err := uc.saleRepo.ListByAccount(accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s, nil))
	}
	return &dto.DocumentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Pdf genera la representación gráfica de la venta.
func (uc *SaleUseCase) Pdf(ctx context.Context, accountID, id string) ([]byte, error) {
	if uc.pdfGen == nil {
		return nil, domain.ErrNotFound
	}
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.AccountID != accountID {
		return nil, domain.ErrForbidden
	}
	account, err := uc.accountRepo.GetByID(accountID)
	if err != nil || account == nil {
		return nil, domain.ErrNotFound
	}
	party, _ := uc.partyRepo.GetByID(sale.PartyID)
	if party == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItems(sale.ID)
	if err != nil {
		return nil, err
	}
	lines := make([]SaleLineForPDF, 0, len(items))
	for _, it := range items {
		name, code := it.ItemID, ""
		if item, _ := uc.itemRepo.GetByID(it.ItemID); item != nil {
			name, code = item.Name, item.Code
		}
		lines = append(lines, SaleLineForPDF{
			ItemName: name,
			ItemCode: code,
			Qty:      it.Qty,
			Price:    it.Price,
			Subtotal: it.Qty.Mul(it.Price),
		})
	}
	return uc.pdfGen.GenerateSalePDF(ctx, sale, account, party, lines)
}

// synthesizeNote crea la remisión automática desde las líneas confirmadas de
// la venta y aplica el decremento de stock.
func (uc *SaleUseCase) synthesizeNote(
	stockRepo repository.StockRepository,
	noteRepo repository.DeliveryNoteRepository,
	sale *entity.Sale,
	items []*entity.SaleItem,
	now time.Time,
) error {
	no, err := noteRepo.NextNumber(sale.AccountID)
	if err != nil {
		return err
	}
	note := &entity.DeliveryNote{
		ID:            uuid.New().String(),
		AccountID:     sale.AccountID,
		SaleID:        sale.ID,
		NoteNo:        no,
		Date:          sale.Date,
		AutoGenerated: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := noteRepo.Create(note); err != nil {
		return err
	}
	for _, it := range items {
		ni := &entity.DeliveryNoteItem{
			ID:             uuid.New().String(),
			DeliveryNoteID: note.ID,
			ItemID:         it.ItemID,
			Quantity:       it.Qty,
		}
		if err := noteRepo.CreateItem(ni); err != nil {
			return err
		}
	}
	noteItems, err := noteRepo.GetItems(note.ID)
	if err != nil {
		return err
	}
	return uc.adjuster.ApplyDecrease(stockRepo, sale.AccountID, entity.DeliveryNoteItemDeltas(noteItems))
}

func (uc *SaleUseCase) validateHeader(accountID, partyID string, items []dto.DocumentItemRequest) (*entity.Account, error) {
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

func (uc *SaleUseCase) validateItems(accountID string, items []dto.DocumentItemRequest) error {
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

func toSaleResponse(s *entity.Sale, items []*entity.SaleItem) *dto.DocumentResponse {
	resp := &dto.DocumentResponse{
		ID:        s.ID,
		AccountID: s.AccountID,
		PartyID:   s.PartyID,
		No:        s.SaleNo,
		Date:      dto.FormatDate(s.Date),
		Notes:     s.Notes,
		Total:     s.Total,
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
