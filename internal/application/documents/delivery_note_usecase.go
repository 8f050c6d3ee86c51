package documents

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/application/stock"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// DeliveryNoteUseCase ciclo de vida de remisiones manuales: espejo de la GRN
// con decremento de stock en lugar de incremento. Mismo protocolo
// reverse -> mutar -> releer confirmado -> re-aplicar en una sola transacción.
type DeliveryNoteUseCase struct {
	txRunner TxRunner
	adjuster *stock.Adjuster
	noteRepo repository.DeliveryNoteRepository
	saleRepo repository.SaleRepository
}

// NewDeliveryNoteUseCase construye el caso de uso.
func NewDeliveryNoteUseCase(
	txRunner TxRunner,
	adjuster *stock.Adjuster,
	noteRepo repository.DeliveryNoteRepository,
	saleRepo repository.SaleRepository,
) *DeliveryNoteUseCase {
	return &DeliveryNoteUseCase{
		txRunner: txRunner,
		adjuster: adjuster,
		noteRepo: noteRepo,
		saleRepo: saleRepo,
	}
}

// Create crea la remisión con sus líneas y aplica el decremento de stock
// desde las líneas confirmadas. Stock negativo permitido (sobreventa).
func (uc *DeliveryNoteUseCase) Create(ctx context.Context, accountID string, in dto.CreateDeliveryNoteRequest) (*dto.DeliveryNoteResponse, error) {
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	sale, err := uc.saleRepo.GetByID(in.SaleID)
	if err != nil || sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.AccountID != accountID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	note := &entity.DeliveryNote{
		ID:        uuid.New().String(),
		AccountID: accountID,
		SaleID:    in.SaleID,
		Date:      date,
		VehicleNo: in.VehicleNo,
		InvoiceNo: in.InvoiceNo,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	var items []*entity.DeliveryNoteItem

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		_ repository.GrnRepository,
		noteRepo repository.DeliveryNoteRepository,
		_ repository.PurchaseRepository,
		_ repository.SaleRepository,
	) error {
		no, err := noteRepo.NextNumber(accountID)
		if err != nil {
			return err
		}
		note.NoteNo = no
		if err := noteRepo.Create(note); err != nil {
			return err
		}
		for _, it := range in.Items {
			item := &entity.DeliveryNoteItem{
				ID:             uuid.New().String(),
				DeliveryNoteID: note.ID,
				ItemID:         it.ItemID,
				Quantity:       it.Quantity,
			}
			if err := noteRepo.CreateItem(item); err != nil {
				return err
			}
		}
		items, err = noteRepo.GetItems(note.ID)
		if err != nil {
			return err
		}
		return uc.adjuster.ApplyDecrease(stockRepo, accountID, entity.DeliveryNoteItemDeltas(items))
	})
	if err != nil {
		return nil, err
	}
	return toDeliveryNoteResponse(note, items), nil
}

// Update reconcilia el stock con el protocolo de la GRN pero con signo
// invertido: revierte (suma), muta, relee confirmado y re-aplica (resta).
func (uc *DeliveryNoteUseCase) Update(ctx context.Context, accountID, id string, in dto.UpdateDeliveryNoteRequest) (*dto.DeliveryNoteResponse, error) {
	note, err := uc.noteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, domain.ErrNotFound
	}
	if note.AccountID != accountID {
		return nil, domain.ErrForbidden
	}

	if in.Date != nil {
		date, err := dto.ParseDate(*in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		note.Date = date
	}
	if in.VehicleNo != nil {
		note.VehicleNo = *in.VehicleNo
	}
	if in.InvoiceNo != nil {
		note.InvoiceNo = *in.InvoiceNo
	}
	if in.Notes != nil {
		note.Notes = *in.Notes
	}
	note.UpdatedAt = time.Now()

	var items []*entity.DeliveryNoteItem
	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		_ repository.GrnRepository,
		noteRepo repository.DeliveryNoteRepository,
		_ repository.PurchaseRepository,
		_ repository.SaleRepository,
	) error {
		oldItems, err := noteRepo.GetItems(note.ID)
		if err != nil {
			return err
		}
		if err := uc.adjuster.Reverse(stockRepo, accountID, entity.DeliveryNoteItemDeltas(oldItems), stock.DirectionDecrease); err != nil {
			return err
		}
		if err := noteRepo.Update(note); err != nil {
			return err
		}
		if in.Items != nil {
			if err := noteRepo.DeleteItems(note.ID); err != nil {
				return err
			}
			for _, it := range in.Items {
				item := &entity.DeliveryNoteItem{
					ID:             uuid.New().String(),
					DeliveryNoteID: note.ID,
					ItemID:         it.ItemID,
					Quantity:       it.Quantity,
				}
				if err := noteRepo.CreateItem(item); err != nil {
					return err
				}
			}
		}
		items, err = noteRepo.GetItems(note.ID)
		if err != nil {
			return err
		}
		return uc.adjuster.ApplyDecrease(stockRepo, accountID, entity.DeliveryNoteItemDeltas(items))
	})
	if err != nil {
		return nil, err
	}
	return toDeliveryNoteResponse(note, items), nil
}

// Delete revierte el decremento (suma de vuelta) y marca borrado lógico.
func (uc *DeliveryNoteUseCase) Delete(ctx context.Context, accountID, id string) error {
	note, err := uc.noteRepo.GetByID(id)
	if err != nil {
		return err
	}
	if note == nil {
		return domain.ErrNotFound
	}
	if note.AccountID != accountID {
		return domain.ErrForbidden
	}

	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		_ repository.GrnRepository,
		noteRepo repository.DeliveryNoteRepository,
		_ repository.PurchaseRepository,
		_ repository.SaleRepository,
	) error {
		items, err := noteRepo.GetItems(note.ID)
		if err != nil {
			return err
		}
		if err := uc.adjuster.Reverse(stockRepo, accountID, entity.DeliveryNoteItemDeltas(items), stock.DirectionDecrease); err != nil {
			return err
		}
		return noteRepo.SoftDelete(note.ID, time.Now())
	})
}

// Get obtiene una remisión con sus líneas.
func (uc *DeliveryNoteUseCase) Get(ctx context.Context, accountID, id string) (*dto.DeliveryNoteResponse, error) {
	note, err := uc.noteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, domain.ErrNotFound
	}
	if note.AccountID != accountID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.noteRepo.GetItems(note.ID)
	if err != nil {
		return nil, err
	}
	return toDeliveryNoteResponse(note, items), nil
}

// List lista remisiones de la cuenta con paginación (sin líneas).
func (uc *DeliveryNoteUseCase) List(ctx context.Context, accountID string, limit, offset int) (*dto.DeliveryNoteListResponse, error) {
	list, err := uc.noteRepo.ListByAccount(accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DeliveryNoteResponse, 0, len(list))
	for _, n := range list {
		items = append(items, *toDeliveryNoteResponse(n, nil))
	}
	return &dto.DeliveryNoteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toDeliveryNoteResponse(n *entity.DeliveryNote, items []*entity.DeliveryNoteItem) *dto.DeliveryNoteResponse {
	resp := &dto.DeliveryNoteResponse{
		ID:            n.ID,
		AccountID:     n.AccountID,
		SaleID:        n.SaleID,
		NoteNo:        n.NoteNo,
		Date:          dto.FormatDate(n.Date),
		VehicleNo:     n.VehicleNo,
		InvoiceNo:     n.InvoiceNo,
		Notes:         n.Notes,
		AutoGenerated: n.AutoGenerated,
		Items:         make([]dto.GrnItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.GrnItemResponse{
			ID:       it.ID,
			ItemID:   it.ItemID,
			Quantity: it.Quantity,
		})
	}
	return resp
}
