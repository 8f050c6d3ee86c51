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

// GrnUseCase ciclo de vida de GRNs manuales: crear aplica el incremento de
// stock, actualizar revierte-y-reaplica, borrar revierte y marca borrado
// lógico. Toda la secuencia de cada operación corre en una sola transacción.
type GrnUseCase struct {
	txRunner     TxRunner
	adjuster     *stock.Adjuster
	grnRepo      repository.GrnRepository
	purchaseRepo repository.PurchaseRepository
}

// NewGrnUseCase construye el caso de uso.
func NewGrnUseCase(
	txRunner TxRunner,
	adjuster *stock.Adjuster,
	grnRepo repository.GrnRepository,
	purchaseRepo repository.PurchaseRepository,
) *GrnUseCase {
	return &GrnUseCase{
		txRunner:     txRunner,
		adjuster:     adjuster,
		grnRepo:      grnRepo,
		purchaseRepo: purchaseRepo,
	}
}

// Create crea la GRN con sus líneas y aplica el incremento de stock.
// El incremento se calcula releyendo las líneas ya confirmadas dentro de la
// tx, no desde el request.
func (uc *GrnUseCase) Create(ctx context.Context, accountID string, in dto.CreateGrnRequest) (*dto.GrnResponse, error) {
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	// Validar que la compra exista y sea de la cuenta (lectura fuera de la tx)
	purchase, err := uc.purchaseRepo.GetByID(in.PurchaseID)
	if err != nil || purchase == nil {
		return nil, domain.ErrNotFound
	}
	if purchase.AccountID != accountID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	grn := &entity.Grn{
		ID:         uuid.New().String(),
		AccountID:  accountID,
		PurchaseID: in.PurchaseID,
		Date:       date,
		VehicleNo:  in.VehicleNo,
		InvoiceNo:  in.InvoiceNo,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	var items []*entity.GrnItem

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		grnRepo repository.GrnRepository,
		_ repository.DeliveryNoteRepository,
		_ repository.PurchaseRepository,
		_ repository.SaleRepository,
	) error {
		no, err := grnRepo.NextNumber(accountID)
		if err != nil {
			return err
		}
		grn.GrnNo = no
		if err := grnRepo.Create(grn); err != nil {
			return err
		}
		for _, it := range in.Items {
			item := &entity.GrnItem{
				ID:       uuid.New().String(),
				GrnID:    grn.ID,
				ItemID:   it.ItemID,
				Quantity: it.Quantity,
			}
			if err := grnRepo.CreateItem(item); err != nil {
				return err
			}
		}
		// Releer líneas confirmadas y aplicar el incremento desde ellas
		items, err = grnRepo.GetItems(grn.ID)
		if err != nil {
			return err
		}
		return uc.adjuster.ApplyIncrease(stockRepo, accountID, entity.GrnItemDeltas(items))
	})
	if err != nil {
		return nil, err
	}
	return toGrnResponse(grn, items), nil
}

// Update reconcilia el stock: (1) revierte con las líneas viejas, (2) persiste
// cabecera, (3) reemplaza líneas si vienen en el request, (4) relee las líneas
// confirmadas, (5) re-aplica el incremento. Todo en una transacción.
func (uc *GrnUseCase) Update(ctx context.Context, accountID, id string, in dto.UpdateGrnRequest) (*dto.GrnResponse, error) {
	grn, err := uc.grnRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if grn == nil {
		return nil, domain.ErrNotFound
	}
	if grn.AccountID != accountID {
		return nil, domain.ErrForbidden
	}

	if in.Date != nil {
		date, err := dto.ParseDate(*in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		grn.Date = date
	}
	if in.VehicleNo != nil {
		grn.VehicleNo = *in.VehicleNo
	}
	if in.InvoiceNo != nil {
		grn.InvoiceNo = *in.InvoiceNo
	}
	if in.Notes != nil {
		grn.Notes = *in.Notes
	}
	grn.UpdatedAt = time.Now()

	var items []*entity.GrnItem
	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		grnRepo repository.GrnRepository,
		_ repository.DeliveryNoteRepository,
		_ repository.PurchaseRepository,
		_ repository.SaleRepository,
	) error {
		// 1) Revertir con las líneas actualmente persistidas
		oldItems, err := grnRepo.GetItems(grn.ID)
		if err != nil {
			return err
		}
		if err := uc.adjuster.Reverse(stockRepo, accountID, entity.GrnItemDeltas(oldItems), stock.DirectionIncrease); err != nil {
			return err
		}
		// 2) Cabecera
		if err := grnRepo.Update(grn); err != nil {
			return err
		}
		// 3) Reemplazo completo de líneas si el request las trae
		if in.Items != nil {
			if err := grnRepo.DeleteItems(grn.ID); err != nil {
				return err
			}
			for _, it := range in.Items {
				item := &entity.GrnItem{
					ID:       uuid.New().String(),
					GrnID:    grn.ID,
					ItemID:   it.ItemID,
					Quantity: it.Quantity,
				}
				if err := grnRepo.CreateItem(item); err != nil {
					return err
				}
			}
		}
		// 4) Releer confirmado y 5) re-aplicar
		items, err = grnRepo.GetItems(grn.ID)
		if err != nil {
			return err
		}
		return uc.adjuster.ApplyIncrease(stockRepo, accountID, entity.GrnItemDeltas(items))
	})
	if err != nil {
		return nil, err
	}
	return toGrnResponse(grn, items), nil
}

// Delete revierte el efecto en stock y marca la GRN como borrada (borrado lógico).
func (uc *GrnUseCase) Delete(ctx context.Context, accountID, id string) error {
	grn, err := uc.grnRepo.GetByID(id)
	if err != nil {
		return err
	}
	if grn == nil {
		return domain.ErrNotFound
	}
	if grn.AccountID != accountID {
		return domain.ErrForbidden
	}

	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		grnRepo repository.GrnRepository,
		_ repository.DeliveryNoteRepository,
		_ repository.PurchaseRepository,
		_ repository.SaleRepository,
	) error {
		items, err := grnRepo.GetItems(grn.ID)
		if err != nil {
			return err
		}
		if err := uc.adjuster.Reverse(stockRepo, accountID, entity.GrnItemDeltas(items), stock.DirectionIncrease); err != nil {
			return err
		}
		return grnRepo.SoftDelete(grn.ID, time.Now())
	})
}

// Get obtiene una GRN con sus líneas.
func (uc *GrnUseCase) Get(ctx context.Context, accountID, id string) (*dto.GrnResponse, error) {
	grn, err := uc.grnRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if grn == nil {
		return nil, domain.ErrNotFound
	}
	if grn.AccountID != accountID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.grnRepo.GetItems(grn.ID)
	if err != nil {
		return nil, err
	}
	return toGrnResponse(grn, items), nil
}

// List lista GRNs de la cuenta con paginación (sin líneas).
func (uc *GrnUseCase) List(ctx context.Context, accountID string, limit, offset int) (*dto.GrnListResponse, error) {
	list, err := uc.grnRepo.ListByAccount(accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.GrnResponse, 0, len(list))
	for _, g := range list {
		items = append(items, *toGrnResponse(g, nil))
	}
	return &dto.GrnListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toGrnResponse(g *entity.Grn, items []*entity.GrnItem) *dto.GrnResponse {
	resp := &dto.GrnResponse{
		ID:            g.ID,
		AccountID:     g.AccountID,
		PurchaseID:    g.PurchaseID,
		GrnNo:         g.GrnNo,
		Date:          dto.FormatDate(g.Date),
		VehicleNo:     g.VehicleNo,
		InvoiceNo:     g.InvoiceNo,
		Notes:         g.Notes,
		AutoGenerated: g.AutoGenerated,
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
