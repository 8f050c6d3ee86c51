package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// OrderUseCase ciclo de vida de pedidos. No tocan stock ni precios.
type OrderUseCase struct {
	repo      repository.OrderRepository
	partyRepo repository.PartyRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, partyRepo repository.PartyRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo, partyRepo: partyRepo}
}

// Create crea el pedido con sus líneas y total calculado.
func (uc *OrderUseCase) Create(accountID string, in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkParty(accountID, in.PartyID); err != nil {
		return nil, err
	}

	no, err := uc.repo.NextNumber(accountID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	order := &entity.Order{
		ID:        uuid.New().String(),
		AccountID: accountID,
		PartyID:   in.PartyID,
		OrderNo:   no,
		Date:      date,
		Notes:     in.Notes,
		Total:     lineTotal(in.Items),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	for _, it := range in.Items {
		line := &entity.OrderItem{
			ID:      uuid.New().String(),
			OrderID: order.ID,
			ItemID:  it.ItemID,
			Price:   it.Price,
			Qty:     it.Qty,
			TaxID:   it.TaxID,
		}
		if err := uc.repo.CreateItem(line); err != nil {
			return nil, err
		}
	}
	items, err := uc.repo.GetItems(order.ID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, items), nil
}

// Update actualiza cabecera y, si vienen, reemplaza las líneas.
func (uc *OrderUseCase) Update(accountID, id string, in dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	order, err := uc.getOwned(accountID, id)
	if err != nil {
		return nil, err
	}
	if in.PartyID != nil {
		if err := uc.checkParty(accountID, *in.PartyID); err != nil {
			return nil, err
		}
		order.PartyID = *in.PartyID
	}
	if in.Date != nil {
		date, err := dto.ParseDate(*in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		order.Date = date
	}
	if in.Notes != nil {
		order.Notes = *in.Notes
	}
	if in.Items != nil {
		if err := uc.repo.DeleteItems(order.ID); err != nil {
			return nil, err
		}
		for _, it := range in.Items {
			line := &entity.OrderItem{
				ID:      uuid.New().String(),
				OrderID: order.ID,
				ItemID:  it.ItemID,
				Price:   it.Price,
				Qty:     it.Qty,
				TaxID:   it.TaxID,
			}
			if err := uc.repo.CreateItem(line); err != nil {
				return nil, err
			}
		}
		order.Total = lineTotal(in.Items)
	}
	order.UpdatedAt = time.Now()
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	items, err := uc.repo.GetItems(order.ID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, items), nil
}

// Delete borra lógicamente el pedido.
func (uc *OrderUseCase) Delete(accountID, id string) error {
	if _, err := uc.getOwned(accountID, id); err != nil {
		return err
	}
	return uc.repo.SoftDelete(id, time.Now())
}

// Get obtiene un pedido con sus líneas.
func (uc *OrderUseCase) Get(accountID, id string) (*dto.DocumentResponse, error) {
	order, err := uc.getOwned(accountID, id)
	if err != nil {
		return nil, err
	}
	items, err := uc.repo.GetItems(order.ID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, items), nil
}

// List lista pedidos de la cuenta (sin líneas).
func (uc *OrderUseCase) List(accountID string, limit, offset int) (*dto.DocumentListResponse, error) {
	list, err := uc.repo.ListByAccount(accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o, nil))
	}
	return &dto.DocumentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *OrderUseCase) getOwned(accountID, id string) (*entity.Order, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.AccountID != accountID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func (uc *OrderUseCase) checkParty(accountID, partyID string) error {
	party, err := uc.partyRepo.GetByID(partyID)
	if err != nil {
		return err
	}
	if party == nil || party.AccountID != accountID {
		return domain.ErrNotFound
	}
	return nil
}

func toOrderResponse(o *entity.Order, items []*entity.OrderItem) *dto.DocumentResponse {
	resp := &dto.DocumentResponse{
		ID:        o.ID,
		AccountID: o.AccountID,
		PartyID:   o.PartyID,
		No:        o.OrderNo,
		Date:      dto.FormatDate(o.Date),
		Notes:     o.Notes,
		Total:     o.Total,
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
