package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// PriceListUseCase ciclo de vida de listas de precios. Re-guardar una lista
// (aun sin cambios) toca su updated_at y la promueve en la resolución de
// precios; es el mecanismo de override administrativo.
type PriceListUseCase struct {
	repo repository.PriceListRepository
}

// NewPriceListUseCase construye el caso de uso.
func NewPriceListUseCase(repo repository.PriceListRepository) *PriceListUseCase {
	return &PriceListUseCase{repo: repo}
}

// Create crea la lista con sus líneas.
func (uc *PriceListUseCase) Create(accountID string, in dto.CreatePriceListRequest) (*dto.PriceListResponse, error) {
	now := time.Now()
	list := &entity.PriceList{
		ID:        uuid.New().String(),
		AccountID: accountID,
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(list); err != nil {
		return nil, err
	}
	if len(in.Items) > 0 {
		if err := uc.repo.ReplaceItems(list.ID, toPriceListItems(list.ID, in.Items)); err != nil {
			return nil, err
		}
	}
	return uc.respond(list)
}

// Update actualiza nombre y/o líneas. Cualquier guardado toca updated_at,
// incluso si el contenido no cambió.
func (uc *PriceListUseCase) Update(accountID, id string, in dto.UpdatePriceListRequest) (*dto.PriceListResponse, error) {
	list, err := uc.getOwned(accountID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		list.Name = *in.Name
	}
	list.UpdatedAt = time.Now()
	if err := uc.repo.Update(list); err != nil {
		return nil, err
	}
	if in.Items != nil {
		if err := uc.repo.ReplaceItems(list.ID, toPriceListItems(list.ID, in.Items)); err != nil {
			return nil, err
		}
	} else {
		if err := uc.repo.Touch(list.ID); err != nil {
			return nil, err
		}
	}
	return uc.respond(list)
}

// Delete elimina la lista y sus líneas.
func (uc *PriceListUseCase) Delete(accountID, id string) error {
	if _, err := uc.getOwned(accountID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// Get obtiene una lista con sus líneas.
func (uc *PriceListUseCase) Get(accountID, id string) (*dto.PriceListResponse, error) {
	list, err := uc.getOwned(accountID, id)
	if err != nil {
		return nil, err
	}
	return uc.respond(list)
}

// List lista las listas de precios de la cuenta (sin líneas).
func (uc *PriceListUseCase) List(accountID string, limit, offset int) (*dto.PriceListListResponse, error) {
	lists, err := uc.repo.ListByAccount(accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PriceListResponse, 0, len(lists))
	for _, l := range lists {
		items = append(items, dto.PriceListResponse{
			ID:        l.ID,
			AccountID: l.AccountID,
			Name:      l.Name,
			UpdatedAt: l.UpdatedAt.Format(time.RFC3339),
			Items:     []dto.PriceListItemResponse{},
		})
	}
	return &dto.PriceListListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *PriceListUseCase) getOwned(accountID, id string) (*entity.PriceList, error) {
	list, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, domain.ErrNotFound
	}
	if list.AccountID != accountID {
		return nil, domain.ErrForbidden
	}
	return list, nil
}

func (uc *PriceListUseCase) respond(list *entity.PriceList) (*dto.PriceListResponse, error) {
	lines, err := uc.repo.GetItems(list.ID)
	if err != nil {
		return nil, err
	}
	resp := &dto.PriceListResponse{
		ID:        list.ID,
		AccountID: list.AccountID,
		Name:      list.Name,
		UpdatedAt: list.UpdatedAt.Format(time.RFC3339),
		Items:     make([]dto.PriceListItemResponse, 0, len(lines)),
	}
	for _, l := range lines {
		resp.Items = append(resp.Items, dto.PriceListItemResponse{
			ID:     l.ID,
			ItemID: l.ItemID,
			Price:  l.Price,
		})
	}
	return resp, nil
}

func toPriceListItems(listID string, in []dto.PriceListItemRequest) []*entity.PriceListItem {
	items := make([]*entity.PriceListItem, 0, len(in))
	for _, it := range in {
		items = append(items, &entity.PriceListItem{
			ID:          uuid.New().String(),
			PriceListID: listID,
			ItemID:      it.ItemID,
			Price:       it.Price,
		})
	}
	return items
}
