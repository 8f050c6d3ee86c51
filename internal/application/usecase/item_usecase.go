package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD para artículos. Las existencias se manejan
// vía GRN/remisiones, nunca aquí.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un artículo. Code único por cuenta.
func (uc *ItemUseCase) Create(accountID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	existing, _ := uc.repo.GetByAccountAndCode(accountID, in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	item := &entity.Item{
		ID:            uuid.New().String(),
		AccountID:     accountID,
		Code:          in.Code,
		Name:          in.Name,
		Description:   in.Description,
		UnitID:        in.UnitID,
		TaxID:         in.TaxID,
		SalePrice:     in.SalePrice,
		PurchasePrice: in.PurchasePrice,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un artículo de la cuenta.
func (uc *ItemUseCase) GetByID(accountID, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.AccountID != accountID {
		return nil, domain.ErrForbidden
	}
	return toItemResponse(item), nil
}

// Update actualiza campos presentes en el request.
func (uc *ItemUseCase) Update(accountID, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.AccountID != accountID {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.UnitID != nil {
		item.UnitID = in.UnitID
	}
	if in.TaxID != nil {
		item.TaxID = in.TaxID
	}
	if in.SalePrice != nil {
		item.SalePrice = *in.SalePrice
	}
	if in.PurchasePrice != nil {
		item.PurchasePrice = *in.PurchasePrice
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista artículos por cuenta con paginación.
func (uc *ItemUseCase) List(accountID string, limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.repo.ListByAccount(accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un artículo de la cuenta.
func (uc *ItemUseCase) Delete(accountID, id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if item.AccountID != accountID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:            it.ID,
		AccountID:     it.AccountID,
		Code:          it.Code,
		Name:          it.Name,
		Description:   it.Description,
		UnitID:        it.UnitID,
		TaxID:         it.TaxID,
		SalePrice:     it.SalePrice,
		PurchasePrice: it.PurchasePrice,
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
}
