package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// TaxUseCase casos de uso CRUD para impuestos.
type TaxUseCase struct {
	repo repository.TaxRepository
}

func NewTaxUseCase(repo repository.TaxRepository) *TaxUseCase {
	return &TaxUseCase{repo: repo}
}

func (uc *TaxUseCase) Create(accountID string, in dto.CreateTaxRequest) (*dto.TaxResponse, error) {
	now := time.Now()
	tax := &entity.Tax{
		ID:        uuid.New().String(),
		AccountID: accountID,
		Name:      in.Name,
		Rate:      in.Rate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(tax); err != nil {
		return nil, err
	}
	return toTaxResponse(tax), nil
}

func (uc *TaxUseCase) GetByID(accountID, id string) (*dto.TaxResponse, error) {
	tax, err := uc.getOwned(accountID, id)
	if err != nil {
		return nil, err
	}
	return toTaxResponse(tax), nil
}

func (uc *TaxUseCase) Update(accountID, id string, in dto.UpdateTaxRequest) (*dto.TaxResponse, error) {
	tax, err := uc.getOwned(accountID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		tax.Name = *in.Name
	}
	if in.Rate != nil {
		tax.Rate = *in.Rate
	}
	tax.UpdatedAt = time.Now()
	if err := uc.repo.Update(tax); err != nil {
		return nil, err
	}
	return toTaxResponse(tax), nil
}

func (uc *TaxUseCase) List(accountID string, limit, offset int) (*dto.TaxListResponse, error) {
	list, err := uc.repo.ListByAccount(accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TaxResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTaxResponse(t))
	}
	return &dto.TaxListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *TaxUseCase) Delete(accountID, id string) error {
	if _, err := uc.getOwned(accountID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *TaxUseCase) getOwned(accountID, id string) (*entity.Tax, error) {
	tax, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tax == nil {
		return nil, domain.ErrNotFound
	}
	if tax.AccountID != accountID {
		return nil, domain.ErrForbidden
	}
	return tax, nil
}

func toTaxResponse(t *entity.Tax) *dto.TaxResponse {
	return &dto.TaxResponse{
		ID:        t.ID,
		AccountID: t.AccountID,
		Name:      t.Name,
		Rate:      t.Rate,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
