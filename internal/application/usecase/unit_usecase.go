package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// UnitUseCase casos de uso CRUD para unidades de medida.
type UnitUseCase struct {
	repo repository.UnitRepository
}

func NewUnitUseCase(repo repository.UnitRepository) *UnitUseCase {
	return &UnitUseCase{repo: repo}
}

func (uc *UnitUseCase) Create(accountID string, in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	now := time.Now()
	unit := &entity.Unit{
		ID:        uuid.New().String(),
		AccountID: accountID,
		Name:      in.Name,
		ShortName: in.ShortName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

func (uc *UnitUseCase) GetByID(accountID, id string) (*dto.UnitResponse, error) {
	unit, err := uc.getOwned(accountID, id)
	if err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

func (uc *UnitUseCase) Update(accountID, id string, in dto.UpdateUnitRequest) (*dto.UnitResponse, error) {
	unit, err := uc.getOwned(accountID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		unit.Name = *in.Name
	}
	if in.ShortName != nil {
		unit.ShortName = *in.ShortName
	}
	unit.UpdatedAt = time.Now()
	if err := uc.repo.Update(unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

func (uc *UnitUseCase) List(accountID string, limit, offset int) (*dto.UnitListResponse, error) {
	list, err := uc.repo.ListByAccount(accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UnitResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUnitResponse(u))
	}
	return &dto.UnitListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *UnitUseCase) Delete(accountID, id string) error {
	if _, err := uc.getOwned(accountID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *UnitUseCase) getOwned(accountID, id string) (*entity.Unit, error) {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	if unit.AccountID != accountID {
		return nil, domain.ErrForbidden
	}
	return unit, nil
}

func toUnitResponse(u *entity.Unit) *dto.UnitResponse {
	return &dto.UnitResponse{
		ID:        u.ID,
		AccountID: u.AccountID,
		Name:      u.Name,
		ShortName: u.ShortName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
