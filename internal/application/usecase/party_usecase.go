package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// PartyUseCase casos de uso CRUD para terceros (clientes y proveedores).
type PartyUseCase struct {
	repo repository.PartyRepository
}

// NewPartyUseCase construye el caso de uso.
func NewPartyUseCase(repo repository.PartyRepository) *PartyUseCase {
	return &PartyUseCase{repo: repo}
}

// Create crea un tercero.
func (uc *PartyUseCase) Create(accountID string, in dto.CreatePartyRequest) (*dto.PartyResponse, error) {
	if !entity.ValidPartyType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	party := &entity.Party{
		ID:        uuid.New().String(),
		AccountID: accountID,
		Name:      in.Name,
		Type:      in.Type,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(party); err != nil {
		return nil, err
	}
	return toPartyResponse(party), nil
}

// GetByID obtiene un tercero de la cuenta.
func (uc *PartyUseCase) GetByID(accountID, id string) (*dto.PartyResponse, error) {
	party, err := uc.getOwned(accountID, id)
	if err != nil {
		return nil, err
	}
	return toPartyResponse(party), nil
}

// Update actualiza campos presentes en el request.
func (uc *PartyUseCase) Update(accountID, id string, in dto.UpdatePartyRequest) (*dto.PartyResponse, error) {
	party, err := uc.getOwned(accountID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		party.Name = *in.Name
	}
	if in.Type != nil {
		if !entity.ValidPartyType(*in.Type) {
			return nil, domain.ErrInvalidInput
		}
		party.Type = *in.Type
	}
	if in.Phone != nil {
		party.Phone = *in.Phone
	}
	if in.Email != nil {
		party.Email = *in.Email
	}
	if in.Address != nil {
		party.Address = *in.Address
	}
	party.UpdatedAt = time.Now()
	if err := uc.repo.Update(party); err != nil {
		return nil, err
	}
	return toPartyResponse(party), nil
}

// List lista terceros por cuenta; partyType vacío lista todos.
func (uc *PartyUseCase) List(accountID, partyType string, limit, offset int) (*dto.PartyListResponse, error) {
	if partyType != "" && !entity.ValidPartyType(partyType) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByAccount(accountID, partyType, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartyResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPartyResponse(p))
	}
	return &dto.PartyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un tercero de la cuenta.
func (uc *PartyUseCase) Delete(accountID, id string) error {
	if _, err := uc.getOwned(accountID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *PartyUseCase) getOwned(accountID, id string) (*entity.Party, error) {
	party, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, domain.ErrNotFound
	}
	if party.AccountID != accountID {
		return nil, domain.ErrForbidden
	}
	return party, nil
}

func toPartyResponse(p *entity.Party) *dto.PartyResponse {
	return &dto.PartyResponse{
		ID:        p.ID,
		AccountID: p.AccountID,
		Name:      p.Name,
		Type:      p.Type,
		Phone:     p.Phone,
		Email:     p.Email,
		Address:   p.Address,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
