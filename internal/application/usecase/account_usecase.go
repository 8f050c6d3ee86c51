package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// AccountUseCase administración de cuentas (tenants) y sus flags de modo.
// Cambiar enable_grns/enable_delivery_notes solo afecta documentos futuros;
// los ya registrados conservan su efecto en stock.
type AccountUseCase struct {
	repo repository.AccountRepository
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(repo repository.AccountRepository) *AccountUseCase {
	return &AccountUseCase{repo: repo}
}

// Create crea la cuenta. Los flags omitidos quedan en false (modo automático).
func (uc *AccountUseCase) Create(in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	now := time.Now()
	account := &entity.Account{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.EnableGrns != nil {
		account.EnableGrns = *in.EnableGrns
	}
	if in.EnableDeliveryNotes != nil {
		account.EnableDeliveryNotes = *in.EnableDeliveryNotes
	}
	if err := uc.repo.Create(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// GetByID obtiene una cuenta.
func (uc *AccountUseCase) GetByID(id string) (*dto.AccountResponse, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	return toAccountResponse(account), nil
}

// Update actualiza campos presentes en el request.
func (uc *AccountUseCase) Update(id string, in dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		account.Name = *in.Name
	}
	if in.EnableGrns != nil {
		account.EnableGrns = *in.EnableGrns
	}
	if in.EnableDeliveryNotes != nil {
		account.EnableDeliveryNotes = *in.EnableDeliveryNotes
	}
	if in.Status != nil {
		account.Status = *in.Status
	}
	account.UpdatedAt = time.Now()
	if err := uc.repo.Update(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// List lista cuentas con paginación.
func (uc *AccountUseCase) List(limit, offset int) ([]dto.AccountResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AccountResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAccountResponse(a))
	}
	return items, nil
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	return &dto.AccountResponse{
		ID:                  a.ID,
		Name:                a.Name,
		EnableGrns:          a.EnableGrns,
		EnableDeliveryNotes: a.EnableDeliveryNotes,
		Status:              a.Status,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}
