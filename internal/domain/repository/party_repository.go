package repository

import "github.com/jhoicas/Comercio-api/internal/domain/entity"

// PartyRepository puerto de persistencia para terceros (clientes/proveedores).
type PartyRepository interface {
	Create(party *entity.Party) error
	Update(party *entity.Party) error
	Delete(id string) error
	GetByID(id string) (*entity.Party, error)
	// ListByAccount lista terceros; partyType vacío no filtra.
	ListByAccount(accountID, partyType string, limit, offset int) ([]*entity.Party, error)
}
