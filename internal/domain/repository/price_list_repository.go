package repository

import "github.com/jhoicas/Comercio-api/internal/domain/entity"

// PriceListRepository puerto de persistencia para listas de precios.
// Toda escritura de ítems debe "tocar" el updated_at de la lista padre:
// ese timestamp es la fecha efectiva en la resolución de precios.
type PriceListRepository interface {
	Create(list *entity.PriceList) error
	Update(list *entity.PriceList) error
	Delete(id string) error
	GetByID(id string) (*entity.PriceList, error)
	ListByAccount(accountID string, limit, offset int) ([]*entity.PriceList, error)
	// ReplaceItems reemplaza las líneas completas de la lista y toca updated_at.
	ReplaceItems(listID string, items []*entity.PriceListItem) error
	GetItems(listID string) ([]*entity.PriceListItem, error)
	// Touch actualiza updated_at de la lista (promueve su rango en la resolución).
	Touch(listID string) error
	// CandidatesForItem precios del artículo en todas las listas de la cuenta,
	// con el updated_at de cada lista como fecha efectiva.
	CandidatesForItem(accountID, itemID string) ([]*entity.PriceListCandidate, error)
}
