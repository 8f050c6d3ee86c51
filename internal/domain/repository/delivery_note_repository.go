package repository

import (
	"time"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

// DeliveryNoteRepository puerto de persistencia para remisiones y sus líneas.
type DeliveryNoteRepository interface {
	Create(note *entity.DeliveryNote) error
	CreateItem(item *entity.DeliveryNoteItem) error
	Update(note *entity.DeliveryNote) error
	SoftDelete(id string, at time.Time) error
	GetByID(id string) (*entity.DeliveryNote, error)
	GetItems(noteID string) ([]*entity.DeliveryNoteItem, error)
	DeleteItems(noteID string) error
	ListByAccount(accountID string, limit, offset int) ([]*entity.DeliveryNote, error)
	FindBySaleID(saleID string) ([]*entity.DeliveryNote, error)
	FindAutoBySaleID(saleID string) (*entity.DeliveryNote, error)
	NextNumber(accountID string) (int64, error)
}
