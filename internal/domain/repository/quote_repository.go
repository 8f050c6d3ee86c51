package repository

import (
	"time"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

// QuoteRepository puerto de persistencia para cotizaciones.
type QuoteRepository interface {
	Create(quote *entity.Quote) error
	CreateItem(item *entity.QuoteItem) error
	Update(quote *entity.Quote) error
	SoftDelete(id string, at time.Time) error
	GetByID(id string) (*entity.Quote, error)
	GetItems(quoteID string) ([]*entity.QuoteItem, error)
	DeleteItems(quoteID string) error
	ListByAccount(accountID string, limit, offset int) ([]*entity.Quote, error)
	NextNumber(accountID string) (int64, error)
	// LastLinePrice último precio cotizado del artículo para el tercero. nil si no hay histórico.
	LastLinePrice(accountID, itemID, partyID string) (*entity.LastPrice, error)
}

// OrderRepository puerto de persistencia para pedidos.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	Update(order *entity.Order) error
	SoftDelete(id string, at time.Time) error
	GetByID(id string) (*entity.Order, error)
	GetItems(orderID string) ([]*entity.OrderItem, error)
	DeleteItems(orderID string) error
	ListByAccount(accountID string, limit, offset int) ([]*entity.Order, error)
	NextNumber(accountID string) (int64, error)
}
