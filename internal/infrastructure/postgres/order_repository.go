package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera del pedido.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, account_id, party_id, order_no, date, notes, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.AccountID, order.PartyID, order.OrderNo,
		order.Date, order.Notes, order.Total, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItem persiste una línea del pedido.
func (r *OrderRepo) CreateItem(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, item_id, price, qty, tax_id)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.ItemID, item.Price, item.Qty, item.TaxID,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// Update persiste solo campos de cabecera.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders SET party_id = $2, date = $3, notes = $4, total = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.PartyID, order.Date, order.Notes, order.Total, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// SoftDelete marca el pedido como borrado.
func (r *OrderRepo) SoftDelete(id string, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`,
		id, at,
	)
	if err != nil {
		return fmt.Errorf("soft delete order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido vivo por ID. nil si no existe o está borrado.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, account_id, party_id, order_no, date, notes, total, created_at, updated_at, deleted_at
		FROM orders WHERE id = $1 AND deleted_at IS NULL`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.AccountID, &o.PartyID, &o.OrderNo, &o.Date,
		&o.Notes, &o.Total, &o.CreatedAt, &o.UpdatedAt, &o.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// GetItems devuelve las líneas del pedido.
func (r *OrderRepo) GetItems(orderID string) ([]*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, item_id, price, qty, tax_id
		FROM order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}
	defer rows.Close()

	var items []*entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ItemID, &it.Price, &it.Qty, &it.TaxID); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// DeleteItems elimina todas las líneas (reemplazo completo en updates).
func (r *OrderRepo) DeleteItems(orderID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM order_items WHERE order_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	return nil
}

// ListByAccount lista pedidos vivos de la cuenta con paginación.
func (r *OrderRepo) ListByAccount(accountID string, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, account_id, party_id, order_no, date, notes, total, created_at, updated_at, deleted_at
		FROM orders WHERE account_id = $1 AND deleted_at IS NULL
		ORDER BY order_no DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.AccountID, &o.PartyID, &o.OrderNo, &o.Date,
			&o.Notes, &o.Total, &o.CreatedAt, &o.UpdatedAt, &o.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// NextNumber devuelve el siguiente consecutivo de pedido de la cuenta.
func (r *OrderRepo) NextNumber(accountID string) (int64, error) {
	var next int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(order_no), 0) + 1 FROM orders WHERE account_id = $1`,
		accountID,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next order number: %w", err)
	}
	return next, nil
}
