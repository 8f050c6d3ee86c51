package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.PriceListRepository = (*PriceListRepo)(nil)

// PriceListRepo implementación de PriceListRepository sobre PostgreSQL.
// El updated_at de la lista es la fecha efectiva en la resolución de precios,
// por eso toda escritura de líneas lo toca.
type PriceListRepo struct {
	q Querier
}

// NewPriceListRepository construye el adaptador de listas de precios. Pasar pool o tx (Querier).
func NewPriceListRepository(q Querier) *PriceListRepo {
	return &PriceListRepo{q: q}
}

// Create persiste la lista.
func (r *PriceListRepo) Create(list *entity.PriceList) error {
	query := `
		INSERT INTO price_lists (id, account_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		list.ID, list.AccountID, list.Name, list.CreatedAt, list.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert price list: %w", err)
	}
	return nil
}

// Update persiste nombre y updated_at de la lista.
func (r *PriceListRepo) Update(list *entity.PriceList) error {
	query := `
		UPDATE price_lists SET name = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, list.ID, list.Name, list.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update price list: %w", err)
	}
	return nil
}

// Delete elimina la lista; las líneas caen por ON DELETE CASCADE.
func (r *PriceListRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM price_lists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete price list: %w", err)
	}
	return nil
}

// GetByID obtiene una lista por ID. nil si no existe.
func (r *PriceListRepo) GetByID(id string) (*entity.PriceList, error) {
	query := `
		SELECT id, account_id, name, created_at, updated_at
		FROM price_lists WHERE id = $1`
	var l entity.PriceList
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.AccountID, &l.Name, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get price list: %w", err)
	}
	return &l, nil
}

// ListByAccount lista las listas de precios de la cuenta con paginación.
func (r *PriceListRepo) ListByAccount(accountID string, limit, offset int) ([]*entity.PriceList, error) {
	query := `
		SELECT id, account_id, name, created_at, updated_at
		FROM price_lists WHERE account_id = $1
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list price lists: %w", err)
	}
	defer rows.Close()

	var list []*entity.PriceList
	for rows.Next() {
		var l entity.PriceList
		if err := rows.Scan(&l.ID, &l.AccountID, &l.Name, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan price list: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// ReplaceItems reemplaza las líneas completas de la lista y toca updated_at.
func (r *PriceListRepo) ReplaceItems(listID string, items []*entity.PriceListItem) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM price_list_items WHERE price_list_id = $1`, listID); err != nil {
		return fmt.Errorf("delete price list items: %w", err)
	}
	for _, it := range items {
		_, err := r.q.Exec(ctx,
			`INSERT INTO price_list_items (id, price_list_id, item_id, price) VALUES ($1, $2, $3, $4)`,
			it.ID, it.PriceListID, it.ItemID, it.Price,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert price list item: %w", err)
		}
	}
	return r.Touch(listID)
}

// GetItems devuelve las líneas de la lista.
func (r *PriceListRepo) GetItems(listID string) ([]*entity.PriceListItem, error) {
	query := `
		SELECT id, price_list_id, item_id, price
		FROM price_list_items WHERE price_list_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, listID)
	if err != nil {
		return nil, fmt.Errorf("get price list items: %w", err)
	}
	defer rows.Close()

	var items []*entity.PriceListItem
	for rows.Next() {
		var it entity.PriceListItem
		if err := rows.Scan(&it.ID, &it.PriceListID, &it.ItemID, &it.Price); err != nil {
			return nil, fmt.Errorf("scan price list item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// Touch actualiza updated_at de la lista (promueve su rango en la resolución).
func (r *PriceListRepo) Touch(listID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE price_lists SET updated_at = now() WHERE id = $1`, listID)
	if err != nil {
		return fmt.Errorf("touch price list: %w", err)
	}
	return nil
}

// CandidatesForItem precios del artículo en todas las listas de la cuenta,
// con el updated_at de cada lista como fecha efectiva.
func (r *PriceListRepo) CandidatesForItem(accountID, itemID string) ([]*entity.PriceListCandidate, error) {
	query := `
		SELECT pl.name, pli.price, pl.updated_at
		FROM price_list_items pli
		JOIN price_lists pl ON pl.id = pli.price_list_id
		WHERE pl.account_id = $1 AND pli.item_id = $2
		ORDER BY pl.name`
	rows, err := r.q.Query(context.Background(), query, accountID, itemID)
	if err != nil {
		return nil, fmt.Errorf("price list candidates: %w", err)
	}
	defer rows.Close()

	var list []*entity.PriceListCandidate
	for rows.Next() {
		var c entity.PriceListCandidate
		if err := rows.Scan(&c.ListName, &c.Price, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan price list candidate: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
