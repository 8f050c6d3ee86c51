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

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de compras. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste la cabecera de la compra.
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, account_id, party_id, purchase_no, date, notes, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.AccountID, purchase.PartyID, purchase.PurchaseNo,
		purchase.Date, purchase.Notes, purchase.Total, purchase.CreatedAt, purchase.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la compra.
func (r *PurchaseRepo) CreateItem(item *entity.PurchaseItem) error {
	query := `
		INSERT INTO purchase_items (id, purchase_id, item_id, price, qty, tax_id)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.PurchaseID, item.ItemID, item.Price, item.Qty, item.TaxID,
	)
	if err != nil {
		return fmt.Errorf("insert purchase item: %w", err)
	}
	return nil
}

// Update persiste solo campos de cabecera.
func (r *PurchaseRepo) Update(purchase *entity.Purchase) error {
	query := `
		UPDATE purchases SET party_id = $2, date = $3, notes = $4, total = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.PartyID, purchase.Date, purchase.Notes, purchase.Total, purchase.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase: %w", err)
	}
	return nil
}

// SoftDelete marca la compra como borrada.
func (r *PurchaseRepo) SoftDelete(id string, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE purchases SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`,
		id, at,
	)
	if err != nil {
		return fmt.Errorf("soft delete purchase: %w", err)
	}
	return nil
}

// GetByID obtiene una compra viva por ID. nil si no existe o está borrada.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	query := `
		SELECT id, account_id, party_id, purchase_no, date, notes, total, created_at, updated_at, deleted_at
		FROM purchases WHERE id = $1 AND deleted_at IS NULL`
	var p entity.Purchase
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.AccountID, &p.PartyID, &p.PurchaseNo, &p.Date,
		&p.Notes, &p.Total, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return &p, nil
}

// GetItems devuelve las líneas de la compra.
func (r *PurchaseRepo) GetItems(purchaseID string) ([]*entity.PurchaseItem, error) {
	query := `
		SELECT id, purchase_id, item_id, price, qty, tax_id
		FROM purchase_items WHERE purchase_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("get purchase items: %w", err)
	}
	defer rows.Close()

	var items []*entity.PurchaseItem
	for rows.Next() {
		var it entity.PurchaseItem
		if err := rows.Scan(&it.ID, &it.PurchaseID, &it.ItemID, &it.Price, &it.Qty, &it.TaxID); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// DeleteItems elimina todas las líneas (reemplazo completo en updates).
func (r *PurchaseRepo) DeleteItems(purchaseID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM purchase_items WHERE purchase_id = $1`, purchaseID)
	if err != nil {
		return fmt.Errorf("delete purchase items: %w", err)
	}
	return nil
}

// ListByAccount lista compras vivas de la cuenta con paginación.
func (r *PurchaseRepo) ListByAccount(accountID string, limit, offset int) ([]*entity.Purchase, error) {
	query := `
		SELECT id, account_id, party_id, purchase_no, date, notes, total, created_at, updated_at, deleted_at
		FROM purchases WHERE account_id = $1 AND deleted_at IS NULL
		ORDER BY purchase_no DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(
			&p.ID, &p.AccountID, &p.PartyID, &p.PurchaseNo, &p.Date,
			&p.Notes, &p.Total, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// NextNumber devuelve el siguiente consecutivo de compra de la cuenta.
func (r *PurchaseRepo) NextNumber(accountID string) (int64, error) {
	var next int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(purchase_no), 0) + 1 FROM purchases WHERE account_id = $1`,
		accountID,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next purchase number: %w", err)
	}
	return next, nil
}

// LastLinePrice último precio de compra del artículo para el tercero,
// por fecha de documento descendente. Excluye compras borradas.
func (r *PurchaseRepo) LastLinePrice(accountID, itemID, partyID string) (*entity.LastPrice, error) {
	query := `
		SELECT pi.price, p.date
		FROM purchase_items pi
		JOIN purchases p ON p.id = pi.purchase_id
		WHERE p.account_id = $1 AND pi.item_id = $2 AND p.party_id = $3 AND p.deleted_at IS NULL
		ORDER BY p.date DESC, p.created_at DESC
		LIMIT 1`
	var lp entity.LastPrice
	err := r.q.QueryRow(context.Background(), query, accountID, itemID, partyID).Scan(&lp.Price, &lp.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("last purchase price: %w", err)
	}
	return &lp, nil
}
