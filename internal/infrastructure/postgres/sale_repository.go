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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, account_id, party_id, sale_no, date, notes, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.AccountID, sale.PartyID, sale.SaleNo,
		sale.Date, sale.Notes, sale.Total, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la venta.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, item_id, price, qty, tax_id)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.ItemID, item.Price, item.Qty, item.TaxID,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// Update persiste solo campos de cabecera.
func (r *SaleRepo) Update(sale *entity.Sale) error {
	query := `
		UPDATE sales SET party_id = $2, date = $3, notes = $4, total = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.PartyID, sale.Date, sale.Notes, sale.Total, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// SoftDelete marca la venta como borrada.
func (r *SaleRepo) SoftDelete(id string, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sales SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`,
		id, at,
	)
	if err != nil {
		return fmt.Errorf("soft delete sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta viva por ID. nil si no existe o está borrada.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, account_id, party_id, sale_no, date, notes, total, created_at, updated_at, deleted_at
		FROM sales WHERE id = $1 AND deleted_at IS NULL`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.AccountID, &s.PartyID, &s.SaleNo, &s.Date,
		&s.Notes, &s.Total, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// GetItems devuelve las líneas de la venta.
func (r *SaleRepo) GetItems(saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, item_id, price, qty, tax_id
		FROM sale_items WHERE sale_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("get sale items: %w", err)
	}
	defer rows.Close()

	var items []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ItemID, &it.Price, &it.Qty, &it.TaxID); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// DeleteItems elimina todas las líneas (reemplazo completo en updates).
func (r *SaleRepo) DeleteItems(saleID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sale_items WHERE sale_id = $1`, saleID)
	if err != nil {
		return fmt.Errorf("delete sale items: %w", err)
	}
	return nil
}

// ListByAccount lista ventas vivas de la cuenta con paginación.
func (r *SaleRepo) ListByAccount(accountID string, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, account_id, party_id, sale_no, date, notes, total, created_at, updated_at, deleted_at
		FROM sales WHERE account_id = $1 AND deleted_at IS NULL
		ORDER BY sale_no DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.AccountID, &s.PartyID, &s.SaleNo, &s.Date,
			&s.Notes, &s.Total, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// NextNumber devuelve el siguiente consecutivo de venta de la cuenta.
func (r *SaleRepo) NextNumber(accountID string) (int64, error) {
	var next int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(sale_no), 0) + 1 FROM sales WHERE account_id = $1`,
		accountID,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next sale number: %w", err)
	}
	return next, nil
}

// LastLinePrice último precio de venta del artículo para el tercero,
// por fecha de documento descendente. Excluye ventas borradas.
func (r *SaleRepo) LastLinePrice(accountID, itemID, partyID string) (*entity.LastPrice, error) {
	query := `
		SELECT si.price, s.date
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		WHERE s.account_id = $1 AND si.item_id = $2 AND s.party_id = $3 AND s.deleted_at IS NULL
		ORDER BY s.date DESC, s.created_at DESC
		LIMIT 1`
	var lp entity.LastPrice
	err := r.q.QueryRow(context.Background(), query, accountID, itemID, partyID).Scan(&lp.Price, &lp.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("last sale price: %w", err)
	}
	return &lp, nil
}
