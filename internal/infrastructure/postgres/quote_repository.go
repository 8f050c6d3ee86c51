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

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementación de QuoteRepository sobre PostgreSQL (usable con pool o tx).
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository construye el adaptador de cotizaciones. Pasar pool o tx (Querier).
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

// Create persiste la cabecera de la cotización.
func (r *QuoteRepo) Create(quote *entity.Quote) error {
	query := `
		INSERT INTO quotes (id, account_id, party_id, quote_no, date, notes, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		quote.ID, quote.AccountID, quote.PartyID, quote.QuoteNo,
		quote.Date, quote.Notes, quote.Total, quote.CreatedAt, quote.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la cotización.
func (r *QuoteRepo) CreateItem(item *entity.QuoteItem) error {
	query := `
		INSERT INTO quote_items (id, quote_id, item_id, price, qty, tax_id)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.QuoteID, item.ItemID, item.Price, item.Qty, item.TaxID,
	)
	if err != nil {
		return fmt.Errorf("insert quote item: %w", err)
	}
	return nil
}

// Update persiste solo campos de cabecera.
func (r *QuoteRepo) Update(quote *entity.Quote) error {
	query := `
		UPDATE quotes SET party_id = $2, date = $3, notes = $4, total = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		quote.ID, quote.PartyID, quote.Date, quote.Notes, quote.Total, quote.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quote: %w", err)
	}
	return nil
}

// SoftDelete marca la cotización como borrada.
func (r *QuoteRepo) SoftDelete(id string, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE quotes SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`,
		id, at,
	)
	if err != nil {
		return fmt.Errorf("soft delete quote: %w", err)
	}
	return nil
}

// GetByID obtiene una cotización viva por ID. nil si no existe o está borrada.
func (r *QuoteRepo) GetByID(id string) (*entity.Quote, error) {
	query := `
		SELECT id, account_id, party_id, quote_no, date, notes, total, created_at, updated_at, deleted_at
		FROM quotes WHERE id = $1 AND deleted_at IS NULL`
	var q entity.Quote
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&q.ID, &q.AccountID, &q.PartyID, &q.QuoteNo, &q.Date,
		&q.Notes, &q.Total, &q.CreatedAt, &q.UpdatedAt, &q.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return &q, nil
}

// GetItems devuelve las líneas de la cotización.
func (r *QuoteRepo) GetItems(quoteID string) ([]*entity.QuoteItem, error) {
	query := `
		SELECT id, quote_id, item_id, price, qty, tax_id
		FROM quote_items WHERE quote_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("get quote items: %w", err)
	}
	defer rows.Close()

	var items []*entity.QuoteItem
	for rows.Next() {
		var it entity.QuoteItem
		if err := rows.Scan(&it.ID, &it.QuoteID, &it.ItemID, &it.Price, &it.Qty, &it.TaxID); err != nil {
			return nil, fmt.Errorf("scan quote item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// DeleteItems elimina todas las líneas (reemplazo completo en updates).
func (r *QuoteRepo) DeleteItems(quoteID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM quote_items WHERE quote_id = $1`, quoteID)
	if err != nil {
		return fmt.Errorf("delete quote items: %w", err)
	}
	return nil
}

// ListByAccount lista cotizaciones vivas de la cuenta con paginación.
func (r *QuoteRepo) ListByAccount(accountID string, limit, offset int) ([]*entity.Quote, error) {
	query := `
		SELECT id, account_id, party_id, quote_no, date, notes, total, created_at, updated_at, deleted_at
		FROM quotes WHERE account_id = $1 AND deleted_at IS NULL
		ORDER BY quote_no DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Quote
	for rows.Next() {
		var q entity.Quote
		if err := rows.Scan(
			&q.ID, &q.AccountID, &q.PartyID, &q.QuoteNo, &q.Date,
			&q.Notes, &q.Total, &q.CreatedAt, &q.UpdatedAt, &q.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}

// NextNumber devuelve el siguiente consecutivo de cotización de la cuenta.
func (r *QuoteRepo) NextNumber(accountID string) (int64, error) {
	var next int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(quote_no), 0) + 1 FROM quotes WHERE account_id = $1`,
		accountID,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next quote number: %w", err)
	}
	return next, nil
}

// LastLinePrice último precio cotizado del artículo para el tercero,
// por fecha de documento descendente. Excluye cotizaciones borradas.
func (r *QuoteRepo) LastLinePrice(accountID, itemID, partyID string) (*entity.LastPrice, error) {
	query := `
		SELECT qi.price, q.date
		FROM quote_items qi
		JOIN quotes q ON q.id = qi.quote_id
		WHERE q.account_id = $1 AND qi.item_id = $2 AND q.party_id = $3 AND q.deleted_at IS NULL
		ORDER BY q.date DESC, q.created_at DESC
		LIMIT 1`
	var lp entity.LastPrice
	err := r.q.QueryRow(context.Background(), query, accountID, itemID, partyID).Scan(&lp.Price, &lp.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("last quote price: %w", err)
	}
	return &lp, nil
}
