package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.DeliveryNoteRepository = (*DeliveryNoteRepo)(nil)

// DeliveryNoteRepo implementación de DeliveryNoteRepository sobre PostgreSQL
// (usable con pool o tx). Espejo del adaptador de GRNs.
type DeliveryNoteRepo struct {
	q Querier
}

// NewDeliveryNoteRepository construye el adaptador de remisiones. Pasar pool o tx (Querier).
func NewDeliveryNoteRepository(q Querier) *DeliveryNoteRepo {
	return &DeliveryNoteRepo{q: q}
}

// Create persiste la cabecera de la remisión.
func (r *DeliveryNoteRepo) Create(note *entity.DeliveryNote) error {
	query := `
		INSERT INTO delivery_notes (id, account_id, sale_id, note_no, date, vehicle_no, invoice_no, notes, auto_generated, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		note.ID, note.AccountID, note.SaleID, note.NoteNo, note.Date,
		note.VehicleNo, note.InvoiceNo, note.Notes, note.AutoGenerated, note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert delivery note: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la remisión.
func (r *DeliveryNoteRepo) CreateItem(item *entity.DeliveryNoteItem) error {
	query := `
		INSERT INTO delivery_note_items (id, delivery_note_id, item_id, quantity)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, item.ID, item.DeliveryNoteID, item.ItemID, item.Quantity)
	if err != nil {
		return fmt.Errorf("insert delivery note item: %w", err)
	}
	return nil
}

// Update persiste solo campos de cabecera.
func (r *DeliveryNoteRepo) Update(note *entity.DeliveryNote) error {
	query := `
		UPDATE delivery_notes SET date = $2, vehicle_no = $3, invoice_no = $4, notes = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		note.ID, note.Date, note.VehicleNo, note.InvoiceNo, note.Notes, note.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update delivery note: %w", err)
	}
	return nil
}

// SoftDelete marca la remisión como borrada.
func (r *DeliveryNoteRepo) SoftDelete(id string, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE delivery_notes SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`,
		id, at,
	)
	if err != nil {
		return fmt.Errorf("soft delete delivery note: %w", err)
	}
	return nil
}

// GetByID obtiene una remisión viva por ID. nil si no existe o está borrada.
func (r *DeliveryNoteRepo) GetByID(id string) (*entity.DeliveryNote, error) {
	query := `
		SELECT id, account_id, sale_id, note_no, date, vehicle_no, invoice_no, notes, auto_generated, created_at, updated_at, deleted_at
		FROM delivery_notes WHERE id = $1 AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetItems devuelve las líneas de la remisión.
func (r *DeliveryNoteRepo) GetItems(noteID string) ([]*entity.DeliveryNoteItem, error) {
	query := `
		SELECT id, delivery_note_id, item_id, quantity
		FROM delivery_note_items WHERE delivery_note_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, noteID)
	if err != nil {
		return nil, fmt.Errorf("get delivery note items: %w", err)
	}
	defer rows.Close()

	var items []*entity.DeliveryNoteItem
	for rows.Next() {
		var it entity.DeliveryNoteItem
		if err := rows.Scan(&it.ID, &it.DeliveryNoteID, &it.ItemID, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan delivery note item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// DeleteItems elimina todas las líneas (reemplazo completo en updates).
func (r *DeliveryNoteRepo) DeleteItems(noteID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM delivery_note_items WHERE delivery_note_id = $1`, noteID)
	if err != nil {
		return fmt.Errorf("delete delivery note items: %w", err)
	}
	return nil
}

// ListByAccount lista remisiones vivas de la cuenta con paginación.
func (r *DeliveryNoteRepo) ListByAccount(accountID string, limit, offset int) ([]*entity.DeliveryNote, error) {
	query := `
		SELECT id, account_id, sale_id, note_no, date, vehicle_no, invoice_no, notes, auto_generated, created_at, updated_at, deleted_at
		FROM delivery_notes WHERE account_id = $1 AND deleted_at IS NULL
		ORDER BY note_no DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list delivery notes: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// FindBySaleID devuelve todas las remisiones vivas de la venta.
func (r *DeliveryNoteRepo) FindBySaleID(saleID string) ([]*entity.DeliveryNote, error) {
	query := `
		SELECT id, account_id, sale_id, note_no, date, vehicle_no, invoice_no, notes, auto_generated, created_at, updated_at, deleted_at
		FROM delivery_notes WHERE sale_id = $1 AND deleted_at IS NULL ORDER BY note_no`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("find delivery notes by sale: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// FindAutoBySaleID devuelve la remisión auto-generada de la venta (1:1), nil si no existe.
func (r *DeliveryNoteRepo) FindAutoBySaleID(saleID string) (*entity.DeliveryNote, error) {
	query := `
		SELECT id, account_id, sale_id, note_no, date, vehicle_no, invoice_no, notes, auto_generated, created_at, updated_at, deleted_at
		FROM delivery_notes WHERE sale_id = $1 AND auto_generated AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(context.Background(), query, saleID))
}

// NextNumber devuelve el siguiente consecutivo de remisión de la cuenta.
func (r *DeliveryNoteRepo) NextNumber(accountID string) (int64, error) {
	var next int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(note_no), 0) + 1 FROM delivery_notes WHERE account_id = $1`,
		accountID,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next delivery note number: %w", err)
	}
	return next, nil
}

func (r *DeliveryNoteRepo) scanOne(row pgx.Row) (*entity.DeliveryNote, error) {
	var n entity.DeliveryNote
	err := row.Scan(
		&n.ID, &n.AccountID, &n.SaleID, &n.NoteNo, &n.Date,
		&n.VehicleNo, &n.InvoiceNo, &n.Notes, &n.AutoGenerated,
		&n.CreatedAt, &n.UpdatedAt, &n.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery note: %w", err)
	}
	return &n, nil
}

func (r *DeliveryNoteRepo) scanAll(rows pgx.Rows) ([]*entity.DeliveryNote, error) {
	var list []*entity.DeliveryNote
	for rows.Next() {
		var n entity.DeliveryNote
		if err := rows.Scan(
			&n.ID, &n.AccountID, &n.SaleID, &n.NoteNo, &n.Date,
			&n.VehicleNo, &n.InvoiceNo, &n.Notes, &n.AutoGenerated,
			&n.CreatedAt, &n.UpdatedAt, &n.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan delivery note: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}
