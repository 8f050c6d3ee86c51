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

var _ repository.GrnRepository = (*GrnRepo)(nil)

// GrnRepo implementación de GrnRepository sobre PostgreSQL (usable con pool o tx).
// Todas las consultas excluyen filas con borrado lógico.
type GrnRepo struct {
	q Querier
}

// NewGrnRepository construye el adaptador de GRNs. Pasar pool o tx (Querier).
func NewGrnRepository(q Querier) *GrnRepo {
	return &GrnRepo{q: q}
}

// Create persiste la cabecera de la GRN.
// El índice único parcial sobre (purchase_id) WHERE auto_generated garantiza
// a lo sumo una GRN automática por compra.
func (r *GrnRepo) Create(grn *entity.Grn) error {
	query := `
		INSERT INTO grns (id, account_id, purchase_id, grn_no, date, vehicle_no, invoice_no, notes, auto_generated, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		grn.ID, grn.AccountID, grn.PurchaseID, grn.GrnNo, grn.Date,
		grn.VehicleNo, grn.InvoiceNo, grn.Notes, grn.AutoGenerated, grn.CreatedAt, grn.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert grn: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la GRN.
func (r *GrnRepo) CreateItem(item *entity.GrnItem) error {
	query := `
		INSERT INTO grn_items (id, grn_id, item_id, quantity)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, item.ID, item.GrnID, item.ItemID, item.Quantity)
	if err != nil {
		return fmt.Errorf("insert grn item: %w", err)
	}
	return nil
}

// Update persiste solo campos de cabecera.
func (r *GrnRepo) Update(grn *entity.Grn) error {
	query := `
		UPDATE grns SET date = $2, vehicle_no = $3, invoice_no = $4, notes = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		grn.ID, grn.Date, grn.VehicleNo, grn.InvoiceNo, grn.Notes, grn.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update grn: %w", err)
	}
	return nil
}

// SoftDelete marca la GRN como borrada.
func (r *GrnRepo) SoftDelete(id string, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE grns SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`,
		id, at,
	)
	if err != nil {
		return fmt.Errorf("soft delete grn: %w", err)
	}
	return nil
}

// GetByID obtiene una GRN viva por ID. nil si no existe o está borrada.
func (r *GrnRepo) GetByID(id string) (*entity.Grn, error) {
	query := `
		SELECT id, account_id, purchase_id, grn_no, date, vehicle_no, invoice_no, notes, auto_generated, created_at, updated_at, deleted_at
		FROM grns WHERE id = $1 AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetItems devuelve las líneas de la GRN.
func (r *GrnRepo) GetItems(grnID string) ([]*entity.GrnItem, error) {
	query := `
		SELECT id, grn_id, item_id, quantity
		FROM grn_items WHERE grn_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, grnID)
	if err != nil {
		return nil, fmt.Errorf("get grn items: %w", err)
	}
	defer rows.Close()

	var items []*entity.GrnItem
	for rows.Next() {
		var it entity.GrnItem
		if err := rows.Scan(&it.ID, &it.GrnID, &it.ItemID, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan grn item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// DeleteItems elimina todas las líneas (reemplazo completo en updates).
func (r *GrnRepo) DeleteItems(grnID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM grn_items WHERE grn_id = $1`, grnID)
	if err != nil {
		return fmt.Errorf("delete grn items: %w", err)
	}
	return nil
}

// ListByAccount lista GRNs vivas de la cuenta con paginación.
func (r *GrnRepo) ListByAccount(accountID string, limit, offset int) ([]*entity.Grn, error) {
	query := `
		SELECT id, account_id, purchase_id, grn_no, date, vehicle_no, invoice_no, notes, auto_generated, created_at, updated_at, deleted_at
		FROM grns WHERE account_id = $1 AND deleted_at IS NULL
		ORDER BY grn_no DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list grns: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// FindByPurchaseID devuelve todas las GRNs vivas de la compra (manuales y automática).
func (r *GrnRepo) FindByPurchaseID(purchaseID string) ([]*entity.Grn, error) {
	query := `
		SELECT id, account_id, purchase_id, grn_no, date, vehicle_no, invoice_no, notes, auto_generated, created_at, updated_at, deleted_at
		FROM grns WHERE purchase_id = $1 AND deleted_at IS NULL ORDER BY grn_no`
	rows, err := r.q.Query(context.Background(), query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("find grns by purchase: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// FindAutoByPurchaseID devuelve la GRN auto-generada de la compra (1:1), nil si no existe.
func (r *GrnRepo) FindAutoByPurchaseID(purchaseID string) (*entity.Grn, error) {
	query := `
		SELECT id, account_id, purchase_id, grn_no, date, vehicle_no, invoice_no, notes, auto_generated, created_at, updated_at, deleted_at
		FROM grns WHERE purchase_id = $1 AND auto_generated AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(context.Background(), query, purchaseID))
}

// NextNumber devuelve el siguiente consecutivo de GRN de la cuenta.
// Cuenta también las borradas: los consecutivos no se reutilizan.
func (r *GrnRepo) NextNumber(accountID string) (int64, error) {
	var next int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(grn_no), 0) + 1 FROM grns WHERE account_id = $1`,
		accountID,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next grn number: %w", err)
	}
	return next, nil
}

func (r *GrnRepo) scanOne(row pgx.Row) (*entity.Grn, error) {
	var g entity.Grn
	err := row.Scan(
		&g.ID, &g.AccountID, &g.PurchaseID, &g.GrnNo, &g.Date,
		&g.VehicleNo, &g.InvoiceNo, &g.Notes, &g.AutoGenerated,
		&g.CreatedAt, &g.UpdatedAt, &g.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get grn: %w", err)
	}
	return &g, nil
}

func (r *GrnRepo) scanAll(rows pgx.Rows) ([]*entity.Grn, error) {
	var list []*entity.Grn
	for rows.Next() {
		var g entity.Grn
		if err := rows.Scan(
			&g.ID, &g.AccountID, &g.PurchaseID, &g.GrnNo, &g.Date,
			&g.VehicleNo, &g.InvoiceNo, &g.Notes, &g.AutoGenerated,
			&g.CreatedAt, &g.UpdatedAt, &g.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan grn: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}
