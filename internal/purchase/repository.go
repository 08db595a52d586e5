package purchase

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Repository handles purchase data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new purchase repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new purchase into the database
func (r *Repository) Create(ctx context.Context, p *Purchase) (*Purchase, error) {
	query := `
		INSERT INTO purchases (id, vendor_id, lot_reference, principal_amount, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		p.ID, p.VendorID, p.LotReference, p.PrincipalAmount, p.Status,
	).Scan(&p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create purchase: %w", err)
	}

	return p, nil
}

// GetByID retrieves a purchase by its ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Purchase, error) {
	query := `
		SELECT id, vendor_id, lot_reference, principal_amount, status, created_at
		FROM purchases
		WHERE id = $1
	`

	p := &Purchase{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.VendorID,
		&p.LotReference,
		&p.PrincipalAmount,
		&p.Status,
		&p.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}

	return p, nil
}

// ListByVendorID retrieves purchases for a vendor with pagination
func (r *Repository) ListByVendorID(ctx context.Context, vendorID int64, limit, offset int) ([]*Purchase, int, error) {
	countQuery := `SELECT COUNT(*) FROM purchases WHERE vendor_id = $1`

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, vendorID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count purchases: %w", err)
	}

	query := `
		SELECT id, vendor_id, lot_reference, principal_amount, status, created_at
		FROM purchases
		WHERE vendor_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, vendorID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list purchases: %w", err)
	}
	defer rows.Close()

	var purchases []*Purchase
	for rows.Next() {
		p := &Purchase{}
		if err := rows.Scan(
			&p.ID,
			&p.VendorID,
			&p.LotReference,
			&p.PrincipalAmount,
			&p.Status,
			&p.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan purchase: %w", err)
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read purchases: %w", err)
	}

	return purchases, total, nil
}

// MarkSettled updates a purchase's status to SETTLED
func (r *Repository) MarkSettled(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE purchases SET status = $1 WHERE id = $2
	`, PurchaseStatusSettled, id)
	if err != nil {
		return fmt.Errorf("failed to mark purchase settled: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check settled update: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
