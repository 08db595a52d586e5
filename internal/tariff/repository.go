package tariff

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

// Repository handles tier table persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new tariff repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// GetActiveTable loads the configured tier table. It returns nil when no
// table has been configured, letting the service fall back to the default.
func (r *Repository) GetActiveTable(ctx context.Context) (*Table, error) {
	var minPercent decimal.Decimal
	err := r.db.QueryRowContext(ctx, `
		SELECT min_partial_payment_percent FROM tariff_settings LIMIT 1
	`).Scan(&minPercent)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tariff settings: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT kind, start_day, end_day, rate_percent
		FROM rate_tiers
		ORDER BY start_day
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get rate tiers: %w", err)
	}
	defer rows.Close()

	table := &Table{MinPartialPaymentPercent: minPercent}
	for rows.Next() {
		var kind string
		var endDay sql.NullInt64
		var tier Tier
		if err := rows.Scan(&kind, &tier.StartDay, &endDay, &tier.RatePercent); err != nil {
			return nil, fmt.Errorf("failed to scan rate tier: %w", err)
		}
		if endDay.Valid {
			tier.EndDay = int(endDay.Int64)
		} else {
			tier.EndDay = OpenEnded
		}

		switch TierKind(kind) {
		case TierKindDiscount:
			table.DiscountTiers = append(table.DiscountTiers, tier)
		case TierKindInterest:
			table.InterestTiers = append(table.InterestTiers, tier)
		default:
			return nil, fmt.Errorf("unknown tier kind in rate_tiers: %s", kind)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rate tiers: %w", err)
	}

	return table, nil
}

// ReplaceTable atomically swaps the stored tier table for the given one
func (r *Repository) ReplaceTable(ctx context.Context, table Table) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM rate_tiers`); err != nil {
		return fmt.Errorf("failed to clear rate tiers: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM tariff_settings`); err != nil {
		return fmt.Errorf("failed to clear tariff settings: %w", err)
	}

	insert := func(kind TierKind, tiers []Tier) error {
		for _, tier := range tiers {
			var endDay sql.NullInt64
			if tier.EndDay != OpenEnded {
				endDay = sql.NullInt64{Int64: int64(tier.EndDay), Valid: true}
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO rate_tiers (kind, start_day, end_day, rate_percent)
				VALUES ($1, $2, $3, $4)
			`, string(kind), tier.StartDay, endDay, tier.RatePercent)
			if err != nil {
				return fmt.Errorf("failed to insert rate tier: %w", err)
			}
		}
		return nil
	}
	if err := insert(TierKindDiscount, table.DiscountTiers); err != nil {
		return err
	}
	if err := insert(TierKindInterest, table.InterestTiers); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO tariff_settings (min_partial_payment_percent) VALUES ($1)
	`, table.MinPartialPaymentPercent); err != nil {
		return fmt.Errorf("failed to insert tariff settings: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tariff replacement: %w", err)
	}
	return nil
}
