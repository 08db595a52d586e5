// Package gateway is the seam between repayment validation and the external
// payment provider. Order creation, signature verification and settlement
// reconciliation all happen on the provider's side; this package only defines
// the client contract and a sandbox implementation for development.
package gateway

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderRequest describes the payment order to open with the provider
type OrderRequest struct {
	PurchaseID uuid.UUID
	Amount     decimal.Decimal
	Currency   string
	Receipt    string
	Notes      map[string]string
}

// Order is the provider's record of an opened payment order
type Order struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// Client opens payment orders with the external provider. Implementations
// must only be called after all repayment validation has passed.
type Client interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*Order, error)
}
