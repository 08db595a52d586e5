package gateway

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// Sandbox is an in-process gateway client for development and tests.
// It mints order IDs locally instead of calling the provider.
type Sandbox struct{}

// NewSandbox creates a sandbox gateway client
func NewSandbox() *Sandbox {
	return &Sandbox{}
}

// CreateOrder mints a local order in "created" status
func (s *Sandbox) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	order := &Order{
		ID:        fmt.Sprintf("order_%s", uuid.NewString()),
		Amount:    req.Amount,
		Currency:  req.Currency,
		Status:    "created",
		CreatedAt: time.Now(),
	}

	log.Printf("Sandbox gateway: created order %s for purchase %s (%s %s)",
		order.ID, req.PurchaseID, order.Amount.StringFixed(2), order.Currency)

	return order, nil
}
