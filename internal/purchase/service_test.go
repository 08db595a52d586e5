package purchase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreateRejectsNonPositivePrincipal(t *testing.T) {
	// Validation runs before any repository access
	svc := NewService(nil)

	for _, amount := range []string{"0", "-250.50"} {
		req := &CreatePurchaseRequest{
			LotReference:    "LOT-001",
			PrincipalAmount: decimal.RequireFromString(amount),
		}
		_, err := svc.Create(context.Background(), 1, req)
		assert.ErrorIs(t, err, ErrInvalidPrincipal, "amount %s", amount)
	}
}
