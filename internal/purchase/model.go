package purchase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseStatus represents the settlement state of a credit purchase
type PurchaseStatus string

const (
	PurchaseStatusOutstanding PurchaseStatus = "OUTSTANDING"
	PurchaseStatusSettled     PurchaseStatus = "SETTLED"
)

// Purchase represents a credit purchase made by a vendor on the marketplace.
// CreatedAt starts the settlement clock: elapsed days from this date decide
// the discount or interest tier applied at repayment time.
type Purchase struct {
	ID              uuid.UUID       `json:"id"`
	VendorID        int64           `json:"vendor_id"`
	LotReference    string          `json:"lot_reference"` // produce lot / invoice reference
	PrincipalAmount decimal.Decimal `json:"principal_amount"`
	Status          PurchaseStatus  `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}
