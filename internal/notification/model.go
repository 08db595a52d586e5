package notification

import "time"

// Notification represents a notification delivered to a vendor
type Notification struct {
	ID                int64     `json:"id"`
	VendorID          int64     `json:"vendor_id"`
	Message           string    `json:"message"`
	IsRead            bool      `json:"is_read"`
	RelatedEntityType *string   `json:"related_entity_type,omitempty"` // e.g. "PURCHASE", "REPAYMENT"
	RelatedEntityID   *string   `json:"related_entity_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// Entity types a notification can reference
const (
	EntityTypePurchase  = "PURCHASE"
	EntityTypeRepayment = "REPAYMENT"
)
