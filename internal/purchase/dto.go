package purchase

import "github.com/shopspring/decimal"

// CreatePurchaseRequest represents the request body for recording a credit purchase
type CreatePurchaseRequest struct {
	LotReference    string          `json:"lot_reference" validate:"required,max=100"`
	PrincipalAmount decimal.Decimal `json:"principal_amount" validate:"required"`
}

// PurchaseResponse represents the response for a single purchase
type PurchaseResponse struct {
	ID              string          `json:"id"`
	VendorID        int64           `json:"vendor_id"`
	LotReference    string          `json:"lot_reference"`
	PrincipalAmount decimal.Decimal `json:"principal_amount"`
	Status          PurchaseStatus  `json:"status"`
	CreatedAt       string          `json:"created_at"`
}

// ToResponse converts a Purchase model to a PurchaseResponse DTO
func (p *Purchase) ToResponse() *PurchaseResponse {
	return &PurchaseResponse{
		ID:              p.ID.String(),
		VendorID:        p.VendorID,
		LotReference:    p.LotReference,
		PrincipalAmount: p.PrincipalAmount,
		Status:          p.Status,
		CreatedAt:       p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
