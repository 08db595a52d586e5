package purchase

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrPurchaseNotFound = errors.New("purchase not found")
	ErrInvalidPrincipal = errors.New("principal amount must be greater than zero")
	ErrNotPurchaseOwner = errors.New("purchase belongs to another vendor")
)

// Service handles purchase business logic
type Service struct {
	repo *Repository
}

// NewService creates a new purchase service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create records a new credit purchase for a vendor
func (s *Service) Create(ctx context.Context, vendorID int64, req *CreatePurchaseRequest) (*Purchase, error) {
	if !req.PrincipalAmount.IsPositive() {
		return nil, ErrInvalidPrincipal
	}

	p := &Purchase{
		ID:              uuid.New(),
		VendorID:        vendorID,
		LotReference:    req.LotReference,
		PrincipalAmount: req.PrincipalAmount,
		Status:          PurchaseStatusOutstanding,
	}

	return s.repo.Create(ctx, p)
}

// GetByID retrieves a purchase by its ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Purchase, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPurchaseNotFound
	}
	return p, nil
}

// GetOwnedByVendor retrieves a purchase and checks it belongs to the vendor
func (s *Service) GetOwnedByVendor(ctx context.Context, id uuid.UUID, vendorID int64) (*Purchase, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.VendorID != vendorID {
		return nil, ErrNotPurchaseOwner
	}
	return p, nil
}

// ListByVendorID retrieves all purchases for a vendor
func (s *Service) ListByVendorID(ctx context.Context, vendorID int64, page, perPage int) ([]*Purchase, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListByVendorID(ctx, vendorID, perPage, offset)
}
