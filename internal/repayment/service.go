package repayment

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agrimart/repayment/internal/gateway"
	"github.com/agrimart/repayment/internal/purchase"
	"github.com/agrimart/repayment/internal/tariff"
)

// PurchaseSource loads purchase snapshots for quoting
type PurchaseSource interface {
	GetOwnedByVendor(ctx context.Context, id uuid.UUID, vendorID int64) (*purchase.Purchase, error)
}

// TariffSource loads the active rate tier table
type TariffSource interface {
	Load(ctx context.Context) (tariff.Table, error)
}

// Notifier records a notification for a vendor after a repayment handoff
type Notifier interface {
	NotifyRepaymentInitiated(ctx context.Context, vendorID int64, purchaseID uuid.UUID, amount decimal.Decimal, orderID string) error
}

// HandoffResult is everything the client needs after a repayment is handed to
// the gateway: the validated intent, the quote it was validated against, the
// informational remaining balance, and the opened gateway order.
type HandoffResult struct {
	Intent           *PaymentIntent
	Calculation      *Calculation
	RemainingBalance decimal.Decimal
	Order            *gateway.Order
}

// Service handles repayment business logic
type Service struct {
	purchases PurchaseSource
	tariffs   TariffSource
	gateway   gateway.Client
	notifier  Notifier
	now       func() time.Time
}

// NewService creates a new repayment service
func NewService(purchases PurchaseSource, tariffs TariffSource, gw gateway.Client, notifier Notifier) *Service {
	return &Service{
		purchases: purchases,
		tariffs:   tariffs,
		gateway:   gw,
		notifier:  notifier,
		now:       time.Now,
	}
}

// snapshot loads the purchase and tier table a quote is computed from
func (s *Service) snapshot(ctx context.Context, vendorID int64, purchaseID uuid.UUID) (*purchase.Purchase, tariff.Table, error) {
	p, err := s.purchases.GetOwnedByVendor(ctx, purchaseID, vendorID)
	if err != nil {
		return nil, tariff.Table{}, err
	}
	if p.Status == purchase.PurchaseStatusSettled {
		return nil, tariff.Table{}, ErrAlreadySettled
	}

	table, err := s.tariffs.Load(ctx)
	if err != nil {
		return nil, tariff.Table{}, err
	}
	return p, table, nil
}

// Quote computes the settlement amount payable today for a purchase
func (s *Service) Quote(ctx context.Context, vendorID int64, purchaseID uuid.UUID) (*Calculation, error) {
	p, table, err := s.snapshot(ctx, vendorID, purchaseID)
	if err != nil {
		return nil, err
	}
	return Calculate(p, table, s.now())
}

// Schedule returns the forward-looking settlement schedule for a purchase
func (s *Service) Schedule(ctx context.Context, vendorID int64, purchaseID uuid.UUID) ([]ProjectionPoint, error) {
	p, table, err := s.snapshot(ctx, vendorID, purchaseID)
	if err != nil {
		return nil, err
	}

	var points []ProjectionPoint
	for point := range Project(p, table) {
		points = append(points, point)
	}
	return points, nil
}

// InitiateRepayment validates a settlement request and hands it to the payment
// gateway. Every validation failure is caught before the gateway call.
func (s *Service) InitiateRepayment(ctx context.Context, vendorID int64, purchaseID uuid.UUID, mode PaymentMode, amount decimal.Decimal) (*HandoffResult, error) {
	p, table, err := s.snapshot(ctx, vendorID, purchaseID)
	if err != nil {
		return nil, err
	}

	calc, err := Calculate(p, table, s.now())
	if err != nil {
		return nil, err
	}

	var intent *PaymentIntent
	switch mode {
	case PaymentModeFull:
		intent = FullPaymentIntent(calc)
	case PaymentModePartial:
		intent, err = ValidatePartialPayment(amount, calc, table.MinPartialPaymentPercent)
		if err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnknownPaymentMode
	}

	order, err := s.gateway.CreateOrder(ctx, gateway.OrderRequest{
		PurchaseID: p.ID,
		Amount:     intent.Amount,
		Currency:   "INR",
		Receipt:    p.LotReference,
		Notes: map[string]string{
			"mode": string(intent.Mode),
			"tier": calc.TierLabel,
		},
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyRepaymentInitiated(ctx, vendorID, p.ID, intent.Amount, order.ID); err != nil {
			// Notification failure must not fail the handoff
			log.Printf("Failed to notify vendor %d of repayment for purchase %s: %v", vendorID, p.ID, err)
		}
	}

	return &HandoffResult{
		Intent:           intent,
		Calculation:      calc,
		RemainingBalance: RemainingBalance(calc, intent.Amount),
		Order:            order,
	}, nil
}
