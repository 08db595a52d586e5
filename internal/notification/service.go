package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Common errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotRecipient         = errors.New("not the recipient of this notification")
)

// Service handles notification business logic
type Service struct {
	repo *Repository
}

// NewService creates a new notification service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a new notification
func (s *Service) Create(ctx context.Context, vendorID int64, message string, entityType, entityID *string) (*Notification, error) {
	return s.repo.Create(ctx, vendorID, message, entityType, entityID)
}

// NotifyRepaymentInitiated records a notification after a repayment handoff
func (s *Service) NotifyRepaymentInitiated(ctx context.Context, vendorID int64, purchaseID uuid.UUID, amount decimal.Decimal, orderID string) error {
	entityType := EntityTypeRepayment
	entityID := purchaseID.String()
	message := fmt.Sprintf("Repayment of ₹%s initiated for purchase %s (order %s)",
		amount.StringFixed(2), purchaseID, orderID)

	_, err := s.repo.Create(ctx, vendorID, message, &entityType, &entityID)
	return err
}

// GetByID retrieves a notification by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Notification, error) {
	notification, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}
	return notification, nil
}

// ListByVendorID retrieves all notifications for a vendor
func (s *Service) ListByVendorID(ctx context.Context, vendorID int64, page, perPage int, unreadOnly bool) ([]*Notification, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListByVendorID(ctx, vendorID, perPage, offset, unreadOnly)
}

// MarkAsRead marks a notification as read
func (s *Service) MarkAsRead(ctx context.Context, id, vendorID int64) error {
	notification, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if notification == nil {
		return ErrNotificationNotFound
	}
	if notification.VendorID != vendorID {
		return ErrNotRecipient
	}

	return s.repo.MarkAsRead(ctx, id)
}

// MarkAllAsRead marks all notifications as read for a vendor
func (s *Service) MarkAllAsRead(ctx context.Context, vendorID int64) error {
	return s.repo.MarkAllAsRead(ctx, vendorID)
}

// GetUnreadCount returns the count of unread notifications
func (s *Service) GetUnreadCount(ctx context.Context, vendorID int64) (int, error) {
	return s.repo.GetUnreadCount(ctx, vendorID)
}
