package ports

import (
	"context"
	"time"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

// RecordPaymentInput carries a completed checkout from the transport layer.
type RecordPaymentInput struct {
	Email         string
	Price         float64
	TransactionID string
	Date          time.Time
	CartItemIDs   []string
	MenuItemIDs   []string
	Status        string
}

// RecordPaymentResult is returned by Record. AlreadyRecorded is true when the
// duplicate-submission guard matched a recent identical order; in that case
// no payment was inserted.
type RecordPaymentResult struct {
	Payment         *domain.Payment
	AlreadyRecorded bool
}

// PaymentService defines use-case operations for checkout and reporting.
type PaymentService interface {
	// CreateIntent asks the payment gateway for a client secret covering the
	// given price (major currency units).
	CreateIntent(ctx context.Context, price float64) (string, error)
	Record(ctx context.Context, input RecordPaymentInput) (*RecordPaymentResult, error)
	AdminStats(ctx context.Context) (*domain.AdminStats, error)
	OrderStats(ctx context.Context) ([]*domain.CategoryStat, error)
}
