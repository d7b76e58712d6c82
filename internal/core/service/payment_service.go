package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bistroboss/bistro-api/internal/api/metrics"
	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

// currency for payment intents. The storefront charges in Indian rupees.
const intentCurrency = "inr"

// OrderDedup abstracts the duplicate-submission guard (Redis).
type OrderDedup interface {
	IsDuplicate(ctx context.Context, email string, cartItemIDs []string) (bool, error)
	Mark(ctx context.Context, email string, cartItemIDs []string) error
}

type paymentService struct {
	payments ports.PaymentRepository
	users    ports.UserRepository
	menus    ports.MenuRepository
	gateway  ports.PaymentGateway
	dedup    OrderDedup
	log      zerolog.Logger
}

// NewPaymentService returns a PaymentService implementation.
func NewPaymentService(
	payments ports.PaymentRepository,
	users ports.UserRepository,
	menus ports.MenuRepository,
	gateway ports.PaymentGateway,
	dedup OrderDedup,
	log zerolog.Logger,
) ports.PaymentService {
	return &paymentService{
		payments: payments,
		users:    users,
		menus:    menus,
		gateway:  gateway,
		dedup:    dedup,
		log:      log,
	}
}

// CreateIntent converts the price to the smallest currency unit and asks the
// gateway for a client secret.
func (s *paymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(price * 100)
	secret, err := s.gateway.CreateIntent(ctx, amount, intentCurrency)
	if err != nil {
		metrics.PaymentIntentsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("create payment intent: %w", err)
	}

	metrics.PaymentIntentsTotal.WithLabelValues("ok").Inc()
	return secret, nil
}

// Record persists a completed checkout and clears the consumed cart items.
// A recent identical submission (same owner, same cart ids) is skipped via
// the dedup guard; dedup store failures are logged and processing continues.
func (s *paymentService) Record(ctx context.Context, in ports.RecordPaymentInput) (*ports.RecordPaymentResult, error) {
	isDup, err := s.dedup.IsDuplicate(ctx, in.Email, in.CartItemIDs)
	if err != nil {
		s.log.Warn().Err(err).Str("email", in.Email).Msg("order dedup check failed, recording anyway")
	} else if isDup {
		s.log.Info().Str("email", in.Email).Msg("duplicate order submission skipped")
		metrics.PaymentsRecordedTotal.WithLabelValues("duplicate").Inc()
		return &ports.RecordPaymentResult{AlreadyRecorded: true}, nil
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	payment, err := s.payments.Record(ctx, &domain.Payment{
		Email:         in.Email,
		Price:         in.Price,
		TransactionID: in.TransactionID,
		Date:          date,
		CartItemIDs:   in.CartItemIDs,
		MenuItemIDs:   in.MenuItemIDs,
		Status:        in.Status,
	})
	if err != nil {
		metrics.PaymentsRecordedTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("record payment: %w", err)
	}

	if markErr := s.dedup.Mark(ctx, in.Email, in.CartItemIDs); markErr != nil {
		s.log.Warn().Err(markErr).Str("email", in.Email).Msg("failed to set order dedup key")
	}

	metrics.PaymentsRecordedTotal.WithLabelValues("ok").Inc()
	s.log.Info().
		Str("email", in.Email).
		Float64("price", in.Price).
		Int("cart_items", len(in.CartItemIDs)).
		Msg("payment recorded")

	return &ports.RecordPaymentResult{Payment: payment}, nil
}

// AdminStats sums revenue over the full payments collection rather than
// asking the store to aggregate it. The collection holds completed orders
// only, so the scan stays small.
func (s *paymentService) AdminStats(ctx context.Context) (*domain.AdminStats, error) {
	customers, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: count users: %w", err)
	}
	products, err := s.menus.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: count menu items: %w", err)
	}
	orders, err := s.payments.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: count payments: %w", err)
	}

	payments, err := s.payments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: list payments: %w", err)
	}
	var revenue float64
	for _, p := range payments {
		revenue += p.Price
	}

	return &domain.AdminStats{
		Customers: customers,
		Products:  products,
		Orders:    orders,
		Revenue:   revenue,
	}, nil
}

func (s *paymentService) OrderStats(ctx context.Context) ([]*domain.CategoryStat, error) {
	return s.payments.OrderStats(ctx)
}
