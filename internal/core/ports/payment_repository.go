package ports

import (
	"context"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

// PaymentRepository defines persistence operations for the payments
// collection, including the transactional cart cleanup and the statistics
// aggregation.
type PaymentRepository interface {
	// Record inserts the payment and deletes every cart item referenced by
	// payment.CartItemIDs inside a single transaction, so a recorded payment
	// never coexists with its source cart entries.
	Record(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	List(ctx context.Context) ([]*domain.Payment, error)
	Count(ctx context.Context) (int64, error)
	// OrderStats runs the category aggregation: payments' menu item ids are
	// joined against the menus collection and grouped by category. References
	// to menu items that no longer exist drop out of the join silently.
	OrderStats(ctx context.Context) ([]*domain.CategoryStat, error)
}
