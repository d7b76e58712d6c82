package redis

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const orderDedupTTL = time.Hour

// OrderDedup guards against double submission of the same order backed by
// Redis. Key format: order:<email>:<sorted cart item ids joined by ",">
type OrderDedup struct {
	client *redis.Client
}

// NewOrderDedup creates an OrderDedup wrapping the given Redis client.
func NewOrderDedup(client *redis.Client) *OrderDedup {
	return &OrderDedup{client: client}
}

// IsDuplicate reports whether an identical order was recorded recently.
func (d *OrderDedup) IsDuplicate(ctx context.Context, email string, cartItemIDs []string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(email, cartItemIDs)).Result()
	if err != nil {
		return false, fmt.Errorf("order dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this order has been processed (expires after orderDedupTTL).
func (d *OrderDedup) Mark(ctx context.Context, email string, cartItemIDs []string) error {
	return d.client.Set(ctx, d.key(email, cartItemIDs), "1", orderDedupTTL).Err()
}

func (d *OrderDedup) key(email string, cartItemIDs []string) string {
	ids := make([]string, len(cartItemIDs))
	copy(ids, cartItemIDs)
	sort.Strings(ids)
	return fmt.Sprintf("order:%s:%s", email, strings.Join(ids, ","))
}
