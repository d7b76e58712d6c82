package ports

import "context"

// PaymentGateway abstracts the third-party payment provider. Amounts are in
// the smallest currency unit (e.g. paise for INR).
type PaymentGateway interface {
	// CreateIntent registers a pending charge and returns the client secret
	// the frontend needs to confirm it.
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}
