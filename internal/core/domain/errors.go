package domain

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUserExists       = errors.New("user already exists")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrForbidden        = errors.New("access forbidden")
	ErrDuplicateOrder   = errors.New("duplicate order submission")
)
