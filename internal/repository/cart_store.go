package repository

import (
	"context"

	"greencart/shophub/internal/model"
)

// CartStore holds each user's cart as a replaceable ordered list.
// Implementations: in-memory (default) or Redis.
type CartStore interface {
	// Replace swaps the user's entire cart; prior items are discarded.
	Replace(ctx context.Context, userID string, items []model.CartItem) error
	// Get returns the user's items in order; empty for an unknown user.
	Get(ctx context.Context, userID string) ([]model.CartItem, error)
}
