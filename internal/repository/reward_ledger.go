package repository

import (
	"context"

	"greencart/shophub/internal/model"
)

// RewardLedger is an append-only per-user record of granted discounts.
// Entries are never overwritten, deduplicated, or removed.
type RewardLedger interface {
	Append(ctx context.Context, userID string, reward model.Reward) error
	// List returns the user's rewards in grant order; empty for an
	// unknown user.
	List(ctx context.Context, userID string) ([]model.Reward, error)
}
