package model

import (
	"time"

	"github.com/google/uuid"
)

// Reward is a granted discount for one product. Rewards never expire and
// are never removed; ExpiresAt is always nil.
type Reward struct {
	ID              uuid.UUID  `json:"id"`
	ProductID       string     `json:"productId"`
	DiscountPercent int        `json:"discountPercent"` // 5-30 inclusive
	CreatedAt       time.Time  `json:"createdAt"`
	ExpiresAt       *time.Time `json:"expiresAt"`
}

// RewardGrant is a client-supplied reward to append to the ledger,
// as sent alongside a cart update.
type RewardGrant struct {
	ProductID       string `json:"productId"`
	DiscountPercent int    `json:"discountPercent"`
}
