package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"greencart/shophub/internal/model"
	"greencart/shophub/internal/repository"
	"greencart/shophub/pkg/random"
)

// defaultChallengeProductID receives the reward when the client names no product.
const defaultChallengeProductID = "1"

type CarbonImpact struct {
	EstimatedKg float64 `json:"estimatedKg"`
	Message     string  `json:"message"`
}

type ChallengeResult struct {
	Reward        model.Reward `json:"reward"`
	CarbonImpact  CarbonImpact `json:"carbonImpact"`
	ChallengeType string       `json:"challengeType,omitempty"`
}

// ChallengeService grants a reward for playing a game challenge. The
// carbon impact figure is display-only and independent of the reward.
type ChallengeService interface {
	Play(ctx context.Context, userID, productID, challengeType string) (ChallengeResult, error)
}

type challengeService struct {
	ledger repository.RewardLedger
	rng    random.Source
}

func NewChallengeService(ledger repository.RewardLedger, rng random.Source) ChallengeService {
	return &challengeService{ledger: ledger, rng: rng}
}

func (s *challengeService) Play(ctx context.Context, userID, productID, challengeType string) (ChallengeResult, error) {
	if userID == "" {
		return ChallengeResult{}, ErrUserIDRequired
	}
	if productID == "" {
		productID = defaultChallengeProductID
	}

	reward := model.Reward{
		ID:              uuid.New(),
		ProductID:       productID,
		DiscountPercent: s.rng.IntBetween(minDiscountPercent, maxDiscountPercent),
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.ledger.Append(ctx, userID, reward); err != nil {
		return ChallengeResult{}, fmt.Errorf("append reward: %w", err)
	}

	kg := round2(s.rng.FloatBetween(0.5, 2.0))
	return ChallengeResult{
		Reward: reward,
		CarbonImpact: CarbonImpact{
			EstimatedKg: kg,
			Message:     fmt.Sprintf("Playing green saved an estimated %.2f kg of CO2 today!", kg),
		},
		ChallengeType: challengeType,
	}, nil
}
