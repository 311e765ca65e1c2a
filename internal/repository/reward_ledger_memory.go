package repository

import (
	"context"
	"sync"

	"greencart/shophub/internal/model"
)

type memoryRewardLedger struct {
	mu      sync.RWMutex
	rewards map[string][]model.Reward
}

func NewMemoryRewardLedger() RewardLedger {
	return &memoryRewardLedger{
		rewards: make(map[string][]model.Reward),
	}
}

func (l *memoryRewardLedger) Append(_ context.Context, userID string, reward model.Reward) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rewards[userID] = append(l.rewards[userID], reward)
	return nil
}

func (l *memoryRewardLedger) List(_ context.Context, userID string) ([]model.Reward, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	rewards := l.rewards[userID]
	out := make([]model.Reward, len(rewards))
	copy(out, rewards)
	return out, nil
}
