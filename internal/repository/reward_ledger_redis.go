package repository

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"greencart/shophub/internal/model"
)

type redisRewardLedger struct {
	client *redis.Client
}

func NewRedisRewardLedger(client *redis.Client) RewardLedger {
	return &redisRewardLedger{client: client}
}

func rewardsKey(userID string) string { return "rewards:" + userID }

func (l *redisRewardLedger) Append(ctx context.Context, userID string, reward model.Reward) error {
	data, err := json.Marshal(reward)
	if err != nil {
		return err
	}
	// RPUSH preserves grant order under concurrent appends.
	return l.client.RPush(ctx, rewardsKey(userID), data).Err()
}

func (l *redisRewardLedger) List(ctx context.Context, userID string) ([]model.Reward, error) {
	entries, err := l.client.LRange(ctx, rewardsKey(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	rewards := make([]model.Reward, 0, len(entries))
	for _, entry := range entries {
		var r model.Reward
		if err := json.Unmarshal([]byte(entry), &r); err != nil {
			return nil, err
		}
		rewards = append(rewards, r)
	}
	return rewards, nil
}
