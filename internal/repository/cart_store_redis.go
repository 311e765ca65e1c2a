package repository

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"greencart/shophub/internal/model"
)

type redisCartStore struct {
	client *redis.Client
}

func NewRedisCartStore(client *redis.Client) CartStore {
	return &redisCartStore{client: client}
}

func cartKey(userID string) string { return "cart:" + userID }

func (s *redisCartStore) Replace(ctx context.Context, userID string, items []model.CartItem) error {
	kept := make([]model.CartItem, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			continue
		}
		kept = append(kept, item)
	}

	data, err := json.Marshal(kept)
	if err != nil {
		return err
	}
	// Single SET keeps the replacement atomic.
	return s.client.Set(ctx, cartKey(userID), data, 0).Err()
}

func (s *redisCartStore) Get(ctx context.Context, userID string) ([]model.CartItem, error) {
	data, err := s.client.Get(ctx, cartKey(userID)).Bytes()
	if err == redis.Nil {
		return []model.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []model.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}
