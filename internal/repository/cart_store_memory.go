package repository

import (
	"context"
	"sync"

	"greencart/shophub/internal/model"
)

type memoryCartStore struct {
	mu    sync.RWMutex
	carts map[string][]model.CartItem
}

func NewMemoryCartStore() CartStore {
	return &memoryCartStore{
		carts: make(map[string][]model.CartItem),
	}
}

func (s *memoryCartStore) Replace(_ context.Context, userID string, items []model.CartItem) error {
	kept := make([]model.CartItem, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			continue
		}
		kept = append(kept, item)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[userID] = kept
	return nil
}

func (s *memoryCartStore) Get(_ context.Context, userID string) ([]model.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.carts[userID]
	out := make([]model.CartItem, len(items))
	copy(out, items)
	return out, nil
}
